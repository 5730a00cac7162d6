package insights

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/unsaid-tools/tone-atlas/pkg/adapters"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	insightssvc "github.com/unsaid-tools/tone-atlas/pkg/services/insights"
)

const defaultWindow = domain.WindowWeek

type Handler struct {
	registry insightssvc.Registry
}

func NewHandler(registry insightssvc.Registry) *Handler {
	return &Handler{registry: registry}
}

// GetInsights serves the full derived-metric report for a profile.
// Query params: window (24h|7d|30d|90d|all), relationship (couple|coparent),
// compatibility (optional float in [0,1] from a linked partner).
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	opts, err := parseReportOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctrl, err := h.registry.GetController(ctx, profile)
	if err != nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	report, err := ctrl.GetReport(ctx, opts)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to compute insights report")
		http.Error(w, "failed to compute report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapInsightsReportDomainToApi(report))
}

// GetMetric serves a single derived metric out of the report.
func (h *Handler) GetMetric(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")
	metric := chi.URLParam(r, "metric")

	opts, err := parseReportOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctrl, err := h.registry.GetController(ctx, profile)
	if err != nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	report, err := ctrl.GetReport(ctx, opts)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to compute insights report")
		http.Error(w, "failed to compute report", http.StatusInternalServerError)
		return
	}

	switch metric {
	case "streak":
		writeJSON(w, logger, adapters.MapInsightsReportDomainToApi(report).Streak)
	case "repair":
		writeJSON(w, logger, adapters.MapRepairRateDomainToApi(report.Repair))
	case "heatmap":
		writeJSON(w, logger, adapters.MapConflictMatrixDomainToApi(report.Heatmap))
	case "topics":
		writeJSON(w, logger, adapters.MapTopicRankingDomainToApi(report.Topics))
	case "health":
		writeJSON(w, logger, adapters.MapHealthScoreDomainToApi(report.Health))
	default:
		http.Error(w, "unknown metric: "+metric, http.StatusNotFound)
	}
}

func parseReportOptions(r *http.Request) (insightssvc.ReportOptions, error) {
	opts := insightssvc.ReportOptions{
		Window:       defaultWindow,
		Relationship: domain.RelationshipCouple,
	}

	if raw := r.URL.Query().Get("window"); raw != "" {
		window := domain.Window(raw)
		if !window.Valid() {
			return opts, errBadParam("window", raw)
		}
		opts.Window = window
	}

	if raw := r.URL.Query().Get("relationship"); raw != "" {
		switch domain.RelationshipType(raw) {
		case domain.RelationshipCouple, domain.RelationshipCoParent:
			opts.Relationship = domain.RelationshipType(raw)
		default:
			return opts, errBadParam("relationship", raw)
		}
	}

	if raw := r.URL.Query().Get("compatibility"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, errBadParam("compatibility", raw)
		}
		opts.Compatibility = &score
	}

	return opts, nil
}

type badParamError struct {
	name, value string
}

func (e badParamError) Error() string {
	return "invalid " + e.name + " parameter: " + e.value
}

func errBadParam(name, value string) error {
	return badParamError{name: name, value: value}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
