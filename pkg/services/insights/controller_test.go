package insights

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	"github.com/unsaid-tools/tone-atlas/pkg/models/store"
)

type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) Add(ctx context.Context, profile string, records []store.AnalysisRecord) error {
	args := m.Called(ctx, profile, records)
	return args.Error(0)
}

func (m *mockRecordStore) GetRecords(ctx context.Context) ([]store.AnalysisRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.AnalysisRecord), args.Error(1)
}

func (m *mockRecordStore) GetStats(ctx context.Context) (*store.RecordStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.RecordStats), args.Error(1)
}

func TestNewController_Validation(t *testing.T) {
	_, err := NewController(nil, nil)
	assert.Error(t, err)
}

func TestController_GetReport(t *testing.T) {
	recordStore := new(mockRecordStore)
	recordStore.On("GetRecords", mock.Anything).Return([]store.AnalysisRecord{
		{ID: "r1", Timestamp: "2024-01-15T10:00:00Z", ToneStatus: "alert", OriginalText: "pay the rent"},
		{ID: "r2", Timestamp: "2024-01-15T11:00:00Z", ToneStatus: "neutral", OriginalText: "I'm sorry"},
	}, nil)

	ctrl, err := NewController(recordStore, func() time.Time { return fixedNow })
	require.NoError(t, err)

	report, err := ctrl.GetReport(context.Background(), ReportOptions{Window: domain.WindowWeek})
	require.NoError(t, err)

	assert.Equal(t, domain.WindowWeek, report.Window)
	assert.Equal(t, fixedNow, report.GeneratedAt)
	assert.Equal(t, 2, report.RecordCount)
	assert.Equal(t, 1.0, report.Repair.Rate)
	assert.Equal(t, []domain.TopicCount{{Topic: "Money", Count: 1}}, report.Topics.Topics)

	recordStore.AssertExpectations(t)
}

func TestController_GetReport_InvalidWindow(t *testing.T) {
	ctrl, err := NewController(new(mockRecordStore), nil)
	require.NoError(t, err)

	_, err = ctrl.GetReport(context.Background(), ReportOptions{Window: "fortnight"})
	assert.Error(t, err)
}

func TestController_GetReport_StoreError(t *testing.T) {
	recordStore := new(mockRecordStore)
	recordStore.On("GetRecords", mock.Anything).Return(nil, fmt.Errorf("disk on fire"))

	ctrl, err := NewController(recordStore, nil)
	require.NoError(t, err)

	_, err = ctrl.GetReport(context.Background(), ReportOptions{Window: domain.WindowWeek})
	assert.ErrorContains(t, err, "fetch snapshot")
}

func TestController_GetStats(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recordStore := new(mockRecordStore)
	recordStore.On("GetStats", mock.Anything).Return(&store.RecordStats{
		RecordsCount:    42,
		FirstRecordTime: &first,
	}, nil)

	ctrl, err := NewController(recordStore, nil)
	require.NoError(t, err)

	stats, err := ctrl.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.RecordsCount)
	assert.Equal(t, &first, stats.FirstRecordTime)
}
