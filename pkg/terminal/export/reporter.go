package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  28,
		ValueWidth: 44,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report domain.InsightsReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v*100)
		},
	}

	tmpl := `
Insights Report ({{.Window}} window, generated {{.GeneratedAt.Format "2006-01-02 15:04"}})
Records in window: {{.RecordCount}}

{{separator}}
{{formatRow "Secure streak" (printf "%d days" .Streak.Days)}}
{{formatRow "Repair rate" (percent .Repair.Rate)}}
{{formatRow "Ruptures (7d)" .Repair.RuptureCount}}
{{formatRow "Repaired" .Repair.RepairedCount}}
{{formatRow "Overall health" (percent .Health.Overall)}}
{{formatRow "Communication" (percent .Health.Communication)}}
{{formatRow "Emotional support" (percent .Health.EmotionalSupport)}}
{{formatRow "Connection" (percent .Health.Connection)}}
{{separator}}
{{if .Heatmap.Insight}}
{{.Heatmap.Insight}}
{{end}}{{if .Topics.Topics}}
Trigger topics:
{{range .Topics.Topics}}  {{.Topic}}: {{.Count}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
