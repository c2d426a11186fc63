package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ringsim/internal/sim"
)

// Param is one labelled line in a summary panel.
type Param struct {
	Label string
	Value string
}

// Summary renders the run header, params and metrics as a bordered panel.
func Summary(r *sim.Result, params []Param) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(fmt.Sprintf("%s on %d sites", r.System, r.Sites)))
	sb.WriteString("\n\n")

	for _, p := range params {
		sb.WriteString(line(p.Label, p.Value))
	}
	sb.WriteString(line("steps", fmt.Sprintf("%d", r.StepsTaken)))
	sb.WriteString(line("snapshots", fmt.Sprintf("%d", len(r.Densities))))

	if len(r.Metrics) > 0 {
		sb.WriteString("\n")
		names := make([]string, 0, len(r.Metrics))
		for name := range r.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(line(name, fmt.Sprintf("%.6g", r.Metrics[name])))
		}
	}

	for _, err := range r.Errors {
		sb.WriteString("\n" + StatusError.Render(err.Error()))
	}

	return Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

func line(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, MetricLabel.Render(label), MetricValue.Render(value)) + "\n"
}
