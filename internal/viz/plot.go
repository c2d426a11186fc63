package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/metrics"
	"github.com/san-kum/ringsim/internal/sim"
)

// PlotDensity plots one density vector against site index.
func PlotDensity(p dynamo.State, caption string, width, height int) string {
	if len(p) == 0 {
		return ""
	}
	return asciigraph.Plot(p,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotEvolution overlays the first, middle and last snapshot of a run.
func PlotEvolution(r *sim.Result, width, height int) string {
	n := len(r.Densities)
	if n == 0 {
		return ""
	}
	if n == 1 {
		return PlotDensity(r.Densities[0], fmt.Sprintf("t=%.4g", r.Times[0]), width, height)
	}

	picks := []int{0, n / 2, n - 1}
	if n == 2 {
		picks = []int{0, 1}
	}
	series := make([][]float64, 0, len(picks))
	caption := ""
	for i, k := range picks {
		series = append(series, r.Densities[k])
		if i > 0 {
			caption += "  "
		}
		caption += fmt.Sprintf("t=%.4g", r.Times[k])
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Yellow, asciigraph.Green),
		asciigraph.Caption(caption+" (red, yellow, green)"),
	)
}

// PlotSpread plots the density spread at every snapshot of a run.
func PlotSpread(r *sim.Result, width, height int) string {
	if len(r.Densities) < 2 {
		return ""
	}
	values := make([]float64, len(r.Densities))
	for i, p := range r.Densities {
		values[i] = metrics.SpreadOf(p)
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("spread (sites) per snapshot"),
	)
}

// PlotValues plots an arbitrary series.
func PlotValues(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
