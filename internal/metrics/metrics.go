// Package metrics summarizes density vectors observed during a run.
package metrics

import "github.com/san-kum/ringsim/internal/dynamo"

// Default returns the metric set every run reports.
func Default() []dynamo.Metric {
	return []dynamo.Metric{
		NewMassDrift(),
		NewBoundedness(0, 1),
		NewSpread(),
		NewPeak(),
	}
}
