package field

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
}

func Summarize(samples []float64) (Summary, error) {
	data := stats.Float64Data(samples)
	out := Summary{Count: len(samples)}
	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, fmt.Errorf("min: %w", err)
	}
	if out.Max, err = data.Max(); err != nil {
		return out, fmt.Errorf("max: %w", err)
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, fmt.Errorf("mean: %w", err)
	}
	if out.StdDev, err = data.StandardDeviation(); err != nil {
		return out, fmt.Errorf("stddev: %w", err)
	}
	if out.Median, err = data.Median(); err != nil {
		return out, fmt.Errorf("median: %w", err)
	}
	if out.P95, err = data.Percentile(95); err != nil {
		return out, fmt.Errorf("p95: %w", err)
	}
	return out, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.6f max=%.6f mean=%.6f stddev=%.6f median=%.6f p95=%.6f",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.P95)
}
