package cashflow

import (
	"math"
	"time"
)

// fallbackTickBase is the tick step used when every bar and balance is zero.
const fallbackTickBase = 100

// maxAxisLabels caps how many x-axis labels render for short-period charts.
const maxAxisLabels = 12

// tickLadder holds the thresholds the tick step escalates through as the
// maximum plotted value grows.
var tickLadder = []float64{50, 100, 200, 1000, 2000, 5000, 10000, 50000, 100000}

// AxisConfig carries chart tick placement derived from the plotted data.
type AxisConfig struct {
	TickStep      float64   `json:"tickStep"`
	MaxValue      float64   `json:"maxValue"`
	Ticks         []float64 `json:"ticks"`
	LabelInterval int       `json:"labelInterval"`
}

// CalculateAxisConfig derives tick placement from the data points and the
// visible range. The step is picked from a fixed ladder of thresholds, the
// maximum plotted value is rounded up to a step multiple and ticks run
// symmetrically from -max to +max. Month-bucketed ranges label every point;
// shorter periods skip labels so no more than about twelve render.
func CalculateAxisConfig(points []DataPoint, rangeStart, rangeEnd time.Time) AxisConfig {
	maxValue := 0.0
	for i := range points {
		p := &points[i]
		for _, v := range []float64{p.ActualIncome, p.ExpectedIncome, p.ActualExpenses, p.ExpectedExpenses, p.Balance} {
			if abs := math.Abs(v); abs > maxValue {
				maxValue = abs
			}
		}
	}

	config := AxisConfig{
		LabelInterval: labelInterval(len(points), rangeStart, rangeEnd),
	}

	if maxValue == 0 {
		config.TickStep = fallbackTickBase
		config.Ticks = []float64{0}
		return config
	}

	config.TickStep = tickStep(maxValue)
	config.MaxValue = math.Ceil(maxValue/config.TickStep) * config.TickStep

	for tick := -config.MaxValue; tick <= config.MaxValue; tick += config.TickStep {
		config.Ticks = append(config.Ticks, tick)
	}

	return config
}

// tickStep picks the first ladder threshold the value does not exceed.
func tickStep(maxValue float64) float64 {
	for _, threshold := range tickLadder {
		if maxValue <= threshold {
			return threshold
		}
	}
	return tickLadder[len(tickLadder)-1]
}

func labelInterval(pointCount int, rangeStart, rangeEnd time.Time) int {
	if pointCount == 0 {
		return 1
	}
	if selectPeriodKind(rangeStart, rangeEnd) == periodMonth {
		return 1
	}
	interval := (pointCount + maxAxisLabels - 1) / maxAxisLabels
	if interval < 1 {
		interval = 1
	}
	return interval
}
