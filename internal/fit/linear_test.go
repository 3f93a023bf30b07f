package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsviz/downsample/series"
)

func TestStdErr_PerfectLine(t *testing.T) {
	pts := series.Series{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}}
	require.Zero(t, StdErr(pts))
}

func TestStdErr_KnownValues(t *testing.T) {
	// x=[0,1,2], y=[0,1,0]: slope 0, residual SS 2/3, se = sqrt(1/3).
	pts := series.Series{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	require.InDelta(t, math.Sqrt(1.0/3.0), StdErr(pts), 1e-12)

	// x=[0,1,2,3], y=[0,1,1,2]: residual SS 0.2, se = sqrt(0.02).
	pts = series.Series{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}}
	require.InDelta(t, math.Sqrt(0.02), StdErr(pts), 1e-12)
}

// Degenerate windows score 0 so they sort as perfectly linear: merge
// candidates, never split winners.
func TestStdErr_DegenerateWindow(t *testing.T) {
	require.Zero(t, StdErr(nil))
	require.Zero(t, StdErr(series.Series{{X: 1, Y: 2}}))
	require.Zero(t, StdErr(series.Series{{X: 1, Y: 2}, {X: 2, Y: 5}}))

	// Zero x-variance: all points share one x value.
	samex := series.Series{{X: 3, Y: 0}, {X: 3, Y: 5}, {X: 3, Y: -5}}
	require.Zero(t, StdErr(samex))
}

func TestStdErr_NonLinearScoresHigher(t *testing.T) {
	gentle := series.Series{{X: 0, Y: 0}, {X: 1, Y: 1.1}, {X: 2, Y: 1.9}, {X: 3, Y: 3}}
	jagged := series.Series{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: -5}, {X: 3, Y: 4}}

	require.Greater(t, StdErr(jagged), StdErr(gentle))
}
