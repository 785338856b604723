package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySeries(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-01-22", Result: 4},  // week of 2024-01-21
		{Date: "2024-01-15", Result: 2},  // week of 2024-01-14
		{Date: "2024-01-16", Result: -1}, // week of 2024-01-14
	}

	series := WeeklySeries(trades)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-14", series[0].Label)
	assert.InDelta(t, 1.0, series[0].Value, 1e-9)
	assert.Equal(t, "2024-01-21", series[1].Label)
	assert.InDelta(t, 4.0, series[1].Value, 1e-9)
}

func TestWeeklySeriesLabelsMonotonic(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-03-20", Result: 1},
		{Date: "2024-01-02", Result: 1},
		{Date: "2024-02-11", Result: 1},
		{Date: "2024-01-30", Result: 1},
	}

	series := WeeklySeries(trades)
	for i := 1; i < len(series); i++ {
		assert.LessOrEqual(t, series[i-1].Label, series[i].Label)
	}
}

func TestMonthlySeries(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-02-10", Result: -2},
		{Date: "2024-01-15", Result: 3},
		{Date: "2024-01-20", Result: 1},
	}

	series := MonthlySeries(trades)

	require.Len(t, series, 2)
	assert.Equal(t, "01/2024", series[0].Label)
	assert.InDelta(t, 4.0, series[0].Value, 1e-9)
	assert.Equal(t, "02/2024", series[1].Label)
	assert.InDelta(t, -2.0, series[1].Value, 1e-9)
}

func TestSplitWinLoss(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Result: 3},
		{Result: -2},
		{Result: 0}, // zero counts as a loss in the split
	}

	s := SplitWinLoss(trades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 2, s.Losses)

	empty := SplitWinLoss(nil)
	assert.Equal(t, 0, empty.Wins)
	assert.Equal(t, 0, empty.Losses)
}

func TestExitScatter(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{EntryTime: "09:30", ExitReason: TakeProfit},
		{EntryTime: "14:20", ExitReason: StopLoss},
		{EntryTime: "16:00", ExitReason: ""}, // unset joins Other
	}

	series := ExitScatter(trades)
	require.Len(t, series, 6)

	assert.Equal(t, StopLoss, series[0].Reason)
	require.Len(t, series[0].Points, 1)
	assert.Equal(t, ScatterPoint{Hour: 14, Reason: 0}, series[0].Points[0])

	assert.Equal(t, TakeProfit, series[1].Reason)
	require.Len(t, series[1].Points, 1)
	assert.Equal(t, ScatterPoint{Hour: 9, Reason: 1}, series[1].Points[0])

	assert.Equal(t, Other, series[5].Reason)
	require.Len(t, series[5].Points, 1)
	assert.Equal(t, ScatterPoint{Hour: 16, Reason: 5}, series[5].Points[0])

	assert.Empty(t, series[2].Points)
	assert.Empty(t, series[3].Points)
	assert.Empty(t, series[4].Points)
}

func TestBuildCharts(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-01-15", EntryTime: "09:30", ExitReason: TakeProfit, Result: 2},
	}

	c := BuildCharts(trades)

	assert.Len(t, c.Weekly, 1)
	assert.Len(t, c.Monthly, 1)
	assert.Equal(t, 1, c.Split.Wins)
	assert.Len(t, c.Scatter, 6)
}

func TestBuildChartsEmpty(t *testing.T) {
	t.Parallel()

	c := BuildCharts(nil)

	assert.Empty(t, c.Weekly)
	assert.Empty(t, c.Monthly)
	assert.Equal(t, WinLossSplit{}, c.Split)
	require.Len(t, c.Scatter, 6)
	for _, s := range c.Scatter {
		assert.Empty(t, s.Points)
	}
}
