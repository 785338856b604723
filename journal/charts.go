// journal/charts.go
package journal

import (
	"sort"
	"strings"
)

// SeriesPoint is one x/y pair of a chart-ready time series. Labels are raw
// bucket keys; locale formatting belongs to the rendering layer.
type SeriesPoint struct {
	Label string
	Value float64
}

// WinLossSplit feeds the win/loss doughnut. Zero-result trades count on
// the loss side here, unlike Summary.WinningCount which merely excludes
// them from the numerator.
type WinLossSplit struct {
	Wins   int
	Losses int
}

// ScatterPoint is one entry-hour observation: x is the hour of entry, y is
// the exit reason's fixed axis index.
type ScatterPoint struct {
	Hour   int
	Reason int
}

// ScatterSeries holds the points of a single exit reason.
type ScatterSeries struct {
	Reason ExitReason
	Points []ScatterPoint
}

// ChartData bundles every dataset the charting collaborator consumes.
type ChartData struct {
	Weekly  []SeriesPoint
	Monthly []SeriesPoint
	Split   WinLossSplit
	Scatter []ScatterSeries
}

// BuildCharts derives all chart datasets from one trade collection.
func BuildCharts(trades []Trade) ChartData {
	return ChartData{
		Weekly:  WeeklySeries(trades),
		Monthly: MonthlySeries(trades),
		Split:   SplitWinLoss(trades),
		Scatter: ExitScatter(trades),
	}
}

// WeeklySeries sums results per week, ordered by week-start date so the
// chart's x axis is monotonic. The label is the week-start date itself.
func WeeklySeries(trades []Trade) []SeriesPoint {
	groups := GroupAndSum(trades, ByWeek)
	series := make([]SeriesPoint, 0, len(groups))
	for _, k := range sortedKeys(groups) {
		series = append(series, SeriesPoint{Label: k, Value: groups[k].Sum})
	}
	return series
}

// MonthlySeries sums results per calendar month, ordered by month. Labels
// render the YYYY-MM bucket key as MM/YYYY.
func MonthlySeries(trades []Trade) []SeriesPoint {
	groups := GroupAndSum(trades, ByMonth)
	series := make([]SeriesPoint, 0, len(groups))
	for _, k := range sortedKeys(groups) {
		series = append(series, SeriesPoint{Label: monthLabel(k), Value: groups[k].Sum})
	}
	return series
}

func monthLabel(key string) string {
	year, month, ok := strings.Cut(key, "-")
	if !ok {
		return key
	}
	return month + "/" + year
}

// SplitWinLoss counts strictly positive results against the rest.
func SplitWinLoss(trades []Trade) WinLossSplit {
	var s WinLossSplit
	for _, t := range trades {
		if t.Result > 0 {
			s.Wins++
		} else {
			s.Losses++
		}
	}
	return s
}

var scatterReasons = [...]ExitReason{StopLoss, TakeProfit, PartialClose, BreakEven, Manual, Other}

// ExitScatter produces one series per exit reason, plotting each trade's
// entry hour against the reason's fixed index. Trades with an unset or
// unrecognised reason join the Other series.
func ExitScatter(trades []Trade) []ScatterSeries {
	series := make([]ScatterSeries, len(scatterReasons))
	for i, r := range scatterReasons {
		series[i].Reason = r
	}
	for _, t := range trades {
		idx := t.ExitReason.Index()
		series[idx].Points = append(series[idx].Points, ScatterPoint{
			Hour:   ByEntryHour(t),
			Reason: idx,
		})
	}
	return series
}

func sortedKeys(groups map[string]Bucket) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
