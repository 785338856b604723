// journal/summary.go
package journal

// Summary is the whole-collection statistics block the dashboard shows.
type Summary struct {
	TotalPnL     float64
	WinningCount int
	TotalCount   int
	WinRate      float64 // percent of trades with strictly positive result
	AvgPnL       float64
}

// Summarize computes summary statistics over a trade collection. An empty
// collection yields all zeros rather than a division error. A zero-result
// trade is not a win; it lowers the win rate through the denominator only.
func Summarize(trades []Trade) Summary {
	s := Summary{TotalCount: len(trades)}
	for _, t := range trades {
		s.TotalPnL += t.Result
		if t.Result > 0 {
			s.WinningCount++
		}
	}
	if s.TotalCount > 0 {
		s.WinRate = float64(s.WinningCount) / float64(s.TotalCount) * 100
		s.AvgPnL = s.TotalPnL / float64(s.TotalCount)
	}
	return s
}

// LossReport describes the losing side of a collection.
type LossReport struct {
	Count   int
	AvgLoss float64 // mean of the negative results, itself negative
}

// AnalyzeLosses restricts the collection to trades with a strictly
// negative result. The second return is false when there are no losing
// trades; AvgLoss is undefined in that case and must not be formatted.
func AnalyzeLosses(trades []Trade) (LossReport, bool) {
	var r LossReport
	var sum float64
	for _, t := range trades {
		if t.Result < 0 {
			r.Count++
			sum += t.Result
		}
	}
	if r.Count == 0 {
		return LossReport{}, false
	}
	r.AvgLoss = sum / float64(r.Count)
	return r, true
}
