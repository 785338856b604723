// journal/filter.go
package journal

// ResultFilter selects trades by the sign of their result. Profit means a
// strictly positive result; any other non-empty value matches results at
// or below zero.
type ResultFilter string

const (
	AnyResult ResultFilter = ""
	Profit    ResultFilter = "profit"
	Loss      ResultFilter = "loss"
)

// Filter is the logical AND of its non-zero fields. A zero field matches
// every trade.
type Filter struct {
	Asset  string
	Type   TradeType
	Result ResultFilter
	Date   string
}

// Apply returns the trades satisfying every supplied predicate, most
// recently added first. The ordering is a reversal of insertion position,
// not a sort: trades entered with out-of-order dates stay out of
// chronological order.
func (f Filter) Apply(trades []Trade) []Trade {
	out := make([]Trade, 0, len(trades))
	for i := len(trades) - 1; i >= 0; i-- {
		if f.match(trades[i]) {
			out = append(out, trades[i])
		}
	}
	return out
}

func (f Filter) match(t Trade) bool {
	if f.Asset != "" && t.Asset != f.Asset {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	switch {
	case f.Result == AnyResult:
	case f.Result == Profit:
		if t.Result <= 0 {
			return false
		}
	default:
		if t.Result > 0 {
			return false
		}
	}
	if f.Date != "" && t.Date != f.Date {
		return false
	}
	return true
}
