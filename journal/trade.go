// journal/trade.go
package journal

import "time"

// TradeType is the direction of a position.
type TradeType string

const (
	Buy  TradeType = "buy"
	Sell TradeType = "sell"
)

func (t TradeType) Valid() bool {
	return t == Buy || t == Sell
}

// ExitReason is the categorical tag for why a position was closed. The
// string values are the same short codes the stored JSON uses, so existing
// journals decode without migration.
type ExitReason string

const (
	StopLoss     ExitReason = "SL"
	TakeProfit   ExitReason = "TP"
	PartialClose ExitReason = "PK"
	BreakEven    ExitReason = "BE"
	Manual       ExitReason = "manual"
	Other        ExitReason = "other"
)

// Index returns the fixed scatter-axis position for the reason. Unset and
// unknown reasons land on Other.
func (r ExitReason) Index() int {
	switch r {
	case StopLoss:
		return 0
	case TakeProfit:
		return 1
	case PartialClose:
		return 2
	case BreakEven:
		return 3
	case Manual:
		return 4
	default:
		return 5
	}
}

// Trade is one completed buy/sell position. Records are immutable once
// added to a Book; the only mutation is deletion by id.
//
// Date is a plain YYYY-MM-DD calendar date and EntryTime/ExitTime are HH:MM
// clock strings, both kept as entered. The grouping key functions tolerate
// malformed values instead of rejecting them; validation belongs to the
// input-collecting shell, not here.
type Trade struct {
	ID              int64      `json:"id"`
	Date            string     `json:"date"`
	Asset           string     `json:"asset"`
	Type            TradeType  `json:"type"`
	LotSize         float64    `json:"lotSize"`
	EntryTime       string     `json:"entryTime"`
	ExitTime        string     `json:"exitTime"`
	EntryPrice      float64    `json:"entryPrice"`
	ExitPrice       float64    `json:"exitPrice"`
	ExitReason      ExitReason `json:"exitReason"`
	EntryReason     string     `json:"entryReason,omitempty"`
	Comment         string     `json:"comment,omitempty"`
	EntryScreenshot string     `json:"entryScreenshot,omitempty"`
	ExitScreenshot  string     `json:"exitScreenshot,omitempty"`
	Result          float64    `json:"result"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ComputeResult returns the signed P/L for a trade: the favorable price
// move times lot size. Sells profit when price falls. The function is pure
// and does not validate its inputs; a zero lot or equal prices simply give
// a zero result.
func ComputeResult(t Trade) float64 {
	diff := t.ExitPrice - t.EntryPrice
	if t.Type != Buy {
		diff = -diff
	}
	return diff * t.LotSize
}
