package domain

// BacktestFile is a decoded backtest result document.
type BacktestFile struct {
	Version Value // any JSON value, zero when absent
	From    Value
	To      Value
	Events  []*TradeEvent
}

// Group identifiers for the buyNow partition.
const (
	GroupBuyNow = "buy_now"
	GroupOther  = "other"
)
