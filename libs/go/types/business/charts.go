package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSample is the projected balance at one instant of a sampled series
type BalanceSample struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
