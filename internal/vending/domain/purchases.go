package domain

import (
	"math"
	"time"
)

// Receipt is returned by a successful purchase. Change breaks down the buyer's
// whole remaining deposit, not only what is left over from this purchase.
type Receipt struct {
	TotalSpent       int64   `json:"totalSpent"`
	ProductPurchased string  `json:"productPurchased"`
	Change           []int64 `json:"change"`
}

// TotalCost returns amount*cost, or false when the product overflows int64.
func TotalCost(amount, cost int64) (int64, bool) {
	if amount < 0 || cost < 0 {
		return 0, false
	}
	if cost != 0 && amount > math.MaxInt64/cost {
		return 0, false
	}

	return amount * cost, true
}

// PurchaseObserver receives the outcome and latency of every purchase attempt.
type PurchaseObserver interface {
	ObservePurchase(outcome string, elapsed time.Duration)
}
