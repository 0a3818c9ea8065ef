package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

var hundred = decimal.NewFromInt(100)

// round2 moves an exact accumulation to the 2-decimal presentation boundary.
// Nothing inside the engine rounds before this point.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func roundFloat2(v float64) float64 {
	return math.Round(v*100) / 100
}

// share returns part/whole*100 rounded to 2 decimals, 0 when whole is zero.
func share(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return round2(part.Mul(hundred).Div(whole))
}

// average returns total/count rounded to 2 decimals, 0 when count is zero.
func average(total decimal.Decimal, count int) float64 {
	if count == 0 {
		return 0
	}
	return round2(total.Div(decimal.NewFromInt(int64(count))))
}

// orderCost is the cost-of-goods of one order at the item snapshots.
func orderCost(o order.Order) decimal.Decimal {
	cost := decimal.Zero
	for _, item := range o.Items {
		cost = cost.Add(item.MenuItem.Cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return cost
}
