package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

// TopPerformingItem is one row of the menu-item revenue ranking.
type TopPerformingItem struct {
	Rank          int     `json:"rank"`
	MenuItemID    string  `json:"menuItemId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalSales    float64 `json:"totalSales"`
	TotalQuantity int     `json:"totalQuantity"`
	OrderCount    int     `json:"orderCount"`
	AveragePrice  float64 `json:"averagePrice"`
	TotalProfit   float64 `json:"totalProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
}

type itemAcc struct {
	id         string
	name       string
	category   string
	sales      decimal.Decimal
	profit     decimal.Decimal
	quantity   int
	orderCount int
}

// TopItems aggregates order items by menu item and returns the top rows by
// revenue. The sort is stable: items with equal revenue keep their
// first-encountered order, so the ranking is deterministic for a given input
// sequence. Ranks are dense and 1-based. A non-positive limit returns the
// full ranking.
func TopItems(orders []order.Order, limit int) []TopPerformingItem {
	index := make(map[string]*itemAcc)
	accs := make([]*itemAcc, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			acc := index[item.MenuItemID]
			if acc == nil {
				acc = &itemAcc{
					id:       item.MenuItemID,
					name:     item.MenuItem.Name,
					category: item.MenuItem.Category,
				}
				index[item.MenuItemID] = acc
				accs = append(accs, acc)
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			acc.sales = acc.sales.Add(item.Subtotal)
			acc.profit = acc.profit.Add(item.MenuItem.Profit.Mul(qty))
			acc.quantity += item.Quantity
			acc.orderCount++
		}
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].sales.GreaterThan(accs[j].sales)
	})
	if limit > 0 && len(accs) > limit {
		accs = accs[:limit]
	}

	out := make([]TopPerformingItem, 0, len(accs))
	for i, acc := range accs {
		avgPrice := 0.0
		if acc.quantity > 0 {
			avgPrice = round2(acc.sales.Div(decimal.NewFromInt(int64(acc.quantity))))
		}
		out = append(out, TopPerformingItem{
			Rank:          i + 1,
			MenuItemID:    acc.id,
			Name:          acc.name,
			Category:      acc.category,
			TotalSales:    round2(acc.sales),
			TotalQuantity: acc.quantity,
			OrderCount:    acc.orderCount,
			AveragePrice:  avgPrice,
			TotalProfit:   round2(acc.profit),
			ProfitMargin:  share(acc.profit, acc.sales),
		})
	}
	return out
}
