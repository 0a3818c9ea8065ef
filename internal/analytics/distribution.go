package analytics

import (
	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

// ChannelDistribution is one channel's share of the order collection.
// Percentages are rounded independently per channel; their sum may miss
// 100.00 by rounding error and is deliberately not renormalized, so each
// figure stays independently auditable.
type ChannelDistribution struct {
	Channel           order.Channel `json:"channel"`
	Sales             float64       `json:"sales"`
	Orders            int           `json:"orders"`
	Percentage        float64       `json:"percentage"`
	AverageOrderValue float64       `json:"averageOrderValue"`
}

// ByChannel segments orders by channel, emitting entries in the fixed
// enumeration order and omitting channels without orders.
func ByChannel(orders []order.Order) []ChannelDistribution {
	type channelAcc struct {
		sales  decimal.Decimal
		orders int
	}

	totalSales := decimal.Zero
	accs := make(map[order.Channel]*channelAcc, 4)
	for _, o := range orders {
		acc := accs[o.Channel]
		if acc == nil {
			acc = &channelAcc{}
			accs[o.Channel] = acc
		}
		acc.sales = acc.sales.Add(o.TotalAmount)
		acc.orders++
		totalSales = totalSales.Add(o.TotalAmount)
	}

	out := make([]ChannelDistribution, 0, len(accs))
	for _, ch := range order.Channels() {
		acc := accs[ch]
		if acc == nil || acc.orders == 0 {
			continue
		}
		out = append(out, ChannelDistribution{
			Channel:           ch,
			Sales:             round2(acc.sales),
			Orders:            acc.orders,
			Percentage:        share(acc.sales, totalSales),
			AverageOrderValue: average(acc.sales, acc.orders),
		})
	}
	return out
}
