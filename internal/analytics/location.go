package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

// LocationPerformance is one location's rollup, including the channel that
// drives most of its orders.
type LocationPerformance struct {
	LocationID        string        `json:"locationId"`
	LocationName      string        `json:"locationName"`
	Sales             float64       `json:"sales"`
	Orders            int           `json:"orders"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	Profit            float64       `json:"profit"`
	ProfitMargin      float64       `json:"profitMargin"`
	TopChannel        order.Channel `json:"topChannel"`
}

type locationAcc struct {
	id            string
	name          string
	sales         decimal.Decimal
	cost          decimal.Decimal
	orders        int
	channelOrders map[order.Channel]int
}

// ByLocation rolls orders up per location, sorted descending by sales.
// TopChannel ties break by the fixed channel enumeration order.
func ByLocation(orders []order.Order) []LocationPerformance {
	index := make(map[string]*locationAcc)
	accs := make([]*locationAcc, 0)

	for _, o := range orders {
		acc := index[o.LocationID]
		if acc == nil {
			acc = &locationAcc{
				id:            o.LocationID,
				name:          o.LocationName,
				channelOrders: make(map[order.Channel]int, 4),
			}
			index[o.LocationID] = acc
			accs = append(accs, acc)
		}
		acc.sales = acc.sales.Add(o.TotalAmount)
		acc.cost = acc.cost.Add(orderCost(o))
		acc.orders++
		acc.channelOrders[o.Channel]++
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].sales.GreaterThan(accs[j].sales)
	})

	out := make([]LocationPerformance, 0, len(accs))
	for _, acc := range accs {
		profit := acc.sales.Sub(acc.cost)
		out = append(out, LocationPerformance{
			LocationID:        acc.id,
			LocationName:      acc.name,
			Sales:             round2(acc.sales),
			Orders:            acc.orders,
			AverageOrderValue: average(acc.sales, acc.orders),
			Profit:            round2(profit),
			ProfitMargin:      share(profit, acc.sales),
			TopChannel:        topChannel(acc.channelOrders),
		})
	}
	return out
}

func topChannel(counts map[order.Channel]int) order.Channel {
	best := order.Channel("")
	bestCount := 0
	for _, ch := range order.Channels() {
		if counts[ch] > bestCount {
			best = ch
			bestCount = counts[ch]
		}
	}
	return best
}
