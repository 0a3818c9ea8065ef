package analytics

import (
	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

// SalesMetrics are the scalar aggregates of one order collection. Monetary
// fields are rounded to 2 decimals at this boundary only.
type SalesMetrics struct {
	TotalSales        float64 `json:"totalSales"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalItems        int     `json:"totalItems"`
	TotalTax          float64 `json:"totalTax"`
	TotalDiscounts    float64 `json:"totalDiscounts"`
	TotalTips         float64 `json:"totalTips"`
	TotalDeliveryFees float64 `json:"totalDeliveryFees"`
	GrossProfit       float64 `json:"grossProfit"`
	ProfitMargin      float64 `json:"profitMargin"`
}

// GrowthMetrics are relative percentage changes between a current period and
// the immediately preceding equal-length period.
type GrowthMetrics struct {
	SalesGrowth float64 `json:"salesGrowth"`
	OrderGrowth float64 `json:"orderGrowth"`
	AOVGrowth   float64 `json:"aovGrowth"`
	PeriodLabel string  `json:"periodLabel"`
}

// Compute reduces orders to scalar aggregates. The empty collection yields
// all-zero metrics; averages and margins fall back to 0 on a zero
// denominator.
func Compute(orders []order.Order) SalesMetrics {
	var totalSales, totalTax, totalDiscounts, totalTips, totalFees, totalCost decimal.Decimal
	totalItems := 0

	for _, o := range orders {
		totalSales = totalSales.Add(o.TotalAmount)
		totalTax = totalTax.Add(o.TaxAmount)
		totalDiscounts = totalDiscounts.Add(o.DiscountAmount)
		totalTips = totalTips.Add(o.TipAmount)
		totalFees = totalFees.Add(o.DeliveryFee)
		totalCost = totalCost.Add(orderCost(o))
		for _, item := range o.Items {
			totalItems += item.Quantity
		}
	}

	grossProfit := totalSales.Sub(totalCost)
	return SalesMetrics{
		TotalSales:        round2(totalSales),
		TotalOrders:       len(orders),
		AverageOrderValue: average(totalSales, len(orders)),
		TotalItems:        totalItems,
		TotalTax:          round2(totalTax),
		TotalDiscounts:    round2(totalDiscounts),
		TotalTips:         round2(totalTips),
		TotalDeliveryFees: round2(totalFees),
		GrossProfit:       round2(grossProfit),
		ProfitMargin:      share(grossProfit, totalSales),
	}
}

// Compare runs Compute over both periods and derives percentage changes.
// A zero previous value yields 0 growth, never an infinity: a flat-zero
// baseline means no measurable growth.
func Compare(current, previous []order.Order, label string) GrowthMetrics {
	curr := Compute(current)
	prev := Compute(previous)
	return GrowthMetrics{
		SalesGrowth: growthRate(curr.TotalSales, prev.TotalSales),
		OrderGrowth: growthRate(float64(curr.TotalOrders), float64(prev.TotalOrders)),
		AOVGrowth:   growthRate(curr.AverageOrderValue, prev.AverageOrderValue),
		PeriodLabel: label,
	}
}

func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return roundFloat2((current - previous) / previous * 100)
}
