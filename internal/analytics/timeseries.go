package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

// DailySalesData is one calendar-day bucket. Only dates with at least one
// order appear; gaps are not synthesized.
type DailySalesData struct {
	Date              string  `json:"date"`
	Sales             float64 `json:"sales"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profitMargin"`
	DayOfWeek         string  `json:"dayOfWeek"`
	IsWeekend         bool    `json:"isWeekend"`
}

// HourlySalesData is one hour-of-day bucket aggregated across all dates in
// the input, a cross-date histogram rather than a per-date series.
type HourlySalesData struct {
	Hour              int     `json:"hour"`
	HourLabel         string  `json:"hourLabel"`
	Sales             float64 `json:"sales"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profitMargin"`
}

type bucketAcc struct {
	sales   decimal.Decimal
	cost    decimal.Decimal
	orders  int
	weekday time.Weekday
}

// BucketDaily groups orders into calendar-day buckets, sorted ascending by
// date. Calendar dates come from the given reporting timezone, never the
// host-local zone.
func BucketDaily(orders []order.Order, loc *time.Location) []DailySalesData {
	buckets := make(map[string]*bucketAcc)
	for _, o := range orders {
		local := o.CreatedAt.In(loc)
		key := local.Format("2006-01-02")
		acc := buckets[key]
		if acc == nil {
			acc = &bucketAcc{weekday: local.Weekday()}
			buckets[key] = acc
		}
		acc.sales = acc.sales.Add(o.TotalAmount)
		acc.cost = acc.cost.Add(orderCost(o))
		acc.orders++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]DailySalesData, 0, len(keys))
	for _, key := range keys {
		acc := buckets[key]
		profit := acc.sales.Sub(acc.cost)
		out = append(out, DailySalesData{
			Date:              key,
			Sales:             round2(acc.sales),
			Orders:            acc.orders,
			AverageOrderValue: average(acc.sales, acc.orders),
			Profit:            round2(profit),
			ProfitMargin:      share(profit, acc.sales),
			DayOfWeek:         acc.weekday.String(),
			IsWeekend:         acc.weekday == time.Saturday || acc.weekday == time.Sunday,
		})
	}
	return out
}

// BucketHourly builds the hour-of-day histogram. Only hours 0-23 with at
// least one order appear, in ascending hour order.
func BucketHourly(orders []order.Order, loc *time.Location) []HourlySalesData {
	var buckets [24]bucketAcc
	for _, o := range orders {
		hour := o.CreatedAt.In(loc).Hour()
		buckets[hour].sales = buckets[hour].sales.Add(o.TotalAmount)
		buckets[hour].cost = buckets[hour].cost.Add(orderCost(o))
		buckets[hour].orders++
	}

	out := make([]HourlySalesData, 0, 24)
	for hour, acc := range buckets {
		if acc.orders == 0 {
			continue
		}
		profit := acc.sales.Sub(acc.cost)
		out = append(out, HourlySalesData{
			Hour:              hour,
			HourLabel:         fmt.Sprintf("%02d:00", hour),
			Sales:             round2(acc.sales),
			Orders:            acc.orders,
			AverageOrderValue: average(acc.sales, acc.orders),
			Profit:            round2(profit),
			ProfitMargin:      share(profit, acc.sales),
		})
	}
	return out
}
