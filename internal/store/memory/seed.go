package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

type seedMenuItem struct {
	id       string
	name     string
	category string
	price    float64
	cost     float64
}

var seedMenu = []seedMenuItem{
	{id: "menu-margherita", name: "Margherita Pizza", category: "Mains", price: 14.50, cost: 4.20},
	{id: "menu-carbonara", name: "Spaghetti Carbonara", category: "Mains", price: 16.00, cost: 5.10},
	{id: "menu-caesar", name: "Caesar Salad", category: "Starters", price: 9.50, cost: 2.80},
	{id: "menu-tiramisu", name: "Tiramisu", category: "Desserts", price: 7.00, cost: 1.90},
	{id: "menu-espresso", name: "Espresso", category: "Drinks", price: 3.00, cost: 0.45},
	{id: "menu-lemonade", name: "House Lemonade", category: "Drinks", price: 4.50, cost: 0.80},
}

var seedLocations = []struct{ id, name string }{
	{id: "loc-downtown", name: "Downtown"},
	{id: "loc-harbor", name: "Harborfront"},
	{id: "loc-uptown", name: "Uptown"},
}

// Seeded builds a demo dataset covering the last 90 days: every location
// gets orders spread across lunch and dinner hours and all four channels,
// so every report section has data out of the box.
func Seeded(now time.Time) *Store {
	store := &Store{}
	channels := order.Channels()
	seq := 0

	for dayOffset := 0; dayOffset < 90; dayOffset++ {
		date := now.AddDate(0, 0, -dayOffset)
		for li, loc := range seedLocations {
			// 2-4 orders per location per day, hour varies with the offsets.
			count := 2 + (dayOffset+li)%3
			for n := 0; n < count; n++ {
				seq++
				hour := []int{11, 13, 18, 20}[(dayOffset+n)%4]
				item := seedMenu[(seq+li)%len(seedMenu)]
				qty := 1 + seq%3
				o := buildSeedOrder(
					seq,
					loc.id, loc.name,
					channels[(seq+dayOffset)%len(channels)],
					time.Date(date.Year(), date.Month(), date.Day(), hour, (seq*7)%60, 0, 0, date.Location()),
					item, qty,
				)
				// Validation cannot fail for generated orders.
				_ = store.Add(o)
			}
		}
	}
	return store
}

func buildSeedOrder(seq int, locID, locName string, ch order.Channel, createdAt time.Time, item seedMenuItem, qty int) order.Order {
	price := decimal.NewFromFloat(item.price)
	cost := decimal.NewFromFloat(item.cost)
	quantity := decimal.NewFromInt(int64(qty))
	subtotal := price.Mul(quantity)
	taxRate := decimal.NewFromFloat(0.08)
	tax := subtotal.Mul(taxRate).Round(2)

	tip := decimal.Zero
	if ch == order.ChannelDineIn {
		tip = subtotal.Mul(decimal.NewFromFloat(0.10)).Round(2)
	}
	fee := decimal.Zero
	if ch == order.ChannelDelivery {
		fee = decimal.NewFromFloat(3.50)
	}

	return order.Order{
		ID:           uuid.NewString(),
		OrderNumber:  fmt.Sprintf("DEMO-%05d", seq),
		LocationID:   locID,
		LocationName: locName,
		Channel:      ch,
		Items: []order.OrderItem{{
			MenuItemID: item.id,
			MenuItem: order.MenuItemSnapshot{
				Name:     item.name,
				Category: item.category,
				Cost:     cost,
				Profit:   price.Sub(cost),
			},
			Quantity:  qty,
			UnitPrice: price,
			Subtotal:  subtotal,
		}},
		Subtotal:      subtotal,
		TaxRate:       taxRate,
		TaxAmount:     tax,
		TipAmount:     tip,
		DeliveryFee:   fee,
		TotalAmount:   subtotal.Add(tax).Add(tip).Add(fee),
		PaymentMethod: []string{"card", "cash"}[seq%2],
		CreatedAt:     createdAt,
	}
}
