package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

var testOrderSeq int

func testItem(menuID string, qty int, unitPrice, cost float64) order.OrderItem {
	price := decimal.NewFromFloat(unitPrice)
	itemCost := decimal.NewFromFloat(cost)
	return order.OrderItem{
		MenuItemID: menuID,
		MenuItem: order.MenuItemSnapshot{
			Name:     "Item " + menuID,
			Category: "Mains",
			Cost:     itemCost,
			Profit:   price.Sub(itemCost),
		},
		Quantity:  qty,
		UnitPrice: price,
		Subtotal:  price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func testOrder(created time.Time, ch order.Channel, total float64, items ...order.OrderItem) order.Order {
	testOrderSeq++
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	return order.Order{
		ID:            fmt.Sprintf("ord-%03d", testOrderSeq),
		OrderNumber:   fmt.Sprintf("R-%04d", testOrderSeq),
		LocationID:    "loc-1",
		LocationName:  "Downtown",
		Channel:       ch,
		Items:         items,
		Subtotal:      subtotal,
		TotalAmount:   decimal.NewFromFloat(total),
		PaymentMethod: "card",
		CreatedAt:     created,
	}
}

func atLocation(o order.Order, id, name string) order.Order {
	o.LocationID = id
	o.LocationName = name
	return o
}

func day(yyyy int, m time.Month, d, hour int) time.Time {
	return time.Date(yyyy, m, d, hour, 0, 0, 0, time.UTC)
}
