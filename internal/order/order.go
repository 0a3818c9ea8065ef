package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemSnapshot captures the menu item as it was at the time of sale.
// Later catalog or price changes never touch it, so historical reports stay
// reproducible.
type MenuItemSnapshot struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Profit   decimal.Decimal `json:"profit"`
}

// OrderItem is one line within an order. Subtotal is quantity times unit
// price, net of item-level modifiers.
type OrderItem struct {
	MenuItemID string           `json:"menuItemId"`
	MenuItem   MenuItemSnapshot `json:"menuItem"`
	Quantity   int              `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	Modifiers  []string         `json:"modifiers,omitempty"`
}

// Order is one completed or in-progress transaction, normalized from whatever
// the POS connectors deliver. The analytics engine treats it as a read-only
// snapshot and trusts TotalAmount as derived upstream.
type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	LocationID     string          `json:"locationId"`
	LocationName   string          `json:"locationName"`
	Channel        Channel         `json:"channel"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TipAmount      decimal.Decimal `json:"tipAmount"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	CustomerID     string          `json:"customerId,omitempty"`
	CustomerName   string          `json:"customerName,omitempty"`
	TableNumber    string          `json:"tableNumber,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

var ErrInvalidOrder = errors.New("invalid order")

// Validate enforces the strict shape the engine expects. Repository
// implementations run it once at the boundary; the engine never re-checks.
func (o Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidOrder)
	}
	if o.LocationID == "" {
		return fmt.Errorf("%w %s: missing locationId", ErrInvalidOrder, o.ID)
	}
	if _, err := ParseChannel(string(o.Channel)); err != nil {
		return fmt.Errorf("%w %s: %v", ErrInvalidOrder, o.ID, err)
	}
	if o.CreatedAt.IsZero() {
		return fmt.Errorf("%w %s: missing createdAt", ErrInvalidOrder, o.ID)
	}
	if o.TotalAmount.IsNegative() {
		return fmt.Errorf("%w %s: negative totalAmount", ErrInvalidOrder, o.ID)
	}
	for _, item := range o.Items {
		if item.MenuItemID == "" {
			return fmt.Errorf("%w %s: item missing menuItemId", ErrInvalidOrder, o.ID)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w %s: item %s quantity must be positive", ErrInvalidOrder, o.ID, item.MenuItemID)
		}
	}
	return nil
}
