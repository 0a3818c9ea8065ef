// Package postgres implements the order repository over the dashboard's
// orders and order_items tables.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"resto-dashboard/internal/order"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FetchOrders loads normalized orders with their item snapshots for the
// inclusive [start, end] window, optionally narrowed to a location set.
func (s *Store) FetchOrders(ctx context.Context, start, end time.Time, locationIDs []string) ([]order.Order, error) {
	orders, err := s.loadOrders(ctx, start, end, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := s.loadItems(ctx, start, end, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}

	index := make(map[string]int, len(orders))
	for i, o := range orders {
		index[o.ID] = i
	}
	for orderID, lines := range items {
		if i, ok := index[orderID]; ok {
			orders[i].Items = lines
		}
	}
	return orders, nil
}

func (s *Store) loadOrders(ctx context.Context, start, end time.Time, locationIDs []string) ([]order.Order, error) {
	where, args := ordersWhereClause(start, end, locationIDs)
	query := `
		select o.id, o.order_number, o.location_id, l.name,
		       o.channel, o.subtotal, o.tax_rate, o.tax_amount, o.discount_amount,
		       o.tip_amount, o.delivery_fee, o.total_amount, o.payment_method,
		       coalesce(o.customer_id::text, ''), coalesce(o.customer_name, ''),
		       coalesce(o.table_number, ''), coalesce(o.notes, ''), o.created_at
		from orders o
		join locations l on l.id = o.location_id
		where ` + where + `
		order by o.created_at, o.id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]order.Order, 0)
	for rows.Next() {
		var (
			o        order.Order
			channel  string
			subtotal pgtype.Numeric
			taxRate  pgtype.Numeric
			tax      pgtype.Numeric
			discount pgtype.Numeric
			tip      pgtype.Numeric
			fee      pgtype.Numeric
			total    pgtype.Numeric
		)
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.LocationID, &o.LocationName,
			&channel, &subtotal, &taxRate, &tax, &discount,
			&tip, &fee, &total, &o.PaymentMethod,
			&o.CustomerID, &o.CustomerName, &o.TableNumber, &o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, err
		}

		ch, err := order.ParseChannel(channel)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		o.Channel = ch
		o.Subtotal = numericToDecimal(subtotal)
		o.TaxRate = numericToDecimal(taxRate)
		o.TaxAmount = numericToDecimal(tax)
		o.DiscountAmount = numericToDecimal(discount)
		o.TipAmount = numericToDecimal(tip)
		o.DeliveryFee = numericToDecimal(fee)
		o.TotalAmount = numericToDecimal(total)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) loadItems(ctx context.Context, start, end time.Time, locationIDs []string) (map[string][]order.OrderItem, error) {
	where, args := ordersWhereClause(start, end, locationIDs)
	query := `
		select oi.order_id, oi.menu_item_id, oi.menu_name, oi.menu_category,
		       oi.unit_cost, oi.unit_profit, oi.quantity, oi.unit_price, oi.subtotal
		from order_items oi
		join orders o on o.id = oi.order_id
		where ` + where + `
		order by oi.order_id, oi.position`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]order.OrderItem)
	for rows.Next() {
		var (
			orderID string
			item    order.OrderItem
			cost    pgtype.Numeric
			profit  pgtype.Numeric
			price   pgtype.Numeric
			sub     pgtype.Numeric
		)
		if err := rows.Scan(
			&orderID, &item.MenuItemID, &item.MenuItem.Name, &item.MenuItem.Category,
			&cost, &profit, &item.Quantity, &price, &sub,
		); err != nil {
			return nil, err
		}
		item.MenuItem.Cost = numericToDecimal(cost)
		item.MenuItem.Profit = numericToDecimal(profit)
		item.UnitPrice = numericToDecimal(price)
		item.Subtotal = numericToDecimal(sub)
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

func ordersWhereClause(start, end time.Time, locationIDs []string) (string, []any) {
	where := "o.created_at >= $1 and o.created_at <= $2"
	args := []any{start, end}
	if len(locationIDs) > 0 {
		where += " and o.location_id = any($3)"
		args = append(args, locationIDs)
	}
	return where, args
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
