// Package memory holds an in-process order repository. It backs dev mode
// when no DATABASE_URL is configured and is the fake injected by handler
// tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resto-dashboard/internal/order"
)

type Store struct {
	mu     sync.RWMutex
	orders []order.Order
}

func New(orders []order.Order) (*Store, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("memory store: %w", err)
		}
	}
	return &Store{orders: orders}, nil
}

// Add appends orders after validation. Used by seeding and tests.
func (s *Store) Add(orders ...order.Order) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("memory store: %w", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, orders...)
	return nil
}

// FetchOrders returns orders with createdAt inside [start, end], optionally
// narrowed to the given locations, preserving insertion order.
func (s *Store) FetchOrders(ctx context.Context, start, end time.Time, locationIDs []string) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locationSet := make(map[string]struct{}, len(locationIDs))
	for _, id := range locationIDs {
		locationSet[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		if len(locationSet) > 0 {
			if _, ok := locationSet[o.LocationID]; !ok {
				continue
			}
		}
		out = append(out, o)
	}
	return out, nil
}
