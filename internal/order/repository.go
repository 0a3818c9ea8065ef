package order

import (
	"context"
	"time"
)

// Repository is the port the reporting layer fetches orders through. The
// engine itself never sees it; callers materialize a slice and hand it over.
// Both bounds are inclusive. An empty locationIDs slice means no location
// restriction.
type Repository interface {
	FetchOrders(ctx context.Context, start, end time.Time, locationIDs []string) ([]Order, error)
}
