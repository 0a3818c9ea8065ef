package analytics

import (
	"resto-dashboard/internal/order"
)

// Filter narrows an order collection by date range, location set and channel
// set. Empty optional filters mean no restriction. The relative input order
// is preserved and the input slice is never mutated.
func Filter(orders []order.Order, r DateRange, locationIDs []string, channels []order.Channel) []order.Order {
	locationSet := make(map[string]struct{}, len(locationIDs))
	for _, id := range locationIDs {
		locationSet[id] = struct{}{}
	}
	channelSet := make(map[order.Channel]struct{}, len(channels))
	for _, ch := range channels {
		channelSet[ch] = struct{}{}
	}

	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Before(r.Start) || o.CreatedAt.After(r.End) {
			continue
		}
		if len(locationSet) > 0 {
			if _, ok := locationSet[o.LocationID]; !ok {
				continue
			}
		}
		if len(channelSet) > 0 {
			if _, ok := channelSet[o.Channel]; !ok {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}
