package analytics

import (
	"testing"
	"time"

	"resto-dashboard/internal/order"
)

func TestFilterByDateRangeInclusive(t *testing.T) {
	r := DateRange{
		Start: day(2024, time.March, 10, 0),
		End:   day(2024, time.March, 12, 0),
	}
	orders := []order.Order{
		testOrder(day(2024, time.March, 9, 23), order.ChannelDineIn, 10),
		testOrder(r.Start, order.ChannelDineIn, 20),
		testOrder(day(2024, time.March, 11, 12), order.ChannelDineIn, 30),
		testOrder(r.End, order.ChannelDineIn, 40),
		testOrder(day(2024, time.March, 12, 1), order.ChannelDineIn, 50),
	}

	got := Filter(orders, r, nil, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 orders inside the range, got %d", len(got))
	}
	// Both boundary orders are included.
	if !got[0].CreatedAt.Equal(r.Start) || !got[2].CreatedAt.Equal(r.End) {
		t.Fatalf("range bounds must be inclusive")
	}
}

func TestFilterByLocationAndChannel(t *testing.T) {
	r := DateRange{Start: day(2024, time.March, 1, 0), End: day(2024, time.March, 31, 0)}
	orders := []order.Order{
		atLocation(testOrder(day(2024, time.March, 5, 9), order.ChannelDineIn, 10), "loc-1", "Downtown"),
		atLocation(testOrder(day(2024, time.March, 5, 10), order.ChannelDelivery, 20), "loc-2", "Harbor"),
		atLocation(testOrder(day(2024, time.March, 5, 11), order.ChannelDelivery, 30), "loc-1", "Downtown"),
	}

	byLocation := Filter(orders, r, []string{"loc-2"}, nil)
	if len(byLocation) != 1 || byLocation[0].LocationID != "loc-2" {
		t.Fatalf("expected only loc-2 orders, got %+v", byLocation)
	}

	byChannel := Filter(orders, r, nil, []order.Channel{order.ChannelDelivery})
	if len(byChannel) != 2 {
		t.Fatalf("expected 2 delivery orders, got %d", len(byChannel))
	}

	both := Filter(orders, r, []string{"loc-1"}, []order.Channel{order.ChannelDelivery})
	if len(both) != 1 || both[0].LocationID != "loc-1" || both[0].Channel != order.ChannelDelivery {
		t.Fatalf("expected the single loc-1 delivery order, got %+v", both)
	}
}

func TestFilterEmptyFiltersMeanNoRestriction(t *testing.T) {
	r := DateRange{Start: day(2024, time.March, 1, 0), End: day(2024, time.March, 31, 0)}
	orders := []order.Order{
		testOrder(day(2024, time.March, 2, 9), order.ChannelTakeout, 10),
		testOrder(day(2024, time.March, 3, 9), order.ChannelCatering, 20),
	}

	got := Filter(orders, r, []string{}, []order.Channel{})
	if len(got) != len(orders) {
		t.Fatalf("empty filters must match everything, got %d of %d", len(got), len(orders))
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	r := DateRange{Start: day(2024, time.March, 1, 0), End: day(2024, time.March, 31, 0)}
	orders := []order.Order{
		testOrder(day(2024, time.March, 20, 9), order.ChannelDineIn, 10),
		testOrder(day(2024, time.March, 5, 9), order.ChannelDineIn, 20),
		testOrder(day(2024, time.March, 12, 9), order.ChannelDineIn, 30),
	}

	got := Filter(orders, r, nil, nil)
	for i := range orders {
		if got[i].ID != orders[i].ID {
			t.Fatalf("relative order changed at index %d: expected %s, got %s", i, orders[i].ID, got[i].ID)
		}
	}
}
