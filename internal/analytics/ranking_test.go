package analytics

import (
	"testing"
	"time"

	"resto-dashboard/internal/order"
)

func TestTopItemsRanking(t *testing.T) {
	orders := []order.Order{
		testOrder(day(2024, time.March, 9, 9), order.ChannelDineIn, 40,
			testItem("burger", 2, 12, 5),  // 24.00
			testItem("fries", 4, 4, 1)),   // 16.00
		testOrder(day(2024, time.March, 9, 12), order.ChannelTakeout, 28,
			testItem("burger", 1, 12, 5),  // 12.00
			testItem("shake", 2, 8, 2.5)), // 16.00
	}

	got := TopItems(orders, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct items, got %d", len(got))
	}

	if got[0].MenuItemID != "burger" || got[0].TotalSales != 36.00 {
		t.Fatalf("expected burger first with 36.00, got %+v", got[0])
	}
	if got[0].Rank != 1 || got[1].Rank != 2 || got[2].Rank != 3 {
		t.Fatalf("ranks must be dense and 1-based, got %d/%d/%d", got[0].Rank, got[1].Rank, got[2].Rank)
	}
	if got[0].TotalQuantity != 3 || got[0].OrderCount != 2 {
		t.Fatalf("burger: expected quantity 3 over 2 orders, got %+v", got[0])
	}
	if got[0].AveragePrice != 12.00 {
		t.Fatalf("burger averagePrice: expected 12.00, got %v", got[0].AveragePrice)
	}
	// Unit profit 7 on 3 units.
	if got[0].TotalProfit != 21.00 {
		t.Fatalf("burger totalProfit: expected 21.00, got %v", got[0].TotalProfit)
	}

	// fries and shake both sold 16.00; fries was seen first.
	if got[1].MenuItemID != "fries" || got[2].MenuItemID != "shake" {
		t.Fatalf("equal-revenue tie must keep first-seen order, got %s then %s",
			got[1].MenuItemID, got[2].MenuItemID)
	}
}

func TestTopItemsStrictlyDescendingAndTruncated(t *testing.T) {
	orders := []order.Order{
		testOrder(day(2024, time.March, 9, 9), order.ChannelDineIn, 100,
			testItem("a", 1, 50, 20),
			testItem("b", 1, 30, 10),
			testItem("c", 1, 20, 5),
		),
	}

	got := TopItems(orders, 2)
	if len(got) != 2 {
		t.Fatalf("expected truncation to 2 rows, got %d", len(got))
	}
	if got[0].TotalSales < got[1].TotalSales {
		t.Fatalf("expected descending totalSales, got %v then %v", got[0].TotalSales, got[1].TotalSales)
	}
}

func TestTopItemsLengthBound(t *testing.T) {
	orders := []order.Order{
		testOrder(day(2024, time.March, 9, 9), order.ChannelDineIn, 30,
			testItem("a", 1, 10, 2), testItem("b", 1, 20, 4)),
	}

	if got := TopItems(orders, 5); len(got) != 2 {
		t.Fatalf("limit above distinct count must return all items, got %d", len(got))
	}
	if got := TopItems(orders, 0); len(got) != 2 {
		t.Fatalf("non-positive limit returns the full ranking, got %d", len(got))
	}
	if got := TopItems(nil, 5); len(got) != 0 {
		t.Fatalf("empty input yields an empty ranking, got %d", len(got))
	}
}
