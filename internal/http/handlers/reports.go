package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"resto-dashboard/internal/analytics"
	"resto-dashboard/internal/order"
	"resto-dashboard/pkg/response"
)

const maxTopItemsLimit = 100

// SalesReportData aggregates every report section computed over one filtered
// order collection. The sections are independent fan-out consumers of the
// same input; none depends on another's output.
type SalesReportData struct {
	Metrics   analytics.SalesMetrics          `json:"metrics"`
	Growth    analytics.GrowthMetrics         `json:"growth"`
	Daily     []analytics.DailySalesData      `json:"daily"`
	Hourly    []analytics.HourlySalesData     `json:"hourly"`
	Channels  []analytics.ChannelDistribution `json:"channels"`
	TopItems  []analytics.TopPerformingItem   `json:"topItems"`
	Locations []analytics.LocationPerformance `json:"locations"`
}

// SalesReportMeta echoes the applied filters plus record counts, so a
// consumer can tell "no data in range" apart from "filtered to zero".
type SalesReportMeta struct {
	Range           analytics.DateRange `json:"range"`
	PreviousRange   analytics.DateRange `json:"previousRange"`
	Timezone        string              `json:"timezone"`
	LocationIDs     []string            `json:"locationIds"`
	Channels        []order.Channel     `json:"channels"`
	Limit           int                 `json:"limit"`
	TotalRecords    int                 `json:"totalRecords"`
	FilteredRecords int                 `json:"filteredRecords"`
}

type salesReportResponse struct {
	Success bool            `json:"success"`
	Data    SalesReportData `json:"data"`
	Meta    SalesReportMeta `json:"meta"`
}

// SalesReport serves GET /api/reports/sales. Validation happens once here at
// the boundary; past it the engine is total and cannot fail.
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := h.parseLimit(query.Get("limit"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_FILTER_VALUE", err.Error())
		return
	}

	locationIDs := splitQueryList(query.Get("locationIds"))
	for _, id := range locationIDs {
		if !validLocationID(id) {
			response.Error(w, http.StatusBadRequest, "INVALID_FILTER_VALUE",
				fmt.Sprintf("Malformed location identifier %q", id))
			return
		}
	}

	channels := make([]order.Channel, 0)
	for _, raw := range splitQueryList(query.Get("channels")) {
		ch, err := order.ParseChannel(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILTER_VALUE",
				fmt.Sprintf("Unknown channel %q", raw))
			return
		}
		channels = append(channels, ch)
	}

	rng, err := h.resolveRange(query.Get("weekStart"), query.Get("from"), query.Get("to"), query.Get("timeRange"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
		return
	}
	prevRange := analytics.PreviousPeriod(rng)

	cacheBucket := time.Now().Truncate(h.Config.ReportCacheTTL)
	cacheKey := reportCacheKey(
		"sales_report",
		rng.Start.Format(time.RFC3339Nano),
		rng.End.Format(time.RFC3339Nano),
		strings.Join(locationIDs, ","),
		joinChannels(channels),
		strconv.Itoa(limit),
		cacheBucket.Format(time.RFC3339),
	)
	if cached, ok := h.cache.get(cacheKey); ok {
		response.JSON(w, http.StatusOK, cached)
		return
	}

	ctx := r.Context()
	currentOrders, err := h.Repo.FetchOrders(ctx, rng.Start, rng.End, locationIDs)
	if err != nil {
		h.Logger.Error("sales report orders fetch failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch sales report")
		return
	}
	previousOrders, err := h.Repo.FetchOrders(ctx, prevRange.Start, prevRange.End, locationIDs)
	if err != nil {
		h.Logger.Error("sales report previous period fetch failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch sales report")
		return
	}

	current := analytics.Filter(currentOrders, rng, nil, channels)
	previous := analytics.Filter(previousOrders, prevRange, nil, channels)

	payload := salesReportResponse{
		Success: true,
		Data:    h.computeReport(current, previous, prevRange.Label, limit),
		Meta: SalesReportMeta{
			Range:           rng,
			PreviousRange:   prevRange,
			Timezone:        h.Location.String(),
			LocationIDs:     locationIDs,
			Channels:        channels,
			Limit:           limit,
			TotalRecords:    len(currentOrders),
			FilteredRecords: len(current),
		},
	}

	h.cache.set(cacheKey, payload, h.Config.ReportCacheTTL)
	response.JSON(w, http.StatusOK, payload)
}

// computeReport fans out over the report sections concurrently. Each section
// is a pure function of its input and writes a distinct field, so no locking
// is needed.
func (h *Handler) computeReport(current, previous []order.Order, growthLabel string, limit int) SalesReportData {
	var data SalesReportData
	var wg sync.WaitGroup

	wg.Add(7)
	go func() { defer wg.Done(); data.Metrics = analytics.Compute(current) }()
	go func() { defer wg.Done(); data.Growth = analytics.Compare(current, previous, growthLabel) }()
	go func() { defer wg.Done(); data.Daily = analytics.BucketDaily(current, h.Location) }()
	go func() { defer wg.Done(); data.Hourly = analytics.BucketHourly(current, h.Location) }()
	go func() { defer wg.Done(); data.Channels = analytics.ByChannel(current) }()
	go func() { defer wg.Done(); data.TopItems = analytics.TopItems(current, limit) }()
	go func() { defer wg.Done(); data.Locations = analytics.ByLocation(current) }()
	wg.Wait()

	return data
}

// resolveRange picks the report window: an explicit week anchor wins over
// custom bounds, which win over the named preset.
func (h *Handler) resolveRange(weekStart, from, to, timeRange string) (analytics.DateRange, error) {
	if strings.TrimSpace(weekStart) != "" {
		anchor, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(weekStart), h.Location)
		if err != nil {
			return analytics.DateRange{}, fmt.Errorf("%w: weekStart %q", analytics.ErrInvalidDateRange, weekStart)
		}
		return analytics.WeekOf(anchor, h.Location), nil
	}
	if from != "" || to != "" {
		if from == "" || to == "" {
			return analytics.DateRange{}, fmt.Errorf("%w: both from and to are required for a custom range", analytics.ErrInvalidDateRange)
		}
		return analytics.ParseCustomRange(from, to, h.Location)
	}
	return analytics.ResolvePreset(defaultString(timeRange, analytics.RangeLast7Days), time.Now(), h.Location)
}

func (h *Handler) parseLimit(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return h.Config.TopItemsLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	if limit > maxTopItemsLimit {
		limit = maxTopItemsLimit
	}
	return limit, nil
}

func joinChannels(channels []order.Channel) string {
	parts := make([]string, 0, len(channels))
	for _, ch := range channels {
		parts = append(parts, string(ch))
	}
	return strings.Join(parts, ",")
}
