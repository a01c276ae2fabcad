package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/marketpulse/stock-insights/internal/api/metrics"
	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// ChartHandler serves the role-gated chart data routes. The line and bar
// routes share PriceSeries; only their allow-lists differ.
type ChartHandler struct {
	service ports.StockService
}

func NewChartHandler(service ports.StockService) *ChartHandler {
	return &ChartHandler{service: service}
}

// PriceSeries returns closing prices grouped by symbol for the requested
// date range.
//
// @Summary      Closing-price series grouped by symbol
// @Tags         charts
// @Produce      json
// @Param        startDate  query     string  true   "Range start (YYYY-MM-DD)"
// @Param        endDate    query     string  true   "Range end (YYYY-MM-DD)"
// @Param        topN       query     int     false  "Limit to the N highest closes"
// @Success      200  {object}  map[string][]domain.PricePoint
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/line-chart [get]
func (h *ChartHandler) PriceSeries(c echo.Context) error {
	start := c.QueryParam("startDate")
	end := c.QueryParam("endDate")

	// A non-numeric topN is ignored rather than rejected.
	topN := 0
	if raw := c.QueryParam("topN"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			topN = n
		}
	}

	timer := prometheus.NewTimer(metrics.ChartQueryDuration.WithLabelValues("price_series"))
	series, err := h.service.PriceSeries(c.Request().Context(), start, end, topN)
	timer.ObserveDuration()
	if err != nil {
		metrics.ChartQueriesTotal.WithLabelValues("price_series", chartLabel(err)).Inc()
		return err
	}

	metrics.ChartQueriesTotal.WithLabelValues("price_series", "ok").Inc()
	return c.JSON(http.StatusOK, series)
}

// VolumeBreakdown returns the range's volume/turnover/market-cap totals
// shaped for a pie chart.
//
// @Summary      Volume, turnover, and market-cap totals for a date range
// @Tags         charts
// @Produce      json
// @Param        startDate  query     string  true  "Range start (YYYY-MM-DD)"
// @Param        endDate    query     string  true  "Range end (YYYY-MM-DD)"
// @Success      200  {object}  domain.VolumeBreakdown
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/pie-chart [get]
func (h *ChartHandler) VolumeBreakdown(c echo.Context) error {
	start := c.QueryParam("startDate")
	end := c.QueryParam("endDate")

	timer := prometheus.NewTimer(metrics.ChartQueryDuration.WithLabelValues("volume_breakdown"))
	breakdown, err := h.service.VolumeBreakdown(c.Request().Context(), start, end)
	timer.ObserveDuration()
	if err != nil {
		metrics.ChartQueriesTotal.WithLabelValues("volume_breakdown", chartLabel(err)).Inc()
		return err
	}

	metrics.ChartQueriesTotal.WithLabelValues("volume_breakdown", "ok").Inc()
	return c.JSON(http.StatusOK, breakdown)
}

func chartLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingDates):
		return "invalid_input"
	case errors.Is(err, domain.ErrNoStockData):
		return "empty"
	default:
		return "error"
	}
}
