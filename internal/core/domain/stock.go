package domain

import (
	"errors"
	"time"
)

var ErrMissingDates = errors.New("startDate and endDate are required")
var ErrNoStockData = errors.New("no data found for the given date range")

// StockRow is one raw closing-price observation from the stock_data table.
type StockRow struct {
	Symbol     string
	Date       time.Time
	ClosePrice float64
}

// PricePoint is a single dated closing price within a symbol's series.
type PricePoint struct {
	Date       string  `json:"date"`
	ClosePrice float64 `json:"closePrice"`
}

// PriceSeries groups price points by symbol, the shape consumed by the
// line and bar chart views.
type PriceSeries map[string][]PricePoint

// VolumeSums carries the range aggregates straight from the store. Fields
// are nil when the range matched no rows (SUM over zero rows is NULL).
type VolumeSums struct {
	AdjTotalVolume *float64
	NetTurnover    *float64
	MarketCap      *float64
}

// VolumeBreakdown is the pie-chart payload: parallel label/value slices.
type VolumeBreakdown struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
