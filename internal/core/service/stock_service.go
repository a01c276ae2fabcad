package service

import (
	"context"
	"fmt"

	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

const dateLayout = "2006-01-02"

// Pie-chart slice labels, in the same order as the aggregate values.
var breakdownLabels = []string{"Adjusted Total Volume", "Net Turnover", "Market Cap"}

// StockService shapes raw time-series rows into chart payloads.
type StockService struct {
	repo ports.StockRepository
}

func NewStockService(repo ports.StockRepository) *StockService {
	return &StockService{repo: repo}
}

// PriceSeries returns closing prices within [start, end] grouped by symbol.
// topN > 0 limits the result to the highest closes across the range.
func (s *StockService) PriceSeries(ctx context.Context, start, end string, topN int) (domain.PriceSeries, error) {
	if start == "" || end == "" {
		return nil, domain.ErrMissingDates
	}

	rows, err := s.repo.PriceRows(ctx, start, end, topN)
	if err != nil {
		return nil, fmt.Errorf("query price rows: %w", err)
	}

	series := make(domain.PriceSeries)
	for _, row := range rows {
		series[row.Symbol] = append(series[row.Symbol], domain.PricePoint{
			Date:       row.Date.Format(dateLayout),
			ClosePrice: row.ClosePrice,
		})
	}

	return series, nil
}

// VolumeBreakdown aggregates volume, turnover, and market cap over the range
// and shapes them as parallel label/value slices for a pie chart. A range
// matching no rows yields domain.ErrNoStockData.
func (s *StockService) VolumeBreakdown(ctx context.Context, start, end string) (*domain.VolumeBreakdown, error) {
	if start == "" || end == "" {
		return nil, domain.ErrMissingDates
	}

	sums, err := s.repo.VolumeSums(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("query volume sums: %w", err)
	}

	// SUM over zero rows is NULL in every column.
	if sums.AdjTotalVolume == nil && sums.NetTurnover == nil && sums.MarketCap == nil {
		return nil, domain.ErrNoStockData
	}

	return &domain.VolumeBreakdown{
		Labels: breakdownLabels,
		Data: []float64{
			deref(sums.AdjTotalVolume),
			deref(sums.NetTurnover),
			deref(sums.MarketCap),
		},
	}, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

var _ ports.StockService = (*StockService)(nil)
