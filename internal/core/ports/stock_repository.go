package ports

import (
	"context"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

// StockRepository executes the parameterized time-series queries against the
// stock_data table.
type StockRepository interface {
	// PriceRows returns closing prices within [start, end]. When topN > 0 the
	// result is limited to the topN highest closes.
	PriceRows(ctx context.Context, start, end string, topN int) ([]domain.StockRow, error)
	// VolumeSums aggregates volume, turnover, and market cap over [start, end].
	VolumeSums(ctx context.Context, start, end string) (*domain.VolumeSums, error)
}
