package ports

import (
	"context"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

type StockService interface {
	PriceSeries(ctx context.Context, start, end string, topN int) (domain.PriceSeries, error)
	VolumeBreakdown(ctx context.Context, start, end string) (*domain.VolumeBreakdown, error)
}
