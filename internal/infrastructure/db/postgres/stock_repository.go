package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// StockRepository reads the stock_data time-series table. Column names are
// quoted because the ingested dataset uses upper-case identifiers with
// embedded spaces.
type StockRepository struct {
	pool *pgxpool.Pool
}

func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

func (r *StockRepository) PriceRows(ctx context.Context, start, end string, topN int) ([]domain.StockRow, error) {
	q := `SELECT "SYMBOL", "DATE", "CLOSE_PRICE" FROM stock_data WHERE "DATE" BETWEEN $1 AND $2`
	args := []any{start, end}

	if topN > 0 {
		q += ` ORDER BY "CLOSE_PRICE" DESC LIMIT $3`
		args = append(args, topN)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query stock_data: %w", err)
	}
	defer rows.Close()

	var out []domain.StockRow
	for rows.Next() {
		var row domain.StockRow
		if err := rows.Scan(&row.Symbol, &row.Date, &row.ClosePrice); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}

	return out, nil
}

func (r *StockRepository) VolumeSums(ctx context.Context, start, end string) (*domain.VolumeSums, error) {
	const q = `SELECT
			SUM("ADJ TOTAL VOLUME") AS total_adjusted_volume,
			SUM("NET TURNOVER")     AS total_net_turnover,
			SUM("MARKET CAP")       AS total_market_cap
		FROM stock_data
		WHERE "DATE" BETWEEN $1 AND $2`

	var sums domain.VolumeSums
	if err := r.pool.QueryRow(ctx, q, start, end).Scan(&sums.AdjTotalVolume, &sums.NetTurnover, &sums.MarketCap); err != nil {
		return nil, fmt.Errorf("query volume sums: %w", err)
	}

	return &sums, nil
}

var _ ports.StockRepository = (*StockRepository)(nil)
