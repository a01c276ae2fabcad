package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

type stubStockRepo struct {
	rows     []domain.StockRow
	sums     *domain.VolumeSums
	err      error
	gotStart string
	gotEnd   string
	gotTopN  int
}

func (r *stubStockRepo) PriceRows(_ context.Context, start, end string, topN int) ([]domain.StockRow, error) {
	r.gotStart, r.gotEnd, r.gotTopN = start, end, topN
	return r.rows, r.err
}

func (r *stubStockRepo) VolumeSums(_ context.Context, start, end string) (*domain.VolumeSums, error) {
	r.gotStart, r.gotEnd = start, end
	return r.sums, r.err
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStockService_PriceSeries_GroupsBySymbol(t *testing.T) {
	repo := &stubStockRepo{rows: []domain.StockRow{
		{Symbol: "AAPL", Date: day("2023-01-02"), ClosePrice: 125.07},
		{Symbol: "MSFT", Date: day("2023-01-02"), ClosePrice: 239.58},
		{Symbol: "AAPL", Date: day("2023-01-03"), ClosePrice: 126.36},
	}}
	svc := NewStockService(repo)

	series, err := svc.PriceSeries(context.Background(), "2023-01-01", "2023-01-31", 0)
	if err != nil {
		t.Fatalf("PriceSeries returned error: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(series))
	}
	aapl := series["AAPL"]
	if len(aapl) != 2 {
		t.Fatalf("expected 2 AAPL points, got %d", len(aapl))
	}
	if aapl[0].Date != "2023-01-02" || aapl[0].ClosePrice != 125.07 {
		t.Fatalf("unexpected first AAPL point: %+v", aapl[0])
	}
	if repo.gotStart != "2023-01-01" || repo.gotEnd != "2023-01-31" {
		t.Fatalf("range not passed through: %s..%s", repo.gotStart, repo.gotEnd)
	}
}

func TestStockService_PriceSeries_TopNPassedThrough(t *testing.T) {
	repo := &stubStockRepo{}
	svc := NewStockService(repo)

	if _, err := svc.PriceSeries(context.Background(), "2023-01-01", "2023-01-31", 5); err != nil {
		t.Fatalf("PriceSeries returned error: %v", err)
	}
	if repo.gotTopN != 5 {
		t.Fatalf("expected topN=5, got %d", repo.gotTopN)
	}
}

func TestStockService_PriceSeries_MissingDates(t *testing.T) {
	svc := NewStockService(&stubStockRepo{})

	if _, err := svc.PriceSeries(context.Background(), "", "2023-01-31", 0); !errors.Is(err, domain.ErrMissingDates) {
		t.Fatalf("expected ErrMissingDates, got %v", err)
	}
	if _, err := svc.PriceSeries(context.Background(), "2023-01-01", "", 0); !errors.Is(err, domain.ErrMissingDates) {
		t.Fatalf("expected ErrMissingDates, got %v", err)
	}
}

func TestStockService_VolumeBreakdown(t *testing.T) {
	vol, turn, mcap := 1200.5, 87.3, 45000.0
	repo := &stubStockRepo{sums: &domain.VolumeSums{
		AdjTotalVolume: &vol,
		NetTurnover:    &turn,
		MarketCap:      &mcap,
	}}
	svc := NewStockService(repo)

	breakdown, err := svc.VolumeBreakdown(context.Background(), "2023-01-01", "2023-01-31")
	if err != nil {
		t.Fatalf("VolumeBreakdown returned error: %v", err)
	}

	wantLabels := []string{"Adjusted Total Volume", "Net Turnover", "Market Cap"}
	for i, label := range wantLabels {
		if breakdown.Labels[i] != label {
			t.Fatalf("label %d: got %q, want %q", i, breakdown.Labels[i], label)
		}
	}
	wantData := []float64{1200.5, 87.3, 45000.0}
	for i, v := range wantData {
		if breakdown.Data[i] != v {
			t.Fatalf("data %d: got %v, want %v", i, breakdown.Data[i], v)
		}
	}
}

func TestStockService_VolumeBreakdown_NoData(t *testing.T) {
	repo := &stubStockRepo{sums: &domain.VolumeSums{}}
	svc := NewStockService(repo)

	if _, err := svc.VolumeBreakdown(context.Background(), "1990-01-01", "1990-01-31"); !errors.Is(err, domain.ErrNoStockData) {
		t.Fatalf("expected ErrNoStockData, got %v", err)
	}
}

func TestStockService_VolumeBreakdown_PartialNulls(t *testing.T) {
	vol := 10.0
	repo := &stubStockRepo{sums: &domain.VolumeSums{AdjTotalVolume: &vol}}
	svc := NewStockService(repo)

	breakdown, err := svc.VolumeBreakdown(context.Background(), "2023-01-01", "2023-01-31")
	if err != nil {
		t.Fatalf("VolumeBreakdown returned error: %v", err)
	}
	if breakdown.Data[0] != 10.0 || breakdown.Data[1] != 0 || breakdown.Data[2] != 0 {
		t.Fatalf("unexpected data: %v", breakdown.Data)
	}
}
