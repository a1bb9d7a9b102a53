package binance

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2"

	"github.com/songzhibin97/rankfi/internal/models"
)

// ExchangeName is the record whose coin count gets replaced.
const ExchangeName = "Binance"

const statusTrading = "TRADING"

// ListingCounter replaces the static coin count of the Binance record with
// the number of base assets currently trading on Binance spot.
type ListingCounter struct {
	client *binance.Client
}

// NewListingCounter creates a counter against the public spot API. An empty
// baseURL keeps the client default.
func NewListingCounter(baseURL string, testnet ...bool) *ListingCounter {
	testnet = append(testnet, false)
	if testnet[0] {
		binance.UseTestnet = true
	}

	// exchangeInfo 是公开接口, 无需密钥
	client := binance.NewClient("", "")
	if baseURL != "" {
		client.BaseURL = baseURL
	}

	return &ListingCounter{client: client}
}

func (l *ListingCounter) Name() string {
	return "binance-listings"
}

// CountListings returns the number of distinct base assets with at least one
// TRADING symbol.
func (l *ListingCounter) CountListings(ctx context.Context) (int, error) {
	info, err := l.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get exchange info: %w", err)
	}

	assets := make(map[string]struct{})
	for _, symbol := range info.Symbols {
		if symbol.Status != statusTrading {
			continue
		}
		assets[symbol.BaseAsset] = struct{}{}
	}

	if len(assets) == 0 {
		return 0, fmt.Errorf("no trading symbols returned")
	}
	return len(assets), nil
}

// Enrich implements catalog.Enricher. The input slice is never modified.
func (l *ListingCounter) Enrich(ctx context.Context, exchanges []models.Exchange) ([]models.Exchange, error) {
	idx := -1
	for i := range exchanges {
		if exchanges[i].AppName == ExchangeName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return exchanges, nil
	}

	count, err := l.CountListings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Exchange, len(exchanges))
	copy(out, exchanges)
	out[idx].Coins = models.Number(float64(count))
	return out, nil
}
