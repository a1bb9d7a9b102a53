package binance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songzhibin97/rankfi/internal/models"
)

type symbol struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

func setupTestServer(t *testing.T, status int, symbols []symbol) (*httptest.Server, *ListingCounter, *atomic.Int32) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/v3/exchangeInfo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"code":-1003,"msg":"Too many requests"}`))
			return
		}
		err := json.NewEncoder(w).Encode(map[string]any{
			"timezone":   "UTC",
			"serverTime": 1700000000000,
			"symbols":    symbols,
		})
		require.NoError(t, err)
	}))

	counter := NewListingCounter(server.URL)
	counter.client.HTTPClient = server.Client()

	return server, counter, &calls
}

var testSymbols = []symbol{
	{Symbol: "BTCUSDT", Status: "TRADING", BaseAsset: "BTC", QuoteAsset: "USDT"},
	{Symbol: "BTCEUR", Status: "TRADING", BaseAsset: "BTC", QuoteAsset: "EUR"},
	{Symbol: "ETHUSDT", Status: "TRADING", BaseAsset: "ETH", QuoteAsset: "USDT"},
	{Symbol: "LUNAUSDT", Status: "BREAK", BaseAsset: "LUNA", QuoteAsset: "USDT"},
	{Symbol: "SOLUSDT", Status: "TRADING", BaseAsset: "SOL", QuoteAsset: "USDT"},
}

func TestListingCounter_CountListings(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		symbols     []symbol
		expectError bool
		expected    int
	}{
		{name: "distinct trading base assets", status: http.StatusOK, symbols: testSymbols, expected: 3},
		{name: "nothing trading", status: http.StatusOK, symbols: testSymbols[3:4], expectError: true},
		{name: "rate limited", status: http.StatusTooManyRequests, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, counter, _ := setupTestServer(t, tt.status, tt.symbols)
			defer server.Close()

			count, err := counter.CountListings(context.Background())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestListingCounter_Enrich(t *testing.T) {
	server, counter, _ := setupTestServer(t, http.StatusOK, testSymbols)
	defer server.Close()

	input := []models.Exchange{
		{AppName: "Kraken Pro", Coins: models.String("350+")},
		{AppName: "Binance", Coins: models.String("400+")},
	}

	out, err := counter.Enrich(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 2)

	f, ok := out[1].Coins.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	assert.Equal(t, "350+", out[0].Coins.Text())

	// input untouched
	assert.Equal(t, "400+", input[1].Coins.Text())
}

func TestListingCounter_EnrichWithoutBinance(t *testing.T) {
	server, counter, calls := setupTestServer(t, http.StatusOK, testSymbols)
	defer server.Close()

	input := []models.Exchange{{AppName: "OKX", Coins: models.Number(350)}}
	out, err := counter.Enrich(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, input, out)
	assert.Zero(t, calls.Load())
}

func TestListingCounter_EnrichError(t *testing.T) {
	server, counter, _ := setupTestServer(t, http.StatusInternalServerError, nil)
	defer server.Close()

	_, err := counter.Enrich(context.Background(), []models.Exchange{{AppName: "Binance"}})
	assert.Error(t, err)
}

func TestListingCounter_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("RANKFI_BINANCE_LIVE") == "" {
		t.Skip("RANKFI_BINANCE_LIVE not set")
	}

	count, err := NewListingCounter("").CountListings(context.Background())
	require.NoError(t, err)
	assert.Greater(t, count, 100)
}
