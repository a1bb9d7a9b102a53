package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/songzhibin97/rankfi/internal/models"
	"github.com/songzhibin97/rankfi/internal/table"
)

// ErrNotFound is returned when no exchange matches a slug.
var ErrNotFound = errors.New("exchange not found")

// ExchangeSource 负责从某个数据源读取交易所数据
type ExchangeSource interface {
	// Name identifies the source in logs
	Name() string

	// GetAllExchanges returns every exchange in source order
	GetAllExchanges(ctx context.Context) ([]models.Exchange, error)

	// GetExchangeBySlug returns the exchange whose slug matches, or ErrNotFound
	GetExchangeBySlug(ctx context.Context, slug string) (*models.Exchange, error)
}

// FindBySlug scans exchanges for a slug match, case-insensitively.
func FindBySlug(exchanges []models.Exchange, slug string) (*models.Exchange, error) {
	want := strings.ToLower(slug)
	for i := range exchanges {
		if table.Slug(exchanges[i].AppName) == want {
			e := exchanges[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
}
