package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/models"
)

// ErrUnknownRegion is returned by ByRegion for regions outside Regions().
var ErrUnknownRegion = errors.New("unknown region")

var (
	regions      = []string{"global", "canada"}
	topPickNames = []string{"kraken", "binance", "bybit"}
)

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}

// Enricher rewrites a loaded dataset, for instance with live figures. It must
// not modify its input.
type Enricher interface {
	Name() string
	Enrich(ctx context.Context, exchanges []models.Exchange) ([]models.Exchange, error)
}

// Catalog loads the dataset from the first source that answers and serves
// it from memory afterwards.
type Catalog struct {
	sources   []data.ExchangeSource
	enrichers []Enricher
	logger    Logger

	group singleflight.Group

	mu        sync.RWMutex
	loaded    bool
	source    string
	exchanges []models.Exchange
}

func NewCatalog(sources []data.ExchangeSource, logger Logger, enrichers ...Enricher) *Catalog {
	return &Catalog{
		sources:   sources,
		enrichers: enrichers,
		logger:    logger,
	}
}

// Source names the source the cached dataset came from, or "" before the
// first load.
func (c *Catalog) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// All returns a copy of the dataset, loading it on first use. Concurrent
// first calls share a single load.
func (c *Catalog) All(ctx context.Context) ([]models.Exchange, error) {
	exchanges, err := c.cached(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(exchanges), nil
}

// Reload drops the cache and loads again.
func (c *Catalog) Reload(ctx context.Context) ([]models.Exchange, error) {
	c.mu.Lock()
	c.loaded = false
	c.exchanges = nil
	c.source = ""
	c.mu.Unlock()

	return c.All(ctx)
}

func (c *Catalog) BySlug(ctx context.Context, slug string) (*models.Exchange, error) {
	exchanges, err := c.cached(ctx)
	if err != nil {
		return nil, err
	}
	return data.FindBySlug(exchanges, slug)
}

// TopPicks returns the featured exchanges: every record whose name contains
// Kraken, Binance or Bybit.
func (c *Catalog) TopPicks(ctx context.Context) ([]models.Exchange, error) {
	exchanges, err := c.cached(ctx)
	if err != nil {
		return nil, err
	}

	var picks []models.Exchange
	for _, e := range exchanges {
		name := strings.ToLower(e.AppName)
		if slices.ContainsFunc(topPickNames, func(pick string) bool { return strings.Contains(name, pick) }) {
			picks = append(picks, e)
		}
	}
	return picks, nil
}

// ByRegion returns the exchanges available in a region. The dataset carries
// no region data yet, so every known region sees the full list.
func (c *Catalog) ByRegion(ctx context.Context, region string) ([]models.Exchange, error) {
	if !slices.Contains(regions, strings.ToLower(region)) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return c.All(ctx)
}

// Regions lists the region ids ByRegion accepts.
func Regions() []string {
	return slices.Clone(regions)
}

func (c *Catalog) cached(ctx context.Context) ([]models.Exchange, error) {
	c.mu.RLock()
	if c.loaded {
		exchanges := c.exchanges
		c.mu.RUnlock()
		return exchanges, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("load", func() (interface{}, error) {
		source, exchanges, err := c.load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.loaded = true
		c.source = source
		c.exchanges = exchanges
		c.mu.Unlock()
		return exchanges, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Exchange), nil
}

func (c *Catalog) load(ctx context.Context) (string, []models.Exchange, error) {
	var errs error

	for _, source := range c.sources {
		exchanges, err := source.GetAllExchanges(ctx)
		if err == nil && len(exchanges) > 0 {
			c.logger.Info("loaded exchanges", "source", source.Name(), "count", len(exchanges))
			return source.Name(), c.enrich(ctx, exchanges), nil
		}
		if err == nil {
			err = errors.New("empty dataset")
		}
		c.logger.Error("failed to load exchanges", "source", source.Name(), "error", err)
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", source.Name(), err))
	}

	if errs == nil {
		errs = errors.New("no sources configured")
	}
	return "", nil, fmt.Errorf("failed to load exchanges from all sources: %w", errs)
}

// enrich applies every enricher in turn. A failing enricher is logged and
// skipped.
func (c *Catalog) enrich(ctx context.Context, exchanges []models.Exchange) []models.Exchange {
	for _, e := range c.enrichers {
		enriched, err := e.Enrich(ctx, exchanges)
		if err != nil {
			c.logger.Error("failed to enrich exchanges", "enricher", e.Name(), "error", err)
			continue
		}
		c.logger.Info("enriched exchanges", "enricher", e.Name())
		exchanges = enriched
	}
	return exchanges
}
