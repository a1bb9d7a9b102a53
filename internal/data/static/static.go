package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/models"
)

//go:embed exchanges.json
var exchangesJSON []byte

// StaticSource serves the dataset compiled into the binary.
type StaticSource struct {
	raw []byte
}

func NewStaticSource() *StaticSource {
	return &StaticSource{raw: exchangesJSON}
}

// NewStaticSourceFromBytes serves an alternative JSON document with the same
// layout as the embedded one.
func NewStaticSourceFromBytes(raw []byte) *StaticSource {
	return &StaticSource{raw: slices.Clone(raw)}
}

func (s *StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) GetAllExchanges(ctx context.Context) ([]models.Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var exchanges []models.Exchange
	if err := json.Unmarshal(s.raw, &exchanges); err != nil {
		return nil, fmt.Errorf("failed to decode static dataset: %w", err)
	}
	return exchanges, nil
}

func (s *StaticSource) GetExchangeBySlug(ctx context.Context, slug string) (*models.Exchange, error) {
	exchanges, err := s.GetAllExchanges(ctx)
	if err != nil {
		return nil, err
	}
	return data.FindBySlug(exchanges, slug)
}
