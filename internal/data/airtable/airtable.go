package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/models"
	"github.com/songzhibin97/rankfi/internal/utils/request"
)

const (
	defaultBaseURL = "https://api.airtable.com"
	maxPageSize    = 100
	// 防止 offset 不收敛时无限翻页
	maxPages = 1000
)

// Options configures an AirtableSource.
type Options struct {
	BaseURL  string
	BaseID   string
	Table    string
	View     string
	APIKey   string
	PageSize int
}

// AirtableSource reads exchange records from an Airtable base. Each record's
// fields object uses the same keys as the static dataset.
type AirtableSource struct {
	baseURL    string
	baseID     string
	table      string
	view       string
	apiKey     string
	pageSize   int
	httpClient *resty.Client
}

func NewAirtableSource(opts Options) *AirtableSource {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return &AirtableSource{
		baseURL:    baseURL,
		baseID:     opts.BaseID,
		table:      opts.Table,
		view:       opts.View,
		apiKey:     opts.APIKey,
		pageSize:   pageSize,
		httpClient: request.Request,
	}
}

func (a *AirtableSource) Name() string {
	return "airtable"
}

type listResponse struct {
	Records []struct {
		ID     string          `json:"id"`
		Fields models.Exchange `json:"fields"`
	} `json:"records"`
	Offset string `json:"offset"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *AirtableSource) GetAllExchanges(ctx context.Context) ([]models.Exchange, error) {
	if a.baseID == "" || a.table == "" {
		return nil, fmt.Errorf("airtable base id and table are required")
	}
	if a.apiKey == "" {
		return nil, fmt.Errorf("airtable api key is required")
	}

	endpoint := fmt.Sprintf("%s/v0/%s/%s", a.baseURL, url.PathEscape(a.baseID), url.PathEscape(a.table))

	var exchanges []models.Exchange
	offset := ""
	for page := 0; page < maxPages; page++ {
		req := a.httpClient.R().
			SetContext(ctx).
			SetAuthToken(a.apiKey).
			SetQueryParam("pageSize", strconv.Itoa(a.pageSize))
		if a.view != "" {
			req.SetQueryParam("view", a.view)
		}
		if offset != "" {
			req.SetQueryParam("offset", offset)
		}

		resp, err := req.Get(endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}

		if resp.StatusCode() != http.StatusOK {
			var apiErr errorResponse
			if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Type != "" {
				return nil, fmt.Errorf("unexpected status code: %d (%s: %s)", resp.StatusCode(), apiErr.Error.Type, apiErr.Error.Message)
			}
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
		}

		var result listResponse
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		for _, record := range result.Records {
			if record.Fields.AppName == "" {
				// 空行
				continue
			}
			exchanges = append(exchanges, record.Fields)
		}

		if result.Offset == "" {
			return exchanges, nil
		}
		offset = result.Offset
	}

	return nil, fmt.Errorf("airtable paging did not finish after %d pages", maxPages)
}

func (a *AirtableSource) GetExchangeBySlug(ctx context.Context, slug string) (*models.Exchange, error) {
	exchanges, err := a.GetAllExchanges(ctx)
	if err != nil {
		return nil, err
	}
	return data.FindBySlug(exchanges, slug)
}
