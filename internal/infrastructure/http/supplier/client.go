package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"oficina/internal/config"
	"oficina/pkg/logger"
)

// PriceUpdate is one row of the supplier price list. Quantity is the amount
// the supplier delivered since the last sync, zero for price-only changes.
type PriceUpdate struct {
	PartCode  string  `json:"part_code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Supplier  string  `json:"supplier"`
}

type Client struct {
	httpClient *http.Client
	cfg        config.SupplierConfig
	logger     logger.Logger
}

func NewClient(cfg config.SupplierConfig, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type priceListResponse struct {
	Data       []PriceUpdate `json:"data"`
	TotalPages int           `json:"total_pages"`
}

// FetchPriceUpdates pulls every price-list page updated since the given
// instant. Page one is always fetched first to learn the page count; the
// remaining pages go through the worker pool when more than one worker is
// configured, otherwise they are walked sequentially with a sleep between
// pages to stay under the supplier's rate limit.
func (c *Client) FetchPriceUpdates(ctx context.Context, updatedSince *time.Time) ([]PriceUpdate, error) {
	if c.cfg.APIKey == "" || c.cfg.ShopID == "" {
		return nil, fmt.Errorf("supplier api_key or shop_id is empty")
	}

	first, err := c.fetchPage(ctx, 1, updatedSince)
	if err != nil {
		return nil, err
	}

	updates := make([]PriceUpdate, 0, len(first.Data))
	updates = append(updates, first.Data...)

	totalPages := first.TotalPages
	if totalPages <= 1 {
		return updates, nil
	}

	c.logger.Info("fetching supplier price list",
		logger.Int("total_pages", totalPages),
		logger.Int("workers", c.cfg.Workers),
	)

	if c.cfg.Workers > 1 {
		rest, err := c.fetchPagesConcurrent(ctx, 2, totalPages, updatedSince)
		if err != nil {
			return nil, err
		}
		return append(updates, rest...), nil
	}

	sleep := time.Duration(c.cfg.SleepMS) * time.Millisecond
	if sleep <= 0 {
		sleep = time.Second
	}

	for page := 2; page <= totalPages; page++ {
		select {
		case <-ctx.Done():
			return updates, ctx.Err()
		case <-time.After(sleep):
		}

		body, err := c.fetchPage(ctx, page, updatedSince)
		if err != nil {
			return nil, err
		}
		if len(body.Data) == 0 {
			break
		}
		updates = append(updates, body.Data...)
	}

	return updates, nil
}

func (c *Client) fetchPage(ctx context.Context, page int, updatedSince *time.Time) (*priceListResponse, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier base url: %w", err)
	}

	pageSize := c.cfg.PageSize
	if pageSize <= 0 {
		pageSize = 500
	}

	u := *base
	u.Path = fmt.Sprintf("%s/shops/%s/price-list", base.Path, c.cfg.ShopID)

	q := u.Query()
	q.Set("api_key", c.cfg.APIKey)
	q.Set("page_size", fmt.Sprintf("%d", pageSize))
	q.Set("page_number", fmt.Sprintf("%d", page))
	q.Set("option_sort", "updated_at_desc")
	if updatedSince != nil {
		q.Set("updated_since", fmt.Sprintf("%d", updatedSince.Unix()))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call supplier api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supplier api status %d", resp.StatusCode)
	}

	var body priceListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &body, nil
}
