// Package oms talks to the external order-management service that owns the
// authoritative order status. Every call here is best-effort: callers absorb
// failures and fall back to their local data.
package oms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type StatusClient interface {
	GetOrderStatus(ctx context.Context, orderID string) (*OrderStatus, error)
}

type OrderStatus struct {
	Status    string
	UpdatedAt time.Time
}

type statusResponse struct {
	Data struct {
		Status    string    `json:"status"`
		UpdatedAt time.Time `json:"updatedAt"`
	} `json:"data"`
}

type client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (StatusClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid order-management base url %q: %w", baseURL, err)
	}
	return &client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// GetOrderStatus fetches GET {base}/api/orders/:id and returns the reported
// status. A non-200 response or an empty status is treated as an error.
func (c *client) GetOrderStatus(ctx context.Context, orderID string) (*OrderStatus, error) {
	rel := &url.URL{Path: "/api/orders/" + orderID}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order-management returned status %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode order-management response: %w", err)
	}
	if body.Data.Status == "" {
		return nil, errors.New("order-management response carried no status")
	}

	return &OrderStatus{Status: body.Data.Status, UpdatedAt: body.Data.UpdatedAt}, nil
}
