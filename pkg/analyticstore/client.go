package analyticstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the analytics store query API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Ensure Client implements Store interface
var _ Store = (*Client)(nil)

// NewClient creates a new analytics store HTTP client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Fetch queries a table via POST /api/v1/tables/{table}/query.
func (c *Client) Fetch(ctx context.Context, table string, filter FilterSpec) ([]Record, error) {
	if filter.OrganizationID == "" {
		return nil, ErrMissingOrganization
	}

	url := fmt.Sprintf("%s/api/v1/tables/%s/query", c.baseURL, table)

	body, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal filter: %v", ErrLookupFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrLookupFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrLookupFailed, resp.StatusCode, string(raw))
	}

	var result struct {
		Rows []Record `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrLookupFailed, err)
	}

	return result.Rows, nil
}
