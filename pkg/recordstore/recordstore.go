package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is the HTTP wrapper for the record store REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ IRecordStore = (*Client)(nil)

// NewClient creates a new record store HTTP client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ListDocuments lists documents via GET /api/v1/collections/{collection}/documents.
func (c *Client) ListDocuments(ctx context.Context, collection string, q Query) ([]Document, error) {
	u := fmt.Sprintf("%s/api/v1/collections/%s/documents?%s", c.baseURL, collection, q.encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list documents request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call record store list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("record store list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode record store list response: %w", err)
	}
	return listResp.Documents, nil
}

// PutDocument upserts via PUT /api/v1/collections/{collection}/documents.
func (c *Client) PutDocument(ctx context.Context, collection string, req PutRequest) (*Document, error) {
	u := fmt.Sprintf("%s/api/v1/collections/%s/documents", c.baseURL, collection)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal put document request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build put document request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call record store put API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("record store put error %d: %s", resp.StatusCode, string(raw))
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode record store put response: %w", err)
	}
	return &doc, nil
}

func (q Query) encode() string {
	v := url.Values{}
	if q.UserID != "" {
		v.Set("userId", q.UserID)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Completed != nil {
		v.Set("completed", strconv.FormatBool(*q.Completed))
	}
	if !q.From.IsZero() {
		v.Set("from", q.From.Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		v.Set("to", q.To.Format(time.RFC3339))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortDesc {
		v.Set("sort", "-createTime")
	}
	return v.Encode()
}
