package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient talks to the dashboard API over HTTP. Connection-level failures
// surface as *TransportError, non-2xx responses as *APIError.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.get(ctx, "/api/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetItem(ctx context.Context, id int) (*Item, error) {
	var item Item
	err := c.get(ctx, fmt.Sprintf("/api/items/%d", id), &item)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) SearchItems(ctx context.Context, query string) ([]Item, error) {
	var items []Item
	path := "/api/items/search?query=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	var item Item
	if err := c.send(ctx, http.MethodPost, "/api/items", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id int, input ItemInput) (*Item, error) {
	var item Item
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), input, &item)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int) (bool, error) {
	err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *HTTPClient) ListTypes(ctx context.Context) ([]ItemType, error) {
	var types []ItemType
	if err := c.get(ctx, "/api/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context, typeID *int) ([]Category, error) {
	path := "/api/categories"
	if typeID != nil {
		path = fmt.Sprintf("/api/categories?typeId=%d", *typeID)
	}
	var categories []Category
	if err := c.get(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// readAPIError extracts the server's error envelope, falling back to the bare
// status when the body is not the expected shape.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}
