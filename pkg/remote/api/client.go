// Package api implements the remote store contract against a hosted journal
// API speaking a JSON success/message/data envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tableflip.dev/journali/pkg/remote"
)

type (
	// Response is the envelope every API endpoint answers with.
	Response struct {
		Success bool   `json:"success"`
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	// EntriesResponse is the Data payload of a fetch.
	EntriesResponse struct {
		Total   int          `json:"total"`
		Entries []remote.Row `json:"entries"`
	}
)

// Client talks to the journal API. The embedded http.Client carries the
// request timeout; no other deadline is applied.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ remote.Store = (*Client)(nil)

// New builds a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchEntries lists the user's rows inside the inclusive [start, end] range.
func (c *Client) FetchEntries(ctx context.Context, user, start, end string) ([]remote.Row, error) {
	q := url.Values{}
	q.Set("user", user)
	q.Set("start", start)
	q.Set("end", end)
	endpoint := fmt.Sprintf("%s/api/entries?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var entriesResp EntriesResponse
	if err := json.Unmarshal(data, &entriesResp); err != nil {
		return nil, fmt.Errorf("api: decoding entries data: %w", err)
	}
	return entriesResp.Entries, nil
}

// UpsertEntry writes content at (user, date); the server replaces on the
// (user, date) conflict key.
func (c *Client) UpsertEntry(ctx context.Context, user, date, content string) error {
	reqData := struct {
		User    string `json:"user"`
		Date    string `json:"date"`
		Content string `json:"content"`
	}{User: user, Date: date, Content: content}

	reqBody, err := json.Marshal(reqData)
	if err != nil {
		return fmt.Errorf("api: encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/entries", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// DeleteEntry removes the row at (user, date); deleting a missing row
// succeeds.
func (c *Client) DeleteEntry(ctx context.Context, user, date string) error {
	q := url.Values{}
	q.Set("user", user)
	q.Set("date", date)
	endpoint := fmt.Sprintf("%s/api/entries?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}

	_, err = c.do(req)
	return err
}

// do executes the request and unwraps the envelope, returning the re-encoded
// Data payload for the caller to decode into its own shape.
func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: making request: %w", err)
	}
	defer res.Body.Close()

	var apiRes Response
	if err := json.NewDecoder(res.Body).Decode(&apiRes); err != nil {
		return nil, fmt.Errorf("api: decoding response: %w", err)
	}

	if res.StatusCode != http.StatusOK || !apiRes.Success {
		if apiRes.Message != "" {
			return nil, fmt.Errorf("api: %s", apiRes.Message)
		}
		return nil, fmt.Errorf("api: unexpected status %d", res.StatusCode)
	}

	data, err := json.Marshal(apiRes.Data)
	if err != nil {
		return nil, fmt.Errorf("api: re-encoding data: %w", err)
	}
	return data, nil
}
