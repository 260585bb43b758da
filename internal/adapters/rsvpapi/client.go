package rsvpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Endpoint paths served by the RSVP backend.
const (
	ConfirmPath = "/confirmar-presenca"
	ListPath    = "/admin/confirmados"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

var errNotJSON = errors.New("body is not valid JSON")

// ConfirmResult is the body of a successful confirmation, when the server sends one.
type ConfirmResult struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	ConfirmedAt time.Time `json:"data_confirmacao"`
	Status      string    `json:"status"`
}

// ListedConfirmation is one row of the admin listing.
type ListedConfirmation struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	ConfirmedAt string `json:"data_confirmacao"`
	Status      string `json:"status"`
}

// ConfirmationList is the admin listing.
type ConfirmationList struct {
	Total         int                  `json:"total"`
	Confirmations []ListedConfirmation `json:"confirmacoes"`
}

// Client calls the RSVP backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the backend at baseURL (scheme and host, e.g. "http://localhost:8080").
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// Confirm posts {"nome": name} to the confirmation endpoint. Every response
// body must be JSON: otherwise it returns *DecodeError, whatever the status.
// Non-2xx JSON responses return *APIError; requests that got no response
// return *NetworkError.
func (c *Client) Confirm(ctx context.Context, name string) (*ConfirmResult, error) {
	payload, err := json.Marshal(map[string]string{"nome": name})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ConfirmPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Status: status, Err: errNotJSON}
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Status: status, Detail: detailFrom(body)}
	}

	result := &ConfirmResult{Name: name}
	// Any JSON value is a success; fields are filled when it is a confirmation object.
	_ = json.Unmarshal(body, result)
	return result, nil
}

// ListConfirmations fetches the admin listing using the admin password.
func (c *Client) ListConfirmations(ctx context.Context, password string) (*ConfirmationList, error) {
	u := c.baseURL + ListPath + "?" + url.Values{"senha": {password}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Status: status, Err: errNotJSON}
	}
	if status != http.StatusOK {
		return nil, &APIError{Status: status, Detail: detailFrom(body)}
	}
	var list ConfirmationList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &DecodeError{Status: status, Err: err}
	}
	return &list, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}
	return resp.StatusCode, body, nil
}

// detailFrom extracts a string "detail" field from a JSON error body.
// Non-JSON bodies and non-string details yield "".
func detailFrom(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
