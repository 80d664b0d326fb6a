package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com"

// Client reads a fixed range from the Google Sheets values API.
//
// It is a single-attempt I/O boundary: exactly one outbound call per
// invocation, no retries and no caching. Retry and cache policy belong to
// the caller.
type Client struct {
	baseURL       string
	spreadsheetID string
	sheetRange    string
	apiKey        string
	client        *http.Client
}

// NewClient creates a Client for the given spreadsheet and range. The
// timeout bounds each upstream call, since the API offers no other way to
// abandon a hung request.
func NewClient(spreadsheetID, sheetRange, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		apiKey:        apiKey,
		client:        &http.Client{Timeout: timeout},
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

// FetchRows performs one authenticated read of the configured range and
// returns the raw rows, or an empty slice when the sheet has no values.
//
// Failures are classified: a missing API key is a *ConfigError (no request
// is sent), 403 and 404 map to *UpstreamError with the matching Kind, and
// transport errors, undecodable bodies, or any other non-2xx status are
// transient.
func (c *Client) FetchRows(ctx context.Context) ([][]string, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Missing: "GOOGLE_SHEETS_API_KEY"}
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(c.sheetRange),
		url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransient,
			Message: fmt.Sprintf("sheets request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransient,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("reading sheets response: %v", err),
		}
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, &UpstreamError{
			Kind:    KindForbidden,
			Status:  resp.StatusCode,
			Message: "sheets API returned 403: check the spreadsheet sharing settings",
		}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &UpstreamError{
			Kind:    KindNotFound,
			Status:  resp.StatusCode,
			Message: "sheets API returned 404: spreadsheet ID or range not found",
		}
	case resp.StatusCode != http.StatusOK:
		return nil, &UpstreamError{
			Kind:    KindTransient,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("sheets API error (status %d): %s", resp.StatusCode, body),
		}
	}

	var result valuesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &UpstreamError{
			Kind:    KindTransient,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("parsing sheets response: %v", err),
		}
	}
	if result.Values == nil {
		return [][]string{}, nil
	}
	return result.Values, nil
}
