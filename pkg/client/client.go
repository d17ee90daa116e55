// Package client is an HTTP client for the back-office ledger API, used by
// the CLI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config represents the configuration for the API client.
type Config struct {
	APIURL  string
	Timeout time.Duration // Default: 30 seconds
}

// Client is a back-office ledger API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a new API client.
func New(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: config.APIURL,
	}
}

// Login authenticates and stores the session token for subsequent requests.
func (c *Client) Login(username, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.parseError(resp)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.token = login.Token
	return nil
}

// ImportSales submits a batch of sales rows and returns the imported count.
func (c *Client) ImportSales(rows []SaleRow) (int, error) {
	var result importResponse
	payload := map[string]interface{}{"sales": rows}
	if err := c.post("/api/1/sales/import", payload, &result); err != nil {
		return 0, err
	}
	return result.Imported, nil
}

// Summary fetches the period report.
func (c *Client) Summary(from, to string) (*Summary, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var result summaryResponse
	if err := c.get("/api/1/reports/summary?"+query.Encode(), &result); err != nil {
		return nil, err
	}
	return &result.Summary, nil
}

// DebtSummary fetches the supplier debt breakdown.
func (c *Client) DebtSummary() (*DebtSummary, error) {
	var result debtResponse
	if err := c.get("/api/1/reports/debt", &result); err != nil {
		return nil, err
	}
	return &result.Debt, nil
}

// get makes an authenticated GET request and decodes the response.
func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// post makes an authenticated POST request and decodes the response.
func (c *Client) post(path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.parseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseError parses an error response from the API.
func (c *Client) parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("API error (status %d): failed to read error response", resp.StatusCode)
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if errResp.ErrorDescription != "" {
		return fmt.Errorf("API error: %s - %s", errResp.Error, errResp.ErrorDescription)
	}
	return fmt.Errorf("API error: %s", errResp.Error)
}
