// Package worldcat is a small client for the WorldCat Metadata API. Every
// OCLC number argument is checked with the oclc package before a request is
// made, and failed responses surface as *ServiceError.
package worldcat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"worldcat/internal/oclc"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://metadata.api.oclc.org"

type Config struct {
	BaseURL     string
	AccessToken string
	UserAgent   string
	RPS         int
	Timeout     time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Every(time.Second / time.Duration(cfg.RPS))
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		token:     cfg.AccessToken,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// ControlNumber pairs a requested OCLC number with the current one.
type ControlNumber struct {
	Requested string `json:"requested"`
	Current   string `json:"current"`
}

// CurrentNumbersResponse matches bibs/current
type CurrentNumbersResponse struct {
	ControlNumbers []ControlNumber `json:"controlNumbers"`
}

// HoldingResponse matches institution/holdings/{oclcNumber}/set
type HoldingResponse struct {
	ControlNumber          string `json:"controlNumber"`
	RequestedControlNumber string `json:"requestedControlNumber"`
	InstitutionCode        string `json:"institutionCode"`
	InstitutionSymbol      string `json:"institutionSymbol"`
	Success                bool   `json:"success"`
	Message                string `json:"message"`
	Action                 string `json:"action"`
}

// GetBib returns the MARCXML record for a single OCLC number.
func (c *Client) GetBib(ctx context.Context, oclcNumber any) ([]byte, error) {
	n, err := oclc.VerifyNumber(oclcNumber)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/worldcat/manage/bibs/%d", c.baseURL, n)
	return c.do(ctx, http.MethodGet, u, "application/marcxml+xml")
}

// GetCurrentOCLCNumbers resolves merged or retired numbers to their current value.
func (c *Client) GetCurrentOCLCNumbers(ctx context.Context, oclcNumbers any) (*CurrentNumbersResponse, error) {
	numbers, err := oclc.VerifyNumbers(oclcNumbers)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/worldcat/manage/bibs/current?oclcNumbers=%s",
		c.baseURL, url.QueryEscape(oclc.Join(numbers)))

	var res CurrentNumbersResponse
	if err := c.doJSON(ctx, http.MethodGet, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SetHoldings sets the authenticated institution's holding on a record.
func (c *Client) SetHoldings(ctx context.Context, oclcNumber any) (*HoldingResponse, error) {
	n, err := oclc.VerifyNumber(oclcNumber)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/worldcat/manage/institution/holdings/%d/set", c.baseURL, n)

	var res HoldingResponse
	if err := c.doJSON(ctx, http.MethodPost, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) doJSON(ctx context.Context, method, u string, target any) error {
	body, err := c.do(ctx, method, u, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, u, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newServiceError(HTTPResponse{Response: resp, Body: body})
	}
	return body, nil
}
