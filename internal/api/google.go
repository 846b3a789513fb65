package api

import (
	"awty-football/internal/config"
	"awty-football/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

type Endpoints struct {
	TokenInfo string
	Sheets    string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		TokenInfo: "https://oauth2.googleapis.com/tokeninfo",
		Sheets:    "https://sheets.googleapis.com",
	}
}

// GoogleClient talks to the Google token info and Sheets values endpoints.
type GoogleClient struct {
	clientID    string
	sheetsToken string
	endpoints   Endpoints
	client      *fasthttp.Client
}

func NewGoogleClient(cfg *config.Config) *GoogleClient {
	return NewGoogleClientWithEndpoints(cfg, DefaultEndpoints())
}

func NewGoogleClientWithEndpoints(cfg *config.Config, endpoints Endpoints) *GoogleClient {
	return &GoogleClient{
		clientID:    cfg.GoogleClientID,
		sheetsToken: cfg.SheetsAccessToken,
		endpoints:   endpoints,
		client: &fasthttp.Client{
			MaxConnsPerHost:     20,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d", e.Status)
}

type TokenInfo struct {
	Subject       string `json:"sub"`
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Expiry        string `json:"exp"`
}

// VerifyIDToken checks a Google ID token and returns its claims. The token
// must be issued for our client id and carry a verified email.
func (c *GoogleClient) VerifyIDToken(ctx context.Context, credential string) (*TokenInfo, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured: %w", domain.ErrUnauthorized)
	}
	if credential == "" {
		return nil, fmt.Errorf("missing credential: %w", domain.ErrUnauthorized)
	}

	u := c.endpoints.TokenInfo + "?id_token=" + url.QueryEscape(credential)
	info, err := doRequest[TokenInfo](ctx, c, fasthttp.MethodGet, u, nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Status < 500 {
			return nil, fmt.Errorf("invalid google credential: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to verify google credential: %w", err)
	}

	if info.Audience != c.clientID {
		return nil, fmt.Errorf("credential issued for another client: %w", domain.ErrUnauthorized)
	}
	if info.EmailVerified != "true" || info.Email == "" {
		return nil, fmt.Errorf("email not verified: %w", domain.ErrUnauthorized)
	}
	return info, nil
}

type valueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

type UpdateValuesResponse struct {
	SpreadsheetID  string `json:"spreadsheetId"`
	UpdatedRange   string `json:"updatedRange"`
	UpdatedRows    int    `json:"updatedRows"`
	UpdatedColumns int    `json:"updatedColumns"`
	UpdatedCells   int    `json:"updatedCells"`
}

// UpdateValues overwrites a range of a spreadsheet with raw cell values.
func (c *GoogleClient) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]string) (*UpdateValuesResponse, error) {
	body, err := json.Marshal(valueRange{Range: rng, MajorDimension: "ROWS", Values: values})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sheet values: %w", err)
	}

	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		strings.TrimRight(c.endpoints.Sheets, "/"),
		url.PathEscape(spreadsheetID),
		url.PathEscape(rng),
	)
	return doRequest[UpdateValuesResponse](ctx, c, fasthttp.MethodPut, u, body)
}

func doRequest[T any](ctx context.Context, client *GoogleClient, method, url string, body []byte) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.Header.Set("Authorization", "Bearer "+client.sheetsToken)
		req.SetBody(body)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
