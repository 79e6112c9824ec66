package giphy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/timmy/giftrend/internal/domain"
)

const defaultBaseURL = "https://api.giphy.com"

// TrendingResponse is the decoded trending envelope. It exists only to
// carry the item list out of FetchTrending; callers unwrap Data and
// discard it.
type TrendingResponse struct {
	Data []domain.MediaItem `json:"data"`
}

// Config holds configuration for the Giphy client.
type Config struct {
	// BaseURL overrides the provider endpoint. Empty means the public
	// Giphy API host. Tests point this at a local server.
	BaseURL string
}

// Client issues requests against the Giphy REST API.
type Client struct {
	http *resty.Client
}

// NewClient creates a new Giphy client.
func NewClient(cfg *Config) *Client {
	baseURL := defaultBaseURL
	if cfg != nil && cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// FetchTrending performs a single GET of the trending endpoint and
// decodes the envelope. Exactly one outbound call per invocation; no
// retry beyond what the transport itself does (nothing).
func (c *Client) FetchTrending(ctx context.Context, apiKey string) (*TrendingResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("api_key", apiKey).
		Get("/v1/gifs/trending")
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, &AuthError{StatusCode: code}
	case code != http.StatusOK:
		return nil, &APIError{StatusCode: code}
	}

	return decodeTrending(resp.Body())
}

// decodeTrending maps the raw envelope body to a TrendingResponse. The
// top-level data key is required; an empty list is a valid feed.
func decodeTrending(body []byte) (*TrendingResponse, error) {
	var envelope struct {
		Data *[]domain.MediaItem `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if envelope.Data == nil {
		return nil, &DecodeError{Err: errors.New("missing data field")}
	}

	items := *envelope.Data
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}

	return &TrendingResponse{Data: items}, nil
}

// validateItem rejects items missing the fields every well-formed
// provider response carries.
func validateItem(item domain.MediaItem) error {
	if item.ID == "" {
		return errors.New("missing id")
	}
	if item.Images.Original.URL == "" {
		return errors.New("missing images.original.url")
	}
	if item.Images.FixedWidth.URL == "" {
		return errors.New("missing images.fixed_width.url")
	}
	return nil
}
