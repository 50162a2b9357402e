// Package headhunter is a minimal client for the hh.ru vacancies API.
package headhunter

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.hh.ru"
	userAgent = "c4soto/resumemate (c4soto@gmail.com)"
)

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a client. The token may be empty: hh.ru serves public vacancy
// searches without authorization, with tighter rate limits.
func New(logger *zap.Logger, token string) *Client {
	return &Client{
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Search requests a single page of vacancies matching params.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*Vacancies, error) {
	return c.search(ctx, params)
}
