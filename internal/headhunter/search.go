package headhunter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

const (
	SearchPath = "/vacancies"
	// Max value accepted by the API for per_page.
	MaxPerPage = 50
)

type SearchParams struct {
	Text    string
	PerPage int
	OrderBy string
}

func (c *Client) search(ctx context.Context, params *SearchParams) (*Vacancies, error) {
	perPage := params.PerPage
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	q := url.Values{}
	q.Set("text", params.Text)
	q.Set("per_page", fmt.Sprintf("%d", perPage))
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	items, err := c.GetItems(ctx, fmt.Sprintf("%s%s", c.APIURL, SearchPath), q)
	if err != nil {
		return nil, err
	}

	var vacancies []*Vacancy
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &vacancies,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, err
	}

	return &Vacancies{
		Items: vacancies,
	}, nil
}
