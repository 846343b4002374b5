package googlecse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// SearchResponse mirrors the slice of the Custom Search payload this service
// consumes: result items plus the provider's own search metadata.
type SearchResponse struct {
	Items             []Item            `json:"items"`
	SearchInformation SearchInformation `json:"searchInformation"`
}

type SearchInformation struct {
	TotalResults string  `json:"totalResults"`
	SearchTime   float64 `json:"searchTime"`
}

type Item struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Snippet string  `json:"snippet"`
	Pagemap Pagemap `json:"pagemap"`
}

type Pagemap struct {
	CSEThumbnail []Thumbnail `json:"cse_thumbnail"`
}

type Thumbnail struct {
	Src string `json:"src"`
}

// Thumbnail returns the first page-metadata thumbnail URL, or nil when the
// item carries none.
func (i Item) Thumbnail() *string {
	if len(i.Pagemap.CSEThumbnail) == 0 {
		return nil
	}
	src := i.Pagemap.CSEThumbnail[0].Src
	if src == "" {
		return nil
	}
	return &src
}

// Search runs one Custom Search query. start is the provider's 1-based
// result offset; num is the page size.
func (c *Client) Search(ctx context.Context, q string, start, num int) (*SearchResponse, error) {
	if q == "" {
		return nil, fmt.Errorf("query is required")
	}
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("cx", c.engineID)
	query.Set("q", q)
	if start > 0 {
		query.Set("start", strconv.Itoa(start))
	}
	if num > 0 {
		query.Set("num", strconv.Itoa(num))
	}
	body, err := c.doRequest(ctx, "/customsearch/v1", query)
	if err != nil {
		return nil, err
	}
	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if resp.SearchInformation.TotalResults == "" {
		resp.SearchInformation.TotalResults = "0"
	}
	return &resp, nil
}
