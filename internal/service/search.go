package service

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"profilefinder/internal/client/googlecse"
)

// profileDomainScope restricts search results to public profile pages.
const profileDomainScope = "site:linkedin.com/in"

// searchPageSize is the fixed provider page size.
const searchPageSize = 10

// SearchClient abstracts the search provider.
type SearchClient interface {
	Search(ctx context.Context, q string, start, num int) (*googlecse.SearchResponse, error)
}

type SearchRequest struct {
	Keywords   string  `json:"keywords"`
	Location   *string `json:"location"`
	JobTitle   *string `json:"job_title"`
	Company    *string `json:"company"`
	StartIndex int     `json:"start_index"`
}

type SearchResult struct {
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Snippet   string  `json:"snippet"`
	Thumbnail *string `json:"thumbnail"`
}

type SearchResults struct {
	Results      []SearchResult `json:"results"`
	TotalResults string         `json:"total_results"`
	SearchTime   float64        `json:"search_time"`
}

type SearchService struct {
	Client SearchClient
	Logger *zap.Logger
}

// Search validates the request, relays it to the provider, and reshapes the
// response. Validation failures happen before any outbound call.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResults, error) {
	req.Keywords = strings.TrimSpace(req.Keywords)
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Keywords, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	start := req.StartIndex
	if start < 1 {
		start = 1
	}

	resp, err := s.Client.Search(ctx, buildQuery(req), start, searchPageSize)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("profile search failed", zap.Error(err))
		}
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, SearchResult{
			Title:     item.Title,
			Link:      item.Link,
			Snippet:   item.Snippet,
			Thumbnail: item.Thumbnail(),
		})
	}

	return &SearchResults{
		Results:      results,
		TotalResults: resp.SearchInformation.TotalResults,
		SearchTime:   resp.SearchInformation.SearchTime,
	}, nil
}

// buildQuery concatenates the present request fields into one free-text
// query scoped to the profile-hosting domain.
func buildQuery(req SearchRequest) string {
	parts := []string{req.Keywords}
	for _, opt := range []*string{req.Location, req.JobTitle, req.Company} {
		if opt != nil && strings.TrimSpace(*opt) != "" {
			parts = append(parts, strings.TrimSpace(*opt))
		}
	}
	return strings.Join(parts, " ") + " " + profileDomainScope
}
