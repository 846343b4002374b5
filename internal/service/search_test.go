package service

import (
	"context"
	"errors"
	"testing"

	"profilefinder/internal/client/googlecse"
)

type stubSearchClient struct {
	resp  *googlecse.SearchResponse
	err   error
	calls int

	gotQuery string
	gotStart int
	gotNum   int
}

func (s *stubSearchClient) Search(ctx context.Context, q string, start, num int) (*googlecse.SearchResponse, error) {
	s.calls++
	s.gotQuery = q
	s.gotStart = start
	s.gotNum = num
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func strPtr(v string) *string { return &v }

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name string
		req  SearchRequest
		want string
	}{
		{
			name: "keywords only",
			req:  SearchRequest{Keywords: "golang engineer"},
			want: "golang engineer site:linkedin.com/in",
		},
		{
			name: "all fields",
			req: SearchRequest{
				Keywords: "golang",
				Location: strPtr("Berlin"),
				JobTitle: strPtr("Backend Engineer"),
				Company:  strPtr("Acme"),
			},
			want: "golang Berlin Backend Engineer Acme site:linkedin.com/in",
		},
		{
			name: "blank optional fields skipped",
			req: SearchRequest{
				Keywords: "golang",
				Location: strPtr("  "),
				Company:  strPtr("Acme"),
			},
			want: "golang Acme site:linkedin.com/in",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := buildQuery(tc.req); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestSearch_EmptyKeywordsFailsBeforeAnyCall(t *testing.T) {
	client := &stubSearchClient{}
	svc := &SearchService{Client: client}

	for _, keywords := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), SearchRequest{Keywords: keywords})
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("keywords=%q err=%v want ErrInvalidQuery", keywords, err)
		}
	}
	if client.calls != 0 {
		t.Fatalf("provider called %d times, want 0", client.calls)
	}
}

func TestSearch_DefaultsStartIndexAndPageSize(t *testing.T) {
	client := &stubSearchClient{resp: &googlecse.SearchResponse{}}
	svc := &SearchService{Client: client}

	if _, err := svc.Search(context.Background(), SearchRequest{Keywords: "golang"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if client.gotStart != 1 {
		t.Fatalf("start=%d want 1", client.gotStart)
	}
	if client.gotNum != 10 {
		t.Fatalf("num=%d want 10", client.gotNum)
	}
}

func TestSearch_ReshapesProviderResponse(t *testing.T) {
	client := &stubSearchClient{resp: &googlecse.SearchResponse{
		Items: []googlecse.Item{
			{
				Title:   "Jane Doe - Engineer",
				Link:    "https://linkedin.com/in/jane",
				Snippet: "Engineer at Acme",
				Pagemap: googlecse.Pagemap{CSEThumbnail: []googlecse.Thumbnail{{Src: "https://img.example/jane.jpg"}}},
			},
			{
				Title:   "John Roe",
				Link:    "https://linkedin.com/in/john",
				Snippet: "Designer",
			},
		},
		SearchInformation: googlecse.SearchInformation{TotalResults: "421", SearchTime: 0.31},
	}}
	svc := &SearchService{Client: client}

	got, err := svc.Search(context.Background(), SearchRequest{Keywords: "engineer", StartIndex: 11})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if client.gotStart != 11 {
		t.Fatalf("start=%d want 11", client.gotStart)
	}
	if len(got.Results) != 2 {
		t.Fatalf("results=%d want 2", len(got.Results))
	}
	first := got.Results[0]
	if first.Title != "Jane Doe - Engineer" || first.Link != "https://linkedin.com/in/jane" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if first.Thumbnail == nil || *first.Thumbnail != "https://img.example/jane.jpg" {
		t.Fatalf("thumbnail=%v want jane.jpg", first.Thumbnail)
	}
	if got.Results[1].Thumbnail != nil {
		t.Fatalf("thumbnail=%v want nil when pagemap absent", *got.Results[1].Thumbnail)
	}
	if got.TotalResults != "421" {
		t.Fatalf("total_results=%q want 421", got.TotalResults)
	}
	if got.SearchTime != 0.31 {
		t.Fatalf("search_time=%v want 0.31", got.SearchTime)
	}
}

func TestSearch_ProviderErrorPassesThrough(t *testing.T) {
	apiErr := &googlecse.APIError{Status: 429, Body: "quota exceeded"}
	client := &stubSearchClient{err: apiErr}
	svc := &SearchService{Client: client}

	_, err := svc.Search(context.Background(), SearchRequest{Keywords: "golang"})
	var got *googlecse.APIError
	if !errors.As(err, &got) || got.Status != 429 {
		t.Fatalf("err=%v want APIError 429", err)
	}
}
