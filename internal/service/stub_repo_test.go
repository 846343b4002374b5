package service

import (
	"context"
	"sort"
	"strings"

	"profilefinder/internal/models"
	"profilefinder/internal/repository"
)

// stubRepo is a test-only in-memory implementation of
// repository.ProfileRepository.
type stubRepo struct {
	profiles  map[string]models.Profile
	insertErr error

	lastList repository.ListProfilesParams
}

func newStubRepo() *stubRepo {
	return &stubRepo{profiles: map[string]models.Profile{}}
}

func (s *stubRepo) InsertProfile(ctx context.Context, item *models.Profile) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.profiles[item.ID] = *item
	return nil
}

func (s *stubRepo) ProfileExistsByLink(ctx context.Context, link string) (bool, error) {
	for _, p := range s.profiles {
		if p.Link == link {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) ListProfiles(ctx context.Context, params repository.ListProfilesParams) ([]models.Profile, error) {
	s.lastList = params
	var out []models.Profile
	for _, p := range s.profiles {
		if params.SearchTerm != nil {
			term := strings.ToLower(*params.SearchTerm)
			if !strings.Contains(strings.ToLower(p.Title), term) &&
				!strings.Contains(strings.ToLower(p.Snippet), term) {
				continue
			}
		}
		if len(params.Tags) > 0 && !intersects(p.Tags, params.Tags) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (s *stubRepo) UpdateProfileTags(ctx context.Context, id string, tags []string) (int64, error) {
	p, ok := s.profiles[id]
	if !ok {
		return 0, nil
	}
	p.Tags = models.TagList(tags)
	s.profiles[id] = p
	return 1, nil
}

func (s *stubRepo) DeleteProfile(ctx context.Context, id string) (int64, error) {
	if _, ok := s.profiles[id]; !ok {
		return 0, nil
	}
	delete(s.profiles, id)
	return 1, nil
}

func (s *stubRepo) CountProfiles(ctx context.Context) (int64, error) {
	return int64(len(s.profiles)), nil
}

func (s *stubRepo) ListTagCounts(ctx context.Context) ([]repository.TagCount, error) {
	counts := map[string]int64{}
	for _, p := range s.profiles {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}
	var out []repository.TagCount
	for tag, n := range counts {
		out = append(out, repository.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

func intersects(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
