package service

import (
	"context"

	"go.uber.org/zap"

	"profilefinder/internal/repository"
)

type StoreStats struct {
	Profiles int64                 `json:"profiles"`
	Tags     []repository.TagCount `json:"tags"`
}

// StatsService reports store-level counts for the stats endpoint and the
// periodic stats log job.
type StatsService struct {
	Repo   repository.ProfileRepository
	Logger *zap.Logger
}

func (s *StatsService) Snapshot(ctx context.Context) (*StoreStats, error) {
	total, err := s.Repo.CountProfiles(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.Repo.ListTagCounts(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []repository.TagCount{}
	}
	return &StoreStats{Profiles: total, Tags: tags}, nil
}

// LogSnapshot is the cron job body: it logs the current counts and never
// fails the scheduler.
func (s *StatsService) LogSnapshot(ctx context.Context) {
	stats, err := s.Snapshot(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("store stats snapshot failed", zap.Error(err))
		}
		return
	}
	if s.Logger != nil {
		s.Logger.Info("store stats",
			zap.Int64("profiles", stats.Profiles),
			zap.Int("distinct_tags", len(stats.Tags)),
		)
	}
}
