package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"profilefinder/internal/models"
	"profilefinder/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertProfile(ctx context.Context, item *models.Profile) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	err := s.db.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (s *Store) ProfileExistsByLink(ctx context.Context, link string) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("link = ?", link).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ListProfiles(ctx context.Context, params repository.ListProfilesParams) ([]models.Profile, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Profile{})
	if params.SearchTerm != nil && strings.TrimSpace(*params.SearchTerm) != "" {
		pattern := ilikePattern(strings.TrimSpace(*params.SearchTerm))
		query = query.Where("title ILIKE ? OR snippet ILIKE ?", pattern, pattern)
	}
	if len(params.Tags) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(profiles.tags) AS t(tag) WHERE t.tag IN ?)",
			params.Tags,
		)
	}
	limit := normalizeLimit(params.Limit, 1000)
	var items []models.Profile
	if err := query.Order("saved_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateProfileTags(ctx context.Context, id string, tags []string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if tags == nil {
		tags = []string{}
	}
	res := s.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Update("tags", models.TagList(tags))
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteProfile(ctx context.Context, id string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Profile{})
	return res.RowsAffected, res.Error
}

func (s *Store) CountProfiles(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Profile{}).Count(&count).Error
	return count, err
}

func (s *Store) ListTagCounts(ctx context.Context) ([]repository.TagCount, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []repository.TagCount
	err := s.db.WithContext(ctx).
		Table("profiles").
		Select("t.tag AS tag, COUNT(*) AS count").
		Joins("CROSS JOIN LATERAL jsonb_array_elements_text(profiles.tags) AS t(tag)").
		Group("t.tag").
		Order("count DESC, tag ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ilikePattern builds a substring ILIKE pattern, escaping LIKE wildcards so
// a term like "100%" matches the literal text rather than everything.
func ilikePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > def {
		return def
	}
	return limit
}
