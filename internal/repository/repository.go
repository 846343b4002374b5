package repository

import (
	"context"
	"errors"

	"profilefinder/internal/models"
)

// ErrDuplicateKey is returned when an insert violates the unique index on
// profiles.link.
var ErrDuplicateKey = errors.New("duplicate key")

type ListProfilesParams struct {
	// SearchTerm matches title or snippet, case-insensitive substring.
	SearchTerm *string
	// Tags matches profiles whose tag list intersects this set.
	Tags  []string
	Limit int
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type ProfileRepository interface {
	InsertProfile(ctx context.Context, item *models.Profile) error
	ProfileExistsByLink(ctx context.Context, link string) (bool, error)
	ListProfiles(ctx context.Context, params ListProfilesParams) ([]models.Profile, error)
	// UpdateProfileTags replaces the full tag list; returns rows matched.
	UpdateProfileTags(ctx context.Context, id string, tags []string) (int64, error)
	// DeleteProfile removes the profile; returns rows deleted.
	DeleteProfile(ctx context.Context, id string) (int64, error)
	CountProfiles(ctx context.Context) (int64, error)
	ListTagCounts(ctx context.Context) ([]TagCount, error)
}
