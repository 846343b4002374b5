package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"profilefinder/internal/db"
	"profilefinder/internal/models"
	"profilefinder/internal/repository"
)

// listCap bounds unpaginated listings.
const listCap = 1000

type ProfileInput struct {
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	Snippet   string   `json:"snippet"`
	Thumbnail *string  `json:"thumbnail"`
	Tags      []string `json:"tags"`
}

type ProfileService struct {
	Repo   repository.ProfileRepository
	Logger *zap.Logger
}

// Save stores a new profile. A link that is already stored is a conflict,
// whether caught by the existence check or by the unique index when two
// saves race. Title and snippet may be empty; search results without a
// snippet must stay saveable.
func (s *ProfileService) Save(ctx context.Context, input ProfileInput) (*models.Profile, error) {
	if err := validation.ValidateStruct(&input,
		validation.Field(&input.Link, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	exists, err := s.Repo.ProfileExistsByLink(ctx, input.Link)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateLink
	}

	profile := &models.Profile{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Link:      input.Link,
		Snippet:   input.Snippet,
		Thumbnail: input.Thumbnail,
		SavedAt:   db.NowUTC(),
		Tags:      models.TagList(input.Tags),
	}

	if err := s.Repo.InsertProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateLink
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("profile saved", zap.String("id", profile.ID), zap.String("link", profile.Link))
	}
	return profile, nil
}

// List returns stored profiles, newest first. searchTerm filters on title or
// snippet; tagsCSV is a comma-separated tag set matched by intersection.
func (s *ProfileService) List(ctx context.Context, searchTerm, tagsCSV string) ([]models.Profile, error) {
	params := repository.ListProfilesParams{Limit: listCap}
	if term := strings.TrimSpace(searchTerm); term != "" {
		params.SearchTerm = &term
	}
	if tagsCSV != "" {
		for _, raw := range strings.Split(tagsCSV, ",") {
			if tag := strings.TrimSpace(raw); tag != "" {
				params.Tags = append(params.Tags, tag)
			}
		}
	}

	items, err := s.Repo.ListProfiles(ctx, params)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Profile{}
	}
	return items, nil
}

// UpdateTags replaces the full tag list for the identified profile.
func (s *ProfileService) UpdateTags(ctx context.Context, id string, tags []string) error {
	matched, err := s.Repo.UpdateProfileTags(ctx, id, tags)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Delete removes the identified profile.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	deleted, err := s.Repo.DeleteProfile(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrProfileNotFound
	}
	return nil
}
