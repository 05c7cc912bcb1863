package application

import (
	"context"
	"fmt"
	"time"

	"github.com/dailyjournal/journal/journal/domain"
	"github.com/google/uuid"
)

// PostService owns everything above the storage contract: normalization,
// validation, id assignment, and timestamps. Both storage backends sit
// behind it unchanged.
type PostService struct {
	repo domain.PostRepository
	now  func() time.Time
}

func NewPostService(repo domain.PostRepository) *PostService {
	return &PostService{
		repo: repo,
		now:  time.Now,
	}
}

// Create normalizes and validates fields, assigns a fresh id and creation
// timestamp, persists the post, and returns the stored record.
func (s *PostService) Create(ctx context.Context, fields domain.PostFields) (*domain.Post, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	now := domain.FormatTime(s.now())
	post := &domain.Post{
		ID:        uuid.NewString(),
		Headline:  fields.Headline,
		Deck:      fields.Deck,
		Author:    fields.Author,
		Category:  fields.Category,
		Body:      fields.Body,
		Date:      now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Update replaces all mutable fields of an existing post. The creation
// date is preserved by the repository; UpdatedAt is refreshed.
func (s *PostService) Update(ctx context.Context, id string, fields domain.PostFields) (*domain.Post, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:        id,
		Headline:  fields.Headline,
		Deck:      fields.Deck,
		Author:    fields.Author,
		Category:  fields.Category,
		Body:      fields.Body,
		UpdatedAt: domain.FormatTime(s.now()),
	}

	if err := s.repo.Replace(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *PostService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Post, error) {
	return s.repo.List(ctx, filter)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PostService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
