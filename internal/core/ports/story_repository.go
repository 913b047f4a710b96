package ports

import (
	"context"

	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// ListStoriesFilter carries the query parameters for listing stories.
// UserID is always set by the service layer; stories are never listed
// across accounts.
type ListStoriesFilter struct {
	UserID string
	Page   int // 1-based
	Limit  int // capped at 100 by the service
}

// UpdateStoryInput carries the mutable story fields; nil means unchanged.
type UpdateStoryInput struct {
	Title          *string
	OriginalText   *string
	SourceLang     *string
	TranslatedText *string
	TargetLang     *string
}

// StoryRepository defines persistence operations for stories.
type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	// FindByID retrieves a story scoped to userID; a story owned by another
	// account behaves exactly like a missing one.
	FindByID(ctx context.Context, id, userID string) (*domain.Story, error)
	List(ctx context.Context, filter ListStoriesFilter) ([]*domain.Story, int64, error)
	UpdateByID(ctx context.Context, id, userID string, input UpdateStoryInput) (*domain.Story, error)
	DeleteByID(ctx context.Context, id, userID string) error
}
