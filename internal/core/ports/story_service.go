package ports

import (
	"context"

	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// CreateStoryInput carries all data needed to record a new story.
type CreateStoryInput struct {
	UserID       string
	Title        string
	OriginalText string
	SourceLang   string
	TargetLang   string
	// Translate requests an immediate translation into TargetLang.
	Translate bool
}

// ListStoriesResult is returned by ListStories.
type ListStoriesResult struct {
	Items      []*domain.Story
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// StoryService defines use-case operations for stories.
type StoryService interface {
	CreateStory(ctx context.Context, input CreateStoryInput) (*domain.Story, error)
	GetStory(ctx context.Context, id, userID string) (*domain.Story, error)
	ListStories(ctx context.Context, userID string, page, limit int) (*ListStoriesResult, error)
	UpdateStory(ctx context.Context, id, userID string, input UpdateStoryInput) (*domain.Story, error)
	DeleteStory(ctx context.Context, id, userID string) error
}
