package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

const maxPageSize = 100

// StoryService implements the story CRUD use cases. Every operation is
// scoped to the calling account; cross-account access behaves as not found.
type StoryService struct {
	repo       ports.StoryRepository
	translator ports.Translator
	log        zerolog.Logger
}

func NewStoryService(repo ports.StoryRepository, translator ports.Translator, log zerolog.Logger) *StoryService {
	return &StoryService{repo: repo, translator: translator, log: log}
}

// CreateStory persists a new story. When input.Translate is set the text is
// translated first, so the stored document already carries the translation.
func (s *StoryService) CreateStory(ctx context.Context, input ports.CreateStoryInput) (*domain.Story, error) {
	now := time.Now().UTC()
	story := &domain.Story{
		UserID:       input.UserID,
		Title:        input.Title,
		OriginalText: input.OriginalText,
		SourceLang:   input.SourceLang,
		TargetLang:   input.TargetLang,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if input.Translate && input.TargetLang != "" {
		translated, err := s.translator.Translate(ctx, input.OriginalText, input.SourceLang, input.TargetLang)
		if err != nil {
			return nil, fmt.Errorf("create story: translate: %w", err)
		}
		story.TranslatedText = translated
	}

	created, err := s.repo.Create(ctx, story)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("story_id", created.ID).Str("user_id", input.UserID).Msg("story created")
	return created, nil
}

func (s *StoryService) GetStory(ctx context.Context, id, userID string) (*domain.Story, error) {
	return s.repo.FindByID(ctx, id, userID)
}

// ListStories returns a page of the account's stories, newest first.
func (s *StoryService) ListStories(ctx context.Context, userID string, page, limit int) (*ports.ListStoriesResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListStoriesFilter{UserID: userID, Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListStoriesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *StoryService) UpdateStory(ctx context.Context, id, userID string, input ports.UpdateStoryInput) (*domain.Story, error) {
	updated, err := s.repo.UpdateByID(ctx, id, userID, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("story_id", id).Str("user_id", userID).Msg("story updated")
	return updated, nil
}

func (s *StoryService) DeleteStory(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteByID(ctx, id, userID); err != nil {
		return err
	}
	s.log.Info().Str("story_id", id).Str("user_id", userID).Msg("story deleted")
	return nil
}
