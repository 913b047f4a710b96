package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubStoryRepo struct {
	stories map[string]*domain.Story
	nextID  int
}

func newStubStoryRepo() *stubStoryRepo {
	return &stubStoryRepo{stories: make(map[string]*domain.Story)}
}

func (r *stubStoryRepo) Create(_ context.Context, story *domain.Story) (*domain.Story, error) {
	r.nextID++
	clone := *story
	clone.ID = fmt.Sprintf("story_%d", r.nextID)
	r.stories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStoryRepo) FindByID(_ context.Context, id, userID string) (*domain.Story, error) {
	s, ok := r.stories[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrStoryNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStoryRepo) List(_ context.Context, f ports.ListStoriesFilter) ([]*domain.Story, int64, error) {
	var matched []*domain.Story
	for _, s := range r.stories {
		if s.UserID != f.UserID {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.Story{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubStoryRepo) UpdateByID(_ context.Context, id, userID string, input ports.UpdateStoryInput) (*domain.Story, error) {
	s, ok := r.stories[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrStoryNotFound
	}
	if input.Title != nil {
		s.Title = *input.Title
	}
	if input.OriginalText != nil {
		s.OriginalText = *input.OriginalText
	}
	if input.SourceLang != nil {
		s.SourceLang = *input.SourceLang
	}
	if input.TranslatedText != nil {
		s.TranslatedText = *input.TranslatedText
	}
	if input.TargetLang != nil {
		s.TargetLang = *input.TargetLang
	}
	clone := *s
	return &clone, nil
}

func (r *stubStoryRepo) DeleteByID(_ context.Context, id, userID string) error {
	s, ok := r.stories[id]
	if !ok || s.UserID != userID {
		return domain.ErrStoryNotFound
	}
	delete(r.stories, id)
	return nil
}

type stubTranslator struct {
	out string
	err error
}

func (t *stubTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	if t.out != "" {
		return t.out, nil
	}
	return "[t]" + text, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestStoryService_CreateStory(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{}, zerolog.Nop())

	story, err := svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_1",
		Title:        "Market day",
		OriginalText: "hola",
		SourceLang:   "es",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if story.ID == "" {
		t.Fatalf("expected an id")
	}
	if story.TranslatedText != "" {
		t.Fatalf("no translation requested, got %q", story.TranslatedText)
	}
}

func TestStoryService_CreateStory_WithTranslation(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{out: "hello"}, zerolog.Nop())

	story, err := svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_1",
		Title:        "Market day",
		OriginalText: "hola",
		SourceLang:   "es",
		TargetLang:   "en",
		Translate:    true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if story.TranslatedText != "hello" {
		t.Fatalf("expected translation, got %q", story.TranslatedText)
	}
}

func TestStoryService_CreateStory_TranslationError(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{err: errors.New("upstream down")}, zerolog.Nop())

	_, err := svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_1",
		OriginalText: "hola",
		SourceLang:   "es",
		TargetLang:   "en",
		Translate:    true,
	})
	if err == nil {
		t.Fatalf("expected error when translation fails")
	}
	if len(repo.stories) != 0 {
		t.Fatalf("story must not be persisted when translation fails")
	}
}

func TestStoryService_OwnershipScoping(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{}, zerolog.Nop())

	story, _ := svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_1",
		OriginalText: "mine",
		SourceLang:   "en",
	})

	if _, err := svc.GetStory(context.Background(), story.ID, "user_2"); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Fatalf("foreign account must see not-found, got %v", err)
	}
	if err := svc.DeleteStory(context.Background(), story.ID, "user_2"); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Fatalf("foreign delete must see not-found, got %v", err)
	}
	if _, err := svc.GetStory(context.Background(), story.ID, "user_1"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestStoryService_ListStories_Pagination(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		_, _ = svc.CreateStory(context.Background(), ports.CreateStoryInput{
			UserID:       "user_1",
			OriginalText: fmt.Sprintf("story %d", i),
			SourceLang:   "en",
		})
	}
	_, _ = svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_2",
		OriginalText: "other account",
		SourceLang:   "en",
	})

	res, err := svc.ListStories(context.Background(), "user_1", 1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 5 {
		t.Fatalf("expected total 5, got %d", res.Total)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.TotalPages)
	}

	// Out-of-range values fall back to sane defaults.
	res, err = svc.ListStories(context.Background(), "user_1", 0, -1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Page != 1 || res.Limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got page=%d limit=%d", res.Page, res.Limit)
	}
}

func TestStoryService_UpdateStory(t *testing.T) {
	repo := newStubStoryRepo()
	svc := NewStoryService(repo, &stubTranslator{}, zerolog.Nop())

	story, _ := svc.CreateStory(context.Background(), ports.CreateStoryInput{
		UserID:       "user_1",
		Title:        "Before",
		OriginalText: "text",
		SourceLang:   "en",
	})

	title := "After"
	updated, err := svc.UpdateStory(context.Background(), story.ID, "user_1", ports.UpdateStoryInput{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "After" {
		t.Fatalf("title not applied: %s", updated.Title)
	}
	if updated.OriginalText != "text" {
		t.Fatalf("unrelated field changed: %s", updated.OriginalText)
	}
}
