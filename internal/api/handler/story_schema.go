package handler

import "github.com/storyweave/storyweave-api/internal/core/domain"

type createStoryRequest struct {
	Title        string `json:"title"         validate:"required,min=1,max=200"`
	OriginalText string `json:"original_text" validate:"required,min=1,max=10000"`
	SourceLang   string `json:"source_lang"   validate:"required,min=2,max=8"`
	TargetLang   string `json:"target_lang"   validate:"omitempty,min=2,max=8"`
	Translate    bool   `json:"translate"`
}

type updateStoryRequest struct {
	Title          *string `json:"title"           validate:"omitempty,min=1,max=200"`
	OriginalText   *string `json:"original_text"   validate:"omitempty,min=1,max=10000"`
	SourceLang     *string `json:"source_lang"     validate:"omitempty,min=2,max=8"`
	TranslatedText *string `json:"translated_text" validate:"omitempty,max=20000"`
	TargetLang     *string `json:"target_lang"     validate:"omitempty,min=2,max=8"`
}

type storyData struct {
	Story *domain.Story `json:"story"`
}

type storyListData struct {
	Stories    []*domain.Story `json:"stories"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
