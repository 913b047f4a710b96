package domain

import (
	"errors"
	"time"
)

var ErrStoryNotFound = errors.New("story not found")

// Story is a short text recorded or typed by a user, optionally paired with
// a translation produced by the external translation service.
type Story struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id" bson:"user_id"`
	Title          string    `json:"title" bson:"title"`
	OriginalText   string    `json:"original_text" bson:"original_text"`
	SourceLang     string    `json:"source_lang" bson:"source_lang"`
	TranslatedText string    `json:"translated_text,omitempty" bson:"translated_text,omitempty"`
	TargetLang     string    `json:"target_lang,omitempty" bson:"target_lang,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
