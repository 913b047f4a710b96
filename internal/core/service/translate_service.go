package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// TranslateService forwards translation requests to the external API client.
// It exists so handlers depend on a use case, not on the wire client.
type TranslateService struct {
	translator ports.Translator
	log        zerolog.Logger
}

func NewTranslateService(translator ports.Translator, log zerolog.Logger) *TranslateService {
	return &TranslateService{translator: translator, log: log}
}

func (s *TranslateService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	translated, err := s.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		s.log.Error().Err(err).Str("source", sourceLang).Str("target", targetLang).Msg("translation failed")
		return "", fmt.Errorf("translate: %w", err)
	}
	return translated, nil
}
