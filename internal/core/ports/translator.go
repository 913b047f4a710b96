package ports

import "context"

// Translator abstracts the external translation API. Implementations are
// black boxes: they either return the translated text or an error.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
