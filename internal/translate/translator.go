package translate

import "context"

// Translator is the raw translation capability: language detection plus
// directed text translation between ISO 639-1 codes.
type Translator interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, from, to string) (string, error)
}
