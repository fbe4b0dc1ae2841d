package translate

import (
	"context"

	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Bridge round-trips text through the pivot language. Both directions are
// fail-soft: a translator outage degrades to the untranslated text with a
// logged warning, never an aborted turn.
type Bridge struct {
	translator Translator
	logger     *zap.Logger
}

func NewBridge(translator Translator, logger *zap.Logger) *Bridge {
	return &Bridge{
		translator: translator,
		logger:     logger,
	}
}

// ToPivot detects the language of inbound text, records it on the profile,
// and returns the pivot-language rendition. Detection runs once per inbound
// turn; outbound translation within the same turn relies on the language it
// records here.
func (b *Bridge) ToPivot(ctx context.Context, text string, profile *models.UserProfile) string {
	lang, err := b.translator.DetectLanguage(ctx, text)
	if err != nil {
		b.logger.Warn("Language detection failed, keeping text as-is", zap.Error(err))
		return text
	}

	if lang == models.PivotLanguage {
		profile.Language = models.PivotLanguage
		return text
	}

	profile.Language = lang
	translated, err := b.translator.Translate(ctx, text, lang, models.PivotLanguage)
	if err != nil {
		b.logger.Warn("Inbound translation failed, keeping text as-is",
			zap.Error(err),
			zap.String("language", lang))
		return text
	}
	return translated
}

// FromPivot translates pivot-language text to the profile's recorded
// language. Identity when the profile language is the pivot or unset.
func (b *Bridge) FromPivot(ctx context.Context, text string, profile *models.UserProfile) string {
	if profile.Language == "" || profile.Language == models.PivotLanguage {
		return text
	}

	translated, err := b.translator.Translate(ctx, text, models.PivotLanguage, profile.Language)
	if err != nil {
		b.logger.Warn("Outbound translation failed, replying in pivot language",
			zap.Error(err),
			zap.String("language", profile.Language))
		return text
	}
	return translated
}
