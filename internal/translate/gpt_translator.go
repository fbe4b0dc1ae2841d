package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

// GPTTranslator backs the Translator contract with an OpenAI chat model.
type GPTTranslator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewGPTTranslator(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTTranslator {
	return &GPTTranslator{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (t *GPTTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Detect the language of the following text.
Reply with the two-letter ISO 639-1 code only, nothing else.

Text: %s`, text)

	out, err := t.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	code := strings.ToLower(strings.TrimSpace(out))
	if len(code) != 2 {
		t.logger.Warn("Unexpected language detection output", zap.String("output", out))
		return "", fmt.Errorf("%w: bad language code %q", models.ErrTranslation, out)
	}
	return code, nil
}

func (t *GPTTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following text from %s to %s.
Reply with the translation only, nothing else.

Text: %s`, from, to, text)

	out, err := t.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (t *GPTTranslator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := t.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: t.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   t.maxTokens,
			Temperature: float32(t.temperature),
		},
	)
	if err != nil {
		t.logger.Error("Failed to get translation response", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrTranslation, err)
	}
	return resp.Choices[0].Message.Content, nil
}
