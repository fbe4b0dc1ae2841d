package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const recognizePrompt = `You are an intent classifier for an art gallery
assistant. Classify the user's utterance.

Intents:
- "structured-query": the user asks about an attribute of the painting under
  discussion. Also pick a sub_intent from: "author", "date", "name", "style",
  "technique".
- "knowledge-lookup": any other question or statement.

Return a JSON object with this structure:
{
    "intent": "structured-query" | "knowledge-lookup",
    "sub_intent": "author" | "date" | "name" | "style" | "technique" | "",
    "confidence": 0.95
}

Utterance: %s`

type recognizerResponse struct {
	Intent     string  `json:"intent"`
	SubIntent  string  `json:"sub_intent"`
	Confidence float64 `json:"confidence"`
}

// GPTRecognizer is the dispatch model: an OpenAI chat completion constrained
// to a JSON verdict.
type GPTRecognizer struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewGPTRecognizer(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTRecognizer {
	return &GPTRecognizer{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (r *GPTRecognizer) Recognize(ctx context.Context, utterance string) (Result, error) {
	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: r.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(recognizePrompt, utterance),
				},
			},
			MaxTokens:   r.maxTokens,
			Temperature: float32(r.temperature),
		},
	)
	if err != nil {
		r.logger.Error("Failed to get intent response", zap.Error(err))
		return Result{}, fmt.Errorf("intent recognition failed: %w", err)
	}

	var parsed recognizerResponse
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.Trim(raw, "` \n")
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		r.logger.Error("Failed to parse intent response",
			zap.Error(err),
			zap.String("response", raw))
		return Result{}, fmt.Errorf("intent recognition failed: %w", err)
	}

	return Result{
		Top:    strings.ToLower(strings.TrimSpace(parsed.Intent)),
		Sub:    SubKind(strings.ToLower(strings.TrimSpace(parsed.SubIntent))),
		Scores: map[string]float64{parsed.Intent: parsed.Confidence},
	}, nil
}
