package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

const analyzePrompt = `Describe the image with visual tags, the way an image
tagging service would: short lowercase nouns such as "landscape", "portrait",
"water", "tree", "person". Return a JSON object with this structure:
{
    "tags": [{"name": "tag_name", "confidence": 0.95}, ...]
}`

type gptResponse struct {
	Tags []models.Tag `json:"tags"`
}

// GPTClassifier tags images through an OpenAI vision-capable chat model.
type GPTClassifier struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewGPTClassifier(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTClassifier {
	return &GPTClassifier{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (c *GPTClassifier) Analyze(ctx context.Context, imageURL string) ([]models.Tag, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: analyzePrompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    imageURL,
								Detail: openai.ImageURLDetailAuto,
							},
						},
					},
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		c.logger.Error("Failed to get vision response",
			zap.Error(err),
			zap.String("image_url", imageURL))
		return nil, fmt.Errorf("%w: %v", models.ErrClassification, err)
	}

	var parsed gptResponse
	response := strings.TrimSpace(resp.Choices[0].Message.Content)
	response = strings.TrimPrefix(response, "```json")
	response = strings.Trim(response, "` \n")
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		c.logger.Error("Failed to parse vision response",
			zap.Error(err),
			zap.String("response", response))
		return nil, fmt.Errorf("%w: %v", models.ErrClassification, err)
	}

	return parsed.Tags, nil
}
