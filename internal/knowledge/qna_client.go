package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// noAnswerSentinel is the literal the QnA service returns instead of an
// empty result set when nothing matched.
const noAnswerSentinel = "No good match found in KB."

// QnAClient talks to a QnA-style ranked-answer REST endpoint.
type QnAClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *zap.Logger
}

func NewQnAClient(endpoint, apiKey string, logger *zap.Logger) *QnAClient {
	return &QnAClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type qnaRequest struct {
	Question string `json:"question"`
	Top      int    `json:"top"`
}

type qnaResponse struct {
	Answers []Answer `json:"answers"`
}

func (c *QnAClient) GetAnswers(ctx context.Context, question string) ([]Answer, error) {
	body, err := json.Marshal(qnaRequest{Question: question, Top: 1})
	if err != nil {
		return nil, fmt.Errorf("error encoding knowledge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building knowledge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "EndpointKey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error querying knowledge base: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("knowledge base returned status %d", resp.StatusCode)
	}

	var parsed qnaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error decoding knowledge response: %w", err)
	}

	// The sentinel row counts as "no answer", not as a result.
	answers := make([]Answer, 0, len(parsed.Answers))
	for _, a := range parsed.Answers {
		if a.Answer == noAnswerSentinel || a.Score <= 0 {
			continue
		}
		answers = append(answers, a)
	}
	return answers, nil
}
