package knowledge

import (
	"context"
	"strings"
)

// Answer is one ranked knowledge-base result.
type Answer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// Provider retrieves ranked answers for a question. An empty slice is the
// valid "no answer" outcome, distinct from an error.
type Provider interface {
	GetAnswers(ctx context.Context, question string) ([]Answer, error)
}

// SearchResult is one web-search hit used for the fallback reply.
type SearchResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Searcher is the web-search fallback used when the knowledge base comes up
// empty.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// imageMarkerPrefix starts an answer's first line when the answer embeds an
// image: the URL follows in square brackets, e.g. "image:[https://...]".
const imageMarkerPrefix = "image:["

// SplitImageAnswer inspects an answer's first line for the image marker.
// When present it returns the embedded URL and the remaining text; otherwise
// ok is false and text is the unchanged answer.
func SplitImageAnswer(answer string) (imageURL, text string, ok bool) {
	first, rest, _ := strings.Cut(answer, "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, imageMarkerPrefix) || !strings.HasSuffix(first, "]") {
		return "", answer, false
	}

	url := strings.TrimSuffix(strings.TrimPrefix(first, imageMarkerPrefix), "]")
	if url == "" {
		return "", answer, false
	}
	return url, strings.TrimSpace(rest), true
}
