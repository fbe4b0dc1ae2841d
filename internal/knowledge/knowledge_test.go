package knowledge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSplitImageAnswer(t *testing.T) {
	t.Run("marker first line splits into url and text", func(t *testing.T) {
		url, text, ok := SplitImageAnswer("image:[https://example.com/p.jpg]\nThe painting shows a night sky.")
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/p.jpg", url)
		assert.Equal(t, "The painting shows a night sky.", text)
	})

	t.Run("plain answer is returned unchanged", func(t *testing.T) {
		url, text, ok := SplitImageAnswer("The painting shows a night sky.")
		assert.False(t, ok)
		assert.Empty(t, url)
		assert.Equal(t, "The painting shows a night sky.", text)
	})

	t.Run("marker with empty url is not a marker", func(t *testing.T) {
		_, text, ok := SplitImageAnswer("image:[]\nrest")
		assert.False(t, ok)
		assert.Equal(t, "image:[]\nrest", text)
	})

	t.Run("marker without closing bracket is not a marker", func(t *testing.T) {
		_, _, ok := SplitImageAnswer("image:[https://example.com\nrest")
		assert.False(t, ok)
	})
}

func TestQnAClient_GetAnswers(t *testing.T) {
	t.Run("returns ranked answers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "EndpointKey key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"answers":[{"answer":"Van Gogh painted it.","score":0.92}]}`))
		}))
		defer srv.Close()

		c := NewQnAClient(srv.URL, "key", zap.NewNop())
		answers, err := c.GetAnswers(context.Background(), "who painted it?")
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "Van Gogh painted it.", answers[0].Answer)
	})

	t.Run("sentinel no-match row counts as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"answers":[{"answer":"No good match found in KB.","score":0}]}`))
		}))
		defer srv.Close()

		c := NewQnAClient(srv.URL, "key", zap.NewNop())
		answers, err := c.GetAnswers(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, answers)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewQnAClient(srv.URL, "key", zap.NewNop())
		_, err := c.GetAnswers(context.Background(), "anything")
		assert.Error(t, err)
	})
}

func TestSearchClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "starry night", r.URL.Query().Get("q"))
		w.Write([]byte(`{"webPages":{"value":[
			{"name":"Starry Night - Wikipedia","url":"https://en.wikipedia.org/wiki/The_Starry_Night"},
			{"name":"MoMA","url":"https://moma.org/starry"},
			{"name":"Analysis","url":"https://example.com/analysis"}
		]}}`))
	}))
	defer srv.Close()

	c := NewSearchClient(srv.URL, "key", zap.NewNop())
	results, err := c.Search(context.Background(), "starry night")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Starry Night - Wikipedia", results[0].Name)
	assert.Equal(t, "https://en.wikipedia.org/wiki/The_Starry_Night", results[0].URL)
}
