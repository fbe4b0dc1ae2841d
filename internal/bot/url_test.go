package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	valid := []string{
		"https://example.com/painting.jpg",
		"http://example.com",
		"example.com",
		"example.com/path/to/image.png",
		"example.com:8080/image.jpg",
		"museum.example.co.uk/starry?size=large",
		"example.com/page#detail",
		"  https://example.com/pic.jpg  ",
	}
	for _, u := range valid {
		assert.True(t, isURL(u), "expected %q to be recognized as a URL", u)
	}

	invalid := []string{
		"who painted this?",
		"",
		"not a url at all",
		"example",
		"http://",
		"tell me about example.com please",
	}
	for _, u := range invalid {
		assert.False(t, isURL(u), "expected %q not to be recognized as a URL", u)
	}
}
