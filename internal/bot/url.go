package bot

import (
	"regexp"
	"strings"
)

// urlPattern recognizes a message that is nothing but a URL: optional
// http(s) scheme, a dotted host, then optional port, path, query and
// fragment.
var urlPattern = regexp.MustCompile(`^(?:https?://)?(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}(?::\d{1,5})?(?:/[^\s]*)?(?:\?[^\s]*)?(?:#[^\s]*)?$`)

func isURL(text string) bool {
	return urlPattern.MatchString(strings.TrimSpace(text))
}
