package utils

import (
	"net/url"
	"strings"
)

// Site base URLs used to expand bare handles into profile links.
const (
	GithubBaseURL   = "https://github.com/"
	FacebookBaseURL = "https://www.facebook.com/"
	TwitterBaseURL  = "https://twitter.com/"
)

// ProfileURL resolves a stored profile field into a link target. Absolute
// http(s) URLs are returned as is; anything else is treated as a handle on
// the site at baseURL.
func ProfileURL(value, baseURL string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if u, err := url.Parse(value); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return value
	}
	return baseURL + strings.TrimPrefix(value, "@")
}
