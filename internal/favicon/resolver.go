// Package favicon resolves bookmark URLs to icon URLs.
package favicon

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSize is the icon edge size requested from the proxy.
const DefaultSize = 64

// Resolver turns a bookmark URL into an icon URL. Resolution is best
// effort: implementations return "" instead of failing the caller.
type Resolver interface {
	Resolve(rawURL string) string
}

// Google resolves icons through the public Google s2 favicon proxy.
// It is a pure function of the URL, no network call is made here.
type Google struct {
	size int
}

// NewGoogle creates a resolver requesting icons of the given edge size.
func NewGoogle(size int) *Google {
	if size <= 0 {
		size = DefaultSize
	}
	return &Google{size: size}
}

// Resolve builds the proxy URL for the hostname of rawURL. A leading
// "www." is stripped to match what the proxy indexes. Returns "" when
// rawURL has no usable hostname.
func (g *Google) Resolve(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	domain := strings.TrimPrefix(u.Hostname(), "www.")
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=%d", domain, g.size)
}

// Static always resolves to the same icon URL. Used in tests.
type Static struct {
	Icon string
}

func (s Static) Resolve(string) string { return s.Icon }
