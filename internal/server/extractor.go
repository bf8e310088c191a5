package server

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/localize/pkg/locale"
)

// Source extracts a locale candidate from a request.
// Returns the value and true if found, or ("", false) if not present.
type Source func(r *http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []Source
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...Source) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if src == nil {
			continue
		}
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := strings.TrimSpace(r.URL.Query().Get(name))
		return v, v != ""
	}
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := strings.TrimSpace(r.Header.Get(name))
		return v, v != ""
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromAcceptLanguage returns a source that negotiates the Accept-Language
// header against the locales returned by available.
func FromAcceptLanguage(available func() ([]locale.Locale, error)) Source {
	return func(r *http.Request) (string, bool) {
		requested := locale.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
		if len(requested) == 0 {
			return "", false
		}
		folders, err := available()
		if err != nil || len(folders) == 0 {
			return "", false
		}
		match := locale.Negotiate(requested, folders)
		if match.IsZero() {
			return "", false
		}
		return match.Tag(), true
	}
}
