package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/locale"
)

func tags(locales []locale.Locale) []string {
	out := make([]string, 0, len(locales))
	for _, l := range locales {
		out = append(out, l.Tag())
	}
	return out
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single", "fr", []string{"fr"}},
		{"ordered by quality", "en;q=0.5, fr-CH, de;q=0.9", []string{"fr-CH", "de", "en"}},
		{"wildcard skipped", "*;q=0.5, it", []string{"it"}},
		{"malformed", "en;q=abc", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tags(locale.ParseAcceptLanguage(tt.header)))
		})
	}
}

func TestParseAcceptLanguageLongHeader(t *testing.T) {
	t.Parallel()

	header := "en" + strings.Repeat(" ", 5000) + ", fr"
	require.NotPanics(t, func() {
		assert.NotContains(t, tags(locale.ParseAcceptLanguage(header)), "fr")
	})
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	available := []locale.Locale{locale.Parse("de"), locale.Parse("en-US"), locale.Parse("fr")}

	tests := []struct {
		name      string
		requested []string
		expected  string
	}{
		{"exact tag", []string{"en-US"}, "en-US"},
		{"language folder", []string{"fr-CH"}, "fr"},
		{"same language other region", []string{"en-GB"}, "en-US"},
		{"first acceptable wins", []string{"ja", "de-AT", "fr"}, "de"},
		{"nothing matches", []string{"ja", "ko"}, ""},
		{"nothing requested", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requested := make([]locale.Locale, 0, len(tt.requested))
			for _, r := range tt.requested {
				requested = append(requested, locale.Parse(r))
			}
			assert.Equal(t, tt.expected, locale.Negotiate(requested, available).Tag())
		})
	}
}
