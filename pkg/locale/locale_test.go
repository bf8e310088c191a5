package locale_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/localize/pkg/locale"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		tag   string
		lang  string
	}{
		{"en-US", "en-US", "en"},
		{"en_US", "en-US", "en"},
		{"en_us", "en-US", "en"},
		{"en_US.UTF-8", "en-US", "en"},
		{"de_DE@euro", "de-DE", "de"},
		{"fr", "fr", "fr"},
		{"  pt-BR  ", "pt-BR", "pt"},
		{"zh-Hant-TW", "zh-Hant-TW", "zh"},
		{"", "", ""},
		{".UTF-8", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			l := locale.Parse(tt.input)
			assert.Equal(t, tt.tag, l.Tag())
			assert.Equal(t, tt.lang, l.Language())
			assert.Equal(t, tt.tag == "", l.IsZero())
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en-US", locale.MustParse("en_US").Tag())
	require.Panics(t, func() { locale.MustParse("") })
}

func TestLanguageTag(t *testing.T) {
	t.Parallel()

	require.Equal(t, language.MustParse("fr-CA"), locale.Parse("fr_CA").LanguageTag())
	require.Equal(t, language.Und, locale.Locale{}.LanguageTag())
}

func TestLocaleText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]locale.Locale{"l": locale.Parse("en_GB")})
	require.NoError(t, err)
	require.JSONEq(t, `{"l":"en-GB"}`, string(data))

	var out map[string]locale.Locale
	require.NoError(t, json.Unmarshal([]byte(`{"l":"de_AT"}`), &out))
	require.Equal(t, "de-AT", out["l"].Tag())
	require.Equal(t, "de", out["l"].Language())
}

func TestSystem(t *testing.T) {
	tests := []struct {
		name     string
		lcAll    string
		messages string
		lang     string
		expected string
	}{
		{"LANG only", "", "", "fr_FR.UTF-8", "fr-FR"},
		{"LC_MESSAGES over LANG", "", "de_DE.UTF-8", "fr_FR.UTF-8", "de-DE"},
		{"LC_ALL over everything", "es_ES", "de_DE", "fr_FR", "es-ES"},
		{"C locale", "C", "", "fr_FR", ""},
		{"C.UTF-8 locale", "", "", "C.UTF-8", ""},
		{"POSIX locale", "", "POSIX", "fr_FR", ""},
		{"nothing set", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", tt.messages)
			t.Setenv("LANG", tt.lang)
			require.Equal(t, tt.expected, locale.System().Tag())
		})
	}
}
