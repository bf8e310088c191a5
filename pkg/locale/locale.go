package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a normalized locale tag ("en-US") with its two-letter
// language code ("en"). The zero value means "no locale".
type Locale struct {
	tag  string
	lang string
}

// Parse normalizes s into a Locale. POSIX forms such as "en_US.UTF-8" or
// "de_DE@euro" are accepted. Tags unknown to x/text are kept verbatim with
// the language derived from the first subtag.
func Parse(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" {
		return Locale{}
	}

	tag, err := language.Parse(s)
	if err != nil || tag == language.Und {
		return Locale{tag: s, lang: strings.ToLower(baseLanguage(s))}
	}

	base, _ := tag.Base()
	return Locale{tag: tag.String(), lang: base.String()}
}

// MustParse is like Parse but panics when s yields the zero Locale.
func MustParse(s string) Locale {
	l := Parse(s)
	if l.IsZero() {
		panic(fmt.Sprintf("locale: cannot parse %q", s))
	}
	return l
}

// System returns the process locale from LC_ALL, LC_MESSAGES and LANG, in
// that order. "C" and "POSIX" yield the zero Locale.
func System() Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" || strings.HasPrefix(v, "C.") {
			return Locale{}
		}
		return Parse(v)
	}
	return Locale{}
}

// Tag returns the full normalized tag, e.g. "en-US".
func (l Locale) Tag() string { return l.tag }

// Language returns the two-letter language code, e.g. "en".
func (l Locale) Language() string { return l.lang }

// IsZero reports whether l holds no locale.
func (l Locale) IsZero() bool { return l.tag == "" }

// String implements fmt.Stringer.
func (l Locale) String() string { return l.tag }

// LanguageTag returns the x/text tag for l, or language.Und when l is zero
// or unknown.
func (l Locale) LanguageTag() language.Tag {
	tag, err := language.Parse(l.tag)
	if err != nil {
		return language.Und
	}
	return tag
}

// baseLanguage strips the region from a tag ("en-US" -> "en").
func baseLanguage(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.tag), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Locale) UnmarshalText(text []byte) error {
	*l = Parse(string(text))
	return nil
}
