package i18n

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlaceholderPrefix starts every placeholder token.
const PlaceholderPrefix = ":"

// Interpolate replaces the placeholders of every param in text. For a param
// with key "name" and value "bob":
//
//	:name -> bob
//	:Name -> Bob
//	:NAME -> BOB
//
// Params are applied in order with literal substring replacement. Values are
// cased with the rules of lang; keys always use language-neutral casing, so
// ":TITLE" matches the key "title" in every locale. Text inserted by one param is visible to the next:
// with params a=":b" and b="x", "see :a" becomes "see x". Placeholders
// without a matching param are left as they are.
func Interpolate(text string, lang language.Tag, params ...Param) string {
	if len(params) == 0 {
		return text
	}

	lower, upper := cases.Lower(lang), cases.Upper(lang)
	keyLower, keyUpper := cases.Lower(language.Und), cases.Upper(language.Und)

	for _, p := range params {
		if p.Key == "" {
			continue
		}
		text = strings.ReplaceAll(text, PlaceholderPrefix+keyLower.String(p.Key), lower.String(p.Value))
		text = strings.ReplaceAll(text, PlaceholderPrefix+capitalize(p.Key, keyLower, keyUpper), capitalize(p.Value, lower, upper))
		text = strings.ReplaceAll(text, PlaceholderPrefix+keyUpper.String(p.Key), upper.String(p.Value))
	}
	return text
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string, lower, upper cases.Caser) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + lower.String(s[size:])
}
