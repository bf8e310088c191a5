package locale

import (
	"slices"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size parsed.
const maxAcceptLanguageLength = 4096

// wildcard is the tag x/text reports for "*".
var wildcard = language.Make("mul")

// ParseAcceptLanguage parses an Accept-Language header into locales ordered
// by descending quality. Wildcards and malformed headers yield no locales.
func ParseAcceptLanguage(header string) []Locale {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	locales := make([]Locale, 0, len(tags))
	for _, tag := range tags {
		if tag == language.Und || tag == wildcard {
			continue
		}
		locales = append(locales, Parse(tag.String()))
	}
	return locales
}

// Negotiate returns the first requested locale that has a folder among
// available, matching the full tag before the language. It returns the zero
// Locale when nothing matches.
func Negotiate(requested, available []Locale) Locale {
	for _, req := range requested {
		if i := slices.IndexFunc(available, func(a Locale) bool { return a.Tag() == req.Tag() }); i >= 0 {
			return available[i]
		}
		if i := slices.IndexFunc(available, func(a Locale) bool { return a.Tag() == req.Language() }); i >= 0 {
			return available[i]
		}
		if i := slices.IndexFunc(available, func(a Locale) bool { return a.Language() == req.Language() }); i >= 0 {
			return available[i]
		}
	}
	return Locale{}
}
