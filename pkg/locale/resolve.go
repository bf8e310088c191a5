package locale

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Match records how a locale folder was matched.
type Match uint8

const (
	// MatchTag means the folder is named after the full tag ("en-US").
	MatchTag Match = iota + 1
	// MatchLanguage means the folder is named after the language ("en").
	MatchLanguage
)

// String returns the match name.
func (m Match) String() string {
	switch m {
	case MatchTag:
		return "tag"
	case MatchLanguage:
		return "language"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Match) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Resolution describes the folder selected for a locale.
type Resolution struct {
	// Locale is the locale backing the folder: the candidate, or the
	// default locale when Fallback is set.
	Locale Locale `json:"locale"`
	// Folder is the folder name under the root ("en-US" or "en").
	Folder string `json:"folder"`
	// Dir is the folder path joined to the root.
	Dir string `json:"dir"`
	// Match is the granularity used to find Folder.
	Match Match `json:"match"`
	// Fallback is set when the default locale was used.
	Fallback bool `json:"fallback"`
}

// IsZero reports whether r holds no resolution.
func (r Resolution) IsZero() bool { return r.Dir == "" }

// Resolve picks the locale folder under root. First match wins:
//
//  1. root/<candidate tag>
//  2. root/<candidate language>
//  3. root/<fallback tag>
//  4. root/<fallback language>
//
// A zero candidate skips steps 1 and 2. When nothing matches, a
// *LanguageFolderError is returned.
func Resolve(root string, candidate, fallback Locale) (Resolution, error) {
	type attempt struct {
		locale   Locale
		folder   string
		match    Match
		fallback bool
	}

	attempts := []attempt{
		{candidate, candidate.Tag(), MatchTag, false},
		{candidate, candidate.Language(), MatchLanguage, false},
		{fallback, fallback.Tag(), MatchTag, true},
		{fallback, fallback.Language(), MatchLanguage, true},
	}

	for _, a := range attempts {
		if a.folder == "" {
			continue
		}
		dir := filepath.Join(root, a.folder)
		if isDir(dir) {
			return Resolution{
				Locale:   a.locale,
				Folder:   a.folder,
				Dir:      dir,
				Match:    a.match,
				Fallback: a.fallback,
			}, nil
		}
	}

	return Resolution{}, &LanguageFolderError{Requested: candidate, Default: fallback}
}

// Available lists the locale folders directly under root, sorted by name.
// Hidden directories are skipped.
func Available(root string) ([]Locale, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	locales := make([]Locale, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if l := Parse(entry.Name()); !l.IsZero() {
			locales = append(locales, l)
		}
	}

	slices.SortFunc(locales, func(a, b Locale) int {
		return strings.Compare(a.Tag(), b.Tag())
	})
	return locales, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
