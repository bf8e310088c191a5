package localize

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/localize/pkg/locale"
)

var (
	// ErrLocalizationFolderNotFound is matched by every *LocalizationFolderError.
	ErrLocalizationFolderNotFound = errors.New("localize: localization folder not found")
	// ErrLanguageFolderNotFound is matched by every *LanguageFolderError.
	ErrLanguageFolderNotFound = locale.ErrLanguageFolderNotFound
	// ErrInvalidFile wraps translation files that cannot be read or decoded.
	ErrInvalidFile = errors.New("localize: invalid translation file")
)

// LanguageFolderError reports that no folder exists for the requested or the
// default locale.
type LanguageFolderError = locale.LanguageFolderError

// LocalizationFolderError reports that the localization root is missing.
type LocalizationFolderError struct {
	Path string
}

func (e *LocalizationFolderError) Error() string {
	return fmt.Sprintf("localize: the localization folder %q does not exist or is not a directory", e.Path)
}

func (e *LocalizationFolderError) Unwrap() error {
	return ErrLocalizationFolderNotFound
}
