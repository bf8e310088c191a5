package locale

import (
	"errors"
	"fmt"
)

// ErrLanguageFolderNotFound is matched by every *LanguageFolderError.
var ErrLanguageFolderNotFound = errors.New("locale: language folder not found")

// LanguageFolderError reports that neither the requested locale nor the
// default locale has a folder under the localization root.
type LanguageFolderError struct {
	Requested Locale
	Default   Locale
}

func (e *LanguageFolderError) Error() string {
	return fmt.Sprintf(
		"locale: no folder for the requested language %q nor for the default language %q",
		e.Requested.Tag(), e.Default.Tag(),
	)
}

func (e *LanguageFolderError) Unwrap() error {
	return ErrLanguageFolderNotFound
}
