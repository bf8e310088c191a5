package localize

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/tree"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en-US"

// Option configures the Service.
type Option func(*Service)

// WithDefaultLocale sets the locale used when the requested one has no
// folder. Defaults to "en-US".
func WithDefaultLocale(tag string) Option {
	return func(s *Service) {
		if l := locale.Parse(tag); !l.IsZero() {
			s.defaultLocale = l
		}
	}
}

// WithForcedLocale makes the service start in tag instead of the system
// locale. Later SetLocale calls still switch freely.
func WithForcedLocale(tag string) Option {
	return func(s *Service) {
		s.forcedLocale = locale.Parse(tag)
	}
}

// WithLoadOnInit controls whether New loads translations.
// Defaults to true.
func WithLoadOnInit(load bool) Option {
	return func(s *Service) {
		s.loadOnInit = load
	}
}

// WithInitialScope makes New load only the given key path scope instead of
// the whole locale folder.
func WithInitialScope(scope string) Option {
	return func(s *Service) {
		s.initialScope = scope
	}
}

// WithLogger sets the service logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSystemLocale replaces the source of the system locale, which is
// locale.System by default.
func WithSystemLocale(fn func() locale.Locale) Option {
	return func(s *Service) {
		if fn != nil {
			s.systemLocale = fn
		}
	}
}

// WithFormat registers a parser for translation files with the given
// extension (".json" is always registered).
func WithFormat(ext string, parse tree.ParseFunc) Option {
	return func(s *Service) {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if parse == nil {
			return
		}
		if _, exists := s.parsers[ext]; !exists {
			s.extensions = append(s.extensions, ext)
		}
		s.parsers[ext] = parse
	}
}

// WithYAML also loads ".yaml" and ".yml" translation files.
func WithYAML() Option {
	return func(s *Service) {
		WithFormat(".yaml", tree.ParseYAML)(s)
		WithFormat(".yml", tree.ParseYAML)(s)
	}
}

// WithMissingKeyHandler sets a handler called with every key that does not
// resolve. It runs while the service holds its read lock and must not call
// Load, SetLocale or Unload.
func WithMissingKeyHandler(handler func(key string)) Option {
	return func(s *Service) {
		s.missingKeyHandler = handler
	}
}
