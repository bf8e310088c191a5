package localize

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/dmitrymomot/localize/pkg/health"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/tree"
)

// Param is one named substitution value for Translate.
type Param = i18n.Param

// P builds a Param.
func P(key, value string) Param {
	return i18n.P(key, value)
}

// Service owns the translation tree and the active locale.
//
// All methods are safe for concurrent use. Load, SetLocale and Unload hold
// the write lock for their whole run, so Translate never sees a partially
// loaded or merged tree.
type Service struct {
	root       *tree.Node
	resolver   *i18n.Resolver
	resolution locale.Resolution

	rootPath      string
	defaultLocale locale.Locale
	forcedLocale  locale.Locale
	systemLocale  func() locale.Locale
	initialScope  string

	parsers    map[string]tree.ParseFunc
	extensions []string

	missingKeyHandler func(key string)
	logger            *slog.Logger

	listeners    map[uint64]func(locale.Resolution)
	nextListener uint64

	mu          sync.RWMutex
	listenersMu sync.Mutex

	loadOnInit bool
}

// New creates a Service reading translations from rootPath.
//
// It fails with *LocalizationFolderError when rootPath is not a directory
// and with *LanguageFolderError when no folder matches the starting locale
// (the forced locale, else the system locale) nor the default locale.
// Unless disabled with WithLoadOnInit(false), the initial scope is loaded
// before New returns.
func New(rootPath string, opts ...Option) (*Service, error) {
	s := &Service{
		root:          tree.Object(),
		rootPath:      rootPath,
		defaultLocale: locale.MustParse(DefaultLocale),
		systemLocale:  locale.System,
		parsers:       map[string]tree.ParseFunc{".json": tree.ParseJSON},
		extensions:    []string{".json"},
		logger:        logger.NewNope(),
		listeners:     make(map[uint64]func(locale.Resolution)),
		loadOnInit:    true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if info, err := os.Stat(rootPath); err != nil || !info.IsDir() {
		return nil, &LocalizationFolderError{Path: rootPath}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resolveStartLocale(); err != nil {
		return nil, err
	}

	if s.loadOnInit {
		if err := s.load(s.initialScope); err != nil {
			return nil, fmt.Errorf("loading initial translations: %w", err)
		}
	}

	return s, nil
}

// Translate returns the translation for the dotted key path with params
// substituted in order. Unknown keys are returned unchanged.
func (s *Service) Translate(key string, params ...Param) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.Translate(s.root, key, params...)
}

// TranslateCount is like Translate but selects the plural alternative
// matching count before substituting params.
func (s *Service) TranslateCount(key string, count int, params ...Param) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.TranslateCount(s.root, key, count, params...)
}

// Has reports whether key resolves to a node.
func (s *Service) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.root.Lookup(key)
	return ok
}

// SetLocale switches to the folder of tag.
//
// With reload set, scope is loaded again from the new folder. Otherwise
// only the already loaded content is refreshed in place: keys that were
// never loaded stay absent. On a resolution error the service keeps its
// previous locale and content.
//
// Registered locale change handlers run after the switch completes.
func (s *Service) SetLocale(tag string, reload bool, scope string) error {
	s.mu.Lock()
	res, err := locale.Resolve(s.rootPath, locale.Parse(tag), s.defaultLocale)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.setResolution(res)

	if reload {
		err = s.load(scope)
	} else {
		err = s.refreshLoaded(s.root, nil)
	}
	s.mu.Unlock()

	s.notifyLocaleChange(res)

	if err != nil {
		return fmt.Errorf("switching locale to %q: %w", res.Folder, err)
	}
	return nil
}

// Load reads the key path scope from the active locale folder into the
// tree. The empty scope loads the whole folder. Missing scopes are a no-op;
// files that cannot be decoded are skipped and reported in the returned error.
func (s *Service) Load(scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolution.IsZero() {
		if err := s.resolveStartLocale(); err != nil {
			return err
		}
	}
	return s.load(scope)
}

// Refresh re-reads the already loaded content from the active folder
// without resolving the locale again. Keys that were never loaded stay
// absent and locale change handlers are not called.
func (s *Service) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolution.IsZero() {
		return nil
	}
	if err := s.refreshLoaded(s.root, nil); err != nil {
		return fmt.Errorf("refreshing %q: %w", s.resolution.Folder, err)
	}
	return nil
}

// Unload removes scope from the tree. The empty scope clears it entirely.
func (s *Service) Unload(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unload(scope)
}

// Locale returns the locale backing the active folder.
func (s *Service) Locale() locale.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution.Locale
}

// Resolution returns how the active folder was selected.
func (s *Service) Resolution() locale.Resolution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution
}

// DefaultLocale returns the configured default locale.
func (s *Service) DefaultLocale() locale.Locale {
	return s.defaultLocale
}

// ForcedLocale returns the configured forced locale, or the zero Locale.
func (s *Service) ForcedLocale() locale.Locale {
	return s.forcedLocale
}

// RootPath returns the localization root directory.
func (s *Service) RootPath() string {
	return s.rootPath
}

// Available lists the locale folders under the localization root.
func (s *Service) Available() ([]locale.Locale, error) {
	return locale.Available(s.rootPath)
}

// Snapshot returns a deep copy of the node at scope.
func (s *Service) Snapshot(scope string) (*tree.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.root.Lookup(scope)
	if !ok {
		return nil, false
	}
	return node.Clone(), true
}

// OnLocaleChange registers fn to run after every SetLocale call that
// resolved a folder. The returned function removes the registration.
func (s *Service) OnLocaleChange(fn func(locale.Resolution)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// Healthcheck returns a check that fails when the localization root or the
// active locale folder is no longer readable.
func (s *Service) Healthcheck() health.CheckFunc {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if info, err := os.Stat(s.rootPath); err != nil || !info.IsDir() {
			return &LocalizationFolderError{Path: s.rootPath}
		}
		res := s.Resolution()
		if info, err := os.Stat(res.Dir); err != nil || !info.IsDir() {
			return &LanguageFolderError{Requested: res.Locale, Default: s.defaultLocale}
		}
		return nil
	}
}

// resolveStartLocale resolves the forced locale, or the system locale when
// none is forced. Callers must hold the write lock.
func (s *Service) resolveStartLocale() error {
	candidate := s.forcedLocale
	if candidate.IsZero() {
		candidate = s.systemLocale()
	}

	res, err := locale.Resolve(s.rootPath, candidate, s.defaultLocale)
	if err != nil {
		return err
	}
	s.setResolution(res)
	return nil
}

// setResolution switches the active folder. Callers must hold the write lock.
func (s *Service) setResolution(res locale.Resolution) {
	s.resolution = res
	s.resolver = i18n.NewResolver(
		i18n.WithLanguage(res.Locale.LanguageTag()),
		i18n.WithMissingKeyHandler(s.missingKeyHandler),
	)
	s.logger.Debug("locale folder selected",
		slog.String("locale", res.Locale.Tag()),
		slog.String("folder", res.Folder),
		slog.String("match", res.Match.String()),
		slog.Bool("fallback", res.Fallback),
	)
}

func (s *Service) notifyLocaleChange(res locale.Resolution) {
	s.listenersMu.Lock()
	handlers := make([]func(locale.Resolution), 0, len(s.listeners))
	for _, id := range slices.Sorted(maps.Keys(s.listeners)) {
		handlers = append(handlers, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, fn := range handlers {
		fn(res)
	}
}
