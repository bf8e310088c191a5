package localize

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/localize/pkg/tree"
)

// load reads scope from the active folder. A directory at the scope path is
// walked recursively into a fresh object node; otherwise a single file named
// after the scope is stored at the scope itself. Neither existing is a no-op.
// Callers must hold the write lock.
func (s *Service) load(scope string) error {
	segments := tree.Split(scope)
	dir := s.scopePath(segments)

	if isDir(dir) {
		return s.loadDir(dir, s.resetScope(segments))
	}

	file, ok := s.findFile(dir)
	if !ok || len(segments) == 0 {
		s.logger.Debug("nothing to load", slog.String("scope", scope), slog.String("path", dir))
		return nil
	}

	node, err := s.parseFile(file)
	if err != nil {
		return err
	}
	parent := s.ensureObject(segments[:len(segments)-1])
	parent.Set(segments[len(segments)-1], node)
	return nil
}

// loadDir stores every translation file directly inside dir under node,
// keyed by file name without extension, then descends into subdirectories.
// Files that fail are skipped; their errors are joined.
func (s *Service) loadDir(dir string, node *tree.Node) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %s", ErrInvalidFile, dir, err)
	}

	var errs []error
	var subdirs []string

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isDir(path) {
			subdirs = append(subdirs, entry.Name())
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := s.parsers[ext]; !ok {
			continue
		}

		parsed, err := s.parseFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		node.Set(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())), parsed)
	}

	for _, name := range subdirs {
		child := tree.Object()
		node.Set(name, child)
		if err := s.loadDir(filepath.Join(dir, name), child); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// unload removes scope from the tree. Callers must hold the write lock.
func (s *Service) unload(scope string) {
	segments := tree.Split(scope)
	if len(segments) == 0 {
		s.root.Clear()
		return
	}

	parent, ok := s.root.Walk(segments[:len(segments)-1]...)
	if !ok {
		return
	}
	parent.Delete(segments[len(segments)-1])
}

// resetScope replaces the node at segments with an empty object, creating
// object ancestors as needed, and returns it. The root is cleared in place.
func (s *Service) resetScope(segments []string) *tree.Node {
	if len(segments) == 0 {
		s.root.Clear()
		return s.root
	}

	parent := s.ensureObject(segments[:len(segments)-1])
	fresh := tree.Object()
	parent.Set(segments[len(segments)-1], fresh)
	return fresh
}

// ensureObject returns the object node at segments, replacing anything
// missing or non-object along the way with an empty object.
func (s *Service) ensureObject(segments []string) *tree.Node {
	current := s.root
	for _, segment := range segments {
		child, ok := current.Get(segment)
		if !ok || !child.IsObject() {
			child = tree.Object()
			current.Set(segment, child)
		}
		current = child
	}
	return current
}

// scopePath maps key path segments to a path inside the active folder.
func (s *Service) scopePath(segments []string) string {
	return filepath.Join(append([]string{s.resolution.Dir}, segments...)...)
}

// findFile returns the first existing translation file for base, trying
// the registered extensions in registration order.
func (s *Service) findFile(base string) (string, bool) {
	for _, ext := range s.extensions {
		if path := base + ext; isFile(path) {
			return path, true
		}
	}
	return "", false
}

func (s *Service) parseFile(path string) (*tree.Node, error) {
	parse, ok := s.parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("translation file unreadable", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: reading %q: %s", ErrInvalidFile, path, err)
	}

	node, err := parse(data)
	if err != nil {
		s.logger.Warn("translation file invalid", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, path, err)
	}
	return node, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
