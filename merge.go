package localize

import (
	"errors"

	"github.com/dmitrymomot/localize/pkg/tree"
)

// refreshLoaded re-reads the already loaded content of node from the active
// folder. For every key backed by a file in the new folder, the file is
// parsed and merged into the loaded value; keys without a file are descended
// into when they hold objects. No key absent from node is ever added.
// Callers must hold the write lock.
func (s *Service) refreshLoaded(node *tree.Node, segments []string) error {
	var errs []error

	for _, key := range node.Keys() {
		path := append(segments[:len(segments):len(segments)], key)
		current, _ := node.Get(key)

		file, ok := s.findFile(s.scopePath(path))
		if !ok {
			if current.IsObject() {
				if err := s.refreshLoaded(current, path); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}

		fresh, err := s.parseFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if merged := mergeLoaded(current, fresh); merged != nil {
			node.Set(key, merged)
		} else {
			node.Delete(key)
		}
	}

	return errors.Join(errs...)
}

// mergeLoaded swaps the leaves of current for the values found at the same
// paths in fresh, keeping the shape of current. Containers of matching kind
// are merged in place; anything else is replaced by fresh. It returns nil
// when fresh has no value for current.
func mergeLoaded(current, fresh *tree.Node) *tree.Node {
	if fresh == nil {
		return nil
	}

	switch {
	case current.IsObject() && fresh.IsObject():
		for _, key := range current.Keys() {
			old, _ := current.Get(key)
			next, _ := fresh.Get(key)
			if merged := mergeLoaded(old, next); merged != nil {
				current.Set(key, merged)
			} else {
				current.Delete(key)
			}
		}
		return current

	case current.IsArray() && fresh.IsArray():
		size := min(current.Len(), fresh.Len())
		for i := range size {
			old, _ := current.Index(i)
			next, _ := fresh.Index(i)
			current.SetIndex(i, mergeLoaded(old, next))
		}
		current.Truncate(size)
		return current

	default:
		return fresh
	}
}
