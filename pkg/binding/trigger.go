package binding

import (
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/localize/pkg/locale"
)

// Trigger is a source of refresh notifications.
type Trigger interface {
	// Subscribe registers fn and returns a function removing it.
	Subscribe(fn func()) (cancel func())
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func(fn func()) (cancel func())

// Subscribe calls f.
func (f TriggerFunc) Subscribe(fn func()) func() {
	return f(fn)
}

// LocaleSource is implemented by localize.Service.
type LocaleSource interface {
	OnLocaleChange(fn func(locale.Resolution)) (cancel func())
}

// OnLocaleChange returns a Trigger firing after every locale switch of src.
func OnLocaleChange(src LocaleSource) Trigger {
	return TriggerFunc(func(fn func()) func() {
		return src.OnLocaleChange(func(locale.Resolution) { fn() })
	})
}

// Signal is a Trigger fired explicitly by host code, for example when a
// bound value changes.
type Signal struct {
	subs map[uint64]func()
	next uint64
	mu   sync.Mutex
}

// Subscribe registers fn.
func (s *Signal) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[uint64]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Fire calls every subscriber in subscription order.
func (s *Signal) Fire() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, id := range slices.Sorted(maps.Keys(s.subs)) {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
