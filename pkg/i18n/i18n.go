package i18n

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localize/pkg/tree"
)

// trimCutset is stripped from both ends of a resolved translation.
const trimCutset = " \t\n\v\f\r\""

// Param is one named substitution value.
type Param struct {
	Key   string
	Value string
}

// P builds a Param.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// FromMap converts m into params ordered by key, so the substitution order
// is deterministic.
func FromMap(m map[string]string) []Param {
	params := make([]Param, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		params = append(params, Param{Key: key, Value: m[key]})
	}
	return params
}

// Resolver turns key paths into display text against a translation tree.
// It holds no tree state and is safe for concurrent use.
type Resolver struct {
	// Optional handler called with the key when lookup fails.
	missingKeyHandler func(key string)

	// Casing rules for parameter substitution.
	lang language.Tag
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLanguage sets the language whose casing rules apply to parameter
// substitution. Defaults to language.Und.
func WithLanguage(tag language.Tag) Option {
	return func(r *Resolver) {
		r.lang = tag
	}
}

// WithMissingKeyHandler sets a handler called when a key does not resolve.
// Useful for spotting untranslated keys during development.
func WithMissingKeyHandler(handler func(key string)) Option {
	return func(r *Resolver) {
		r.missingKeyHandler = handler
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{lang: language.Und}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Language returns the casing language.
func (r *Resolver) Language() language.Tag {
	return r.lang
}

// Translate resolves key against root and substitutes params.
// A key that does not resolve is returned unchanged.
func (r *Resolver) Translate(root *tree.Node, key string, params ...Param) string {
	text, ok := r.lookup(root, key)
	if !ok {
		return key
	}
	return Interpolate(text, r.lang, params...)
}

// TranslateCount is like Translate but first selects the plural alternative
// for count.
func (r *Resolver) TranslateCount(root *tree.Node, key string, count int, params ...Param) string {
	text, ok := r.lookup(root, key)
	if !ok {
		return key
	}
	return Interpolate(Pluralize(text, count), r.lang, params...)
}

func (r *Resolver) lookup(root *tree.Node, key string) (string, bool) {
	node, ok := root.Walk(strings.Split(key, tree.Separator)...)
	if !ok {
		if r.missingKeyHandler != nil {
			r.missingKeyHandler(key)
		}
		return "", false
	}
	return Stringify(node), true
}

// Stringify renders a node as translation text: string leaves as their raw
// text, containers as compact JSON, trimmed of whitespace and double quotes.
func Stringify(n *tree.Node) string {
	return strings.Trim(n.String(), trimCutset)
}
