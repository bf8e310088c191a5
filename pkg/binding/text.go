package binding

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

// marker matches @trans(key) and @trans(key|countProperty).
var marker = regexp.MustCompile(`@trans\(([^|)]*)(?:\|([^)]*))?\)`)

// Translator is the part of localize.Service a binding renders with.
type Translator interface {
	Translate(key string, params ...i18n.Param) string
	TranslateCount(key string, count int, params ...i18n.Param) string
}

// Text is a template whose @trans markers are rendered through a Translator
// and pushed to a sink whenever one of its triggers fires.
//
// A marker names a translation key and, optionally, the property holding
// the plural count:
//
//	"@trans(cart.items|count) - @trans(cart.owner)"
//
// Keys may embed ":property" placeholders, replaced by the lower-cased
// property value before lookup, e.g. "@trans(status.:state)".
type Text struct {
	translator Translator
	sink       func(string)
	template   string
	props      []Property
	cancels    []func()
	mu         sync.Mutex
}

// NewText creates a binding of template to sink. Nothing is rendered until
// Refresh is called or a trigger fires.
func NewText(tr Translator, template string, sink func(string), props ...Property) *Text {
	if sink == nil {
		sink = func(string) {}
	}
	return &Text{
		translator: tr,
		sink:       sink,
		template:   template,
		props:      props,
	}
}

// Render returns the template with every marker translated.
func (t *Text) Render() string {
	params := Params(t.props...)

	return marker.ReplaceAllStringFunc(t.template, func(m string) string {
		groups := marker.FindStringSubmatch(m)
		key, countProp := groups[1], groups[2]

		if strings.Contains(key, i18n.PlaceholderPrefix) {
			for _, p := range t.props {
				key = strings.ReplaceAll(key, i18n.PlaceholderPrefix+p.Name, strings.ToLower(p.value()))
			}
		}

		if count, ok := t.count(countProp); ok {
			return t.translator.TranslateCount(key, count, params...)
		}
		return t.translator.Translate(key, params...)
	})
}

// Refresh renders the template and hands the result to the sink.
func (t *Text) Refresh() {
	t.sink(t.Render())
}

// Watch subscribes Refresh to every trigger until Close is called.
func (t *Text) Watch(triggers ...Trigger) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tr := range triggers {
		if tr != nil {
			t.cancels = append(t.cancels, tr.Subscribe(t.Refresh))
		}
	}
}

// Close removes every subscription made by Watch.
func (t *Text) Close() {
	t.mu.Lock()
	cancels := t.cancels
	t.cancels = nil
	t.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// count reads the plural count from the named property. Only the integer
// part of a decimal value is used.
func (t *Text) count(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for _, p := range t.props {
		if p.Name != name {
			continue
		}
		whole, _, _ := strings.Cut(p.value(), ".")
		n, err := strconv.Atoi(whole)
		return n, err == nil
	}
	return 0, false
}
