package binding

import (
	"github.com/dmitrymomot/localize/pkg/i18n"
)

// Property is a named value slot feeding translation parameters.
type Property struct {
	// Value returns the current value. A nil Value reads as "".
	Value func() string
	// Name is the canonical parameter key.
	Name string
	// Aliases are extra parameter keys receiving the same value.
	Aliases []string
	// KeepName makes Name itself a parameter key next to Aliases.
	KeepName bool
}

// NewProperty creates a property whose canonical name is also a parameter key.
func NewProperty(name string, value func() string, aliases ...string) Property {
	return Property{Name: name, Value: value, Aliases: aliases, KeepName: true}
}

// Static creates a property holding a fixed value.
func Static(name, value string, aliases ...string) Property {
	return NewProperty(name, func() string { return value }, aliases...)
}

func (p Property) value() string {
	if p.Value == nil {
		return ""
	}
	return p.Value()
}

// Params expands properties into ordered translation parameters: for each
// property its name (when kept) and then its aliases. A key seen twice keeps
// its first position and takes the later value.
func Params(props ...Property) []i18n.Param {
	var params []i18n.Param
	index := make(map[string]int)

	add := func(key, value string) {
		if i, ok := index[key]; ok {
			params[i].Value = value
			return
		}
		index[key] = len(params)
		params = append(params, i18n.P(key, value))
	}

	for _, p := range props {
		v := p.value()
		if p.KeepName {
			add(p.Name, v)
		}
		for _, alias := range p.Aliases {
			add(alias, v)
		}
	}
	return params
}
