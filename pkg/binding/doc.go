// Package binding connects display text to a translation service through
// explicit declarations instead of runtime reflection.
//
// A [Text] holds a template with @trans markers, the [Property] slots that
// feed its parameters, and the [Trigger]s that make it refresh:
//
//	count := 0
//	items := binding.NewProperty("count", func() string { return strconv.Itoa(count) }, "n")
//	changed := &binding.Signal{}
//
//	label := binding.NewText(svc, "@trans(cart.items|count)", setLabel, items)
//	label.Watch(changed, binding.OnLocaleChange(svc))
//	label.Refresh()
//	defer label.Close()
//
//	count = 3
//	changed.Fire() // setLabel receives the plural form for 3
//
// Properties expose their canonical name (when KeepName is set) and every
// alias as parameter keys, all bound to the same value.
package binding
