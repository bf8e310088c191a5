// Package tree models translation data as a small tagged union of string,
// array and object nodes addressed by dotted key paths.
//
// Navigation never returns a nil node without also reporting failure:
//
//	root, err := tree.ParseJSON([]byte(`{"menu":{"title":"Menu","items":["Open","Close"]}}`))
//	if err != nil {
//		return err
//	}
//	title, ok := root.Lookup("menu.title")  // "Menu", true
//	item, ok := root.Lookup("menu.items.1") // "Close", true
//	_, ok = root.Lookup("menu.missing")     // nil, false
//
// JSON numbers, booleans and null become string leaves holding their literal
// text, so every leaf can be rendered without type switches.
package tree
