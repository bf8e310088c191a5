// Package localize serves translations from a folder tree of JSON files, one
// folder per locale:
//
//	locales/
//	    en/
//	        common.json      {"hello": "Hello :name", "apples": "one apple|:count apples"}
//	        menu/items.json  {"open": "Open"}
//	    fr/
//	        common.json
//
// Directories and file names become the leading segments of dotted key
// paths, so "menu.items.open" reads "open" from en/menu/items.json.
//
// # Quick Start
//
//	svc, err := localize.New("locales", localize.WithDefaultLocale("en-US"))
//	if err != nil {
//	    return err
//	}
//
//	svc.Translate("common.hello", localize.P("name", "bob"))  // "Hello bob"
//	svc.TranslateCount("common.apples", 3, localize.P("count", "3")) // "3 apples"
//	svc.Translate("common.missing")                           // "common.missing"
//
// # Locale Folders
//
// The folder is picked from the full tag ("en-US"), then its language ("en"),
// then the same two steps for the default locale. New starts from the forced
// locale when one is set, otherwise from the process locale (LC_ALL,
// LC_MESSAGES, LANG).
//
// # Switching Locales
//
// SetLocale(tag, true, scope) loads scope again from the new folder.
// SetLocale(tag, false, "") refreshes only what is loaded: every loaded
// value backed by a file in the new folder is replaced, values the new files
// lack are dropped, and nothing new is added. OnLocaleChange registers
// callbacks run after each switch.
//
// # Text Format
//
// Plural alternatives are separated by "|" and may start with a condition:
// "[*,N]", "[N,*]", "{N}" or "[N,M]". Placeholders ":name", ":Name" and
// ":NAME" receive the parameter value as is, capitalized and upper-cased.
// Parameters are applied in order, so a value containing another
// placeholder is substituted by later parameters.
package localize
