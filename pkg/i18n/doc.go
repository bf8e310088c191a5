// Package i18n resolves translation keys against a translation tree and
// renders the result with pluralization and parameter substitution.
//
// Lookups never fail loudly. A key that does not resolve is returned as is,
// an unmatched placeholder stays in the output, and a missing plural
// alternative falls back to the text that was found. Missing content is
// therefore visible on screen instead of being an error.
//
// # Basic Usage
//
//	root, _ := tree.ParseJSON([]byte(`{"greeting":"Hello :name","apples":"one apple|:count apples"}`))
//	r := i18n.NewResolver()
//
//	r.Translate(root, "greeting", i18n.P("name", "bob"))           // "Hello bob"
//	r.TranslateCount(root, "apples", 3, i18n.P("count", "3"))      // "3 apples"
//	r.Translate(root, "missing.key")                               // "missing.key"
//
// # Pluralization
//
// A translation may hold several alternatives separated by "|". The first
// is used for counts up to one and the second for larger counts. Any
// alternative may start with a condition token that overrides this choice:
//
//	"none|one|[2,4] a few|[5,*] many"
//
// Supported tokens are [*,N], [N,*], {N} and [N,M]. The last satisfied token
// in alternative order wins.
//
// # Parameters
//
// Each param fills three placeholder spellings, following the case of the
// placeholder: ":name" gets the lower-cased value, ":Name" the capitalized
// value and ":NAME" the upper-cased value.
//
// Params are applied one after another with plain substring replacement, so
// a value that itself contains a placeholder of a later param is rewritten
// again. Keys that are prefixes of other keys (":name" and ":names") also
// collide. This behavior is kept for compatibility with existing
// translation files; order params accordingly.
package i18n
