package i18n

import (
	"regexp"
	"strconv"
	"strings"
)

// AlternativeSeparator splits a translation into plural alternatives.
const AlternativeSeparator = "|"

// Leading condition tokens, evaluated in this order for each alternative.
var (
	atMostRule  = regexp.MustCompile(`^\[\*,(\d+)\]`)
	atLeastRule = regexp.MustCompile(`^\[(\d+),\*\]`)
	exactRule   = regexp.MustCompile(`^\{(\d+)\}`)
	betweenRule = regexp.MustCompile(`^\[(\d+),(\d+)\]`)
)

// Pluralize selects the alternative of text matching count.
//
// The baseline is the first alternative for count <= 1 and the second for
// count > 1 when there is one. Every alternative is then checked for a
// leading condition token:
//
//	[*,N]  count <= N
//	[N,*]  count >= N
//	{N}    count == N
//	[N,M]  N <= count <= M
//
// A satisfied token overrides the baseline; when several are satisfied the
// last one in alternative order wins. The selected alternative has its token
// removed and surrounding whitespace trimmed. Alternatives picked by the
// baseline are trimmed as well, so "one | many" yields "one" and never "one ".
func Pluralize(text string, count int) string {
	alternatives := strings.Split(text, AlternativeSeparator)

	result := text
	switch {
	case count <= 1 && len(text) > 0:
		result = alternatives[0]
	case count > 1 && len(text) > 1 && len(alternatives) > 1:
		result = alternatives[1]
	}

	for _, alt := range alternatives {
		if n, ok := bound(atMostRule, alt, 1); ok && count <= n {
			result = atMostRule.ReplaceAllLiteralString(alt, "")
		}
		if n, ok := bound(atLeastRule, alt, 1); ok && count >= n {
			result = atLeastRule.ReplaceAllLiteralString(alt, "")
		}
		if n, ok := bound(exactRule, alt, 1); ok && count == n {
			result = exactRule.ReplaceAllLiteralString(alt, "")
		}
		low, okLow := bound(betweenRule, alt, 1)
		high, okHigh := bound(betweenRule, alt, 2)
		if okLow && okHigh && count >= low && count <= high {
			result = betweenRule.ReplaceAllLiteralString(alt, "")
		}
	}

	return strings.TrimSpace(result)
}

// bound extracts the numeric capture group of rule from alt.
func bound(rule *regexp.Regexp, alt string, group int) (int, bool) {
	m := rule.FindStringSubmatch(alt)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[group])
	if err != nil {
		return 0, false
	}
	return n, true
}
