package denom

import "strings"

// humanJoin joins words the way a human would write the list out: a single
// word stands alone, two words get a plain "and", three or more are comma
// separated with an "and" before the last one.
func humanJoin(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
	}
}
