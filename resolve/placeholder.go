package resolve

import "strings"

// parsePlaceholder splits a placeholder of the exact shape ${NAME:default}
// into its variable name and default value. A string is a placeholder iff it
// starts with "${", ends with "}", and contains at least one ':' strictly
// between the markers; the name runs up to the first ':', the default from
// there to the final '}'. Anything else is not a placeholder and passes
// through resolution unchanged.
func parsePlaceholder(s string) (name, def string, ok bool) {
	if len(s) < 4 || !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return "", "", false
	}
	inner := s[2 : len(s)-1]
	i := strings.IndexByte(inner, ':')
	if i < 0 {
		return "", "", false
	}
	return inner[:i], inner[i+1:], true
}
