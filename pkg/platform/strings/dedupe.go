// Package strings holds small slice helpers used to normalize token claims.
package strings

import (
	"strings"
)

// DedupeAndTrimLower trims and lowercases each entry, then drops blanks and
// repeats. First occurrence wins. Role names from bearer tokens pass through it
// before reaching the request context.
//
//	DedupeAndTrimLower([]string{" Admin ", "admin"}) // []string{"admin"}
func DedupeAndTrimLower(values []string) []string {
	return dedupe(values, func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	})
}

func dedupe(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = normalize(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
