package sequence

import (
	"path"
	"strings"

	"osctest/internal/domain"
)

// Filter filters test cases by OSC address pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByAddress filters cases by address pattern using wildcard matching.
// Supports patterns like "/param/*" or "*speed*"; a pattern without wildcards
// matches any address containing it.
func (f *Filter) FilterByAddress(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")
	var filtered []domain.TestCase

	for _, tc := range cases {
		// path.Match treats "/" as a separator, which lines up with OSC address parts
		matched, err := path.Match(pattern, tc.Address)
		if err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		if hasWildcard {
			// "*speed*" should also match "/param/speed", which path.Match rejects
			if containsAllParts(tc.Address, strings.Split(pattern, "*")) {
				filtered = append(filtered, tc)
			}
			continue
		}

		if strings.Contains(tc.Address, pattern) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}

// containsAllParts reports whether s contains every non-empty part, and at least one part is non-empty
func containsAllParts(s string, parts []string) bool {
	nonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.ContainsRune(part, '?') || !strings.Contains(s, part) {
			return false
		}
		nonEmpty = true
	}
	return nonEmpty
}
