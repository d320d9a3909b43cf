package scanner

import (
	"regexp"
	"sort"
	"strings"
)

// codePattern matches one uppercase letter and four digits that do not
// continue a longer run of letters. "AB1234" does not match; "A12345"
// matches "A1234".
var codePattern = regexp.MustCompile(`(?:^|[^A-Za-z])([A-Z][0-9]{4})`)

// ExtractCodes returns the unique diagnostic codes found in text, sorted
// ascending. At most one code is taken per line: the leftmost one.
func ExtractCodes(text string) []string {
	seen := make(map[string]struct{})

	for line := range strings.Lines(text) {
		m := codePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			continue
		}
		seen[m[1]] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MergeCodes unions several sorted code lists into one sorted, deduplicated list.
func MergeCodes(lists ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, code := range list {
			seen[code] = struct{}{}
		}
	}

	merged := make([]string, 0, len(seen))
	for code := range seen {
		merged = append(merged, code)
	}
	sort.Strings(merged)
	return merged
}
