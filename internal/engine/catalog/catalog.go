// Package catalog parses the analyzer's message listing into a code lookup table.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// entryMarker starts every message line in `pylint --list-msgs` output.
const entryMarker = ':'

// ErrUnknownCode is matched by every LookupError.
var ErrUnknownCode = errors.New("unknown diagnostic code")

// Entry describes one diagnostic the analyzer can emit.
type Entry struct {
	Code        string
	Name        string
	Description string
	Details     string
}

// Catalog maps diagnostic codes to their entries. It is read-only once parsed.
type Catalog struct {
	entries map[string]Entry
}

// LookupError reports a code observed in scan output that the catalog does not know.
// It usually means the catalog and the scan came from different analyzer versions.
type LookupError struct {
	Code      string
	Directory string
}

func (e *LookupError) Error() string {
	if e.Directory == "" {
		return fmt.Sprintf("code %s: not in message catalog", e.Code)
	}
	return fmt.Sprintf("code %s reported for %s: not in message catalog", e.Code, e.Directory)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownCode
}

// New builds a Catalog from entries. Later entries win on duplicate codes.
func New(entries ...Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		c.entries[e.Code] = e
	}
	return c
}

// Parse reads `--list-msgs` output.
//
// A line beginning with ':' opens an entry of the form
//
//	:<name> (<code>): *<description>*
//
// and every other line is a continuation whose trimmed text is appended to
// the Details of the open entry. Lines before the first entry are headers
// and are ignored, as are continuations of a malformed entry line. An entry
// line needs a name and a code; the description is optional.
func Parse(text string) *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	var current *Entry

	flush := func() {
		if current != nil {
			c.entries[current.Code] = *current
			current = nil
		}
	}

	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")

		if len(line) > 0 && line[0] == entryMarker {
			flush()
			if e, ok := parseEntryLine(line); ok {
				current = &e
			}
			continue
		}

		if current == nil {
			continue
		}
		if detail := strings.TrimSpace(line); detail != "" {
			if current.Details != "" {
				current.Details += " "
			}
			current.Details += detail
		}
	}
	flush()

	return c
}

// parseEntryLine slices name, code and description out of a marker line.
// The offsets are fixed by the analyzer's output format.
func parseEntryLine(line string) (Entry, bool) {
	endOfName := strings.IndexByte(line, ' ')
	endOfCode := strings.IndexByte(line, ')')
	startDesc := strings.IndexByte(line, '*')

	if endOfName < 2 || endOfCode <= endOfName+2 {
		return Entry{}, false
	}

	e := Entry{
		Name: line[1:endOfName],
		Code: line[endOfName+2 : endOfCode],
	}
	// Messages without a template (F0001) carry no *description*.
	if startDesc > endOfCode && startDesc < len(line)-1 {
		e.Description = line[startDesc+1 : len(line)-1]
	}
	return e, true
}

// Lookup returns the entry for code.
func (c *Catalog) Lookup(code string) (Entry, error) {
	e, ok := c.entries[code]
	if !ok {
		return Entry{}, &LookupError{Code: code}
	}
	return e, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Codes returns all known codes in ascending order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
