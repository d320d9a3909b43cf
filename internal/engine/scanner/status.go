package scanner

import "strings"

// Status is pylint's exit status: a bit set of the message categories
// that were emitted, plus a usage-error bit.
type Status int

const (
	StatusFatal Status = 1 << iota
	StatusError
	StatusWarning
	StatusRefactor
	StatusConvention
	StatusUsage
)

var statusNames = []struct {
	bit  Status
	name string
}{
	{StatusFatal, "fatal"},
	{StatusError, "error"},
	{StatusWarning, "warning"},
	{StatusRefactor, "refactor"},
	{StatusConvention, "convention"},
	{StatusUsage, "usage"},
}

// Has reports whether bit is set.
func (s Status) Has(bit Status) bool {
	return s&bit != 0
}

func (s Status) String() string {
	if s == 0 {
		return "clean"
	}
	if s < 0 {
		return "signaled"
	}
	var names []string
	for _, n := range statusNames {
		if s.Has(n.bit) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, "|")
}
