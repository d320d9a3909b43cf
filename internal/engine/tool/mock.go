package tool

import (
	"context"
	"strings"
)

// MockRunner is a test double for Runner.
// Responses are keyed by the space-joined argument list (without the name).
type MockRunner struct {
	Responses map[string]*Result
	Default   *Result
	Err       error
	Calls     [][]string
}

// Run records the call and returns the configured result.
func (m *MockRunner) Run(_ context.Context, name string, args ...string) (*Result, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.Err != nil {
		return nil, m.Err
	}
	if res, ok := m.Responses[strings.Join(args, " ")]; ok {
		return res, nil
	}
	if m.Default != nil {
		return m.Default, nil
	}
	return &Result{}, nil
}
