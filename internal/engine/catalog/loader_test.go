package catalog

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/irahardianto/lintreport/internal/engine/tool"
)

func TestLoad(t *testing.T) {
	runner := &tool.MockRunner{
		Responses: map[string]*tool.Result{
			"--rcfile=.pylintrc --list-msgs": {Stdout: []byte(":unused-import (W0611): *Unused %s*\n")},
		},
	}

	c, err := Load(context.Background(), runner, "pylint", []string{"--rcfile=.pylintrc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}

	wantCall := []string{"pylint", "--rcfile=.pylintrc", "--list-msgs"}
	if len(runner.Calls) != 1 || !reflect.DeepEqual(runner.Calls[0], wantCall) {
		t.Errorf("expected call %v, got %v", wantCall, runner.Calls)
	}
}

func TestLoad_NonZeroExitStillParsed(t *testing.T) {
	runner := &tool.MockRunner{
		Default: &tool.Result{ExitCode: 32, Stdout: []byte(":unused-import (W0611): *Unused %s*\n")},
	}

	c, err := Load(context.Background(), runner, "pylint", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Lookup("W0611"); err != nil {
		t.Errorf("expected W0611 to be parsed: %v", err)
	}
}

func TestLoad_InvocationError(t *testing.T) {
	runner := &tool.MockRunner{
		Err: &tool.InvocationError{Args: []string{"pylint", "--list-msgs"}, Err: exec.ErrNotFound},
	}

	_, err := Load(context.Background(), runner, "pylint", nil)
	var invErr *tool.InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *tool.InvocationError, got %T (%v)", err, err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected wrapped exec.ErrNotFound, got %v", err)
	}
}
