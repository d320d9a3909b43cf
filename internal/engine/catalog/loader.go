package catalog

import (
	"context"
	"fmt"

	"github.com/irahardianto/lintreport/internal/engine/tool"
	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// listFlag switches the analyzer into catalog listing mode.
const listFlag = "--list-msgs"

// Load runs `<name> [args...] --list-msgs` once and parses the output.
// A failure to start the analyzer is returned as-is (*tool.InvocationError).
func Load(ctx context.Context, runner tool.Runner, name string, args []string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	argv := append(append([]string{}, args...), listFlag)
	res, err := runner.Run(ctx, name, argv...)
	if err != nil {
		return nil, fmt.Errorf("loading message catalog: %w", err)
	}
	if res.ExitCode != 0 {
		log.Warn("message listing exited non-zero", "exit_code", res.ExitCode, "stderr", string(res.Stderr))
	}

	c := Parse(string(res.Stdout))

	log.Debug("message catalog loaded", "entries", c.Len(), "duration", res.Duration)
	return c, nil
}
