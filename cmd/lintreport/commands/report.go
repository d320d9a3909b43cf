package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/irahardianto/lintreport/internal/engine/catalog"
	"github.com/irahardianto/lintreport/internal/engine/config"
	"github.com/irahardianto/lintreport/internal/engine/pool"
	"github.com/irahardianto/lintreport/internal/engine/runner"
	"github.com/irahardianto/lintreport/internal/engine/tool"
	"github.com/irahardianto/lintreport/internal/platform/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runReport wires real infrastructure and delegates to Report.Execute.
// This is a composition root: it instantiates production dependencies.
func runReport(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	toolRunner, closeRunner, err := newToolRunner(ctx, cfg.Image)
	if err != nil {
		return err
	}
	defer closeRunner()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	progress := runner.NewProgress(stderr, flagQuiet || !isTerminal(stderr), len(cfg.Directories))
	report := &Report{
		Tool:        toolRunner,
		LoadCatalog: catalog.Load,
		Scans:       runner.NewEngineWithProgress(progress),
		Stdout:      stdout,
	}

	return report.Execute(ctx, cfg, !flagNoColor && isTerminal(stdout))
}

// resolveConfig layers built-in defaults, the optional --config file and
// explicitly set flags, in that order. Each command validates the result
// for what it actually runs.
func resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(ctx, flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cfg, cmd.Flags().Changed)
	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto cfg.
// Flags not defined on the running command report unchanged.
func applyFlags(cfg *config.Config, changed func(name string) bool) {
	if changed("directories") {
		cfg.Directories = append([]string(nil), flagDirectories...)
	}
	if changed("consolidate") {
		cfg.Consolidate = flagConsolidate
	}
	if changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if changed("details") {
		cfg.Details = flagDetails
	}
	if changed("tool") {
		cfg.Tool = flagTool
	}
	if changed("tool-arg") {
		cfg.Args = append([]string(nil), flagToolArgs...)
	}
	if changed("image") {
		cfg.Image = flagImage
	}
}

// newToolRunner returns a host runner, or a container runner when image is
// set. The returned cleanup must always be called.
func newToolRunner(ctx context.Context, image string) (tool.Runner, func(), error) {
	if image == "" {
		return tool.NewExecRunner(""), func() {}, nil
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("getting working directory: %w", err)
	}

	rt, err := pool.NewDockerRuntime()
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to Docker: %w", err)
	}
	if err := pool.CheckDocker(ctx, rt); err != nil {
		_ = rt.Close()
		return nil, nil, err
	}

	cr := pool.NewContainerRunner(rt, image, projectDir)
	cleanup := func() {
		// The container must go even when ctx was cancelled by a signal.
		if err := cr.Close(context.WithoutCancel(ctx)); err != nil {
			logger.FromContext(ctx).Warn("failed to remove analyzer container", "error", err)
		}
		_ = rt.Close()
	}
	return cr, cleanup, nil
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
