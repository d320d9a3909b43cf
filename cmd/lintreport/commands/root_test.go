package commands

import (
	"bytes"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	resetFlags(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("root --help returned error: %v", err)
	}

	output := buf.String()
	assertContains(t, output, "lintreport")
	assertContains(t, output, "pylint")
	assertContains(t, output, "--consolidate")
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("version command returned error: %v", err)
	}
	assertContains(t, buf.String(), "lintreport dev")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"catalog": false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("expected subcommand %q to be registered, but it was not", name)
		}
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	flags := []string{"config", "tool", "tool-arg", "image", "details", "no-color", "debug", "log-json"}

	for _, name := range flags {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag --%s to be registered", name)
		}
	}
}

func TestRootCommand_ReportFlags(t *testing.T) {
	flags := []string{"verbose", "directories", "consolidate", "quiet"}

	for _, name := range flags {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be registered", name)
		}
	}

	dirs := rootCmd.Flags().Lookup("directories")
	if dirs != nil && dirs.DefValue != "[avocado,optional_plugins]" {
		t.Errorf("unexpected --directories default %q", dirs.DefValue)
	}
}

func TestRootCommand_RejectsPositionalArgs(t *testing.T) {
	resetFlags(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"avocado"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for a positional argument")
	}
}

func TestRootCommand_HelpDoesNotLeakIntoNextRun(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Run("help", func(t *testing.T) {
		resetFlags(t)
		rootCmd.SetArgs([]string{"--help"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("root --help returned error: %v", err)
		}
	})

	t.Run("positional after help", func(t *testing.T) {
		resetFlags(t)
		rootCmd.SetArgs([]string{"avocado"})
		if err := rootCmd.Execute(); err == nil {
			t.Error("expected an error for a positional argument once --help is cleared")
		}
	})
}

func assertContains(t *testing.T, output, substr string) {
	t.Helper()
	if !bytes.Contains([]byte(output), []byte(substr)) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, output)
	}
}
