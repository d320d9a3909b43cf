package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func loadConfig(t *testing.T, name string) (*Config, error) {
	t.Helper()
	path := testdataPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	mockFS := NewMockFileSystem()
	mockFS.Files[path] = data
	return NewLoader(mockFS).Load(context.Background(), path)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !reflect.DeepEqual(cfg.Directories, []string{"avocado", "optional_plugins"}) {
		t.Errorf("unexpected default directories %v", cfg.Directories)
	}
	if cfg.Tool != "pylint" {
		t.Errorf("expected default tool pylint, got %q", cfg.Tool)
	}
	if cfg.Verbose || cfg.Consolidate || cfg.Details || cfg.Image != "" {
		t.Errorf("expected all switches off by default, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Directories[0] = "changed"
	if Default().Directories[0] != "avocado" {
		t.Error("mutating one Default() leaked into the next")
	}
}

func TestLoad_Full(t *testing.T) {
	cfg, err := loadConfig(t, "full.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		Directories: []string{"avocado", "optional_plugins", "selftests"},
		Consolidate: true,
		Verbose:     true,
		Details:     true,
		Tool:        "python3",
		Args:        []string{"-m", "pylint", "--rcfile=.pylintrc"},
		Image:       "python:3.12",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(t, "partial.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from file")
	}
	if !reflect.DeepEqual(cfg.Directories, DefaultDirectories) {
		t.Errorf("expected default directories, got %v", cfg.Directories)
	}
	if cfg.Tool != DefaultTool {
		t.Errorf("expected default tool, got %q", cfg.Tool)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	loader := NewLoader(NewMockFileSystem())

	_, err := loader.Load(context.Background(), "nonexistent.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "nonexistent.yaml") {
		t.Errorf("expected path in error, got: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := loadConfig(t, "invalid_yaml.yaml")
	if err == nil {
		t.Fatalf("expected error for invalid YAML, got config %+v", cfg)
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("expected parsing error, got: %v", err)
	}
}

func TestLoad_DoesNotValidate(t *testing.T) {
	cfg, err := loadConfig(t, "empty_directories.yaml")
	if err != nil {
		t.Fatalf("flags may still fix the file, so Load must not validate: %v", err)
	}
	if len(cfg.Directories) != 0 {
		t.Errorf("expected the file's empty list, got %v", cfg.Directories)
	}
}

func TestValidate_EmptyDirectoriesAndTool(t *testing.T) {
	cfg, err := loadConfig(t, "empty_directories.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = cfg.Validate()
	if !errors.Is(err, ErrNoDirectories) {
		t.Errorf("expected ErrNoDirectories, got: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "tool must not be empty") {
		t.Errorf("expected the empty tool to be reported too, got: %v", err)
	}
}

func TestLoad_ReadError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.ReadErrors["broken.yaml"] = errors.New("disk I/O error")

	_, err := NewLoader(mockFS).Load(context.Background(), "broken.yaml")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("expected 'reading config file' error, got: %v", err)
	}
}

func TestLoad_ConvenienceFunction(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/path/lintreport.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg, err := loadConfig(t, "absolute_with_image.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, `"/srv/avocado"`) {
		t.Errorf("expected absolute path error, got: %v", err)
	}
	if !strings.Contains(errStr, "position 2 is empty") {
		t.Errorf("expected empty directory error, got: %v", err)
	}
}

func TestValidateTool_IgnoresDirectories(t *testing.T) {
	cfg, err := loadConfig(t, "absolute_with_image.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ValidateTool(); err != nil {
		t.Errorf("directory problems must not fail the tool check, got: %v", err)
	}

	cfg.Tool = " "
	if err := cfg.ValidateTool(); err == nil {
		t.Error("expected an error for a blank tool")
	}
}

func TestValidate_AbsoluteWithoutImage(t *testing.T) {
	cfg := Default()
	cfg.Directories = []string{"/srv/avocado"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("absolute paths are fine for local runs, got: %v", err)
	}
}
