// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/argvkit/argvkit/pkg/types"
)

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       LoadOptions
		wantErrs   int
		wantSubstr string
	}{
		{name: "all empty", opts: LoadOptions{}},
		{name: "all valid", opts: LoadOptions{ConfigFilePath: "/tmp/config.cue", ConfigDirPath: "/tmp/config"}},
		{name: "whitespace file path", opts: LoadOptions{ConfigFilePath: types.FilesystemPath("   ")}, wantErrs: 1, wantSubstr: "config file path"},
		{name: "whitespace dir path", opts: LoadOptions{ConfigDirPath: types.FilesystemPath("\t")}, wantErrs: 1, wantSubstr: "config dir path"},
		{name: "both invalid", opts: LoadOptions{ConfigFilePath: " ", ConfigDirPath: "\n"}, wantErrs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErrs == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidLoadOptions) {
				t.Fatalf("error should wrap ErrInvalidLoadOptions, got: %v", err)
			}
			var loadErr *InvalidLoadOptionsError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error should be *InvalidLoadOptionsError, got: %T", err)
			}
			if len(loadErr.FieldErrors) != tt.wantErrs {
				t.Errorf("expected %d field errors, got %d", tt.wantErrs, len(loadErr.FieldErrors))
			}
			if tt.wantSubstr != "" && !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q should mention %q", err, tt.wantSubstr)
			}
		})
	}
}

func TestProvider_Load_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: "  "})
	if !errors.Is(err, ErrInvalidLoadOptions) {
		t.Errorf("Load() error = %v, want ErrInvalidLoadOptions", err)
	}
}

func TestProvider_Load_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: types.FilesystemPath(t.TempDir())})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestProvider_Load_ReportsSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(path, []byte(`strict: true`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: types.FilesystemPath(dir)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Source != path {
		t.Errorf("Source = %q, want %q", loaded.Source, path)
	}
	if !loaded.Config.Strict {
		t.Error("Strict = false, want true from config file")
	}
}
