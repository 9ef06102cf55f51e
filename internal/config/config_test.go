package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		wantURL     string
		wantTimeout time.Duration
		wantOutput  string
		wantErr     string
	}{
		{
			name: "full config",
			contents: `[DEFAULT]
WebUrl = https://example.com/nfl/week
Timeout = 45
OutputPath = odds
`,
			wantURL:     "https://example.com/nfl/week",
			wantTimeout: 45 * time.Second,
			wantOutput:  "odds",
		},
		{
			name: "defaults applied",
			contents: `[DEFAULT]
WebUrl = https://example.com/nfl/week
`,
			wantURL:     "https://example.com/nfl/week",
			wantTimeout: DefaultTimeout,
			wantOutput:  DefaultOutputPath,
		},
		{
			name: "keys without section header",
			contents: `WebUrl = https://example.com/nfl/week
Timeout = 10
`,
			wantURL:     "https://example.com/nfl/week",
			wantTimeout: 10 * time.Second,
			wantOutput:  DefaultOutputPath,
		},
		{
			name: "missing WebUrl",
			contents: `[DEFAULT]
Timeout = 30
`,
			wantErr: "WebUrl is required",
		},
		{
			name: "malformed Timeout",
			contents: `[DEFAULT]
WebUrl = https://example.com/nfl/week
Timeout = soon
`,
			wantErr: "Timeout",
		},
		{
			name: "non-positive Timeout",
			contents: `[DEFAULT]
WebUrl = https://example.com/nfl/week
Timeout = 0
`,
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.contents))

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Load() expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if cfg.WebURL != tt.wantURL {
				t.Errorf("WebURL = %q, want %q", cfg.WebURL, tt.wantURL)
			}
			if cfg.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", cfg.Timeout, tt.wantTimeout)
			}
			if cfg.OutputPath != tt.wantOutput {
				t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, tt.wantOutput)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.ini")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
