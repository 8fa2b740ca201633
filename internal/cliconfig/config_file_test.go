package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	three := int64(3)
	zero := int64(0)

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Source:     "file",
				FixedValue: &three,
				SourcePath: "/data/value.toml",
				Watch:      &trueVal,
				Debounce:   "500ms",
				Verbose:    &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Source:     "file",
				FixedValue: 3,
				SourcePath: "/data/value.toml",
				Watch:      true,
				Debounce:   500 * time.Millisecond,
				Verbose:    true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Source:     "file",
				SourcePath: "/file/value.toml",
			},
			changed: map[string]bool{"source": true},
			initial: Config{
				Source: "fixed",
			},
			expected: Config{
				Source:     "fixed", // unchanged because flag was set
				SourcePath: "/file/value.toml",
			},
		},
		{
			name: "zero fixed value is applied",
			fileConfig: FileConfig{
				FixedValue: &zero,
			},
			changed:  map[string]bool{},
			initial:  Config{FixedValue: 7},
			expected: Config{FixedValue: 0},
		},
		{
			name: "invalid debounce returns error",
			fileConfig: FileConfig{
				Debounce: "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial

			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `source = "file"
source_path = "/data/value.toml"
fixed_value = 9
watch = true
debounce = "1s"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() unexpected error: %v", err)
	}

	if fc.Source != "file" {
		t.Errorf("Source = %q, want %q", fc.Source, "file")
	}
	if fc.SourcePath != "/data/value.toml" {
		t.Errorf("SourcePath = %q, want %q", fc.SourcePath, "/data/value.toml")
	}
	if fc.FixedValue == nil || *fc.FixedValue != 9 {
		t.Errorf("FixedValue = %v, want 9", fc.FixedValue)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
	if fc.Debounce != "1s" {
		t.Errorf("Debounce = %q, want %q", fc.Debounce, "1s")
	}
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}
