package cliconfig

import (
	"os"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"TALLY_SOURCE":      "file",
				"TALLY_SOURCE_PATH": "/env/value.toml",
				"TALLY_FIXED_VALUE": "11",
				"TALLY_DEBOUNCE":    "300ms",
				"TALLY_WATCH":       "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Source:     "file",
				SourcePath: "/env/value.toml",
				FixedValue: 11,
				Debounce:   300 * time.Millisecond,
				Watch:      true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"TALLY_SOURCE":      "file",
				"TALLY_SOURCE_PATH": "/env/value.toml",
			},
			changed: map[string]bool{"source": true},
			initial: Config{
				Source: "fixed",
			},
			expected: Config{
				Source:     "fixed",
				SourcePath: "/env/value.toml",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"TALLY_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid fixed value",
			envVars: map[string]string{
				"TALLY_FIXED_VALUE": "seven",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer func() {
				for k := range tt.envVars {
					os.Unsetenv(k)
				}
			}()

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
