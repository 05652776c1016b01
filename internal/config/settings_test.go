package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.Gravity != 9.8 || s.Timestep != 0.02 || s.Scale != 5 {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.TicksPerSecond() != 50 {
		t.Errorf("expected 50 ticks per second, got %d", s.TicksPerSecond())
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Settings)
	}{
		{
			name: "full config",
			yamlContent: `
gravity: 1.62
timestep: 0.01
scale: 2.5
defaultSpeed: 12
defaultAngle: 30
sound: false
dialogs: false
`,
			validate: func(t *testing.T, s Settings) {
				if s.Gravity != 1.62 {
					t.Errorf("expected gravity = 1.62, got %f", s.Gravity)
				}
				if s.Timestep != 0.01 || s.TicksPerSecond() != 100 {
					t.Errorf("expected timestep 0.01 at 100 tps, got %f at %d", s.Timestep, s.TicksPerSecond())
				}
				if s.Scale != 2.5 || s.DefaultSpeed != 12 || s.DefaultAngle != 30 {
					t.Errorf("unexpected values: %+v", s)
				}
				if s.Sound || s.Dialogs {
					t.Errorf("expected sound and dialogs off, got %+v", s)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "gravity: 3.7\n",
			validate: func(t *testing.T, s Settings) {
				want := Default()
				want.Gravity = 3.7
				if s != want {
					t.Errorf("expected %+v, got %+v", want, s)
				}
			},
		},
		{
			name:        "empty file",
			yamlContent: "",
			validate: func(t *testing.T, s Settings) {
				if s != Default() {
					t.Errorf("expected defaults, got %+v", s)
				}
			},
		},
		{
			name:        "zero gravity",
			yamlContent: "gravity: 0\n",
			wantErr:     true,
			errContains: "gravity",
		},
		{
			name:        "timestep too large",
			yamlContent: "timestep: 2\n",
			wantErr:     true,
			errContains: "timestep",
		},
		{
			name:        "negative scale",
			yamlContent: "scale: -1\n",
			wantErr:     true,
			errContains: "scale",
		},
		{
			name:        "malformed yaml",
			yamlContent: "gravity: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			s, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got settings %+v", s)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestValidationErrorsAreTyped(t *testing.T) {
	s := Default()
	s.Gravity = -9.8
	if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	s, err := LoadOrDefault("")
	if err != nil || s != Default() {
		t.Errorf("expected defaults for empty path, got %+v, %v", s, err)
	}
	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for an explicit missing path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
