package config

import (
	"os"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("KCLI_LOG_LEVEL", "")
	t.Setenv("KCLI_PRETTY_LOG", "")
	t.Setenv("KCLI_CONFIG", "")
	t.Setenv("EDITOR", "")

	s := LoadSettings()
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "info")
	}
	if !s.PrettyLog {
		t.Errorf("PrettyLog = false, want true")
	}
	if s.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty", s.ConfigPath)
	}
	if s.Editor != "vi" {
		t.Errorf("Editor = %q, want %q", s.Editor, "vi")
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("KCLI_LOG_LEVEL", "DEBUG")
	t.Setenv("KCLI_PRETTY_LOG", "false")
	t.Setenv("KCLI_CONFIG", "/tmp/kcli.yaml")
	t.Setenv("EDITOR", "nano")

	s := LoadSettings()
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "debug")
	}
	if s.PrettyLog {
		t.Errorf("PrettyLog = true, want false")
	}
	if s.ConfigPath != "/tmp/kcli.yaml" {
		t.Errorf("ConfigPath = %q, want %q", s.ConfigPath, "/tmp/kcli.yaml")
	}
	if s.Editor != "nano" {
		t.Errorf("Editor = %q, want %q", s.Editor, "nano")
	}
}

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      string
		expected string
	}{
		{
			name:     "set value",
			key:      "TEST_GETENV",
			value:    "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "blank value uses default",
			key:      "TEST_GETENV_BLANK",
			value:    "   ",
			def:      "default",
			expected: "default",
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_GETENV_MISSING",
			value:    "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := getenv(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}
