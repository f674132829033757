package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLoadCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "kybe-paste-manager", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pastebin_com:\n  enable: false\n  key: \"\"\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())

	// second load reads the file that was just written
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadExisting(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected ServiceConfig
	}{
		{
			name:     "enabled with key",
			content:  "pastebin_com:\n  enable: true\n  key: abc123\n",
			expected: ServiceConfig{Enable: true, Key: strPtr("abc123")},
		},
		{
			name:     "null key",
			content:  "pastebin_com:\n  enable: true\n  key: null\n",
			expected: ServiceConfig{Enable: true, Key: nil},
		},
		{
			name:     "missing key field keeps default",
			content:  "pastebin_com:\n  enable: true\n",
			expected: ServiceConfig{Enable: true, Key: strPtr("")},
		},
		{
			name:     "missing section keeps default",
			content:  "{}\n",
			expected: ServiceConfig{Enable: false, Key: strPtr("")},
		},
		{
			name:     "empty file keeps default",
			content:  "",
			expected: ServiceConfig{Enable: false, Key: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.PastebinCom)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not yaml", content: "pastebin_com: [unterminated\n"},
		{name: "wrong type", content: "pastebin_com:\n  enable: maybe\n"},
		{name: "unknown field", content: "pastebin_com:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config")

			// the broken file is never replaced
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestLoadNotAFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a file")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := &File{PastebinCom: ServiceConfig{Enable: true, Key: strPtr("k")}}

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "pastebin_com:\n"))

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		key    *string
		want   string
		wantOK bool
	}{
		{name: "unset", key: nil, want: "", wantOK: false},
		{name: "empty", key: strPtr(""), want: "", wantOK: false},
		{name: "whitespace", key: strPtr(" \t\n"), want: " \t\n", wantOK: false},
		{name: "set", key: strPtr("abc"), want: "abc", wantOK: true},
		{name: "padded is kept verbatim", key: strPtr("  abc "), want: "  abc ", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ServiceConfig{Enable: true, Key: tt.key}.APIKey()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	t.Setenv("AppData", "/tmp/appdata")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("kybe-paste-manager", "config.yaml"),
		filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestWriteAtomicReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, writeAtomic(path, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
