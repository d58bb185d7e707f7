package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a temp dir and silences warnings.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("GLIDE_CONFIG_PATH", "")
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	Load()

	assert.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, filepath.Join(dir, "config", "glide"), Get("config_dir", ""))
	assert.Equal(t, filepath.Join(dir, "state", "glide"), Get("state_dir", ""))
	assert.True(t, GetBool("scroll_x", false))
	assert.False(t, GetBool("scroll_y", true))
	assert.Equal(t, "normal", Get("probe_type", ""))
	assert.Equal(t, 800, GetInt("bounce_time", 0))
	assert.Equal(t, 0.0015, GetFloat("deceleration", 0))
	assert.Equal(t, 30, GetInt("slide_threshold", 0))
	assert.Equal(t, "bounce", Get("slide_easing", ""))
	assert.Empty(t, FilePath())
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
slide_threshold = 45
slide_loop = false
probe_type = "realtime"
deceleration = 0.003
`), 0644))
	t.Setenv("GLIDE_CONFIG_PATH", path)
	t.Setenv("GLIDE_SLIDE_THRESHOLD", "60")

	Load()

	assert.Equal(t, 60, GetInt("slide_threshold", 0), "env wins over file")
	assert.False(t, GetBool("slide_loop", true))
	assert.Equal(t, "realtime", Get("probe_type", ""))
	assert.Equal(t, 0.003, GetFloat("deceleration", 0))
	assert.Equal(t, path, FilePath())
}

func TestLoadDefaultFileLocation(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, "config", "glide")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("frame_interval = 33\n"), 0644))

	Load()

	assert.Equal(t, 33, GetInt("frame_interval", 0))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	tests := []struct {
		key, value, want string
	}{
		{key: "bounce_time", value: "-5", want: "800"},
		{key: "bounce_time", value: "abc", want: "800"},
		{key: "slide_speed", value: "0", want: "0"},
		{key: "slide_start_page_x", value: "-1", want: "0"},
		{key: "deceleration", value: "0", want: "0.0015"},
		{key: "probe_type", value: "REALTIME", want: "realtime"},
		{key: "probe_type", value: "sometimes", want: "normal"},
		{key: "slide_easing", value: "wobble", want: "bounce"},
		{key: "slide_loop", value: "off", want: "false"},
		{key: "slide_loop", value: "maybe", want: "true"},
		{key: "status_format", value: "compact", want: "compact"},
		{key: "status_format", value: "${page} of ${total}", want: "${page} of ${total}"},
		{key: "status_format", value: "${speed}", want: "default"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("GLIDE_"+tt.key, tt.value)
			Load()
			assert.Equal(t, tt.want, Get(tt.key, ""))
		})
	}
}

func TestWriteSample(t *testing.T) {
	dir := isolate(t)
	Load()
	path := filepath.Join(dir, "sample", "config.toml")

	require.NoError(t, WriteSample(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# glide configuration")
	assert.Contains(t, string(data), "slide_threshold = 30")
	assert.NotContains(t, string(data), "state_dir")

	assert.Error(t, WriteSample(path, false))
	assert.NoError(t, WriteSample(path, true))

	t.Setenv("GLIDE_CONFIG_PATH", path)
	Load()
	assert.Equal(t, 30, GetInt("slide_threshold", 0))
	assert.Equal(t, 0.0015, GetFloat("deceleration", 0))
}

func TestKeysSorted(t *testing.T) {
	isolate(t)
	Load()

	keys := Keys()
	require.NotEmpty(t, keys)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "slide_loop")
}
