package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/glide/internal/app"
	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/logging"
	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("GLIDE_CONFIG_PATH", "")
	t.Cleanup(func() {
		_ = logging.ShutdownGlobal()
		colors.SetOutput(os.Stdout, os.Stderr)
	})
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "glide version development\n", out)
}

func TestSimulateCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "simulate", "next")
	require.NoError(t, err)
	assert.Contains(t, out, "page=(0,0) x=-300 y=0")
	assert.Contains(t, out, slide.EventSlideWillChange)
	assert.Contains(t, out, "page=(1,0) x=-600 y=0")
}

func TestSimulateRejectsUnknownStep(t *testing.T) {
	isolate(t)

	_, err := execute(t, "simulate", "bounce")
	assert.ErrorIs(t, err, app.ErrUnknownStep)
}

func TestSimulatePersistsAndPagesManageIt(t *testing.T) {
	isolate(t)

	out, err := execute(t, "pages", "list")
	require.NoError(t, err)
	assert.Equal(t, "no saved pages\n", out)

	_, err = execute(t, "simulate", "--persist", "--name", "walkthrough", "next")
	require.NoError(t, err)

	out, err = execute(t, "pages", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "walkthrough")
	assert.Contains(t, out, "page=(1,0)")

	out, err = execute(t, "pages", "reset", "walkthrough")
	require.NoError(t, err)
	assert.Contains(t, out, "reset walkthrough")

	out, err = execute(t, "pages", "list")
	require.NoError(t, err)
	assert.Equal(t, "no saved pages\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "glide.toml")

	out, err := execute(t, "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init", "--path", path)
	assert.ErrorContains(t, err, "already exists")
	_, err = execute(t, "config", "init", "--path", path, "--force")
	assert.NoError(t, err)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# file: (defaults)")
	assert.Contains(t, out, "scroll_x = true\n")

	t.Setenv("GLIDE_CONFIG_PATH", path)
	t.Setenv("GLIDE_SLIDE_LOOP", "false")
	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# file: "+path)
	assert.Contains(t, out, "slide_loop = false\n")
}

func TestDemoCommandBuildsModel(t *testing.T) {
	isolate(t)
	origRun, origStore := runProgram, openStore
	t.Cleanup(func() { runProgram, openStore = origRun, origStore })

	store := storage.NewMemoryStore()
	openStore = func() storage.PageStore { return store }
	var pages int
	runProgram = func(m tea.Model) error {
		model, ok := m.(*state.Model)
		require.True(t, ok)
		pages = model.Carousel().Slide().PageCount()
		return nil
	}

	_, err := execute(t, "demo", "--pages", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, pages)

	_, err = execute(t, "demo", "--pages", "0")
	assert.ErrorContains(t, err, "at least 1")
}

func TestDemoPagesCycleText(t *testing.T) {
	got := demoPages(7)
	require.Len(t, got, 7)
	assert.Contains(t, got[0], "Page 1 of 7")
	assert.Contains(t, got[6], "Page 7 of 7")
}
