package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claes/slideshow/internal/store"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	manifest   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("SLIDESHOW_SOURCE", "")

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "slideshow.toml"),
		manifest:   filepath.Join(base, "slides.json"),
	}
	content := "[paths]\n" +
		"static_dir = \"" + filepath.ToSlash(filepath.Join(base, "static")) + "\"\n" +
		"manifest = \"" + filepath.ToSlash(env.manifest) + "\"\n" +
		"[logging]\nformat = \"json\"\nlevel = \"error\"\n"
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))
	return env
}

func (e *cliTestEnv) addFile(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(e.baseDir, "static", filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.addFile(t, "images/b/1.jpg", "x")
	env.addFile(t, "images/a/1.jpg", "x")
	env.addFile(t, "images/a/2.jpg", "x")

	out, err := runCLI(t, "--config", env.configPath, "generate")
	require.NoError(t, err)
	require.Contains(t, out, "Generated 5 slides in "+env.manifest)

	got := store.LoadSlides(env.manifest)
	require.Len(t, got, 5)
	require.True(t, got[0].IsTransition)
	require.Equal(t, "a", got[0].SourceFolder)
}

func TestGenerateCommand_RejectsArgs(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := runCLI(t, "--config", env.configPath, "generate", "extra")
	require.Error(t, err)
}

func TestGenerateCommand_MissingImages(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := runCLI(t, "--config", env.configPath, "generate")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no images directory")
}

func TestSlidesCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.addFile(t, "images/Trip/p.png", "x")
	env.addFile(t, "images/Trip/p.txt", "pier")
	env.addFile(t, "images/Trip/description.txt", "weekend away")

	out, err := runCLI(t, "--config", env.configPath, "slides")
	require.NoError(t, err)
	for _, want := range []string{"transition", "weekend away", "images/Trip/p.png (pier)"} {
		require.True(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}

	out, err = runCLI(t, "--config", env.configPath, "slides", "--source", "manifest")
	require.NoError(t, err)
	require.Contains(t, out, "Setup Required")

	_, err = runCLI(t, "--config", env.configPath, "slides", "--source", "ftp")
	require.Error(t, err)
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "conf", "slideshow.toml")

	out, err := runCLI(t, "config", "init", target)
	require.NoError(t, err)
	require.Contains(t, out, target)
	require.FileExists(t, target)

	_, err = runCLI(t, "config", "init", target)
	require.Error(t, err)

	_, err = runCLI(t, "config", "init", "--overwrite", target)
	require.NoError(t, err)
}
