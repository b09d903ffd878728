package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SLIDESHOW_SOURCE", "")

	cfg, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.False(t, exists)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "static"), cfg.Paths.StaticDir)
	require.Equal(t, filepath.Join(wd, "slides.json"), cfg.Paths.Manifest)
	require.Equal(t, filepath.Join(wd, "static", "images"), cfg.ImagesDir())
	require.Equal(t, filepath.Join(wd, "static", "audio"), cfg.AudioDir())
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "live", cfg.Server.Source)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SLIDESHOW_SOURCE", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "slideshow.toml")
	content := `
[paths]
static_dir = "` + filepath.ToSlash(filepath.Join(dir, "media")) + `"
manifest = "` + filepath.ToSlash(filepath.Join(dir, "out.json")) + `"

[server]
addr = "127.0.0.1:9000"
source = "Manifest"

[logging]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, exists, err := Load(path)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, filepath.Join(dir, "media"), cfg.Paths.StaticDir)
	require.Equal(t, filepath.Join(dir, "out.json"), cfg.Paths.Manifest)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, "manifest", cfg.Server.Source)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "5050")
	t.Setenv("SLIDESHOW_SOURCE", "manifest")

	cfg, _, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":5050", cfg.Server.Addr)
	require.Equal(t, "manifest", cfg.Server.Source)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SLIDESHOW_SOURCE", "")

	dir := t.TempDir()
	cases := map[string]string{
		"bad source":    "[server]\nsource = \"sqlite\"\n",
		"bad format":    "[logging]\nformat = \"xml\"\n",
		"unknown field": "[server]\nport = 1\n",
		"syntax":        "[server\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, _, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestCreateSample_Loads(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SLIDESHOW_SOURCE", "")

	path := filepath.Join(t.TempDir(), "nested", "slideshow.toml")
	require.NoError(t, CreateSample(path))

	cfg, exists, err := Load(path)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, Default().Server, cfg.Server)
}
