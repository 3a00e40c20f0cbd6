package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagrel/pkg/cli/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagrel.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRelease_Load(t *testing.T) {
	path := writeConfig(t, `
remote = "moz"
canonical_repo = "mozilla/glean"
build_config_path = ".buildconfig.yml"
version_field = "version"
annotate = true
`)

	t.Run("file fills unset flags", func(t *testing.T) {
		cfg := &config.Release{
			CanonicalRepo:   config.DefaultCanonicalRepo,
			BuildConfigPath: config.DefaultBuildConfigPath,
			VersionField:    config.DefaultVersionField,
			RepoDir:         ".",
			ConfigFile:      path,
		}
		gt.NoError(t, cfg.Load(func(string) bool { return false }))

		gt.Equal(t, cfg.Remote, "moz")
		gt.Equal(t, cfg.CanonicalRepo, "mozilla/glean")
		gt.Equal(t, cfg.BuildConfigPath, ".buildconfig.yml")
		gt.Equal(t, cfg.VersionField, "version")
		gt.Equal(t, cfg.Annotate, true)
		gt.Equal(t, cfg.RepoDir, ".")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cfg := &config.Release{
			Remote:       "upstream",
			VersionField: "libraryVersion",
			ConfigFile:   path,
		}
		isSet := func(name string) bool {
			return name == "remote" || name == "version-field" || name == "annotate"
		}
		gt.NoError(t, cfg.Load(isSet))

		gt.Equal(t, cfg.Remote, "upstream")
		gt.Equal(t, cfg.VersionField, "libraryVersion")
		gt.Equal(t, cfg.Annotate, false)
		gt.Equal(t, cfg.CanonicalRepo, "mozilla/glean")
	})

	t.Run("no config file", func(t *testing.T) {
		cfg := &config.Release{Remote: "upstream"}
		gt.NoError(t, cfg.Load(func(string) bool { return false }))
		gt.Equal(t, cfg.Remote, "upstream")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &config.Release{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")}
		gt.Error(t, cfg.Load(func(string) bool { return false }))
	})

	t.Run("broken file", func(t *testing.T) {
		cfg := &config.Release{ConfigFile: writeConfig(t, "remote = \n")}
		gt.Error(t, cfg.Load(func(string) bool { return false }))
	})
}

func TestRelease_Flags(t *testing.T) {
	cfg := &config.Release{}
	names := map[string]bool{}
	for _, flag := range cfg.Flags() {
		for _, n := range flag.Names() {
			names[n] = true
		}
	}

	for _, want := range []string{"remote", "canonical-repo", "build-config-path", "version-field", "annotate", "repo-dir", "config"} {
		if !names[want] {
			t.Errorf("missing flag %s", want)
		}
	}
}

func TestSentry_Disabled(t *testing.T) {
	cfg := &config.Sentry{}
	gt.Equal(t, cfg.Enabled(), false)
	gt.NoError(t, cfg.Configure())
	cfg.Report(os.ErrNotExist)
}
