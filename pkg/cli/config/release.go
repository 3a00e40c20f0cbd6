package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

const (
	DefaultCanonicalRepo   = "mozilla/application-services"
	DefaultBuildConfigPath = ".buildconfig-android.yml"
	DefaultVersionField    = "libraryVersion"
)

// Release holds release tagging configuration
type Release struct {
	Remote          string `toml:"remote"`
	CanonicalRepo   string `toml:"canonical_repo"`
	BuildConfigPath string `toml:"build_config_path"`
	VersionField    string `toml:"version_field"`
	Annotate        bool   `toml:"annotate"`
	RepoDir         string `toml:"repo_dir"`

	ConfigFile string `toml:"-"`
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Remote to read the release branch from and push the tag to (default: the remote pointing at --canonical-repo)",
			Destination: &c.Remote,
			Sources:     cli.EnvVars("TAGREL_REMOTE"),
		},
		&cli.StringFlag{
			Name:        "canonical-repo",
			Usage:       "GitHub repository (owner/name) used to find the remote",
			Value:       DefaultCanonicalRepo,
			Destination: &c.CanonicalRepo,
			Sources:     cli.EnvVars("TAGREL_CANONICAL_REPO"),
		},
		&cli.StringFlag{
			Name:        "build-config-path",
			Usage:       "Path of the build configuration file in the repository",
			Value:       DefaultBuildConfigPath,
			Destination: &c.BuildConfigPath,
			Sources:     cli.EnvVars("TAGREL_BUILD_CONFIG_PATH"),
		},
		&cli.StringFlag{
			Name:        "version-field",
			Usage:       "Build configuration field holding the library version",
			Value:       DefaultVersionField,
			Destination: &c.VersionField,
			Sources:     cli.EnvVars("TAGREL_VERSION_FIELD"),
		},
		&cli.BoolFlag{
			Name:        "annotate",
			Usage:       "Create an annotated tag instead of a lightweight one",
			Destination: &c.Annotate,
			Sources:     cli.EnvVars("TAGREL_ANNOTATE"),
		},
		&cli.StringFlag{
			Name:        "repo-dir",
			Usage:       "Working copy to run git in",
			Value:       ".",
			Destination: &c.RepoDir,
			Sources:     cli.EnvVars("TAGREL_REPO_DIR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with default values for the flags above",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("TAGREL_CONFIG"),
		},
	}
}

// IsSetFunc reports whether a flag was given explicitly
type IsSetFunc func(name string) bool

// Load reads ConfigFile, if any, and applies its values to every field whose
// flag was not set explicitly.
func (c *Release) Load(isSet IsSetFunc) error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
	}

	var file Release
	if err := toml.Unmarshal(data, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
	}

	apply := func(flag string, dst *string, v string) {
		if v != "" && !isSet(flag) {
			*dst = v
		}
	}
	apply("remote", &c.Remote, file.Remote)
	apply("canonical-repo", &c.CanonicalRepo, file.CanonicalRepo)
	apply("build-config-path", &c.BuildConfigPath, file.BuildConfigPath)
	apply("version-field", &c.VersionField, file.VersionField)
	apply("repo-dir", &c.RepoDir, file.RepoDir)
	if file.Annotate && !isSet("annotate") {
		c.Annotate = true
	}

	return nil
}
