package model

import "fmt"

// RefNames holds the branch names derived from a release version
type RefNames struct {
	Main    string // Default development branch
	Release string // Release branch for the major version
}

// NewRefNames derives branch names from a major and minor version number.
// Only the major number is part of the release branch name.
func NewRefNames(major, minor int) RefNames {
	return RefNames{
		Main:    "main",
		Release: fmt.Sprintf("release-v%d", major),
	}
}

// TagName returns the release tag for a library version
func TagName(version string) string {
	return "v" + version
}

// ReleasePlan represents everything resolved before the operator is asked to confirm
type ReleasePlan struct {
	Major   int    // Major version number given on the command line
	Remote  string // Remote name the branch is read from and the tag is pushed to
	Branch  string // Release branch name
	Version string // Library version read from the build configuration
	Tag     string // Tag to create
	Commit  string // Full commit hash of the branch tip
	LogLine string // One-line log summary of the branch tip
}

// RemoteRef returns the remote-tracking ref of the release branch
func (p *ReleasePlan) RemoteRef() string {
	return p.Remote + "/" + p.Branch
}

// TagResult represents the outcome of a tag run
type TagResult struct {
	Plan      *ReleasePlan
	Published bool // false when the operator declined
}
