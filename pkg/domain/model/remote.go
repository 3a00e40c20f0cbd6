package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// RemoteDirection is the direction column of `git remote -v`
type RemoteDirection string

const (
	RemoteFetch RemoteDirection = "fetch"
	RemotePush  RemoteDirection = "push"
)

// Remote represents one line of `git remote -v`
type Remote struct {
	Name      string
	URL       string
	Direction RemoteDirection
}

// ParseRemotes parses the output of `git remote -v`. Lines that do not have
// the "<name> <url> (<direction>)" shape are skipped.
func ParseRemotes(output string) []Remote {
	var remotes []Remote
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}

		dir := strings.TrimSuffix(strings.TrimPrefix(fields[2], "("), ")")
		remotes = append(remotes, Remote{
			Name:      fields[0],
			URL:       fields[1],
			Direction: RemoteDirection(dir),
		})
	}
	return remotes
}

// FindPushRemote returns the name of the first remote whose push URL points
// at repo ("owner/name").
func FindPushRemote(remotes []Remote, repo string) (string, error) {
	for _, r := range remotes {
		if r.Direction == RemotePush && MatchRepository(r.URL, repo) {
			return r.Name, nil
		}
	}

	return "", goerr.New("no remote points at the canonical repository",
		goerr.V("repository", repo),
		goerr.T(ErrTagConfig))
}

var repositoryURLPrefixes = []string{
	"git@github.com:",
	"ssh://git@github.com/",
	"https://github.com/",
	"http://github.com/",
}

// MatchRepository reports whether url is a GitHub URL of repo ("owner/name").
// SSH, scp-like and HTTPS forms are accepted, with or without ".git".
func MatchRepository(url, repo string) bool {
	u := strings.ToLower(strings.TrimSpace(url))
	want := strings.ToLower(strings.Trim(repo, "/"))
	if want == "" {
		return false
	}

	for _, prefix := range repositoryURLPrefixes {
		path, ok := strings.CutPrefix(u, prefix)
		if !ok {
			continue
		}
		path = strings.TrimSuffix(path, "/")
		path = strings.TrimSuffix(path, ".git")
		return path == want
	}
	return false
}
