package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

const remoteOutput = `origin	git@github.com:someone/application-services.git (fetch)
origin	git@github.com:someone/application-services.git (push)
upstream	https://github.com/mozilla/application-services (fetch)
upstream	no_push (push)
moz	https://github.com/mozilla/application-services.git (fetch)
moz	git@github.com:mozilla/application-services.git (push)
`

func TestParseRemotes(t *testing.T) {
	remotes := model.ParseRemotes(remoteOutput)
	gt.Equal(t, len(remotes), 6)
	gt.Equal(t, remotes[0], model.Remote{
		Name:      "origin",
		URL:       "git@github.com:someone/application-services.git",
		Direction: model.RemoteFetch,
	})
	gt.Equal(t, remotes[5].Direction, model.RemotePush)
}

func TestParseRemotes_SkipsMalformedLines(t *testing.T) {
	remotes := model.ParseRemotes("\n\ngarbage\norigin url (push)\n")
	gt.Equal(t, len(remotes), 1)
	gt.Equal(t, remotes[0].Name, "origin")
}

func TestFindPushRemote(t *testing.T) {
	remotes := model.ParseRemotes(remoteOutput)

	t.Run("picks the remote whose push URL matches", func(t *testing.T) {
		name, err := model.FindPushRemote(remotes, "mozilla/application-services")
		gt.NoError(t, err)
		gt.Equal(t, name, "moz")
	})

	t.Run("no matching push URL", func(t *testing.T) {
		_, err := model.FindPushRemote(remotes, "mozilla/gecko-dev")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
	})
}

func TestMatchRepository(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "git@github.com:mozilla/application-services.git", want: true},
		{url: "git@github.com:mozilla/application-services", want: true},
		{url: "https://github.com/mozilla/application-services.git", want: true},
		{url: "https://github.com/mozilla/application-services", want: true},
		{url: "https://github.com/mozilla/application-services/", want: true},
		{url: "ssh://git@github.com/mozilla/application-services.git", want: true},
		{url: "https://github.com/Mozilla/Application-Services", want: true},
		{url: "https://github.com/someone/application-services", want: false},
		{url: "https://github.com/mozilla/application-services-old", want: false},
		{url: "https://gitlab.com/mozilla/application-services", want: false},
		{url: "no_push", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			gt.Equal(t, model.MatchRepository(tt.url, "mozilla/application-services"), tt.want)
		})
	}

	gt.Equal(t, model.MatchRepository("https://github.com/a/b", ""), false)
}
