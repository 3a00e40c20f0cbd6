package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

func TestBuildConfig_Version(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		field   string
		want    string
		wantErr bool
	}{
		{
			name:  "quoted string",
			yaml:  "libraryVersion: \"130.0\"\ngroupId: org.mozilla.appservices\n",
			field: "libraryVersion",
			want:  "130.0",
		},
		{
			name:  "unquoted number keeps its text",
			yaml:  "libraryVersion: 130.0\n",
			field: "libraryVersion",
			want:  "130.0",
		},
		{
			name:  "three components",
			yaml:  "libraryVersion: 97.1.2\n",
			field: "libraryVersion",
			want:  "97.1.2",
		},
		{
			name:  "custom field",
			yaml:  "version: 2.0\nlibraryVersion: 1.0\n",
			field: "version",
			want:  "2.0",
		},
		{
			name:    "missing field",
			yaml:    "groupId: org.mozilla.appservices\n",
			field:   "libraryVersion",
			wantErr: true,
		},
		{
			name:    "null value",
			yaml:    "libraryVersion:\n",
			field:   "libraryVersion",
			wantErr: true,
		},
		{
			name:    "empty string",
			yaml:    "libraryVersion: \"\"\n",
			field:   "libraryVersion",
			wantErr: true,
		},
		{
			name:    "mapping value",
			yaml:    "libraryVersion:\n  major: 1\n",
			field:   "libraryVersion",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := model.ParseBuildConfig([]byte(tt.yaml))
			gt.NoError(t, err)

			got, err := cfg.Version(tt.field)
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tt.want)
		})
	}
}

func TestParseBuildConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty document", yaml: ""},
		{name: "list at top level", yaml: "- libraryVersion\n- 130.0\n"},
		{name: "scalar at top level", yaml: "130.0\n"},
		{name: "broken yaml", yaml: "libraryVersion: [130.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := model.ParseBuildConfig([]byte(tt.yaml))
			gt.Error(t, err)
			gt.Value(t, cfg).Nil()
			gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
		})
	}
}
