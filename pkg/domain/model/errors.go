package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagConfig marks errors caused by missing or malformed configuration
	ErrTagConfig = goerr.NewTag("config_error")

	// ErrTagVCS marks errors returned by a failed git command
	ErrTagVCS = goerr.NewTag("vcs_error")
)
