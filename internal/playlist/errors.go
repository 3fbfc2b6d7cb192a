package playlist

import "errors"

// Domain errors
var (
	// Entry validation errors
	ErrEmptyID  = errors.New("playlist entry id cannot be empty")
	ErrEmptyURL = errors.New("playlist entry url cannot be empty")

	// Run failures. Each one ends a generation run without writing output.
	ErrNetworkFailure = errors.New("could not download every iptv-org dataset")
	ErrEmptyResult    = errors.New("no channel with a valid stream")
	ErrWriteFailure   = errors.New("could not write playlist file")
)
