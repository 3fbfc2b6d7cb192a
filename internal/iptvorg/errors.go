package iptvorg

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every FetchError.
var ErrFetchFailed = errors.New("iptv-org dataset fetch failed")

// FetchError reports which dataset could not be retrieved and why.
type FetchError struct {
	Dataset Dataset
	URL     string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.Dataset, e.URL, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}
