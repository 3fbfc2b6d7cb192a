package driven

import (
	"context"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
)

// DatasetFetcher defines the interface for retrieving the iptv-org datasets.
// This is a driven port implemented by concrete adapters (e.g., HTTP client).
type DatasetFetcher interface {
	// FetchChannels retrieves the channel metadata collection.
	// Failures are reported as *iptvorg.FetchError.
	FetchChannels(ctx context.Context) ([]iptvorg.Channel, error)

	// FetchStreams retrieves the stream URL collection.
	// Failures are reported as *iptvorg.FetchError.
	FetchStreams(ctx context.Context) ([]iptvorg.Stream, error)

	// FetchLogos retrieves the logo URL collection.
	// Failures are reported as *iptvorg.FetchError.
	FetchLogos(ctx context.Context) ([]iptvorg.Logo, error)
}
