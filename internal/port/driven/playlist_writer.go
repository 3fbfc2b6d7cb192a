package driven

import "context"

// PlaylistWriter defines the interface for persisting a rendered playlist.
type PlaylistWriter interface {
	// Write stores content as the complete playlist. On error no partial
	// playlist is left behind.
	Write(ctx context.Context, content []byte) error

	// Location describes where the playlist is written (e.g., a file path).
	Location() string
}
