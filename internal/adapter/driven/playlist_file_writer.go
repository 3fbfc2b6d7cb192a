package driven

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultPlaylistPath = "playlist.m3u8"

// PlaylistFileWriter writes playlists to a file on the local filesystem.
// It implements the driven.PlaylistWriter port.
type PlaylistFileWriter struct {
	path string
}

// NewPlaylistFileWriter creates a writer for path.
// If path is empty, playlist.m3u8 in the working directory is used.
func NewPlaylistFileWriter(path string) *PlaylistFileWriter {
	if path == "" {
		path = defaultPlaylistPath
	}
	return &PlaylistFileWriter{path: path}
}

// Location returns the destination file path.
func (w *PlaylistFileWriter) Location() string {
	return w.path
}

// Write replaces the destination file with content.
// The content goes to a temporary file in the same directory which is
// renamed over the destination, so readers never observe a partial playlist.
func (w *PlaylistFileWriter) Write(ctx context.Context, content []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating playlist directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary playlist file: %w", err)
	}
	tmpPath := tmp.Name()

	closed := false
	defer func() {
		if !closed {
			err = errors.Join(err, tmp.Close())
		}
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing playlist: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing playlist: %w", err)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing playlist: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting playlist permissions: %w", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		return fmt.Errorf("replacing playlist: %w", err)
	}

	return nil
}
