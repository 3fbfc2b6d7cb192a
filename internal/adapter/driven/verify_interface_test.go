package driven

import (
	port "github.com/alorle/iptv-org-playlist/internal/port/driven"
	"github.com/alorle/iptv-org-playlist/metrics"
)

// Compile-time check that IPTVOrgHTTPFetcher implements DatasetFetcher interface
var _ port.DatasetFetcher = (*IPTVOrgHTTPFetcher)(nil)

// Compile-time check that PlaylistFileWriter implements PlaylistWriter interface
var _ port.PlaylistWriter = (*PlaylistFileWriter)(nil)

// Compile-time check that metrics.Recorder implements MetricsRecorder interface
var _ port.MetricsRecorder = (*metrics.Recorder)(nil)
