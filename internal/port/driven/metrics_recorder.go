package driven

import (
	"time"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
	"github.com/alorle/iptv-org-playlist/internal/playlist"
)

// OutcomeSuccess is the run outcome of a generation that wrote its playlist.
// Failed runs use the name of the stage that failed.
const OutcomeSuccess = "success"

// MetricsRecorder receives the outcome of each generation run.
type MetricsRecorder interface {
	// RecordDataset records a successful fetch of a dataset with n records.
	RecordDataset(dataset iptvorg.Dataset, n int)

	// RecordFetchFailure records a failed fetch of a dataset.
	RecordFetchFailure(dataset iptvorg.Dataset)

	// RecordJoin records the join counters of a run.
	RecordJoin(stats playlist.JoinStats)

	// RecordRun records the final outcome and duration of a run.
	// outcome is OutcomeSuccess or the stage that failed.
	RecordRun(outcome string, elapsed time.Duration)
}
