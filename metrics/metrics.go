package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
	"github.com/alorle/iptv-org-playlist/internal/playlist"
	"github.com/alorle/iptv-org-playlist/internal/port/driven"
)

// Recorder collects playlist generation metrics in its own registry.
// It implements the driven.MetricsRecorder port.
type Recorder struct {
	registry *prometheus.Registry

	// DatasetRecords tracks the record count of the last successful fetch per dataset
	DatasetRecords *prometheus.GaugeVec

	// FetchFailures tracks failed dataset downloads
	FetchFailures *prometheus.CounterVec

	// LookupKeys tracks distinct channel ids in the stream and logo lookups
	LookupKeys *prometheus.GaugeVec

	// PlaylistEntries tracks channels written to the last playlist
	PlaylistEntries prometheus.Gauge

	// DroppedChannels tracks channels skipped for lack of a stream
	DroppedChannels prometheus.Gauge

	// Runs tracks generation runs by outcome
	Runs *prometheus.CounterVec

	// LastRunDuration tracks the wall-clock time of the last run
	LastRunDuration prometheus.Gauge

	// LastSuccess tracks when a playlist was last written
	LastSuccess prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		DatasetRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "iptv_org_dataset_records",
			Help: "Number of records in the last fetched iptv-org dataset",
		}, []string{"dataset"}),
		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iptv_org_fetch_failures_total",
			Help: "Total number of failed iptv-org dataset downloads",
		}, []string{"dataset"}),
		LookupKeys: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "iptv_org_lookup_keys",
			Help: "Number of distinct channel ids in each lookup",
		}, []string{"lookup"}),
		PlaylistEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_org_playlist_entries",
			Help: "Number of channels in the last generated playlist",
		}),
		DroppedChannels: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_org_playlist_dropped_channels",
			Help: "Number of channels skipped because no stream was found",
		}),
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iptv_org_playlist_runs_total",
			Help: "Total number of playlist generation runs by outcome",
		}, []string{"outcome"}),
		LastRunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_org_playlist_last_run_duration_seconds",
			Help: "Duration of the last playlist generation run",
		}),
		LastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_org_playlist_last_success_timestamp_seconds",
			Help: "Unix time of the last successful playlist generation",
		}),
	}
}

// Gatherer exposes the registry. WriteTextfile reads from it and it can be
// served with promhttp.HandlerFor.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordDataset sets the record count of a dataset
func (r *Recorder) RecordDataset(dataset iptvorg.Dataset, n int) {
	r.DatasetRecords.WithLabelValues(string(dataset)).Set(float64(n))
}

// RecordFetchFailure increments the failure counter of a dataset
func (r *Recorder) RecordFetchFailure(dataset iptvorg.Dataset) {
	r.FetchFailures.WithLabelValues(string(dataset)).Inc()
}

// RecordJoin updates the join gauges
func (r *Recorder) RecordJoin(stats playlist.JoinStats) {
	r.LookupKeys.WithLabelValues("streams").Set(float64(stats.StreamLookup))
	r.LookupKeys.WithLabelValues("logos").Set(float64(stats.LogoLookup))
	r.PlaylistEntries.Set(float64(stats.Entries))
	r.DroppedChannels.Set(float64(stats.Dropped))
}

// RecordRun counts a run and stores its duration
func (r *Recorder) RecordRun(outcome string, elapsed time.Duration) {
	r.Runs.WithLabelValues(outcome).Inc()
	r.LastRunDuration.Set(elapsed.Seconds())
	if outcome == driven.OutcomeSuccess {
		r.LastSuccess.SetToCurrentTime()
	}
}

// WriteTextfile writes all metrics in the text exposition format to path,
// as read by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Gatherer()); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
