package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
	"github.com/alorle/iptv-org-playlist/internal/m3u"
	"github.com/alorle/iptv-org-playlist/internal/playlist"
	"github.com/alorle/iptv-org-playlist/internal/port/driven"
)

// Stage is a step of a generation run.
type Stage string

const (
	StageFetching  Stage = "fetching"
	StageJoining   Stage = "joining"
	StageRendering Stage = "rendering"
	StageWriting   Stage = "writing"
	StageDone      Stage = "done"
)

// Report describes a generation run. It is returned on success and failure.
// Stage is the last stage reached: StageDone on success, otherwise the
// stage that failed.
type Report struct {
	RunID      uuid.UUID
	Stage      Stage
	Stats      playlist.JoinStats
	OutputPath string
	Bytes      int
	Elapsed    time.Duration
}

// PlaylistService orchestrates playlist generation:
// fetch the iptv-org datasets, join them, render the M3U and write it.
type PlaylistService struct {
	fetcher driven.DatasetFetcher
	writer  driven.PlaylistWriter
	metrics driven.MetricsRecorder
	logger  *slog.Logger
}

// NewPlaylistService creates a new PlaylistService.
// metrics and logger may be nil.
func NewPlaylistService(
	fetcher driven.DatasetFetcher,
	writer driven.PlaylistWriter,
	metrics driven.MetricsRecorder,
	logger *slog.Logger,
) *PlaylistService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaylistService{
		fetcher: fetcher,
		writer:  writer,
		metrics: metrics,
		logger:  logger,
	}
}

// Generate runs the whole pipeline once. Nothing is retried.
//
// It returns an error wrapping playlist.ErrNetworkFailure when any dataset
// could not be fetched, playlist.ErrEmptyResult when no channel has a
// stream, and playlist.ErrWriteFailure when the playlist cannot be stored.
// In every failure case the destination is left untouched.
func (s *PlaylistService) Generate(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{
		RunID:      uuid.New(),
		Stage:      StageFetching,
		OutputPath: s.writer.Location(),
	}
	logger := s.logger.With("run_id", report.RunID.String())

	logger.Info("starting playlist generation", "output", report.OutputPath)

	channels, streams, logos, err := s.fetchAll(ctx)
	if err != nil {
		return s.fail(logger, report, start, fmt.Errorf("%w: %w", playlist.ErrNetworkFailure, err))
	}

	report.Stage = StageJoining
	logger.Info("datasets downloaded, joining")
	entries, stats := playlist.JoinWithStats(channels, streams, logos)
	report.Stats = stats
	s.metrics.RecordJoin(stats)
	logger.Info("datasets joined",
		"channels", stats.Channels,
		"streams", stats.Streams,
		"logos", stats.Logos,
		"stream_lookup", stats.StreamLookup,
		"logo_lookup", stats.LogoLookup,
		"entries", stats.Entries,
		"dropped", stats.Dropped,
	)
	if len(entries) == 0 {
		return s.fail(logger, report, start, playlist.ErrEmptyResult)
	}

	report.Stage = StageRendering
	content, err := m3u.Render(entries)
	if err != nil {
		return s.fail(logger, report, start, err)
	}
	report.Bytes = len(content)

	report.Stage = StageWriting
	logger.Info("writing playlist", "output", report.OutputPath, "bytes", report.Bytes)
	if err := s.writer.Write(ctx, content); err != nil {
		return s.fail(logger, report, start, fmt.Errorf("%w: %w", playlist.ErrWriteFailure, err))
	}

	report.Stage = StageDone
	report.Elapsed = time.Since(start)
	s.metrics.RecordRun(driven.OutcomeSuccess, report.Elapsed)
	logger.Info("playlist generated",
		"output", report.OutputPath,
		"entries", stats.Entries,
		"elapsed", report.Elapsed.Round(10*time.Millisecond).String(),
	)

	return report, nil
}

// fetchAll downloads the three datasets one after the other. Every dataset
// is attempted so each failing source gets reported.
func (s *PlaylistService) fetchAll(ctx context.Context) ([]iptvorg.Channel, []iptvorg.Stream, []iptvorg.Logo, error) {
	channels, channelsErr := s.fetcher.FetchChannels(ctx)
	s.recordFetch(iptvorg.DatasetChannels, len(channels), channelsErr)

	streams, streamsErr := s.fetcher.FetchStreams(ctx)
	s.recordFetch(iptvorg.DatasetStreams, len(streams), streamsErr)

	logos, logosErr := s.fetcher.FetchLogos(ctx)
	s.recordFetch(iptvorg.DatasetLogos, len(logos), logosErr)

	if err := errors.Join(channelsErr, streamsErr, logosErr); err != nil {
		return nil, nil, nil, err
	}
	return channels, streams, logos, nil
}

func (s *PlaylistService) recordFetch(dataset iptvorg.Dataset, n int, err error) {
	if err != nil {
		s.metrics.RecordFetchFailure(dataset)
		return
	}
	s.metrics.RecordDataset(dataset, n)
}

func (s *PlaylistService) fail(logger *slog.Logger, report Report, start time.Time, err error) (Report, error) {
	report.Elapsed = time.Since(start)
	s.metrics.RecordRun(string(report.Stage), report.Elapsed)
	logger.Error("playlist generation aborted",
		"stage", report.Stage,
		"error", err,
		"elapsed", report.Elapsed.Round(10*time.Millisecond).String(),
	)
	return report, err
}

type nopMetrics struct{}

func (nopMetrics) RecordDataset(iptvorg.Dataset, int) {}
func (nopMetrics) RecordFetchFailure(iptvorg.Dataset) {}
func (nopMetrics) RecordJoin(playlist.JoinStats) {}
func (nopMetrics) RecordRun(string, time.Duration) {}
