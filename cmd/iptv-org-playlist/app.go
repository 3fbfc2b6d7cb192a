package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/robfig/cron/v3"

	"github.com/alorle/iptv-org-playlist/config"
	"github.com/alorle/iptv-org-playlist/internal/adapter/driven"
	"github.com/alorle/iptv-org-playlist/internal/application"
	"github.com/alorle/iptv-org-playlist/metrics"
)

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	service  *application.PlaylistService
	recorder *metrics.Recorder
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	// Create driven adapters
	fetcher := driven.NewIPTVOrgHTTPFetcher(
		driven.IPTVOrgURLs{
			Channels: cfg.API.ChannelsURL,
			Streams:  cfg.API.StreamsURL,
			Logos:    cfg.API.LogosURL,
		},
		cfg.HTTP.UserAgent,
		&http.Client{Timeout: cfg.HTTP.Timeout},
		logger,
	)
	writer := driven.NewPlaylistFileWriter(cfg.Output.Path)
	recorder := metrics.NewRecorder()

	return &app{
		cfg:      cfg,
		logger:   logger,
		service:  application.NewPlaylistService(fetcher, writer, recorder, logger),
		recorder: recorder,
	}
}

// runOnce generates the playlist and flushes metrics.
func (a *app) runOnce(ctx context.Context) error {
	_, err := a.service.Generate(ctx)
	a.flushMetrics()
	return err
}

// runScheduled generates the playlist immediately and then on every tick of
// expr until ctx is cancelled. Failed runs are logged and do not stop the
// schedule.
func (a *app) runScheduled(ctx context.Context, expr string) error {
	cronLogger := &slogCronLogger{logger: a.logger}
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	job := cron.FuncJob(func() {
		_ = a.runOnce(ctx)
	})
	if _, err := c.AddJob(expr, job); err != nil {
		a.logger.Error("invalid schedule", "schedule", expr, "error", err)
		return err
	}

	a.logger.Info("scheduled playlist generation", "schedule", expr)
	_ = a.runOnce(ctx)

	c.Start()
	<-ctx.Done()

	a.logger.Info("shutdown signal received, waiting for running generation")
	<-c.Stop().Done()
	a.logger.Info("scheduler stopped")

	return nil
}

func (a *app) flushMetrics() {
	if a.cfg.Metrics.Textfile == "" {
		return
	}
	if err := a.recorder.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		a.logger.Warn("failed to write metrics", "path", a.cfg.Metrics.Textfile, "error", err)
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
