package driven

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
)

// errNotArray is returned for a dataset document that is not a JSON array.
var errNotArray = errors.New("document is not a JSON array")

// IPTVOrgURLs holds the location of each iptv-org dataset.
// Empty fields fall back to the public iptv-org API.
type IPTVOrgURLs struct {
	Channels string
	Streams  string
	Logos    string
}

// IPTVOrgHTTPFetcher downloads the iptv-org datasets over HTTP.
// It implements the driven.DatasetFetcher port.
type IPTVOrgHTTPFetcher struct {
	urls      IPTVOrgURLs
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewIPTVOrgHTTPFetcher creates a fetcher for the given dataset URLs.
// If userAgent is empty, a desktop browser identification is sent.
// If client is nil, it creates a default HTTP client with a 30-second timeout.
func NewIPTVOrgHTTPFetcher(urls IPTVOrgURLs, userAgent string, client *http.Client, logger *slog.Logger) *IPTVOrgHTTPFetcher {
	if urls.Channels == "" {
		urls.Channels = iptvorg.DefaultChannelsURL
	}
	if urls.Streams == "" {
		urls.Streams = iptvorg.DefaultStreamsURL
	}
	if urls.Logos == "" {
		urls.Logos = iptvorg.DefaultLogosURL
	}
	if userAgent == "" {
		userAgent = iptvorg.DefaultUserAgent
	}
	if client == nil {
		client = &http.Client{
			Timeout: iptvorg.DefaultFetchTimeout,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IPTVOrgHTTPFetcher{
		urls:      urls,
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

// FetchChannels downloads and decodes channels.json.
func (f *IPTVOrgHTTPFetcher) FetchChannels(ctx context.Context) ([]iptvorg.Channel, error) {
	return fetchDataset[iptvorg.Channel](ctx, f, iptvorg.DatasetChannels, f.urls.Channels)
}

// FetchStreams downloads and decodes streams.json.
func (f *IPTVOrgHTTPFetcher) FetchStreams(ctx context.Context) ([]iptvorg.Stream, error) {
	return fetchDataset[iptvorg.Stream](ctx, f, iptvorg.DatasetStreams, f.urls.Streams)
}

// FetchLogos downloads and decodes logos.json.
func (f *IPTVOrgHTTPFetcher) FetchLogos(ctx context.Context) ([]iptvorg.Logo, error) {
	return fetchDataset[iptvorg.Logo](ctx, f, iptvorg.DatasetLogos, f.urls.Logos)
}

func fetchDataset[T any](ctx context.Context, f *IPTVOrgHTTPFetcher, dataset iptvorg.Dataset, url string) ([]T, error) {
	f.logger.Info("fetching dataset", "dataset", dataset, "url", url)
	start := time.Now()

	body, err := fetchBody(ctx, f.client, url, f.userAgent)
	if err == nil {
		var records []T
		var skipped int
		records, skipped, err = decodeRecords[T](body)
		if err == nil {
			if skipped > 0 {
				f.logger.Warn("skipped malformed records", "dataset", dataset, "url", url, "skipped", skipped)
			}
			f.logger.Info("dataset fetched",
				"dataset", dataset,
				"records", len(records),
				"bytes", len(body),
				"duration", time.Since(start),
			)
			return records, nil
		}
	}

	f.logger.Error("failed to fetch dataset", "dataset", dataset, "url", url, "error", err)
	return nil, &iptvorg.FetchError{Dataset: dataset, URL: url, Err: err}
}

func fetchBody(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// decodeRecords decodes a JSON array of records. The document must be an
// array; records that are not objects are skipped and counted, and fields
// with an unexpected type decode as absent.
func decodeRecords[T any](body []byte) ([]T, int, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, 0, fmt.Errorf("decoding JSON body: %w", errNotArray)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding JSON body: %w", err)
	}

	records := make([]T, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		var record T
		if err := json.Unmarshal(r, &record); err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}
