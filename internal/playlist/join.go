package playlist

import "github.com/alorle/iptv-org-playlist/internal/iptvorg"

// JoinStats summarizes a join for logging and metrics.
type JoinStats struct {
	Channels     int
	Streams      int
	Logos        int
	StreamLookup int
	LogoLookup   int
	Entries      int
	Dropped      int
}

// Join combines the three iptv-org collections into playlist entries.
// Entries keep the order of channels; channels with no stream are skipped.
func Join(channels []iptvorg.Channel, streams []iptvorg.Stream, logos []iptvorg.Logo) []Entry {
	entries, _ := JoinWithStats(channels, streams, logos)
	return entries
}

// JoinWithStats is Join plus counters describing what was kept and dropped.
func JoinWithStats(channels []iptvorg.Channel, streams []iptvorg.Stream, logos []iptvorg.Logo) ([]Entry, JoinStats) {
	streamLookup := BuildStreamLookup(streams)
	logoLookup := BuildLogoLookup(logos)

	entries := make([]Entry, 0, min(len(channels), streamLookup.Len()))
	for _, ch := range channels {
		url, ok := streamLookup.Get(ch.ID)
		if !ok {
			continue
		}

		name := ch.Name
		if name == "" {
			name = DefaultName
		}

		logo, _ := logoLookup.Get(ch.ID)

		group := DefaultGroup
		if len(ch.Categories) > 0 {
			group = ch.Categories[0]
		}

		entry, err := NewEntry(ch.ID, name, logo, Capitalize(group), url)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	stats := JoinStats{
		Channels:     len(channels),
		Streams:      len(streams),
		Logos:        len(logos),
		StreamLookup: streamLookup.Len(),
		LogoLookup:   logoLookup.Len(),
		Entries:      len(entries),
		Dropped:      len(channels) - len(entries),
	}
	return entries, stats
}
