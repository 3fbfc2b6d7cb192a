package playlist

import "github.com/alorle/iptv-org-playlist/internal/iptvorg"

// Lookup maps a channel id to the first URL seen for it.
// Empty ids and empty URLs are never stored.
type Lookup struct {
	urls map[string]string
}

// NewLookup creates an empty Lookup sized for n records.
func NewLookup(n int) *Lookup {
	return &Lookup{urls: make(map[string]string, n)}
}

// Add stores url under channelID unless either is empty or the id is
// already present. It reports whether the value was stored.
func (l *Lookup) Add(channelID, url string) bool {
	if channelID == "" || url == "" {
		return false
	}
	if _, ok := l.urls[channelID]; ok {
		return false
	}
	l.urls[channelID] = url
	return true
}

// Get returns the URL stored for channelID.
func (l *Lookup) Get(channelID string) (string, bool) {
	url, ok := l.urls[channelID]
	return url, ok
}

// Len returns the number of distinct channel ids stored.
func (l *Lookup) Len() int {
	return len(l.urls)
}

// BuildStreamLookup indexes streams by channel id, keeping the first stream
// listed for each channel.
func BuildStreamLookup(streams []iptvorg.Stream) *Lookup {
	l := NewLookup(len(streams))
	for _, s := range streams {
		l.Add(s.Channel, s.URL)
	}
	return l
}

// BuildLogoLookup indexes logos by channel id, keeping the first logo
// listed for each channel.
func BuildLogoLookup(logos []iptvorg.Logo) *Lookup {
	l := NewLookup(len(logos))
	for _, lg := range logos {
		l.Add(lg.Channel, lg.URL)
	}
	return l
}
