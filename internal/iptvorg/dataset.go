package iptvorg

import "time"

// Dataset identifies one of the three iptv-org API collections.
type Dataset string

const (
	DatasetChannels Dataset = "channels"
	DatasetStreams  Dataset = "streams"
	DatasetLogos    Dataset = "logos"
)

// Public iptv-org API locations and the client identity it is queried with.
const (
	DefaultChannelsURL = "https://iptv-org.github.io/api/channels.json"
	DefaultStreamsURL  = "https://iptv-org.github.io/api/streams.json"
	DefaultLogosURL    = "https://iptv-org.github.io/api/logos.json"

	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
	DefaultFetchTimeout = 30 * time.Second
)

// Channel is one record of the iptv-org channels.json collection.
// Only the fields used to build a playlist are decoded; a field with an
// unexpected JSON type decodes as absent.
type Channel struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// Stream is one record of the iptv-org streams.json collection.
// Channel is empty for streams not linked to any known channel.
type Stream struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

// Logo is one record of the iptv-org logos.json collection.
type Logo struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

func (c *Channel) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*c = Channel{
		ID:         f.str("id"),
		Name:       f.str("name"),
		Categories: f.strs("categories"),
	}
	return nil
}

func (s *Stream) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*s = Stream{Channel: f.str("channel"), URL: f.str("url")}
	return nil
}

func (l *Logo) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*l = Logo{Channel: f.str("channel"), URL: f.str("url")}
	return nil
}
