package m3u

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alorle/iptv-org-playlist/internal/playlist"
)

// Header is the first line of every extended M3U playlist.
const Header = "#EXTM3U"

type encoder struct {
	items []*Channel
}

func NewEncoder() *encoder {
	return &encoder{items: []*Channel{}}
}

func (p *encoder) AddChannel(item *Channel) {
	p.items = append(p.items, item)
}

func (p *encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", Header); err != nil {
		return err
	}

	for _, item := range p.items {
		if err := item.encode(w); err != nil {
			return err
		}
	}

	return nil
}

// Render sorts entries by name and encodes them as an extended M3U playlist.
func Render(entries []playlist.Entry) ([]byte, error) {
	enc := NewEncoder()
	for _, e := range playlist.Sort(entries) {
		enc.AddChannel(&Channel{
			Title:    e.Name(),
			URI:      e.URL(),
			Duration: -1,
			TVGTags: &TVGTags{
				ID:         e.ID(),
				Logo:       e.Logo(),
				GroupTitle: e.Group(),
			},
		})
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encoding playlist: %w", err)
	}
	return buf.Bytes(), nil
}
