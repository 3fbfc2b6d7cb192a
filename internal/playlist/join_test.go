package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorle/iptv-org-playlist/internal/iptvorg"
)

func TestJoin(t *testing.T) {
	t.Run("joins channels with their first stream and logo", func(t *testing.T) {
		channels := []iptvorg.Channel{
			{ID: "c1", Name: "Beta", Categories: []string{"news"}},
			{ID: "c2", Name: "Alpha", Categories: []string{}},
		}
		streams := []iptvorg.Stream{
			{Channel: "c1", URL: "http://a"},
			{Channel: "c2", URL: "http://b"},
			{Channel: "c2", URL: "http://ignored"},
		}

		entries := Join(channels, streams, nil)

		require.Len(t, entries, 2)

		assert.Equal(t, "c1", entries[0].ID())
		assert.Equal(t, "Beta", entries[0].Name())
		assert.Equal(t, "News", entries[0].Group())
		assert.Equal(t, "http://a", entries[0].URL())

		assert.Equal(t, "c2", entries[1].ID())
		assert.Equal(t, DefaultGroup, entries[1].Group())
		assert.Empty(t, entries[1].Logo())
		assert.Equal(t, "http://b", entries[1].URL())
	})

	t.Run("drops channels without stream", func(t *testing.T) {
		channels := []iptvorg.Channel{
			{ID: "c1", Name: "One"},
			{ID: "c2", Name: "Two"},
			{ID: "c3", Name: "Three"},
		}
		streams := []iptvorg.Stream{
			{Channel: "c2", URL: "http://two"},
			{Channel: "unknown", URL: "http://nobody"},
		}

		entries, stats := JoinWithStats(channels, streams, nil)

		require.Len(t, entries, 1)
		assert.Equal(t, "c2", entries[0].ID())
		assert.Equal(t, 2, stats.Dropped)
		assert.Equal(t, 2, stats.StreamLookup)
		assert.Equal(t, 1, stats.Entries)
	})

	t.Run("keeps channel order", func(t *testing.T) {
		channels := []iptvorg.Channel{
			{ID: "z", Name: "Zulu"},
			{ID: "a", Name: "Alpha"},
			{ID: "m", Name: "Mike"},
		}
		streams := []iptvorg.Stream{
			{Channel: "a", URL: "http://a"},
			{Channel: "m", URL: "http://m"},
			{Channel: "z", URL: "http://z"},
		}

		entries := Join(channels, streams, nil)

		require.Len(t, entries, 3)
		assert.Equal(t, "z", entries[0].ID())
		assert.Equal(t, "a", entries[1].ID())
		assert.Equal(t, "m", entries[2].ID())
	})

	t.Run("uses first logo", func(t *testing.T) {
		channels := []iptvorg.Channel{{ID: "c1", Name: "One"}}
		streams := []iptvorg.Stream{{Channel: "c1", URL: "http://one"}}
		logos := []iptvorg.Logo{
			{Channel: "c1", URL: "http://first.png"},
			{Channel: "c1", URL: "http://second.png"},
		}

		entries := Join(channels, streams, logos)

		require.Len(t, entries, 1)
		assert.Equal(t, "http://first.png", entries[0].Logo())
	})

	t.Run("missing name falls back to default", func(t *testing.T) {
		channels := []iptvorg.Channel{{ID: "c1"}}
		streams := []iptvorg.Stream{{Channel: "c1", URL: "http://one"}}

		entries := Join(channels, streams, nil)

		require.Len(t, entries, 1)
		assert.Equal(t, DefaultName, entries[0].Name())
	})

	t.Run("group uses only the first category", func(t *testing.T) {
		channels := []iptvorg.Channel{{ID: "c1", Name: "One", Categories: []string{"sports", "news"}}}
		streams := []iptvorg.Stream{{Channel: "c1", URL: "http://one"}}

		entries := Join(channels, streams, nil)

		require.Len(t, entries, 1)
		assert.Equal(t, "Sports", entries[0].Group())
	})

	t.Run("channel with empty id is never joined", func(t *testing.T) {
		channels := []iptvorg.Channel{{ID: "", Name: "Ghost"}}
		streams := []iptvorg.Stream{{Channel: "", URL: "http://ghost"}}

		entries := Join(channels, streams, nil)

		assert.Empty(t, entries)
	})

	t.Run("count equals channels present in stream lookup", func(t *testing.T) {
		channels := []iptvorg.Channel{
			{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"},
		}
		streams := []iptvorg.Stream{
			{Channel: "c1", URL: "http://1"},
			{Channel: "c1", URL: "http://1b"},
			{Channel: "c3", URL: "http://3"},
			{Channel: "c9", URL: "http://9"},
		}

		entries, stats := JoinWithStats(channels, streams, nil)

		assert.Len(t, entries, 2)
		assert.Equal(t, 4, stats.Channels)
		assert.Equal(t, 4, stats.Streams)
		assert.Equal(t, 3, stats.StreamLookup)
	})

	t.Run("empty inputs produce no entries", func(t *testing.T) {
		entries := Join(nil, nil, nil)

		assert.Empty(t, entries)
	})
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "news", want: "News"},
		{in: "News", want: "News"},
		{in: "kids and FAMILY", want: "Kids and FAMILY"},
		{in: "éxitos", want: "Éxitos"},
		{in: "123abc", want: "123abc"},
		{in: "", want: ""},
		{in: DefaultGroup, want: DefaultGroup},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestNewEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		e, err := NewEntry("c1", "One", "", "News", "http://one")

		require.NoError(t, err)
		assert.Equal(t, "c1", e.ID())
		assert.Equal(t, "One", e.Name())
		assert.Empty(t, e.Logo())
		assert.Equal(t, "News", e.Group())
		assert.Equal(t, "http://one", e.URL())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewEntry("", "One", "", "News", "http://one")

		assert.ErrorIs(t, err, ErrEmptyID)
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := NewEntry("c1", "One", "", "News", "")

		assert.ErrorIs(t, err, ErrEmptyURL)
	})
}
