package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, id, name, url string) Entry {
	t.Helper()
	e, err := NewEntry(id, name, "", DefaultGroup, url)
	require.NoError(t, err)
	return e
}

func TestSort(t *testing.T) {
	t.Run("orders by name", func(t *testing.T) {
		entries := []Entry{
			mustEntry(t, "c1", "Beta", "http://b"),
			mustEntry(t, "c2", "Alpha", "http://a"),
			mustEntry(t, "c3", "Gamma", "http://g"),
		}

		sorted := Sort(entries)

		require.Len(t, sorted, 3)
		assert.Equal(t, "Alpha", sorted[0].Name())
		assert.Equal(t, "Beta", sorted[1].Name())
		assert.Equal(t, "Gamma", sorted[2].Name())
	})

	t.Run("uses ordinal comparison", func(t *testing.T) {
		entries := []Entry{
			mustEntry(t, "c1", "alpha", "http://1"),
			mustEntry(t, "c2", "Zulu", "http://2"),
			mustEntry(t, "c3", "Ñandú", "http://3"),
		}

		sorted := Sort(entries)

		assert.Equal(t, "Zulu", sorted[0].Name())
		assert.Equal(t, "alpha", sorted[1].Name())
		assert.Equal(t, "Ñandú", sorted[2].Name())
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		entries := []Entry{
			mustEntry(t, "c1", "Beta", "http://b"),
			mustEntry(t, "c2", "Alpha", "http://a"),
		}

		_ = Sort(entries)

		assert.Equal(t, "Beta", entries[0].Name())
	})

	t.Run("permutations sort identically", func(t *testing.T) {
		a := mustEntry(t, "c1", "Same", "http://1")
		b := mustEntry(t, "c2", "Same", "http://2")
		c := mustEntry(t, "c3", "Other", "http://3")
		d := mustEntry(t, "c2", "Same", "http://0")

		perms := [][]Entry{
			{a, b, c, d},
			{d, c, b, a},
			{b, d, a, c},
			{c, a, d, b},
		}

		want := Sort(perms[0])
		for _, p := range perms[1:] {
			assert.Equal(t, want, Sort(p))
		}
		assert.Equal(t, "c3", want[0].ID())
		assert.Equal(t, "c1", want[1].ID())
		assert.Equal(t, "http://0", want[2].URL())
		assert.Equal(t, "http://2", want[3].URL())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Sort(nil))
	})
}
