package playlist

import (
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultName is used when a channel has no name.
	DefaultName  = "Nombre Desconocido"
	// DefaultGroup is used when a channel has no category.
	DefaultGroup = "Sin Categoría"
)

// Entry is a channel joined with its stream and logo, ready to be rendered.
type Entry struct {
	id    string
	name  string
	logo  string
	group string
	url   string
}

// NewEntry creates a playlist Entry. Values are kept verbatim.
// Returns ErrEmptyID if id is empty and ErrEmptyURL if url is empty.
func NewEntry(id, name, logo, group, url string) (Entry, error) {
	if id == "" {
		return Entry{}, ErrEmptyID
	}
	if url == "" {
		return Entry{}, ErrEmptyURL
	}
	return Entry{
		id:    id,
		name:  name,
		logo:  logo,
		group: group,
		url:   url,
	}, nil
}

// ID returns the iptv-org channel id, used as tvg-id.
func (e Entry) ID() string {
	return e.id
}

// Name returns the display name.
func (e Entry) Name() string {
	return e.name
}

// Logo returns the logo URL, possibly empty.
func (e Entry) Logo() string {
	return e.logo
}

// Group returns the group title.
func (e Entry) Group() string {
	return e.group
}

// URL returns the stream URL.
func (e Entry) URL() string {
	return e.url
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
