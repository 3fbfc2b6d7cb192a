package iptvorg

import (
	"errors"

	"github.com/goccy/go-json"
)

// ErrMalformedRecord is returned when a dataset record is not a JSON object.
var ErrMalformedRecord = errors.New("record is not a JSON object")

type fields map[string]json.RawMessage

func decodeFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	if f == nil {
		return nil, ErrMalformedRecord
	}
	return f, nil
}

// str returns the string value of key, or "" when it is missing, null or
// not a string.
func (f fields) str(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// strs returns the string items of the array under key. Non-string items
// are dropped; anything other than an array yields nil.
func (f fields) strs(key string) []string {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil || string(item) == "null" {
			continue
		}
		out = append(out, s)
	}
	return out
}
