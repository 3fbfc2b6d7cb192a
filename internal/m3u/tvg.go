package m3u

import (
	"fmt"
	"io"
	"strings"
)

// TVGTags are the attributes written on every #EXTINF line.
// All three are always present, even when empty.
type TVGTags struct {
	ID         string
	Logo       string
	GroupTitle string
}

func (t *TVGTags) encode(w io.Writer) error {
	_, err := fmt.Fprintf(w, "tvg-id=\"%s\" tvg-logo=\"%s\" group-title=\"%s\"",
		attrValue(t.ID),
		attrValue(t.Logo),
		attrValue(t.GroupTitle))
	return err
}

var (
	lineReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	attrReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", `"`, "'")
)

// lineValue keeps a value on a single line.
func lineValue(s string) string {
	return lineReplacer.Replace(s)
}

// attrValue makes s safe inside a double-quoted attribute.
func attrValue(s string) string {
	return attrReplacer.Replace(s)
}
