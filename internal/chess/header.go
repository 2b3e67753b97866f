package chess

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tag names maintained by the engine itself.
const (
	SetupTag  = "SetUp"
	FENTag    = "FEN"
	ResultTag = "Result"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	return slices.Contains(SevenTagRoster, tag)
}

// Header is the PGN tag store attached to a position.
type Header struct {
	tags map[string]string
}

// Get returns the value of a tag, or "" when unset.
func (h *Header) Get(name string) string {
	return h.tags[name]
}

// Has reports whether a tag is set.
func (h *Header) Has(name string) bool {
	_, ok := h.tags[name]
	return ok
}

// Set assigns a tag value.
func (h *Header) Set(name, value string) {
	if h.tags == nil {
		h.tags = make(map[string]string)
	}
	h.tags[name] = value
}

// Delete removes a tag.
func (h *Header) Delete(name string) {
	delete(h.tags, name)
}

// Len returns the number of tags.
func (h *Header) Len() int {
	return len(h.tags)
}

// Reset removes every tag.
func (h *Header) Reset() {
	h.tags = nil
}

// Map returns a copy of the tags.
func (h *Header) Map() map[string]string {
	out := make(map[string]string, len(h.tags))
	maps.Copy(out, h.tags)
	return out
}

// Keys returns the tag names with the seven tag roster first, in roster
// order, followed by the remaining names sorted alphabetically.
func (h *Header) Keys() []string {
	keys := make([]string, 0, len(h.tags))
	for _, name := range SevenTagRoster {
		if h.Has(name) {
			keys = append(keys, name)
		}
	}
	var rest []string
	for _, name := range maps.Keys(h.tags) {
		if !IsSevenTagRosterTag(name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}
