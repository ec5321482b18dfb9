// pkg/tags/types.go
package tags

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedImplementation indicates tags cannot be generated for
	// the Python implementation
	ErrUnsupportedImplementation = errors.New("unsupported python implementation")

	// ErrUnsupportedPlatform indicates tags cannot be generated for the
	// platform
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Tag is a single PEP 425 compatibility tag: an interpreter tag, an ABI tag
// and a platform tag, e.g. cp311-cp311-manylinux_2_17_x86_64
type Tag struct {
	Interpreter string
	ABI         string
	Platform    string
}

// String returns the dash-joined wheel tag
func (t Tag) String() string {
	return t.Interpreter + "-" + t.ABI + "-" + t.Platform
}

// Tags is an ordered list of compatibility tags. Order encodes preference:
// the first tag is the most specific match for the environment and callers
// must never reorder the list.
type Tags struct {
	list     []Tag
	priority map[Tag]int
}

// New builds a Tags list from tags already in preference order
func New(list []Tag) *Tags {
	priority := make(map[Tag]int, len(list))
	for i, tag := range list {
		if _, seen := priority[tag]; !seen {
			priority[tag] = i
		}
	}
	return &Tags{list: list, priority: priority}
}

// List returns the tags in preference order. The returned slice is shared;
// callers must not modify it.
func (t *Tags) List() []Tag {
	return t.list
}

// Len returns the number of tags
func (t *Tags) Len() int {
	return len(t.list)
}

// Priority returns the preference rank of a tag, lower is better.
// ok is false when the tag is not compatible with this environment.
func (t *Tags) Priority(tag Tag) (int, bool) {
	rank, ok := t.priority[tag]
	return rank, ok
}

// Contains reports whether the tag is compatible with this environment
func (t *Tags) Contains(tag Tag) bool {
	_, ok := t.priority[tag]
	return ok
}

// String renders the list one tag per line, most preferred first
func (t *Tags) String() string {
	parts := make([]string, len(t.list))
	for i, tag := range t.list {
		parts[i] = tag.String()
	}
	return strings.Join(parts, "\n")
}

// GoString aids debugging output in tests
func (t *Tags) GoString() string {
	return fmt.Sprintf("tags.New(%#v)", t.list)
}
