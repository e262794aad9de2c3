// Package emoji resolves emoji identifiers into renderable glyphs and
// decides whether the running platform can render them.
package emoji

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a Unicode emoji version (e.g. 12.0). Comparisons are
// monotonic: an emoji introduced in version V renders on runtimes
// with version >= V.
type Version struct {
	Major int
	Minor int
}

// V is shorthand for constructing a Version.
func V(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// ParseVersion parses "major.minor" (minor optional) into a Version.
func ParseVersion(s string) (Version, error) {
	major, minor, found := strings.Cut(s, ".")
	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	v := Version{Major: maj}
	if found {
		min, err := strconv.Atoi(minor)
		if err != nil || min < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		v.Minor = min
	}
	return v, nil
}

// Less reports whether v precedes o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	return !v.Less(o)
}

// String returns the "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
