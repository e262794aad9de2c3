package emoji

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Entry is one resolved emoji: the identifier it came from, the
// renderable glyph, and whether the runtime can render it. An entry
// with Supported=false never reaches the display layer.
type Entry struct {
	Glyph     string
	ID        string
	Supported bool
}

// Resolver turns emoji identifiers into entries. Identifiers are
// dash-joined upper-hex code points ("1F468-200D-1F469"). Support is a
// pure function of the injected table and runtime version, so tests can
// simulate older platforms deterministically.
type Resolver struct {
	table   SupportTable
	runtime Version
}

// NewResolver creates a resolver gated at the given runtime version.
func NewResolver(table SupportTable, runtime Version) *Resolver {
	return &Resolver{table: table, runtime: runtime}
}

// NewDefaultResolver uses the bundled table at its newest version.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultTable(), DefaultRuntimeVersion())
}

// RuntimeVersion returns the version the resolver gates against.
func (r *Resolver) RuntimeVersion() Version {
	return r.runtime
}

// Resolve decodes an identifier into an Entry. There is no error case:
// an identifier that does not decode, or that needs a newer runtime,
// comes back with Supported=false and is filtered out upstream.
func (r *Resolver) Resolve(id string) Entry {
	codepoints, ok := decode(id)
	if !ok {
		return Entry{ID: id}
	}

	min, known := r.table.MinVersion(codepoints)
	if !known || r.runtime.Less(min) {
		return Entry{ID: id}
	}

	return Entry{Glyph: string(codepoints), ID: id, Supported: true}
}

// decode parses dash-joined hex code points into runes.
func decode(id string) ([]rune, bool) {
	if id == "" {
		return nil, false
	}
	parts := strings.Split(id, "-")
	codepoints := make([]rune, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 16, 32)
		if err != nil || n > utf8.MaxRune {
			return nil, false
		}
		codepoints = append(codepoints, rune(n))
	}
	return codepoints, true
}
