package picker

import (
	"fmt"

	"github.com/runger/emopick/internal/catalog"
	"github.com/runger/emopick/internal/emoji"
)

// section is one category and its supported entries.
type section struct {
	header  catalog.Type
	entries []emoji.Entry
}

// Index is the queryable category structure: ordered sections of
// supported entries with precomputed cumulative counts for flat
// position lookup. Immutable after BuildIndex.
type Index struct {
	sections []section
	starts   []int // starts[i] = flat position of sections[i][0]
	total    int
}

// BuildIndex resolves every record's emoji ids, drops unsupported
// entries, and drops categories left empty. Record order is preserved.
// Pure and deterministic: the same records and resolver version always
// yield the same index, so section numbers stay stable across rebuilds.
func BuildIndex(records []catalog.Record, resolver *emoji.Resolver) *Index {
	idx := &Index{}
	for _, rec := range records {
		entries := make([]emoji.Entry, 0, len(rec.EmojiIDs))
		for _, id := range rec.EmojiIDs {
			e := resolver.Resolve(id)
			if e.Supported {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		idx.starts = append(idx.starts, idx.total)
		idx.sections = append(idx.sections, section{header: rec.Type, entries: entries})
		idx.total += len(entries)
	}
	return idx
}

// SectionCount returns the number of non-empty categories.
func (x *Index) SectionCount() int {
	return len(x.sections)
}

// ItemCount returns the entry count of a section, or 0 when the
// section is out of range. Rendering layers request counts during
// transient states; an off-by-one must not crash.
func (x *Index) ItemCount(sec int) int {
	if sec < 0 || sec >= len(x.sections) {
		return 0
	}
	return len(x.sections[sec].entries)
}

// TotalCount returns the number of entries across all sections.
func (x *Index) TotalCount() int {
	return x.total
}

// Entry returns the entry at (section, offset). Out-of-range access is
// a contract violation between the rendering layer and the index, and
// panics rather than degrading silently.
func (x *Index) Entry(sec, off int) emoji.Entry {
	if sec < 0 || sec >= len(x.sections) {
		panic(fmt.Sprintf("picker: section %d out of range [0,%d)", sec, len(x.sections)))
	}
	entries := x.sections[sec].entries
	if off < 0 || off >= len(entries) {
		panic(fmt.Sprintf("picker: offset %d out of range [0,%d) in section %d", off, len(entries), sec))
	}
	return entries[off]
}

// Header returns the category of a section. Same contract as Entry.
func (x *Index) Header(sec int) catalog.Type {
	if sec < 0 || sec >= len(x.sections) {
		panic(fmt.Sprintf("picker: section %d out of range [0,%d)", sec, len(x.sections)))
	}
	return x.sections[sec].header
}

// FlatPosition maps (section, offset) to a flat position over all
// entries, in section order.
func (x *Index) FlatPosition(sec, off int) int {
	if sec < 0 || sec >= len(x.sections) {
		panic(fmt.Sprintf("picker: section %d out of range [0,%d)", sec, len(x.sections)))
	}
	return x.starts[sec] + off
}

// AtFlat maps a flat position back to (section, offset). A pure
// function of the cumulative counts.
func (x *Index) AtFlat(pos int) (sec, off int) {
	if pos < 0 || pos >= x.total {
		panic(fmt.Sprintf("picker: flat position %d out of range [0,%d)", pos, x.total))
	}
	for i := len(x.starts) - 1; i >= 0; i-- {
		if pos >= x.starts[i] {
			return i, pos - x.starts[i]
		}
	}
	return 0, pos
}
