package picker

import (
	"fmt"
	"log/slog"

	"github.com/runger/emopick/internal/catalog"
	"github.com/runger/emopick/internal/emoji"
)

// ChosenFunc is invoked exactly once per completed pick with the final
// glyph. No intermediate states are reported.
type ChosenFunc func(glyph string)

// Options configures a Picker. The hint fields are presentation-only:
// the core carries them for the host and never reads them, except
// DismissAfterChoosing which the host queries via ShouldDismiss.
type Options struct {
	// Records overrides the catalog. When nil the embedded default
	// catalog is loaded.
	Records []catalog.Record

	// Resolver overrides emoji resolution. When nil the default
	// resolver at the newest known version is used.
	Resolver *emoji.Resolver

	// OnChosen is called once per pick with the chosen glyph.
	OnChosen ChosenFunc

	// DismissAfterChoosing hints that the host should close the picker
	// after a pick. The core has no notion of open or closed. It
	// defaults to true via DefaultOptions; start from DefaultOptions
	// rather than a zero Options literal to get the documented
	// defaults.
	DismissAfterChoosing bool

	// Presentation hints, passed through untouched.
	HeightHint         int
	ArrowDirectionHint string
	InsetHint          int
	TintHint           string
	HapticStyleHint    string

	Logger *slog.Logger
}

// DefaultOptions returns options with the documented defaults.
func DefaultOptions() Options {
	return Options{DismissAfterChoosing: true}
}

// Picker is the public contract used by the host: read-only queries
// over the index, plus the two input events forwarded by the rendering
// layer. The index is built once at construction and owned by the
// picker for its whole lifetime.
type Picker struct {
	index  *Index
	state  *State
	opts   Options
	logger *slog.Logger
}

// New builds a picker. A catalog that fails to load fails construction
// atomically: no partially built index is ever exposed.
func New(opts Options) (*Picker, error) {
	records := opts.Records
	if records == nil {
		var err error
		records, err = catalog.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = emoji.NewDefaultResolver()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	index := BuildIndex(records, resolver)
	p := &Picker{
		index:  index,
		state:  NewState(index.SectionCount()),
		opts:   opts,
		logger: logger,
	}
	logger.Debug("picker built",
		"sections", index.SectionCount(),
		"entries", index.TotalCount(),
		"runtime_version", resolver.RuntimeVersion().String())
	return p, nil
}

// SectionCount returns the number of non-empty categories.
func (p *Picker) SectionCount() int {
	return p.index.SectionCount()
}

// ItemCount returns the entry count of a section, 0 when out of range.
func (p *Picker) ItemCount(sec int) int {
	return p.index.ItemCount(sec)
}

// Item returns the entry at (section, offset). Panics when out of
// range; that indicates a desync between rendering layer and index.
func (p *Picker) Item(sec, off int) emoji.Entry {
	return p.index.Entry(sec, off)
}

// CategoryHeader returns the category of a section.
func (p *Picker) CategoryHeader(sec int) catalog.Type {
	return p.index.Header(sec)
}

// State exposes the observable selection state by reference.
func (p *Picker) State() *State {
	return p.state
}

// ShouldDismiss reports the dismiss-after-choosing hint for the host.
func (p *Picker) ShouldDismiss() bool {
	return p.opts.DismissAfterChoosing
}

// ReportPick records a user pick at (section, offset): the entry is
// resolved, selection subscribers are notified, and the chosen callback
// fires with the final glyph.
func (p *Picker) ReportPick(sec, off int) {
	e := p.index.Entry(sec, off)
	p.state.selectEntry(e)
	if p.opts.OnChosen != nil {
		p.opts.OnChosen(e.Glyph)
	}
}

// ReportVisibleSections updates the active category from a scroll
// report. The smallest visible section wins: the category you are
// scrolled into is the first one still showing its header. An empty
// report is a no-op.
func (p *Picker) ReportVisibleSections(sortedAscending []int) {
	if len(sortedAscending) == 0 {
		return
	}
	p.state.setActiveSection(sortedAscending[0])
}
