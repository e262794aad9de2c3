package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/emopick/internal/catalog"
	"github.com/runger/emopick/internal/emoji"
)

func newTestPicker(t *testing.T) *Picker {
	t.Helper()
	opts := DefaultOptions()
	opts.Records = testRecords()
	opts.Resolver = testResolver()
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestDefaultOptionsDismissAfterChoosing(t *testing.T) {
	assert.True(t, DefaultOptions().DismissAfterChoosing)
}

func TestNewWithDefaultCatalog(t *testing.T) {
	p, err := New(DefaultOptions())
	require.NoError(t, err)

	// Every bundled category survives filtering at the newest version.
	assert.Equal(t, len(catalog.Types()), p.SectionCount())
	assert.True(t, p.ShouldDismiss())
}

func TestNewWithAncientRuntimeYieldsEmptyIndex(t *testing.T) {
	// A runtime older than everything filters out the whole catalog.
	// Unsupported emoji are not an error, so construction succeeds
	// with zero sections; only a catalog that fails to load rejects
	// construction.
	opts := DefaultOptions()
	opts.Resolver = emoji.NewResolver(emoji.DefaultTable(), emoji.V(0, 0))
	p, err := New(opts)
	require.NoError(t, err)
	assert.Zero(t, p.SectionCount())
}

func TestReportPickUpdatesSelection(t *testing.T) {
	p := newTestPicker(t)

	p.ReportPick(1, 1)

	sel := p.State().Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "E", sel.Glyph)
	assert.Equal(t, p.Item(1, 1), *sel)
}

func TestSelectionHasNoValueBeforeFirstPick(t *testing.T) {
	p := newTestPicker(t)
	assert.Nil(t, p.State().Selected())
}

func TestRepickingSameEmojiNotifiesTwice(t *testing.T) {
	p := newTestPicker(t)

	notifications := 0
	p.State().BindSelected(func(*emoji.Entry) { notifications++ })

	p.ReportPick(0, 0)
	p.ReportPick(0, 0)

	// Two distinct user actions, two events.
	assert.Equal(t, 2, notifications)
}

func TestOnChosenFiresOncePerPickWithGlyph(t *testing.T) {
	var chosen []string
	opts := DefaultOptions()
	opts.Records = testRecords()
	opts.Resolver = testResolver()
	opts.OnChosen = func(glyph string) { chosen = append(chosen, glyph) }

	p, err := New(opts)
	require.NoError(t, err)

	p.ReportPick(0, 2)
	p.ReportPick(0, 2)

	assert.Equal(t, []string{"C", "C"}, chosen)
}

func TestReportVisibleSectionsTopmostWins(t *testing.T) {
	p := newTestPicker(t)

	p.ReportVisibleSections([]int{1, 2})
	assert.Equal(t, 1, p.State().ActiveSection())

	p.ReportVisibleSections([]int{0, 1, 2})
	assert.Equal(t, 0, p.State().ActiveSection())
}

func TestReportVisibleSectionsEmptyIsNoOp(t *testing.T) {
	p := newTestPicker(t)
	p.ReportVisibleSections([]int{2})
	require.Equal(t, 2, p.State().ActiveSection())

	p.ReportVisibleSections(nil)
	assert.Equal(t, 2, p.State().ActiveSection())
}

func TestReportVisibleSectionsClampsOutOfRange(t *testing.T) {
	p := newTestPicker(t)

	// Transiently inconsistent scroll reports must never crash.
	p.ReportVisibleSections([]int{99})
	assert.Equal(t, p.SectionCount()-1, p.State().ActiveSection())

	p.ReportVisibleSections([]int{-5})
	assert.Equal(t, 0, p.State().ActiveSection())
}

func TestActiveSectionNotifiesOnlyOnChange(t *testing.T) {
	p := newTestPicker(t)

	notifications := 0
	p.State().BindActiveSection(func(int) { notifications++ })

	p.ReportVisibleSections([]int{0}) // already active, no event
	assert.Zero(t, notifications)

	p.ReportVisibleSections([]int{1})
	assert.Equal(t, 1, notifications)

	p.ReportVisibleSections([]int{1}) // idempotent
	assert.Equal(t, 1, notifications)
}

func TestActiveSectionStartsAtZero(t *testing.T) {
	p := newTestPicker(t)
	assert.Zero(t, p.State().ActiveSection())
}

func TestFacadeQueries(t *testing.T) {
	p := newTestPicker(t)

	assert.Equal(t, 3, p.SectionCount())
	assert.Equal(t, catalog.People, p.CategoryHeader(0))
	assert.Equal(t, catalog.Foods, p.CategoryHeader(2))
	assert.Equal(t, 2, p.ItemCount(1))
	assert.Zero(t, p.ItemCount(99))
	assert.Panics(t, func() { p.Item(99, 0) })
}
