package emoji

// SupportRange assigns a minimum emoji version to a contiguous run of
// code points. Ranges are checked in order; the first match wins.
type SupportRange struct {
	Lo, Hi rune
	Min    Version
}

// SupportTable maps code points to the emoji version that introduced
// them. It is plain data so tests can simulate older or newer runtimes.
type SupportTable []SupportRange

// MinVersion returns the version required to render all given code
// points: the maximum over the per-code-point minimums. Joiner and
// variation characters carry no requirement of their own beyond their
// table entry. ok is false when a code point matches no range at all,
// meaning the table does not know the character.
func (t SupportTable) MinVersion(codepoints []rune) (Version, bool) {
	var need Version
	for _, r := range codepoints {
		min, ok := t.lookup(r)
		if !ok {
			return Version{}, false
		}
		if need.Less(min) {
			need = min
		}
	}
	return need, true
}

func (t SupportTable) lookup(r rune) (Version, bool) {
	for _, rng := range t {
		if r >= rng.Lo && r <= rng.Hi {
			return rng.Min, true
		}
	}
	return Version{}, false
}

// Max returns the highest minimum version in the table.
func (t SupportTable) Max() Version {
	var max Version
	for _, rng := range t {
		if max.Less(rng.Min) {
			max = rng.Min
		}
	}
	return max
}

// DefaultTable covers the Unicode emoji blocks with the version that
// introduced each run. Coarser than the official data files, but
// monotone and sufficient for gating: a range is tagged with the
// version of its newest additions only where the block itself was
// extended in that version.
func DefaultTable() SupportTable {
	return SupportTable{
		// Components: ZWJ, variation selectors, keycap mark.
		{Lo: 0x200D, Hi: 0x200D, Min: V(6, 0)},
		{Lo: 0xFE0E, Hi: 0xFE0F, Min: V(6, 0)},
		{Lo: 0x20E3, Hi: 0x20E3, Min: V(6, 0)},
		// Keycap bases.
		{Lo: '#', Hi: '#', Min: V(6, 0)},
		{Lo: '*', Hi: '*', Min: V(6, 0)},
		{Lo: '0', Hi: '9', Min: V(6, 0)},
		// Classic symbol blocks.
		{Lo: 0x00A9, Hi: 0x00AE, Min: V(6, 0)},
		{Lo: 0x203C, Hi: 0x2049, Min: V(6, 0)},
		{Lo: 0x2122, Hi: 0x2139, Min: V(6, 0)},
		{Lo: 0x2194, Hi: 0x21AA, Min: V(6, 0)},
		{Lo: 0x231A, Hi: 0x231B, Min: V(6, 0)},
		{Lo: 0x23E9, Hi: 0x23FA, Min: V(6, 0)},
		{Lo: 0x24C2, Hi: 0x24C2, Min: V(6, 0)},
		{Lo: 0x25AA, Hi: 0x25FE, Min: V(6, 0)},
		{Lo: 0x2600, Hi: 0x26FF, Min: V(6, 0)},
		{Lo: 0x2702, Hi: 0x27BF, Min: V(6, 0)},
		{Lo: 0x2934, Hi: 0x2935, Min: V(6, 0)},
		{Lo: 0x2B05, Hi: 0x2B55, Min: V(6, 0)},
		{Lo: 0x3030, Hi: 0x303D, Min: V(6, 0)},
		{Lo: 0x3297, Hi: 0x3299, Min: V(6, 0)},
		// Regional indicators (flags).
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Min: V(6, 0)},
		// Skin tone modifiers.
		{Lo: 0x1F3FB, Hi: 0x1F3FF, Min: V(8, 0)},
		// Tag characters (subdivision flags).
		{Lo: 0xE0020, Hi: 0xE007F, Min: V(10, 0)},
		// Misc symbols and pictographs, emoticons, transport.
		{Lo: 0x1F300, Hi: 0x1F5FF, Min: V(6, 0)},
		{Lo: 0x1F600, Hi: 0x1F64F, Min: V(6, 0)},
		{Lo: 0x1F680, Hi: 0x1F6C5, Min: V(6, 0)},
		{Lo: 0x1F6CB, Hi: 0x1F6D0, Min: V(8, 0)},
		{Lo: 0x1F6D1, Hi: 0x1F6D2, Min: V(9, 0)},
		{Lo: 0x1F6D5, Hi: 0x1F6D5, Min: V(12, 0)},
		{Lo: 0x1F6D6, Hi: 0x1F6D7, Min: V(13, 0)},
		{Lo: 0x1F6DC, Hi: 0x1F6DC, Min: V(15, 0)},
		{Lo: 0x1F6DD, Hi: 0x1F6DF, Min: V(14, 0)},
		{Lo: 0x1F6E0, Hi: 0x1F6EC, Min: V(7, 0)},
		{Lo: 0x1F6F0, Hi: 0x1F6F3, Min: V(7, 0)},
		{Lo: 0x1F6F4, Hi: 0x1F6F6, Min: V(9, 0)},
		{Lo: 0x1F6F7, Hi: 0x1F6F8, Min: V(10, 0)},
		{Lo: 0x1F6F9, Hi: 0x1F6F9, Min: V(11, 0)},
		{Lo: 0x1F6FA, Hi: 0x1F6FA, Min: V(12, 0)},
		{Lo: 0x1F6FB, Hi: 0x1F6FC, Min: V(13, 0)},
		// Supplemental symbols and pictographs, by wave.
		{Lo: 0x1F900, Hi: 0x1F90B, Min: V(13, 0)},
		{Lo: 0x1F90C, Hi: 0x1F90C, Min: V(13, 0)},
		{Lo: 0x1F90D, Hi: 0x1F90F, Min: V(12, 0)},
		{Lo: 0x1F910, Hi: 0x1F918, Min: V(8, 0)},
		{Lo: 0x1F919, Hi: 0x1F927, Min: V(9, 0)},
		{Lo: 0x1F928, Hi: 0x1F92F, Min: V(10, 0)},
		{Lo: 0x1F930, Hi: 0x1F930, Min: V(9, 0)},
		{Lo: 0x1F931, Hi: 0x1F932, Min: V(10, 0)},
		{Lo: 0x1F933, Hi: 0x1F93E, Min: V(9, 0)},
		{Lo: 0x1F93F, Hi: 0x1F93F, Min: V(12, 0)},
		{Lo: 0x1F940, Hi: 0x1F94B, Min: V(9, 0)},
		{Lo: 0x1F94C, Hi: 0x1F94C, Min: V(10, 0)},
		{Lo: 0x1F94D, Hi: 0x1F94F, Min: V(11, 0)},
		{Lo: 0x1F950, Hi: 0x1F95E, Min: V(9, 0)},
		{Lo: 0x1F95F, Hi: 0x1F96B, Min: V(10, 0)},
		{Lo: 0x1F96C, Hi: 0x1F970, Min: V(11, 0)},
		{Lo: 0x1F971, Hi: 0x1F971, Min: V(12, 0)},
		{Lo: 0x1F972, Hi: 0x1F972, Min: V(13, 0)},
		{Lo: 0x1F973, Hi: 0x1F976, Min: V(11, 0)},
		{Lo: 0x1F977, Hi: 0x1F978, Min: V(13, 0)},
		{Lo: 0x1F979, Hi: 0x1F979, Min: V(14, 0)},
		{Lo: 0x1F97A, Hi: 0x1F97A, Min: V(11, 0)},
		{Lo: 0x1F97B, Hi: 0x1F97F, Min: V(11, 0)},
		{Lo: 0x1F980, Hi: 0x1F984, Min: V(8, 0)},
		{Lo: 0x1F985, Hi: 0x1F991, Min: V(9, 0)},
		{Lo: 0x1F992, Hi: 0x1F997, Min: V(10, 0)},
		{Lo: 0x1F998, Hi: 0x1F9A2, Min: V(11, 0)},
		{Lo: 0x1F9A3, Hi: 0x1F9A4, Min: V(13, 0)},
		{Lo: 0x1F9A5, Hi: 0x1F9AA, Min: V(12, 0)},
		{Lo: 0x1F9AB, Hi: 0x1F9AD, Min: V(13, 0)},
		{Lo: 0x1F9AE, Hi: 0x1F9AF, Min: V(12, 0)},
		{Lo: 0x1F9B0, Hi: 0x1F9B9, Min: V(11, 0)},
		{Lo: 0x1F9BA, Hi: 0x1F9BF, Min: V(12, 0)},
		{Lo: 0x1F9C0, Hi: 0x1F9C0, Min: V(8, 0)},
		{Lo: 0x1F9C1, Hi: 0x1F9C2, Min: V(11, 0)},
		{Lo: 0x1F9C3, Hi: 0x1F9CA, Min: V(12, 0)},
		{Lo: 0x1F9CB, Hi: 0x1F9CB, Min: V(13, 0)},
		{Lo: 0x1F9CC, Hi: 0x1F9CC, Min: V(14, 0)},
		{Lo: 0x1F9CD, Hi: 0x1F9CF, Min: V(12, 0)},
		{Lo: 0x1F9D0, Hi: 0x1F9E6, Min: V(10, 0)},
		{Lo: 0x1F9E7, Hi: 0x1F9FF, Min: V(11, 0)},
		// Extended-A.
		{Lo: 0x1FA70, Hi: 0x1FA73, Min: V(12, 0)},
		{Lo: 0x1FA74, Hi: 0x1FA74, Min: V(13, 0)},
		{Lo: 0x1FA75, Hi: 0x1FA77, Min: V(15, 0)},
		{Lo: 0x1FA78, Hi: 0x1FA7A, Min: V(12, 0)},
		{Lo: 0x1FA7B, Hi: 0x1FA7C, Min: V(14, 0)},
		{Lo: 0x1FA80, Hi: 0x1FA82, Min: V(12, 0)},
		{Lo: 0x1FA83, Hi: 0x1FA86, Min: V(13, 0)},
		{Lo: 0x1FA87, Hi: 0x1FA88, Min: V(15, 0)},
		{Lo: 0x1FA90, Hi: 0x1FA95, Min: V(12, 0)},
		{Lo: 0x1FA96, Hi: 0x1FAA8, Min: V(13, 0)},
		{Lo: 0x1FAA9, Hi: 0x1FAAC, Min: V(14, 0)},
		{Lo: 0x1FAAD, Hi: 0x1FAAF, Min: V(15, 0)},
		{Lo: 0x1FAB0, Hi: 0x1FAB6, Min: V(13, 0)},
		{Lo: 0x1FAB7, Hi: 0x1FABA, Min: V(14, 0)},
		{Lo: 0x1FABB, Hi: 0x1FABD, Min: V(15, 0)},
		{Lo: 0x1FABF, Hi: 0x1FABF, Min: V(15, 0)},
		{Lo: 0x1FAC0, Hi: 0x1FAC2, Min: V(13, 0)},
		{Lo: 0x1FAC3, Hi: 0x1FAC5, Min: V(14, 0)},
		{Lo: 0x1FACE, Hi: 0x1FACF, Min: V(15, 0)},
		{Lo: 0x1FAD0, Hi: 0x1FAD6, Min: V(13, 0)},
		{Lo: 0x1FAD7, Hi: 0x1FAD9, Min: V(14, 0)},
		{Lo: 0x1FADA, Hi: 0x1FADB, Min: V(15, 0)},
		{Lo: 0x1FAE0, Hi: 0x1FAE7, Min: V(14, 0)},
		{Lo: 0x1FAE8, Hi: 0x1FAE8, Min: V(15, 0)},
		{Lo: 0x1FAF0, Hi: 0x1FAF6, Min: V(14, 0)},
		{Lo: 0x1FAF7, Hi: 0x1FAF8, Min: V(15, 0)},
	}
}

// DefaultRuntimeVersion is the newest emoji version the default table
// knows about. Used when the caller does not inject a runtime version.
func DefaultRuntimeVersion() Version {
	return DefaultTable().Max()
}
