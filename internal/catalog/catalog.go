// Package catalog loads the bundled emoji catalog: an ordered list of
// categories, each holding the emoji identifiers that belong to it.
package catalog

import (
	"errors"
	"fmt"
)

// Load errors. Both make construction of a picker fail; a catalog that
// does not parse cleanly is a packaging bug, not a runtime condition.
var (
	ErrMalformedCatalog = errors.New("malformed catalog")
	ErrUnknownCategory  = errors.New("unknown category")
)

// Type identifies one of the fixed emoji categories. The declaration
// order is the display and navigation order.
type Type int

const (
	People Type = iota
	Nature
	Foods
	Activity
	Places
	Objects
	Symbols
	Flags
)

// typeIDs maps Type to the raw identifier used in the catalog resource.
var typeIDs = [...]string{
	People:   "people",
	Nature:   "nature",
	Foods:    "foods",
	Activity: "activity",
	Places:   "places",
	Objects:  "objects",
	Symbols:  "symbols",
	Flags:    "flags",
}

// typeLabels maps Type to a human-readable label for headers.
var typeLabels = [...]string{
	People:   "Smileys & People",
	Nature:   "Animals & Nature",
	Foods:    "Food & Drink",
	Activity: "Activity",
	Places:   "Travel & Places",
	Objects:  "Objects",
	Symbols:  "Symbols",
	Flags:    "Flags",
}

// ID returns the raw catalog identifier for the category.
func (t Type) ID() string {
	if int(t) < len(typeIDs) {
		return typeIDs[t]
	}
	return "unknown"
}

// Label returns the display label for the category.
func (t Type) Label() string {
	if int(t) < len(typeLabels) {
		return typeLabels[t]
	}
	return "Unknown"
}

// String returns the raw identifier, matching the catalog resource.
func (t Type) String() string {
	return t.ID()
}

// Types returns all categories in display order.
func Types() []Type {
	return []Type{People, Nature, Foods, Activity, Places, Objects, Symbols, Flags}
}

// ParseType maps a raw catalog identifier onto a Type.
func ParseType(id string) (Type, error) {
	for t, raw := range typeIDs {
		if raw == id {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
}

// Record is one category as loaded from the catalog resource: the
// category plus its emoji identifiers in source order.
type Record struct {
	Type     Type
	EmojiIDs []string
}
