// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"strings"
)

// WineStyle classifies how a wine tastes or is made.
type WineStyle int

// Wine styles. The zero value is Dry.
const (
	WineStyleDry WineStyle = iota
	WineStyleSweet
	WineStyleSemiDry
	WineStyleSemiSweet
	WineStyleSparkling
	WineStyleFortified
)

var wineStyleNames = [...]string{
	WineStyleDry:       "Dry",
	WineStyleSweet:     "Sweet",
	WineStyleSemiDry:   "SemiDry",
	WineStyleSemiSweet: "SemiSweet",
	WineStyleSparkling: "Sparkling",
	WineStyleFortified: "Fortified",
}

// WineStyles returns every known style in declaration order.
func WineStyles() []WineStyle {
	styles := make([]WineStyle, len(wineStyleNames))
	for i := range wineStyleNames {
		styles[i] = WineStyle(i)
	}

	return styles
}

// String returns the style name, e.g. "SemiDry".
func (s WineStyle) String() string {
	if !s.Valid() {
		return fmt.Sprintf("WineStyle(%d)", int(s))
	}

	return wineStyleNames[s]
}

// Valid reports whether s is one of the declared styles.
func (s WineStyle) Valid() bool {
	return s >= 0 && int(s) < len(wineStyleNames)
}

// ParseWineStyle parses a style name, ignoring case.
func ParseWineStyle(name string) (WineStyle, error) {
	name = strings.TrimSpace(name)
	for i, n := range wineStyleNames {
		if strings.EqualFold(n, name) {
			return WineStyle(i), nil
		}
	}

	return 0, NewValidationError("style", fmt.Sprintf("%q is not one of: %s", name, strings.Join(wineStyleNames[:], ", ")))
}

// MarshalText encodes the style by name so JSON carries "Dry" rather than 0.
func (s WineStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, NewValidationError("style", fmt.Sprintf("unknown wine style %d", int(s)))
	}

	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name.
func (s *WineStyle) UnmarshalText(text []byte) error {
	style, err := ParseWineStyle(string(text))
	if err != nil {
		return err
	}

	*s = style

	return nil
}

// Bottle is one wine in the collection. WinemakerID must name an existing
// Winemaker when the bottle is added.
type Bottle struct {
	ID                int
	Name              string
	Year              int
	SizeInMilliliter  int
	CountInWineCellar int
	Style             WineStyle
	Taste             string
	Description       string
	FoodPairing       string
	Link              string
	Image             string
	WinemakerID       int
}

// Winemaker produces bottles.
//
// Bottles mirrors the bottles added for this winemaker. The bottle store owns
// the authoritative copy and maintains this collection.
type Winemaker struct {
	ID      int
	Name    string
	Address string
	Bottles []Bottle
}

// Clone returns a deep copy so callers cannot alias the Bottles slice.
func (w Winemaker) Clone() Winemaker {
	out := w
	out.Bottles = make([]Bottle, len(w.Bottles))
	copy(out.Bottles, w.Bottles)

	return out
}

// BottleFilter selects bottles. Nil pointers and blank strings impose no constraint.
type BottleFilter struct {
	Year              *int
	SizeInMilliliter  *int
	CountInWineCellar *int
	Style             *WineStyle
	Taste             string
	FoodPairing       string
}

// IsEmpty reports whether the filter has no active criteria.
func (f BottleFilter) IsEmpty() bool {
	return f.Year == nil &&
		f.SizeInMilliliter == nil &&
		f.CountInWineCellar == nil &&
		f.Style == nil &&
		strings.TrimSpace(f.Taste) == "" &&
		strings.TrimSpace(f.FoodPairing) == ""
}
