// Package element holds the five-element model: the digit table, the
// relation matrix and the per-menh role lookup. Everything here is a fixed
// table; nothing is computed at runtime.
package element

import (
	"strings"

	"calsdt/domain/core"
)

// Element is one of the five elements. The zero value is Water.
type Element uint8

const (
	Water Element = iota // Thủy
	Earth                // Thổ
	Wood                 // Mộc
	Metal                // Kim
	Fire                 // Hỏa
)

// Count is the number of elements; Element values index arrays of this size.
const Count = 5

// All lists the elements in index order.
var All = [Count]Element{Water, Earth, Wood, Metal, Fire}

var names = [Count]string{"Thuy", "Tho", "Moc", "Kim", "Hoa"}

var englishNames = [Count]string{"Water", "Earth", "Wood", "Metal", "Fire"}

// String returns the internal (unaccented Vietnamese) name.
func (e Element) String() string {
	if !e.Valid() {
		return "Unknown"
	}
	return names[e]
}

// English returns the English name.
func (e Element) English() string {
	if !e.Valid() {
		return "Unknown"
	}
	return englishNames[e]
}

// Valid reports whether e is one of the five defined elements.
func (e Element) Valid() bool {
	return e < Count
}

// MarshalText encodes the element by its internal name.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, core.NewUnknownElementError(e.String())
	}
	return []byte(e.String()), nil
}

// UnmarshalText accepts any spelling Parse accepts.
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

var aliases = map[string]Element{
	"thuy": Water, "thủy": Water, "thuỷ": Water, "water": Water,
	"tho": Earth, "thổ": Earth, "earth": Earth,
	"moc": Wood, "mộc": Wood, "wood": Wood,
	"kim": Metal, "metal": Metal,
	"hoa": Fire, "hỏa": Fire, "hoả": Fire, "fire": Fire,
	// numbered menu choices of the interactive prompt
	"1": Metal, "2": Wood, "3": Water, "4": Fire, "5": Earth,
}

// Parse resolves an element name. Internal names, diacritic spellings,
// English names and the menu numbers 1-5 are accepted, case-insensitively.
func Parse(s string) (Element, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if e, ok := aliases[key]; ok {
		return e, nil
	}
	return 0, core.NewUnknownElementError(s)
}

// MenuChoices is the order of the interactive menh menu (1-based).
var MenuChoices = []Element{Metal, Wood, Water, Fire, Earth}
