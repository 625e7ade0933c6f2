package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// Attribute is one of the six ability-score slots.
type Attribute string

// Attributes
const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// AttributeCount is the number of ability-score slots.
const AttributeCount = 6

// attributeOrder is the fixed assignment and display order.
var attributeOrder = [AttributeCount]Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

var attributeShort = map[Attribute]string{
	AttributeStrength:     "STR",
	AttributeDexterity:    "DEX",
	AttributeConstitution: "CON",
	AttributeIntelligence: "INT",
	AttributeWisdom:       "WIS",
	AttributeCharisma:     "CHA",
}

// Attributes returns the six attributes in assignment order. The slice is a
// copy.
func Attributes() []Attribute {
	out := make([]Attribute, AttributeCount)
	copy(out, attributeOrder[:])
	return out
}

// AttributeAt returns the attribute at index i of the assignment order.
func AttributeAt(i int) (Attribute, bool) {
	if i < 0 || i >= AttributeCount {
		return "", false
	}
	return attributeOrder[i], true
}

// Valid reports whether a is one of the six attributes.
func (a Attribute) Valid() bool {
	_, ok := attributeShort[a]
	return ok
}

// Index returns the position of a in the assignment order, or -1.
func (a Attribute) Index() int {
	for i, attr := range attributeOrder {
		if attr == a {
			return i
		}
	}
	return -1
}

// Short returns the three-letter abbreviation, e.g. "STR".
func (a Attribute) Short() string {
	return attributeShort[a]
}

// Title returns the display name, e.g. "Strength".
func (a Attribute) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// ParseAttribute accepts full names or abbreviations in any case.
func ParseAttribute(s string) (Attribute, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, attr := range attributeOrder {
		if in == string(attr) || in == strings.ToLower(attr.Short()) {
			return attr, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown attribute %q", s)
}
