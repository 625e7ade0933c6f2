package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// Score bounds for any supported generation method.
const (
	MinScore = 3
	MaxScore = 18
)

// AbilityScoreSet maps each attribute to its score. A complete set holds all
// six attributes.
type AbilityScoreSet map[Attribute]int

// Validate checks the set is complete, holds only known attributes, and every
// score is within [MinScore, MaxScore].
func (s AbilityScoreSet) Validate() error {
	vb := errors.NewValidationBuilder()
	for attr := range s {
		if !attr.Valid() {
			vb.InvalidField(string(attr), "unknown attribute")
		}
	}
	for _, attr := range attributeOrder {
		score, ok := s[attr]
		if !ok {
			vb.RequiredField(string(attr))
			continue
		}
		errors.ValidateRange(string(attr), score, MinScore, MaxScore, vb)
	}
	return vb.Build()
}

// Complete reports whether every attribute has a score.
func (s AbilityScoreSet) Complete() bool {
	for _, attr := range attributeOrder {
		if _, ok := s[attr]; !ok {
			return false
		}
	}
	return true
}

// Total sums the scores.
func (s AbilityScoreSet) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Values returns the scores in assignment order; missing attributes are
// reported as 0.
func (s AbilityScoreSet) Values() []int {
	out := make([]int, AttributeCount)
	for i, attr := range attributeOrder {
		out[i] = s[attr]
	}
	return out
}

// Clone returns an independent copy.
func (s AbilityScoreSet) Clone() AbilityScoreSet {
	if s == nil {
		return nil
	}
	out := make(AbilityScoreSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// String renders the assigned scores in order, e.g. "STR 14 (+2), DEX 16 (+3)".
func (s AbilityScoreSet) String() string {
	parts := make([]string, 0, len(s))
	for _, attr := range attributeOrder {
		score, ok := s[attr]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d (%s)", attr.Short(), score, FormatModifier(Modifier(score))))
	}
	return strings.Join(parts, ", ")
}

// Modifier is the d20 ability modifier: floor((score-10)/2).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// FormatModifier renders a modifier with its sign, e.g. "+2", "-1", "+0".
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}
