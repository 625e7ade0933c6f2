package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// Method is an ability-score generation method.
type Method string

// Methods
const (
	MethodPriority        Method = "priority"
	MethodHardcore        Method = "hardcore"
	MethodBestThreeOfFour Method = "best_three_of_four"
)

// MethodInfo describes a method for players choosing between them.
type MethodInfo struct {
	Method             Method
	Name               string
	Summary            string
	Description        string
	RequiresAssignment bool
}

var methodCatalogue = []MethodInfo{
	{
		Method:  MethodPriority,
		Name:    "Simple",
		Summary: "Pick your most and least important abilities.",
		Description: "Choose the ability that matters most and the one that matters least. " +
			"The most important ability gets 17, the least important gets 9 and the other four get 12. " +
			"This mirrors a 20-point buy under d20 rules. " +
			"Predictable, with moderate satisfaction.",
	},
	{
		Method:  MethodHardcore,
		Name:    "Hardcore",
		Summary: "Roll 3d6 for each ability, in order.",
		Description: "Roll three six-sided dice for each ability in order: Strength, Dexterity, " +
			"Constitution, Intelligence, Wisdom, Charisma. " +
			"If no ability comes out above 12 the whole set is rolled again. " +
			"You have no control over where scores land. Least satisfaction.",
	},
	{
		Method:  MethodBestThreeOfFour,
		Name:    "4d6 drop lowest",
		Summary: "Roll six values and assign them yourself.",
		Description: "Roll four six-sided dice and keep the best three, six times. " +
			"Then assign each value to an ability, Strength first and Charisma last. " +
			"Reset to reassign or reroll for a fresh set. " +
			"Highest satisfaction, but the most involved.",
		RequiresAssignment: true,
	},
}

// Methods returns the method catalogue in display order.
func Methods() []MethodInfo {
	out := make([]MethodInfo, len(methodCatalogue))
	copy(out, methodCatalogue)
	return out
}

// Info returns the catalogue entry for m.
func (m Method) Info() (MethodInfo, bool) {
	for _, info := range methodCatalogue {
		if info.Method == m {
			return info, true
		}
	}
	return MethodInfo{}, false
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	_, ok := m.Info()
	return ok
}

// ParseMethod accepts the method identifier in any case, plus the aliases
// "simple" and "4d6".
func ParseMethod(s string) (Method, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "simple":
		return MethodPriority, nil
	case "4d6":
		return MethodBestThreeOfFour, nil
	}
	m := Method(in)
	if !m.Valid() {
		return "", errors.InvalidArgumentf("unknown generation method %q", s)
	}
	return m, nil
}
