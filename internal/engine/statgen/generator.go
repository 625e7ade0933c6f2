package statgen

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=statgenmock github.com/KirkDiggler/rpg-statgen/internal/engine/statgen Generator

// Priority method values.
const (
	PriorityMostValue    = 17
	PriorityLeastValue   = 9
	PriorityDefaultValue = 12
)

// HardcoreThreshold is the value at least one hardcore score must exceed.
const HardcoreThreshold = 12

// DefaultMaxHardcoreAttempts bounds the hardcore reroll loop. About one set
// in six has nothing above 12.
const DefaultMaxHardcoreAttempts = 10000

// Generator produces ability scores for each method.
type Generator interface {
	GeneratePriority(most, least entities.Attribute) (entities.AbilityScoreSet, error)
	GenerateHardcore() (entities.AbilityScoreSet, error)
	GenerateFourD6Pool() (entities.RolledPool, error)
}

// PoolGenerator rolls best-three-of-four pools. It is all a Session needs to
// reroll.
type PoolGenerator interface {
	GenerateFourD6Pool() (entities.RolledPool, error)
}

// GeneratorConfig configures a DiceGenerator
type GeneratorConfig struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller

	// MaxHardcoreAttempts defaults to DefaultMaxHardcoreAttempts
	MaxHardcoreAttempts int
}

// DiceGenerator implements Generator on an rpg-toolkit dice roller.
type DiceGenerator struct {
	roller      dice.Roller
	maxAttempts int
}

var _ Generator = (*DiceGenerator)(nil)

// NewGenerator creates a generator. A nil config uses the defaults.
func NewGenerator(cfg *GeneratorConfig) *DiceGenerator {
	g := &DiceGenerator{
		roller:      dice.DefaultRoller,
		maxAttempts: DefaultMaxHardcoreAttempts,
	}
	if cfg == nil {
		return g
	}
	if cfg.Roller != nil {
		g.roller = cfg.Roller
	}
	if cfg.MaxHardcoreAttempts > 0 {
		g.maxAttempts = cfg.MaxHardcoreAttempts
	}
	return g
}

// GeneratePriority builds the fixed priority set: most gets 17, least gets 9,
// the rest 12.
func GeneratePriority(most, least entities.Attribute) (entities.AbilityScoreSet, error) {
	if !most.Valid() {
		return nil, ErrInvalidInput("unknown most important attribute %q", most)
	}
	if !least.Valid() {
		return nil, ErrInvalidInput("unknown least important attribute %q", least)
	}
	if most == least {
		return nil, ErrInvalidInput("most and least important attributes must differ, both are %s", most.Title()).
			WithMeta("attribute", string(most))
	}

	scores := make(entities.AbilityScoreSet, entities.AttributeCount)
	for _, attr := range attributeSlots {
		scores[attr] = PriorityDefaultValue
	}
	scores[most] = PriorityMostValue
	scores[least] = PriorityLeastValue
	return scores, nil
}

// GeneratePriority implements Generator
func (g *DiceGenerator) GeneratePriority(most, least entities.Attribute) (entities.AbilityScoreSet, error) {
	return GeneratePriority(most, least)
}

// GenerateHardcore rolls 3d6 for each attribute in order, rerolling the whole
// set until some score exceeds HardcoreThreshold.
func (g *DiceGenerator) GenerateHardcore() (entities.AbilityScoreSet, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		values := make([]int, len(attributeSlots))
		for i := range attributeSlots {
			rolls, err := g.roller.RollN(3, 6)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll 3d6")
			}
			values[i] = sum(rolls)
		}

		if !anyAbove(values, HardcoreThreshold) {
			continue
		}

		scores := make(entities.AbilityScoreSet, len(attributeSlots))
		for i, attr := range attributeSlots {
			scores[attr] = values[i]
		}
		if attempt > 1 {
			slog.Debug("hardcore set rerolled", "attempts", attempt)
		}
		return scores, nil
	}

	return nil, errors.Internalf("no hardcore set exceeded %d after %d attempts", HardcoreThreshold, g.maxAttempts).
		WithReason(ReasonHardcoreAttemptsSpent)
}

// GenerateFourD6Pool rolls six best-three-of-four candidates.
func (g *DiceGenerator) GenerateFourD6Pool() (entities.RolledPool, error) {
	pool := make(entities.RolledPool, entities.PoolSize)
	for i := range pool {
		entry, err := g.rollBestThreeOfFour()
		if err != nil {
			return nil, err
		}
		pool[i] = entry
	}
	return pool, nil
}

func (g *DiceGenerator) rollBestThreeOfFour() (entities.PoolEntry, error) {
	rolls, err := g.roller.RollN(4, 6)
	if err != nil {
		return entities.PoolEntry{}, errors.Wrap(err, "failed to roll 4d6")
	}
	if len(rolls) != 4 {
		return entities.PoolEntry{}, errors.Internalf("roller returned %d dice for 4d6", len(rolls))
	}

	sorted := append([]int(nil), rolls...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	kept := sorted[:3]
	return entities.PoolEntry{
		Value:   sum(kept),
		Dice:    kept,
		Dropped: sorted[3:],
	}, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func anyAbove(values []int, threshold int) bool {
	for _, v := range values {
		if v > threshold {
			return true
		}
	}
	return false
}
