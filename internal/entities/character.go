package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// EntityTypeCharacter is the rpg-toolkit entity type of a Character.
const EntityTypeCharacter = "character"

// Character is the record ability scores are committed to. Name and image
// belong to the surrounding application; the statgen engine only ever calls
// ApplyAbilityScores.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	ImageRef string `json:"image_ref,omitempty"`

	AbilityScores AbilityScoreSet `json:"ability_scores,omitempty"`
	ScoreMethod   Method          `json:"score_method,omitempty"`
	ScoresSetAt   int64           `json:"scores_set_at,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

var _ core.Entity = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// HasAbilityScores reports whether scores were ever applied.
func (c *Character) HasAbilityScores() bool {
	return len(c.AbilityScores) > 0
}

// ApplyAbilityScores replaces all six scores at once. An invalid set leaves
// the character untouched.
func (c *Character) ApplyAbilityScores(scores AbilityScoreSet, method Method, at time.Time) error {
	if err := scores.Validate(); err != nil {
		return errors.Wrap(err, "invalid ability scores")
	}
	if !method.Valid() {
		return errors.InvalidArgumentf("unknown generation method %q", method)
	}

	c.AbilityScores = scores.Clone()
	c.ScoreMethod = method
	c.ScoresSetAt = at.Unix()
	c.UpdatedAt = at.Unix()
	return nil
}
