package statgen

import (
	"time"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
)

// ListMethodsInput defines the request for listing generation methods
type ListMethodsInput struct{}

// ListMethodsOutput defines the response for listing generation methods
type ListMethodsOutput struct {
	Methods []entities.MethodInfo
}

// CreateCharacterInput defines the request for creating a character record
type CreateCharacterInput struct {
	PlayerID string
	Name     string
	ImageRef string
}

// CreateCharacterOutput defines the response for creating a character record
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for loading a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for loading a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// GeneratePriorityInput defines the request for the priority method. When
// CharacterID is set the scores are applied to that character.
type GeneratePriorityInput struct {
	CharacterID string
	Most        entities.Attribute
	Least       entities.Attribute
}

// GeneratePriorityOutput defines the response for the priority method
type GeneratePriorityOutput struct {
	Scores    entities.AbilityScoreSet
	Character *entities.Character // nil unless CharacterID was set
}

// GenerateHardcoreInput defines the request for the hardcore method. When
// CharacterID is set the scores are applied to that character.
type GenerateHardcoreInput struct {
	CharacterID string
}

// GenerateHardcoreOutput defines the response for the hardcore method
type GenerateHardcoreOutput struct {
	Scores    entities.AbilityScoreSet
	Character *entities.Character // nil unless CharacterID was set
}

// StartAssignmentInput defines the request for opening an assignment session
type StartAssignmentInput struct {
	CharacterID string
	TTL         time.Duration // zero uses the configured session TTL
}

// AssignmentInput identifies the assignment session of a character
type AssignmentInput struct {
	CharacterID string
}

// PickValueInput defines the request for assigning a pool value
type PickValueInput struct {
	CharacterID string
	Position    int
}

// SessionOutput is returned by every operation that leaves a session open
type SessionOutput struct {
	Session *SessionView
}

// CommitAssignmentOutput defines the response for committing a session
type CommitAssignmentOutput struct {
	Scores    entities.AbilityScoreSet
	Character *entities.Character
}

// DiscardAssignmentOutput defines the response for discarding a session
type DiscardAssignmentOutput struct {
	Discarded bool
}

// SessionView is everything a presentation layer needs to render an
// assignment session.
type SessionView struct {
	CharacterID   string
	Pool          entities.RolledPool
	Consumed      []bool
	Picks         []int
	Assigned      entities.AbilityScoreSet
	NextAttribute entities.Attribute // empty once complete
	State         statgenengine.State
	Prompt        string
	ExpiresAt     time.Time
}

func newSessionView(characterID string, session *statgenengine.Session, expiresAt time.Time) *SessionView {
	next, _ := session.NextAttribute()
	return &SessionView{
		CharacterID:   characterID,
		Pool:          session.Pool(),
		Consumed:      session.Consumed(),
		Picks:         session.Picks(),
		Assigned:      session.Assigned(),
		NextAttribute: next,
		State:         session.State(),
		Prompt:        session.Prompt(),
		ExpiresAt:     expiresAt,
	}
}
