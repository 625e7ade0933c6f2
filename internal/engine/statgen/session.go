package statgen

import (
	"fmt"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

var attributeSlots = entities.Attributes()

// State of an assignment session
type State string

// States
const (
	StateOpen     State = "open"
	StateComplete State = "complete"
)

// Session assigns a best-three-of-four pool to the six attributes. It is not
// safe for concurrent use; callers serialise access.
type Session struct {
	pool      entities.RolledPool
	consumed  []bool
	picks     []int
	assigned  entities.AbilityScoreSet
	generator PoolGenerator
}

// SessionData is the persisted form of a session. Consumption and
// assignments are rebuilt by replaying Picks.
type SessionData struct {
	Pool  entities.RolledPool `json:"pool"`
	Picks []int               `json:"picks,omitempty"`
}

// NewSession opens a session on an existing pool. generator is used by
// Reroll and may be nil when rerolling is not needed.
func NewSession(pool entities.RolledPool, generator PoolGenerator) (*Session, error) {
	if err := pool.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pool")
	}

	s := &Session{
		pool:      pool.Clone(),
		generator: generator,
	}
	s.Reset()
	return s, nil
}

// StartSession rolls a fresh pool and opens a session on it.
func StartSession(generator PoolGenerator) (*Session, error) {
	if generator == nil {
		return nil, errors.InvalidArgument("pool generator is required")
	}

	pool, err := generator.GenerateFourD6Pool()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll pool")
	}
	return NewSession(pool, generator)
}

// RestoreSession rebuilds a session from its persisted form.
func RestoreSession(data SessionData, generator PoolGenerator) (*Session, error) {
	s, err := NewSession(data.Pool, generator)
	if err != nil {
		return nil, err
	}
	for _, position := range data.Picks {
		if err := s.Pick(position); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored session is inconsistent")
		}
	}
	return s, nil
}

// Data returns the persisted form of the session.
func (s *Session) Data() SessionData {
	return SessionData{
		Pool:  s.pool.Clone(),
		Picks: s.Picks(),
	}
}

// State returns open until all six attributes have a value.
func (s *Session) State() State {
	if s.NextSlotIndex() >= len(attributeSlots) {
		return StateComplete
	}
	return StateOpen
}

// NextSlotIndex is the index of the next attribute to receive a value, in
// [0,6].
func (s *Session) NextSlotIndex() int {
	return len(s.picks)
}

// NextAttribute returns the attribute the next pick will fill. ok is false
// once the session is complete.
func (s *Session) NextAttribute() (attr entities.Attribute, ok bool) {
	return entities.AttributeAt(s.NextSlotIndex())
}

// Pool returns a copy of the pool.
func (s *Session) Pool() entities.RolledPool {
	return s.pool.Clone()
}

// Consumed returns the consumed flag of every pool position.
func (s *Session) Consumed() []bool {
	return append([]bool(nil), s.consumed...)
}

// IsConsumed reports whether position has been picked. Out of range
// positions report false.
func (s *Session) IsConsumed(position int) bool {
	return position >= 0 && position < len(s.consumed) && s.consumed[position]
}

// Available returns the pool positions that can still be picked.
func (s *Session) Available() []int {
	out := make([]int, 0, len(s.consumed))
	for i, used := range s.consumed {
		if !used {
			out = append(out, i)
		}
	}
	return out
}

// Picks returns the consumed positions in pick order.
func (s *Session) Picks() []int {
	return append([]int(nil), s.picks...)
}

// Assigned returns a copy of the scores assigned so far.
func (s *Session) Assigned() entities.AbilityScoreSet {
	return s.assigned.Clone()
}

// Pick assigns the value at position to the next attribute.
func (s *Session) Pick(position int) error {
	attr, ok := s.NextAttribute()
	if !ok {
		return ErrSessionComplete()
	}
	if position < 0 || position >= len(s.pool) {
		return errors.InvalidArgumentf("pool position %d is out of range [0,%d]", position, len(s.pool)-1).
			WithReason(ReasonPositionOutOfRange).
			WithMeta("position", position)
	}
	if s.consumed[position] {
		return ErrSlotAlreadyConsumed(position)
	}

	s.consumed[position] = true
	s.picks = append(s.picks, position)
	s.assigned[attr] = s.pool[position].Value
	return nil
}

// Reset clears every pick and keeps the pool.
func (s *Session) Reset() {
	s.consumed = make([]bool, len(s.pool))
	s.picks = make([]int, 0, len(attributeSlots))
	s.assigned = make(entities.AbilityScoreSet, len(attributeSlots))
}

// Reroll replaces the pool with a fresh one and resets. On error the session
// is unchanged.
func (s *Session) Reroll() (entities.RolledPool, error) {
	if s.generator == nil {
		return nil, errors.FailedPrecondition("session has no pool generator")
	}

	pool, err := s.generator.GenerateFourD6Pool()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reroll pool")
	}
	if err := pool.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "generator returned an invalid pool")
	}

	s.pool = pool.Clone()
	s.Reset()
	return pool.Clone(), nil
}

// Commit returns the complete score set. It does not end the session;
// discarding it is up to the caller.
func (s *Session) Commit() (entities.AbilityScoreSet, error) {
	if s.State() != StateComplete {
		return nil, ErrIncompleteAssignment(s.NextSlotIndex())
	}
	return s.assigned.Clone(), nil
}

// Prompt is the instruction for the player in the current state.
func (s *Session) Prompt() string {
	return PromptFor(s.NextSlotIndex())
}

// PromptFor returns the instruction shown when nextSlotIndex attributes have
// been assigned.
func PromptFor(nextSlotIndex int) string {
	attr, ok := entities.AttributeAt(nextSlotIndex)
	if !ok {
		return "All abilities are assigned. Commit to keep them, reset to reassign or reroll for new values."
	}
	return fmt.Sprintf("Choose a value for %s.", attr.Title())
}
