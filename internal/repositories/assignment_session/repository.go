// Package assignmentsession stores in-progress ability-score assignment
// sessions, one per character, with a TTL
package assignmentsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=assignmentsessionmock github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session Repository

// AssignmentSession is the stored form of a best-three-of-four assignment.
// Consumed positions and assigned scores are derived by replaying Picks over
// Pool.
type AssignmentSession struct {
	// Character the scores will be committed to
	CharacterID string `json:"character_id"`

	// Rolled candidates in position order
	Pool entities.RolledPool `json:"pool"`

	// Consumed pool positions in pick order
	Picks []int `json:"picks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	CharacterID string
	Pool        entities.RolledPool
	TTL         time.Duration // How long the session should live
}

// CreateOutput contains the result of creating a session
type CreateOutput struct {
	Session *AssignmentSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	CharacterID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *AssignmentSession
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for assignment session storage
type Repository interface {
	// Create stores a new session, replacing any existing one for the
	// character
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the session for a character. Expired sessions are
	// reported as NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a session, keeping its original expiry
	Update(ctx context.Context, session *AssignmentSession) error

	// Delete removes the session for a character
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
