package assignmentsession

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-statgen/internal/redis"
)

const (
	// Key pattern: assignment_session:{character_id}
	sessionKeyPrefix = "assignment_session:"

	// DefaultTTL applies when CreateInput.TTL is zero
	DefaultTTL = 30 * time.Minute

	// Error messages
	errSessionNil        = "session cannot be nil"
	errCharacterIDEmpty  = "character ID cannot be empty"
	errSessionNotFound   = "assignment session not found"
	errSessionHasExpired = "assignment session has expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for assignment sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if err := input.Pool.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pool")
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	session := &AssignmentSession{
		CharacterID: input.CharacterID,
		Pool:        input.Pool.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	if err := r.store(ctx, session, ttl); err != nil {
		return nil, errors.Wrapf(err, "failed to store session")
	}

	return &CreateOutput{
		Session: session,
	}, nil
}

// Get retrieves the session for a character
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := buildKey(input.CharacterID)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFound(errSessionNotFound).WithMeta("character_id", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session AssignmentSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTL and our clock can disagree by a little; trust the clock
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound(errSessionHasExpired).WithMeta("character_id", input.CharacterID)
	}

	return &GetOutput{
		Session: &session,
	}, nil
}

// Update replaces a session, keeping the remaining TTL
func (r *redisRepository) Update(ctx context.Context, session *AssignmentSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.CharacterID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.NotFound(errSessionHasExpired).WithMeta("character_id", session.CharacterID)
	}

	session.UpdatedAt = now
	if err := r.store(ctx, session, session.ExpiresAt.Sub(now)); err != nil {
		return errors.Wrapf(err, "failed to update session")
	}
	return nil
}

// Delete removes the session for a character
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{
		Deleted: removed > 0,
	}, nil
}

func (r *redisRepository) store(ctx context.Context, session *AssignmentSession, ttl time.Duration) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	return r.client.Set(ctx, buildKey(session.CharacterID), sessionJSON, ttl).Err()
}

func buildKey(characterID string) string {
	return sessionKeyPrefix + characterID
}
