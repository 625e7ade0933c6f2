// Package statgen implements the ability score orchestrator. It owns the
// character and assignment session repositories and drives the statgen engine.
package statgen

//go:generate mockgen -destination=mock/mock_service.go -package=statgenmock github.com/KirkDiggler/rpg-statgen/internal/orchestrators/statgen Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session"
	characterrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/character"
)

// Service defines the ability score operations
type Service interface {
	ListMethods(ctx context.Context, input *ListMethodsInput) (*ListMethodsOutput, error)

	// Character records
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// One-shot generation
	GeneratePriority(ctx context.Context, input *GeneratePriorityInput) (*GeneratePriorityOutput, error)
	GenerateHardcore(ctx context.Context, input *GenerateHardcoreInput) (*GenerateHardcoreOutput, error)

	// Best-three-of-four assignment
	StartAssignment(ctx context.Context, input *StartAssignmentInput) (*SessionOutput, error)
	GetAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error)
	PickValue(ctx context.Context, input *PickValueInput) (*SessionOutput, error)
	ResetAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error)
	RerollAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error)
	CommitAssignment(ctx context.Context, input *AssignmentInput) (*CommitAssignmentOutput, error)
	DiscardAssignment(ctx context.Context, input *AssignmentInput) (*DiscardAssignmentOutput, error)
}

// Config holds the dependencies for the orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SessionRepo   sessionrepo.Repository
	Generator     statgenengine.Generator
	IDGenerator   idgen.Generator

	// Optional
	EventBus   events.EventBus
	Clock      clock.Clock
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	sessionRepo   sessionrepo.Repository
	generator     statgenengine.Generator
	idGen         idgen.Generator
	eventBus      events.EventBus
	clock         clock.Clock
	sessionTTL    time.Duration
}

// NewOrchestrator creates a new orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = sessionrepo.DefaultTTL
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		sessionRepo:   cfg.SessionRepo,
		generator:     cfg.Generator,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		clock:         clk,
		sessionTTL:    ttl,
	}, nil
}

func (o *orchestrator) ListMethods(_ context.Context, _ *ListMethodsInput) (*ListMethodsOutput, error) {
	return &ListMethodsOutput{Methods: entities.Methods()}, nil
}

func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("Name", input.Name, vb)
	errors.ValidateMaxLength("Name", input.Name, 64, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	char := &entities.Character{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Name:      input.Name,
		ImageRef:  input.ImageRef,
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", out.Character.ID,
		"player_id", out.Character.PlayerID,
	)

	return &CreateCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	return &GetCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) GeneratePriority(
	ctx context.Context,
	input *GeneratePriorityInput,
) (*GeneratePriorityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scores, err := o.generator.GeneratePriority(input.Most, input.Least)
	if err != nil {
		return nil, err
	}

	output := &GeneratePriorityOutput{Scores: scores}
	if input.CharacterID == "" {
		return output, nil
	}

	output.Character, err = o.applyScores(ctx, input.CharacterID, scores, entities.MethodPriority)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (o *orchestrator) GenerateHardcore(
	ctx context.Context,
	input *GenerateHardcoreInput,
) (*GenerateHardcoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scores, err := o.generator.GenerateHardcore()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate hardcore scores")
	}

	output := &GenerateHardcoreOutput{Scores: scores}
	if input.CharacterID == "" {
		return output, nil
	}

	output.Character, err = o.applyScores(ctx, input.CharacterID, scores, entities.MethodHardcore)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (o *orchestrator) StartAssignment(ctx context.Context, input *StartAssignmentInput) (*SessionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument("TTL must not be negative")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	session, err := statgenengine.StartSession(o.generator)
	if err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = o.sessionTTL
	}

	created, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{
		CharacterID: input.CharacterID,
		Pool:        session.Pool(),
		TTL:         ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store assignment session")
	}

	slog.InfoContext(ctx, "assignment session started",
		"character_id", input.CharacterID,
		"pool", session.Pool().Values(),
		"expires_at", created.Session.ExpiresAt,
	)
	o.publish(ctx, EventPoolRolled, characterRef(input.CharacterID), map[string]any{
		EventKeyMethod: string(entities.MethodBestThreeOfFour),
		EventKeyPool:   session.Pool().Values(),
	})

	return &SessionOutput{
		Session: newSessionView(input.CharacterID, session, created.Session.ExpiresAt),
	}, nil
}

func (o *orchestrator) GetAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error) {
	stored, session, err := o.loadSession(ctx, input)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{
		Session: newSessionView(stored.CharacterID, session, stored.ExpiresAt),
	}, nil
}

func (o *orchestrator) PickValue(ctx context.Context, input *PickValueInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	stored, session, err := o.loadSession(ctx, &AssignmentInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	attr, _ := session.NextAttribute()
	if err := session.Pick(input.Position); err != nil {
		return nil, err
	}

	if err := o.saveSession(ctx, stored, session); err != nil {
		return nil, err
	}

	value := session.Pool()[input.Position].Value
	slog.DebugContext(ctx, "pool value picked",
		"character_id", stored.CharacterID,
		"position", input.Position,
		"attribute", attr,
		"value", value,
	)
	o.publish(ctx, EventValuePicked, characterRef(stored.CharacterID), map[string]any{
		EventKeyPosition:  input.Position,
		EventKeyAttribute: string(attr),
		EventKeyValue:     value,
	})

	return &SessionOutput{
		Session: newSessionView(stored.CharacterID, session, stored.ExpiresAt),
	}, nil
}

func (o *orchestrator) ResetAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error) {
	stored, session, err := o.loadSession(ctx, input)
	if err != nil {
		return nil, err
	}

	session.Reset()
	if err := o.saveSession(ctx, stored, session); err != nil {
		return nil, err
	}

	o.publish(ctx, EventAssignmentReset, characterRef(stored.CharacterID), nil)

	return &SessionOutput{
		Session: newSessionView(stored.CharacterID, session, stored.ExpiresAt),
	}, nil
}

func (o *orchestrator) RerollAssignment(ctx context.Context, input *AssignmentInput) (*SessionOutput, error) {
	stored, session, err := o.loadSession(ctx, input)
	if err != nil {
		return nil, err
	}

	pool, err := session.Reroll()
	if err != nil {
		return nil, err
	}
	if err := o.saveSession(ctx, stored, session); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "assignment pool rerolled",
		"character_id", stored.CharacterID,
		"pool", pool.Values(),
	)
	o.publish(ctx, EventPoolRolled, characterRef(stored.CharacterID), map[string]any{
		EventKeyMethod: string(entities.MethodBestThreeOfFour),
		EventKeyPool:   pool.Values(),
	})

	return &SessionOutput{
		Session: newSessionView(stored.CharacterID, session, stored.ExpiresAt),
	}, nil
}

func (o *orchestrator) CommitAssignment(
	ctx context.Context,
	input *AssignmentInput,
) (*CommitAssignmentOutput, error) {
	stored, session, err := o.loadSession(ctx, input)
	if err != nil {
		return nil, err
	}

	scores, err := session.Commit()
	if err != nil {
		return nil, err
	}

	char, err := o.applyScores(ctx, stored.CharacterID, scores, entities.MethodBestThreeOfFour)
	if err != nil {
		return nil, err
	}

	// Scores are already applied; a stale session only lingers until its TTL
	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{CharacterID: stored.CharacterID}); err != nil {
		slog.WarnContext(ctx, "failed to discard committed session",
			"character_id", stored.CharacterID,
			"error", err,
		)
	}

	return &CommitAssignmentOutput{
		Scores:    scores,
		Character: char,
	}, nil
}

func (o *orchestrator) DiscardAssignment(
	ctx context.Context,
	input *AssignmentInput,
) (*DiscardAssignmentOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to discard assignment session")
	}

	if out.Deleted {
		slog.InfoContext(ctx, "assignment session discarded", "character_id", input.CharacterID)
	}

	return &DiscardAssignmentOutput{Discarded: out.Deleted}, nil
}

func (o *orchestrator) loadSession(
	ctx context.Context,
	input *AssignmentInput,
) (*sessionrepo.AssignmentSession, *statgenengine.Session, error) {
	if input == nil || input.CharacterID == "" {
		return nil, nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load assignment session")
	}

	session, err := statgenengine.RestoreSession(statgenengine.SessionData{
		Pool:  out.Session.Pool,
		Picks: out.Session.Picks,
	}, o.generator)
	if err != nil {
		return nil, nil, err
	}

	return out.Session, session, nil
}

func (o *orchestrator) saveSession(
	ctx context.Context,
	stored *sessionrepo.AssignmentSession,
	session *statgenengine.Session,
) error {
	data := session.Data()
	stored.Pool = data.Pool
	stored.Picks = data.Picks

	if err := o.sessionRepo.Update(ctx, stored); err != nil {
		return errors.Wrap(err, "failed to save assignment session")
	}
	return nil
}

// applyScores is the only path that changes a character's scores.
func (o *orchestrator) applyScores(
	ctx context.Context,
	characterID string,
	scores entities.AbilityScoreSet,
	method entities.Method,
) (*entities.Character, error) {
	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	char := got.Character
	if err := char.ApplyAbilityScores(scores, method, o.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save ability scores for %s", characterID)
	}

	slog.InfoContext(ctx, "ability scores applied",
		"character_id", characterID,
		"method", method,
		"scores", scores.String(),
	)
	o.publish(ctx, EventScoresApplied, updated.Character, map[string]any{
		EventKeyMethod: string(method),
		EventKeyScores: scores.Clone(),
	})

	return updated.Character, nil
}

func characterRef(id string) *entities.Character {
	return &entities.Character{ID: id}
}
