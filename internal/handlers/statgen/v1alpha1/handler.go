// Package v1alpha1 serves the StatGenService gRPC API
package v1alpha1

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
	"github.com/KirkDiggler/rpg-statgen/internal/orchestrators/statgen"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	StatGenService statgen.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.StatGenService == nil {
		return errors.InvalidArgument("statgen service is required")
	}
	return nil
}

// Handler implements the StatGenService gRPC server
type Handler struct {
	statgenv1alpha1.UnimplementedStatGenServiceServer
	service statgen.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.StatGenService,
	}, nil
}

// ListMethods returns the generation method catalogue
func (h *Handler) ListMethods(
	ctx context.Context,
	_ *statgenv1alpha1.ListMethodsRequest,
) (*statgenv1alpha1.ListMethodsResponse, error) {
	out, err := h.service.ListMethods(ctx, &statgen.ListMethodsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	methods := make([]*statgenv1alpha1.MethodInfo, 0, len(out.Methods))
	for _, info := range out.Methods {
		methods = append(methods, convertMethodInfo(info))
	}

	return &statgenv1alpha1.ListMethodsResponse{Methods: methods}, nil
}

// CreateCharacter creates a character record without ability scores
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *statgenv1alpha1.CreateCharacterRequest,
) (*statgenv1alpha1.CreateCharacterResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", req.PlayerId, vb)
	errors.ValidateRequired("name", req.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateCharacter(ctx, &statgen.CreateCharacterInput{
		PlayerID: req.PlayerId,
		Name:     req.Name,
		ImageRef: req.ImageRef,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.CreateCharacterResponse{
		Character: convertCharacter(out.Character),
	}, nil
}

// GetCharacter loads a character record
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *statgenv1alpha1.GetCharacterRequest,
) (*statgenv1alpha1.GetCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetCharacter(ctx, &statgen.GetCharacterInput{CharacterID: req.CharacterId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.GetCharacterResponse{
		Character: convertCharacter(out.Character),
	}, nil
}

// GeneratePriority runs the priority method, applying the result when a
// character is given
func (h *Handler) GeneratePriority(
	ctx context.Context,
	req *statgenv1alpha1.GeneratePriorityRequest,
) (*statgenv1alpha1.GeneratePriorityResponse, error) {
	vb := errors.NewValidationBuilder()
	most, err := entities.ParseAttribute(req.Most)
	if err != nil {
		vb.InvalidField("most", errors.GetMessage(err))
	}
	least, err := entities.ParseAttribute(req.Least)
	if err != nil {
		vb.InvalidField("least", errors.GetMessage(err))
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GeneratePriority(ctx, &statgen.GeneratePriorityInput{
		CharacterID: req.CharacterId,
		Most:        most,
		Least:       least,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.GeneratePriorityResponse{
		Scores:    convertAbilityScores(out.Scores),
		Character: convertCharacter(out.Character),
	}, nil
}

// GenerateHardcore runs the hardcore method, applying the result when a
// character is given
func (h *Handler) GenerateHardcore(
	ctx context.Context,
	req *statgenv1alpha1.GenerateHardcoreRequest,
) (*statgenv1alpha1.GenerateHardcoreResponse, error) {
	out, err := h.service.GenerateHardcore(ctx, &statgen.GenerateHardcoreInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.GenerateHardcoreResponse{
		Scores:    convertAbilityScores(out.Scores),
		Character: convertCharacter(out.Character),
	}, nil
}

// StartAssignment rolls a pool and opens an assignment session
func (h *Handler) StartAssignment(
	ctx context.Context,
	req *statgenv1alpha1.StartAssignmentRequest,
) (*statgenv1alpha1.AssignmentResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", req.CharacterId, vb)
	if req.TtlSeconds < 0 {
		vb.InvalidField("ttl_seconds", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.StartAssignment(ctx, &statgen.StartAssignmentInput{
		CharacterID: req.CharacterId,
		TTL:         time.Duration(req.TtlSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.AssignmentResponse{Session: convertSession(out.Session)}, nil
}

// GetAssignment returns the current assignment session
func (h *Handler) GetAssignment(
	ctx context.Context,
	req *statgenv1alpha1.GetAssignmentRequest,
) (*statgenv1alpha1.AssignmentResponse, error) {
	return h.sessionCall(ctx, req.CharacterId, h.service.GetAssignment)
}

// PickValue assigns a pool value to the next attribute
func (h *Handler) PickValue(
	ctx context.Context,
	req *statgenv1alpha1.PickValueRequest,
) (*statgenv1alpha1.AssignmentResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.PickValue(ctx, &statgen.PickValueInput{
		CharacterID: req.CharacterId,
		Position:    int(req.Position),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.AssignmentResponse{Session: convertSession(out.Session)}, nil
}

// ResetAssignment clears every pick and keeps the pool
func (h *Handler) ResetAssignment(
	ctx context.Context,
	req *statgenv1alpha1.ResetAssignmentRequest,
) (*statgenv1alpha1.AssignmentResponse, error) {
	return h.sessionCall(ctx, req.CharacterId, h.service.ResetAssignment)
}

// RerollAssignment replaces the pool and clears every pick
func (h *Handler) RerollAssignment(
	ctx context.Context,
	req *statgenv1alpha1.RerollAssignmentRequest,
) (*statgenv1alpha1.AssignmentResponse, error) {
	return h.sessionCall(ctx, req.CharacterId, h.service.RerollAssignment)
}

// CommitAssignment applies a complete assignment to the character
func (h *Handler) CommitAssignment(
	ctx context.Context,
	req *statgenv1alpha1.CommitAssignmentRequest,
) (*statgenv1alpha1.CommitAssignmentResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CommitAssignment(ctx, &statgen.AssignmentInput{CharacterID: req.CharacterId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.CommitAssignmentResponse{
		Scores:    convertAbilityScores(out.Scores),
		Character: convertCharacter(out.Character),
	}, nil
}

// DiscardAssignment drops the session without applying anything
func (h *Handler) DiscardAssignment(
	ctx context.Context,
	req *statgenv1alpha1.DiscardAssignmentRequest,
) (*statgenv1alpha1.DiscardAssignmentResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.DiscardAssignment(ctx, &statgen.AssignmentInput{CharacterID: req.CharacterId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.DiscardAssignmentResponse{Discarded: out.Discarded}, nil
}

type sessionOp func(context.Context, *statgen.AssignmentInput) (*statgen.SessionOutput, error)

func (h *Handler) sessionCall(
	ctx context.Context,
	characterID string,
	op sessionOp,
) (*statgenv1alpha1.AssignmentResponse, error) {
	if err := requireCharacterID(characterID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := op(ctx, &statgen.AssignmentInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &statgenv1alpha1.AssignmentResponse{Session: convertSession(out.Session)}, nil
}

func requireCharacterID(id string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", id, vb)
	return vb.Build()
}
