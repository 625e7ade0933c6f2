package statgen_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	generatormock "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen/mock"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
	"github.com/KirkDiggler/rpg-statgen/internal/orchestrators/statgen"
	mockclock "github.com/KirkDiggler/rpg-statgen/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-statgen/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session"
	sessionmock "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session/mock"
	characterrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-statgen/internal/repositories/character/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharRepo  *charactermock.MockRepository
	mockSessRepo  *sessionmock.MockRepository
	mockGenerator *generatormock.MockGenerator
	mockClock     *mockclock.MockClock
	bus           events.EventBus
	published     map[string][]events.Event
	orchestrator  statgen.Service
	ctx           context.Context

	now       time.Time
	character *entities.Character
	pool      entities.RolledPool
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockSessRepo = sessionmock.NewMockRepository(s.ctrl)
	s.mockGenerator = generatormock.NewMockGenerator(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()

	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	s.bus = events.NewBus()
	s.published = make(map[string][]events.Event)
	for _, eventType := range []string{
		statgen.EventPoolRolled,
		statgen.EventValuePicked,
		statgen.EventAssignmentReset,
		statgen.EventScoresApplied,
	} {
		s.bus.SubscribeFunc(eventType, 100, func(_ context.Context, e events.Event) error {
			s.published[eventType] = append(s.published[eventType], e)
			return nil
		})
	}

	orch, err := statgen.NewOrchestrator(&statgen.Config{
		CharacterRepo: s.mockCharRepo,
		SessionRepo:   s.mockSessRepo,
		Generator:     s.mockGenerator,
		IDGenerator:   idgen.NewSequential("char"),
		EventBus:      s.bus,
		Clock:         s.mockClock,
		SessionTTL:    10 * time.Minute,
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.character = &entities.Character{
		ID:        "char_1",
		PlayerID:  "player_1",
		Name:      "Brienne",
		CreatedAt: s.now.Add(-time.Hour).Unix(),
		UpdatedAt: s.now.Add(-time.Hour).Unix(),
	}
	s.pool = entities.NewRolledPool(14, 9, 16, 11, 7, 18)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) storedSession(picks ...int) *sessionrepo.AssignmentSession {
	return &sessionrepo.AssignmentSession{
		CharacterID: s.character.ID,
		Pool:        s.pool.Clone(),
		Picks:       picks,
		CreatedAt:   s.now.Add(-time.Minute),
		UpdatedAt:   s.now.Add(-time.Minute),
		ExpiresAt:   s.now.Add(9 * time.Minute),
	}
}

func (s *OrchestratorTestSuite) expectSession(stored *sessionrepo.AssignmentSession) {
	s.mockSessRepo.EXPECT().
		Get(s.ctx, sessionrepo.GetInput{CharacterID: s.character.ID}).
		Return(&sessionrepo.GetOutput{Session: stored}, nil)
}

func (s *OrchestratorTestSuite) expectApply(method entities.Method) {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: s.character.ID}).
		Return(&characterrepo.GetOutput{Character: s.character}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal(method, input.Character.ScoreMethod)
			s.Equal(s.now.Unix(), input.Character.ScoresSetAt)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := statgen.NewOrchestrator(&statgen.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "CharacterRepo")
	s.Contains(err.Error(), "Generator")

	_, err = statgen.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestListMethods() {
	out, err := s.orchestrator.ListMethods(s.ctx, &statgen.ListMethodsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Methods, 3)
	s.Equal(entities.MethodPriority, out.Methods[0].Method)
	s.True(out.Methods[2].RequiresAssignment)
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("char_1", input.Character.ID)
			s.Equal("Tyrion", input.Character.Name)
			s.Equal("portraits/tyrion.png", input.Character.ImageRef)
			s.Equal(s.now.Unix(), input.Character.CreatedAt)
			s.False(input.Character.HasAbilityScores())
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})

	out, err := s.orchestrator.CreateCharacter(s.ctx, &statgen.CreateCharacterInput{
		PlayerID: "player_1",
		Name:     "Tyrion",
		ImageRef: "portraits/tyrion.png",
	})
	s.Require().NoError(err)
	s.Equal("char_1", out.Character.ID)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Validation() {
	_, err := s.orchestrator.CreateCharacter(s.ctx, &statgen.CreateCharacterInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "PlayerID")
	s.Contains(err.Error(), "Name")
}

func (s *OrchestratorTestSuite) TestGetCharacter_NotFound() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("character with ID missing not found"))

	_, err := s.orchestrator.GetCharacter(s.ctx, &statgen.GetCharacterInput{CharacterID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGeneratePriority_WithoutCharacter() {
	scores, err := statgenengine.GeneratePriority(entities.AttributeDexterity, entities.AttributeCharisma)
	s.Require().NoError(err)
	s.mockGenerator.EXPECT().
		GeneratePriority(entities.AttributeDexterity, entities.AttributeCharisma).
		Return(scores, nil)

	out, err := s.orchestrator.GeneratePriority(s.ctx, &statgen.GeneratePriorityInput{
		Most:  entities.AttributeDexterity,
		Least: entities.AttributeCharisma,
	})
	s.Require().NoError(err)
	s.Nil(out.Character)
	s.Equal(17, out.Scores[entities.AttributeDexterity])
	s.Empty(s.published[statgen.EventScoresApplied])
}

func (s *OrchestratorTestSuite) TestGeneratePriority_AppliesToCharacter() {
	scores, err := statgenengine.GeneratePriority(entities.AttributeStrength, entities.AttributeIntelligence)
	s.Require().NoError(err)
	s.mockGenerator.EXPECT().
		GeneratePriority(entities.AttributeStrength, entities.AttributeIntelligence).
		Return(scores, nil)
	s.expectApply(entities.MethodPriority)

	out, err := s.orchestrator.GeneratePriority(s.ctx, &statgen.GeneratePriorityInput{
		CharacterID: s.character.ID,
		Most:        entities.AttributeStrength,
		Least:       entities.AttributeIntelligence,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Character)
	s.Equal(scores, out.Character.AbilityScores)

	s.Require().Len(s.published[statgen.EventScoresApplied], 1)
	event := s.published[statgen.EventScoresApplied][0]
	s.Equal(s.character.ID, event.Source().GetID())
	method, ok := event.Context().Get(statgen.EventKeyMethod)
	s.True(ok)
	s.Equal(string(entities.MethodPriority), method)
}

func (s *OrchestratorTestSuite) TestGeneratePriority_InvalidInputWritesNothing() {
	s.mockGenerator.EXPECT().
		GeneratePriority(entities.AttributeWisdom, entities.AttributeWisdom).
		Return(nil, statgenengine.ErrInvalidInput("most and least important attributes must differ"))

	_, err := s.orchestrator.GeneratePriority(s.ctx, &statgen.GeneratePriorityInput{
		CharacterID: s.character.ID,
		Most:        entities.AttributeWisdom,
		Least:       entities.AttributeWisdom,
	})
	s.Require().Error(err)
	s.True(statgenengine.IsInvalidInput(err))
}

func (s *OrchestratorTestSuite) TestGenerateHardcore_AppliesToCharacter() {
	scores := entities.AbilityScoreSet{
		entities.AttributeStrength:     10,
		entities.AttributeDexterity:    13,
		entities.AttributeConstitution: 8,
		entities.AttributeIntelligence: 11,
		entities.AttributeWisdom:       9,
		entities.AttributeCharisma:     12,
	}
	s.mockGenerator.EXPECT().GenerateHardcore().Return(scores, nil)
	s.expectApply(entities.MethodHardcore)

	out, err := s.orchestrator.GenerateHardcore(s.ctx, &statgen.GenerateHardcoreInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
	s.Equal(scores, out.Scores)
	s.Equal(entities.MethodHardcore, out.Character.ScoreMethod)
}

func (s *OrchestratorTestSuite) TestGenerateHardcore_UpdateFails() {
	scores := entities.AbilityScoreSet{
		entities.AttributeStrength:     15,
		entities.AttributeDexterity:    10,
		entities.AttributeConstitution: 10,
		entities.AttributeIntelligence: 10,
		entities.AttributeWisdom:       10,
		entities.AttributeCharisma:     10,
	}
	s.mockGenerator.EXPECT().GenerateHardcore().Return(scores, nil)
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: s.character.ID}).
		Return(&characterrepo.GetOutput{Character: s.character}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis unavailable"))

	_, err := s.orchestrator.GenerateHardcore(s.ctx, &statgen.GenerateHardcoreInput{CharacterID: s.character.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Empty(s.published[statgen.EventScoresApplied])
}

func (s *OrchestratorTestSuite) TestStartAssignment() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: s.character.ID}).
		Return(&characterrepo.GetOutput{Character: s.character}, nil)
	s.mockGenerator.EXPECT().GenerateFourD6Pool().Return(s.pool, nil)
	s.mockSessRepo.EXPECT().
		Create(s.ctx, sessionrepo.CreateInput{
			CharacterID: s.character.ID,
			Pool:        s.pool,
			TTL:         10 * time.Minute,
		}).
		Return(&sessionrepo.CreateOutput{Session: s.storedSession()}, nil)

	out, err := s.orchestrator.StartAssignment(s.ctx, &statgen.StartAssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)

	view := out.Session
	s.Equal(s.pool.Values(), view.Pool.Values())
	s.Equal(make([]bool, 6), view.Consumed)
	s.Equal(entities.AttributeStrength, view.NextAttribute)
	s.Equal(statgenengine.StateOpen, view.State)
	s.Equal("Choose a value for Strength.", view.Prompt)
	s.Equal(s.now.Add(9*time.Minute), view.ExpiresAt)

	s.Require().Len(s.published[statgen.EventPoolRolled], 1)
	pool, ok := s.published[statgen.EventPoolRolled][0].Context().Get(statgen.EventKeyPool)
	s.True(ok)
	s.Equal(s.pool.Values(), pool)
}

func (s *OrchestratorTestSuite) TestStartAssignment_UnknownCharacter() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: s.character.ID}).
		Return(nil, errors.NotFound("character with ID char_1 not found"))

	_, err := s.orchestrator.StartAssignment(s.ctx, &statgen.StartAssignmentInput{CharacterID: s.character.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPickValue() {
	s.expectSession(s.storedSession(2))
	s.mockSessRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *sessionrepo.AssignmentSession) error {
			s.Equal([]int{2, 5}, stored.Picks)
			return nil
		})

	out, err := s.orchestrator.PickValue(s.ctx, &statgen.PickValueInput{CharacterID: s.character.ID, Position: 5})
	s.Require().NoError(err)

	view := out.Session
	s.Equal([]int{2, 5}, view.Picks)
	s.Equal(16, view.Assigned[entities.AttributeStrength])
	s.Equal(18, view.Assigned[entities.AttributeDexterity])
	s.Equal(entities.AttributeConstitution, view.NextAttribute)
	s.True(view.Consumed[5])

	s.Require().Len(s.published[statgen.EventValuePicked], 1)
	event := s.published[statgen.EventValuePicked][0]
	attr, _ := event.Context().Get(statgen.EventKeyAttribute)
	value, _ := event.Context().Get(statgen.EventKeyValue)
	s.Equal(string(entities.AttributeDexterity), attr)
	s.Equal(18, value)
}

func (s *OrchestratorTestSuite) TestPickValue_ConsumedSlotStoresNothing() {
	s.expectSession(s.storedSession(2))

	_, err := s.orchestrator.PickValue(s.ctx, &statgen.PickValueInput{CharacterID: s.character.ID, Position: 2})
	s.Require().Error(err)
	s.True(statgenengine.IsSlotAlreadyConsumed(err))
	s.Empty(s.published[statgen.EventValuePicked])
}

func (s *OrchestratorTestSuite) TestPickValue_SessionComplete() {
	s.expectSession(s.storedSession(0, 1, 2, 3, 4, 5))

	_, err := s.orchestrator.PickValue(s.ctx, &statgen.PickValueInput{CharacterID: s.character.ID, Position: 0})
	s.Require().Error(err)
	s.True(statgenengine.IsSessionComplete(err))
}

func (s *OrchestratorTestSuite) TestPickValue_ExpiredSession() {
	s.mockSessRepo.EXPECT().
		Get(s.ctx, sessionrepo.GetInput{CharacterID: s.character.ID}).
		Return(nil, errors.NotFound("session has expired"))

	_, err := s.orchestrator.PickValue(s.ctx, &statgen.PickValueInput{CharacterID: s.character.ID, Position: 0})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResetAssignment() {
	s.expectSession(s.storedSession(0, 1, 2))
	s.mockSessRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *sessionrepo.AssignmentSession) error {
			s.Empty(stored.Picks)
			s.Equal(s.pool.Values(), stored.Pool.Values())
			return nil
		})

	out, err := s.orchestrator.ResetAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
	s.Empty(out.Session.Assigned)
	s.Equal(entities.AttributeStrength, out.Session.NextAttribute)
	s.Len(s.published[statgen.EventAssignmentReset], 1)
}

func (s *OrchestratorTestSuite) TestRerollAssignment() {
	fresh := entities.NewRolledPool(8, 12, 15, 10, 13, 17)
	s.expectSession(s.storedSession(0, 1))
	s.mockGenerator.EXPECT().GenerateFourD6Pool().Return(fresh, nil)
	s.mockSessRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	out, err := s.orchestrator.RerollAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
	s.Equal(fresh.Values(), out.Session.Pool.Values())
	s.Empty(out.Session.Picks)
	s.Len(s.published[statgen.EventPoolRolled], 1)
}

func (s *OrchestratorTestSuite) TestRerollAssignment_GeneratorFailureStoresNothing() {
	s.expectSession(s.storedSession(0))
	s.mockGenerator.EXPECT().GenerateFourD6Pool().Return(nil, errors.Internal("dice failed"))

	_, err := s.orchestrator.RerollAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestCommitAssignment() {
	s.expectSession(s.storedSession(2, 5, 0, 3, 1, 4))
	s.expectApply(entities.MethodBestThreeOfFour)
	s.mockSessRepo.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{CharacterID: s.character.ID}).
		Return(&sessionrepo.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.CommitAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)

	expected := entities.AbilityScoreSet{
		entities.AttributeStrength:     16,
		entities.AttributeDexterity:    18,
		entities.AttributeConstitution: 14,
		entities.AttributeIntelligence: 11,
		entities.AttributeWisdom:       9,
		entities.AttributeCharisma:     7,
	}
	s.Equal(expected, out.Scores)
	s.Equal(expected, out.Character.AbilityScores)
	s.Len(s.published[statgen.EventScoresApplied], 1)
}

func (s *OrchestratorTestSuite) TestCommitAssignment_Incomplete() {
	s.expectSession(s.storedSession(2, 5, 0))

	_, err := s.orchestrator.CommitAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().Error(err)
	s.True(statgenengine.IsIncompleteAssignment(err))
}

func (s *OrchestratorTestSuite) TestCommitAssignment_DeleteFailureStillCommits() {
	s.expectSession(s.storedSession(0, 1, 2, 3, 4, 5))
	s.expectApply(entities.MethodBestThreeOfFour)
	s.mockSessRepo.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{CharacterID: s.character.ID}).
		Return(nil, errors.Internal("redis unavailable"))

	out, err := s.orchestrator.CommitAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
	s.Equal(14, out.Scores[entities.AttributeStrength])
}

func (s *OrchestratorTestSuite) TestCommitAssignment_CorruptSession() {
	s.expectSession(s.storedSession(0, 0))

	_, err := s.orchestrator.CommitAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestDiscardAssignment() {
	s.mockSessRepo.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{CharacterID: s.character.ID}).
		Return(&sessionrepo.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.DiscardAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
	s.True(out.Discarded)
}

func (s *OrchestratorTestSuite) TestRequiresCharacterID() {
	_, err := s.orchestrator.GetAssignment(s.ctx, &statgen.AssignmentInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.DiscardAssignment(s.ctx, &statgen.AssignmentInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.StartAssignment(s.ctx, &statgen.StartAssignmentInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFailingSubscriberDoesNotFailOperation() {
	s.bus.SubscribeFunc(statgen.EventAssignmentReset, 10, func(_ context.Context, _ events.Event) error {
		return errors.Internal("subscriber exploded")
	})
	s.expectSession(s.storedSession(1))
	s.mockSessRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	_, err := s.orchestrator.ResetAssignment(s.ctx, &statgen.AssignmentInput{CharacterID: s.character.ID})
	s.Require().NoError(err)
}
