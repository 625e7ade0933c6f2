package assignmentsession_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-statgen/internal/pkg/clock/mock"
	assignmentsession "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session"
	"github.com/KirkDiggler/rpg-statgen/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      assignmentsession.Repository
	ctx       context.Context
	now       time.Time
	pool      entities.RolledPool
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.pool = entities.NewRolledPool(14, 9, 16, 11, 7, 18)

	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := assignmentsession.NewRedisRepository(&assignmentsession.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) create(ttl time.Duration) *assignmentsession.AssignmentSession {
	s.mockClock.EXPECT().Now().Return(s.now)
	out, err := s.repo.Create(s.ctx, assignmentsession.CreateInput{
		CharacterID: "char_1",
		Pool:        s.pool,
		TTL:         ttl,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := assignmentsession.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = assignmentsession.NewRedisRepository(&assignmentsession.Config{Clock: s.mockClock})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateSetsTTL() {
	session := s.create(10 * time.Minute)

	s.Equal("char_1", session.CharacterID)
	s.Equal(s.now.Add(10*time.Minute), session.ExpiresAt)
	s.Empty(session.Picks)
	s.Equal(10*time.Minute, s.mr.TTL("assignment_session:char_1"))
}

func (s *RedisRepositoryTestSuite) TestCreateDefaultTTL() {
	session := s.create(0)
	s.Equal(s.now.Add(assignmentsession.DefaultTTL), session.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesExisting() {
	first := s.create(time.Minute)
	s.Require().NotNil(first)

	s.mockClock.EXPECT().Now().Return(s.now.Add(time.Second))
	_, err := s.repo.Create(s.ctx, assignmentsession.CreateInput{
		CharacterID: "char_1",
		Pool:        entities.NewRolledPool(3, 3, 3, 3, 3, 3),
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.now.Add(2 * time.Second))
	got, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]int{3, 3, 3, 3, 3, 3}, got.Session.Pool.Values())
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, assignmentsession.CreateInput{Pool: s.pool})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, assignmentsession.CreateInput{
		CharacterID: "char_1",
		Pool:        entities.NewRolledPool(10),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetRoundTrip() {
	s.pool[0].Dice = []int{6, 5, 3}
	s.pool[0].Dropped = []int{1}
	s.create(time.Minute)

	s.mockClock.EXPECT().Now().Return(s.now.Add(30 * time.Second))
	got, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(s.pool, got.Session.Pool)
	s.Equal([]int{1}, got.Session.Pool[0].Dropped)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, assignmentsession.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpiredByClock() {
	s.create(time.Minute)

	s.mockClock.EXPECT().Now().Return(s.now.Add(2 * time.Minute))
	_, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("assignment_session:char_1"))
}

func (s *RedisRepositoryTestSuite) TestGetExpiredByRedis() {
	s.create(time.Minute)
	s.mr.FastForward(2 * time.Minute)

	_, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsRemainingTTL() {
	session := s.create(10 * time.Minute)
	session.Picks = []int{2, 0}

	s.mockClock.EXPECT().Now().Return(s.now.Add(4 * time.Minute))
	s.Require().NoError(s.repo.Update(s.ctx, session))
	s.Equal(6*time.Minute, s.mr.TTL("assignment_session:char_1"))

	s.mockClock.EXPECT().Now().Return(s.now.Add(5 * time.Minute))
	got, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]int{2, 0}, got.Session.Picks)
	s.Equal(s.now.Add(4*time.Minute), got.Session.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestUpdateExpired() {
	session := s.create(time.Minute)

	s.mockClock.EXPECT().Now().Return(s.now.Add(time.Minute))
	err := s.repo.Update(s.ctx, session)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateValidation() {
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, &assignmentsession.AssignmentSession{})))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.create(time.Minute)

	out, err := s.repo.Delete(s.ctx, assignmentsession.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, assignmentsession.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Delete(s.ctx, assignmentsession.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

// RedisFailureTestSuite covers storage failures with redismock.
type RedisFailureTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mock      redismock.ClientMock
	repo      assignmentsession.Repository
	ctx       context.Context
}

func TestRedisFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)

	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := assignmentsession.NewRedisRepository(&assignmentsession.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestGetStorageError() {
	s.mock.ExpectGet("assignment_session:char_1").SetErr(fmt.Errorf("connection reset"))

	_, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestDeleteStorageError() {
	s.mock.ExpectDel("assignment_session:char_1").SetErr(fmt.Errorf("connection reset"))

	_, err := s.repo.Delete(s.ctx, assignmentsession.DeleteInput{CharacterID: "char_1"})
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestGetCorruptRecord() {
	s.mock.ExpectGet("assignment_session:char_1").SetVal("[]")

	_, err := s.repo.Get(s.ctx, assignmentsession.GetInput{CharacterID: "char_1"})
	s.True(errors.IsInternal(err))
}
