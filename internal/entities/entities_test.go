package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

type EntitiesTestSuite struct {
	suite.Suite
	fullSet entities.AbilityScoreSet
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) SetupTest() {
	s.fullSet = entities.AbilityScoreSet{
		entities.AttributeStrength:     14,
		entities.AttributeDexterity:    16,
		entities.AttributeConstitution: 9,
		entities.AttributeIntelligence: 11,
		entities.AttributeWisdom:       7,
		entities.AttributeCharisma:     18,
	}
}

func (s *EntitiesTestSuite) TestAttributeOrder() {
	s.Equal([]entities.Attribute{
		entities.AttributeStrength,
		entities.AttributeDexterity,
		entities.AttributeConstitution,
		entities.AttributeIntelligence,
		entities.AttributeWisdom,
		entities.AttributeCharisma,
	}, entities.Attributes())

	attr, ok := entities.AttributeAt(5)
	s.True(ok)
	s.Equal(entities.AttributeCharisma, attr)

	_, ok = entities.AttributeAt(6)
	s.False(ok)

	s.Equal(1, entities.AttributeDexterity.Index())
	s.Equal(-1, entities.Attribute("dexteriy").Index())
}

func (s *EntitiesTestSuite) TestAttributesReturnsCopy() {
	attrs := entities.Attributes()
	attrs[0] = entities.AttributeCharisma
	s.Equal(entities.AttributeStrength, entities.Attributes()[0])
}

func (s *EntitiesTestSuite) TestParseAttribute() {
	testCases := []struct {
		in       string
		expected entities.Attribute
	}{
		{"strength", entities.AttributeStrength},
		{"DEX", entities.AttributeDexterity},
		{" Constitution ", entities.AttributeConstitution},
		{"wis", entities.AttributeWisdom},
	}
	for _, tc := range testCases {
		s.Run(tc.in, func() {
			attr, err := entities.ParseAttribute(tc.in)
			s.Require().NoError(err)
			s.Equal(tc.expected, attr)
		})
	}

	_, err := entities.ParseAttribute("dexteriy")
	s.True(errors.IsInvalidArgument(err))
}

func (s *EntitiesTestSuite) TestAttributeDisplay() {
	s.Equal("Intelligence", entities.AttributeIntelligence.Title())
	s.Equal("INT", entities.AttributeIntelligence.Short())
}

func (s *EntitiesTestSuite) TestAbilityScoreSetValidate() {
	s.NoError(s.fullSet.Validate())
	s.True(s.fullSet.Complete())
	s.Equal(75, s.fullSet.Total())
	s.Equal([]int{14, 16, 9, 11, 7, 18}, s.fullSet.Values())

	missing := s.fullSet.Clone()
	delete(missing, entities.AttributeWisdom)
	s.False(missing.Complete())
	s.True(errors.IsInvalidArgument(missing.Validate()))

	outOfRange := s.fullSet.Clone()
	outOfRange[entities.AttributeStrength] = 19
	s.Error(outOfRange.Validate())

	unknown := s.fullSet.Clone()
	unknown["luck"] = 10
	s.Error(unknown.Validate())
}

func (s *EntitiesTestSuite) TestAbilityScoreSetClone() {
	clone := s.fullSet.Clone()
	clone[entities.AttributeStrength] = 3
	s.Equal(14, s.fullSet[entities.AttributeStrength])

	var nilSet entities.AbilityScoreSet
	s.Nil(nilSet.Clone())
}

func (s *EntitiesTestSuite) TestModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{3, -4},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{17, 3},
		{18, 4},
	}
	for _, tc := range testCases {
		s.Equal(tc.expected, entities.Modifier(tc.score), "score %d", tc.score)
	}
	s.Equal("+0", entities.FormatModifier(0))
	s.Equal("-1", entities.FormatModifier(-1))
}

func (s *EntitiesTestSuite) TestAbilityScoreSetString() {
	set := entities.AbilityScoreSet{
		entities.AttributeDexterity: 16,
		entities.AttributeStrength:  9,
	}
	s.Equal("STR 9 (-1), DEX 16 (+3)", set.String())
}

func (s *EntitiesTestSuite) TestRolledPool() {
	pool := entities.NewRolledPool(14, 9, 16, 11, 7, 18)
	s.NoError(pool.Validate())
	s.Equal([]int{14, 9, 16, 11, 7, 18}, pool.Values())

	s.Error(entities.NewRolledPool(14, 9).Validate())
	s.Error(entities.NewRolledPool(14, 9, 16, 11, 7, 2).Validate())

	pool[0].Dice = []int{6, 5, 3}
	clone := pool.Clone()
	clone[0].Dice[0] = 1
	s.Equal(6, pool[0].Dice[0])
}

func (s *EntitiesTestSuite) TestMethods() {
	methods := entities.Methods()
	s.Require().Len(methods, 3)
	s.Equal(entities.MethodPriority, methods[0].Method)
	s.True(methods[2].RequiresAssignment)
	s.False(methods[1].RequiresAssignment)

	m, err := entities.ParseMethod("4d6")
	s.Require().NoError(err)
	s.Equal(entities.MethodBestThreeOfFour, m)

	m, err = entities.ParseMethod("HARDCORE")
	s.Require().NoError(err)
	s.Equal(entities.MethodHardcore, m)

	_, err = entities.ParseMethod("point_buy")
	s.True(errors.IsInvalidArgument(err))
}

func (s *EntitiesTestSuite) TestCharacterApplyAbilityScores() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	char := &entities.Character{ID: "char_1", Name: "Mira"}
	s.Equal("character", char.GetType())
	s.Equal("char_1", char.GetID())
	s.False(char.HasAbilityScores())

	s.Require().NoError(char.ApplyAbilityScores(s.fullSet, entities.MethodBestThreeOfFour, at))
	s.Equal(s.fullSet, char.AbilityScores)
	s.Equal(entities.MethodBestThreeOfFour, char.ScoreMethod)
	s.Equal(at.Unix(), char.ScoresSetAt)

	// caller mutations do not leak into the record
	s.fullSet[entities.AttributeStrength] = 3
	s.Equal(14, char.AbilityScores[entities.AttributeStrength])
}

func (s *EntitiesTestSuite) TestCharacterApplyAbilityScoresIsAtomic() {
	original := s.fullSet.Clone()
	char := &entities.Character{ID: "char_1"}
	s.Require().NoError(char.ApplyAbilityScores(original, entities.MethodPriority, time.Unix(10, 0)))

	partial := entities.AbilityScoreSet{entities.AttributeStrength: 18}
	err := char.ApplyAbilityScores(partial, entities.MethodHardcore, time.Unix(20, 0))
	s.True(errors.IsInvalidArgument(err))

	s.Equal(original, char.AbilityScores)
	s.Equal(entities.MethodPriority, char.ScoreMethod)
	s.Equal(int64(10), char.UpdatedAt)

	s.Error(char.ApplyAbilityScores(original, entities.Method("point_buy"), time.Unix(30, 0)))
	s.Equal(entities.MethodPriority, char.ScoreMethod)
}
