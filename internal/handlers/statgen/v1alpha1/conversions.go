package v1alpha1

import (
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/orchestrators/statgen"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

func convertAbilityScores(scores entities.AbilityScoreSet) *statgenv1alpha1.AbilityScores {
	if len(scores) == 0 {
		return nil
	}
	return &statgenv1alpha1.AbilityScores{
		Strength:     int32(scores[entities.AttributeStrength]),
		Dexterity:    int32(scores[entities.AttributeDexterity]),
		Constitution: int32(scores[entities.AttributeConstitution]),
		Intelligence: int32(scores[entities.AttributeIntelligence]),
		Wisdom:       int32(scores[entities.AttributeWisdom]),
		Charisma:     int32(scores[entities.AttributeCharisma]),
	}
}

func convertCharacter(char *entities.Character) *statgenv1alpha1.Character {
	if char == nil {
		return nil
	}
	return &statgenv1alpha1.Character{
		Id:            char.ID,
		PlayerId:      char.PlayerID,
		Name:          char.Name,
		ImageRef:      char.ImageRef,
		AbilityScores: convertAbilityScores(char.AbilityScores),
		ScoreMethod:   string(char.ScoreMethod),
		ScoresSetAt:   char.ScoresSetAt,
		CreatedAt:     char.CreatedAt,
		UpdatedAt:     char.UpdatedAt,
	}
}

func convertMethodInfo(info entities.MethodInfo) *statgenv1alpha1.MethodInfo {
	return &statgenv1alpha1.MethodInfo{
		Method:             string(info.Method),
		Name:               info.Name,
		Summary:            info.Summary,
		Description:        info.Description,
		RequiresAssignment: info.RequiresAssignment,
	}
}

func convertInts(values []int) []int32 {
	if len(values) == 0 {
		return nil
	}
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}

func convertSession(view *statgen.SessionView) *statgenv1alpha1.AssignmentSession {
	if view == nil {
		return nil
	}

	pool := make([]*statgenv1alpha1.PoolEntry, 0, len(view.Pool))
	for _, entry := range view.Pool {
		pool = append(pool, &statgenv1alpha1.PoolEntry{
			Value:   int32(entry.Value),
			Dice:    convertInts(entry.Dice),
			Dropped: convertInts(entry.Dropped),
		})
	}

	return &statgenv1alpha1.AssignmentSession{
		CharacterId:   view.CharacterID,
		Pool:          pool,
		Consumed:      view.Consumed,
		Picks:         convertInts(view.Picks),
		Assigned:      convertAbilityScores(view.Assigned),
		NextAttribute: string(view.NextAttribute),
		State:         string(view.State),
		Prompt:        view.Prompt,
		ExpiresAt:     view.ExpiresAt.Unix(),
	}
}
