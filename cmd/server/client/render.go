package client

import (
	"fmt"
	"time"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
)

func toScoreSet(scores *statgenv1alpha1.AbilityScores) entities.AbilityScoreSet {
	set := entities.AbilityScoreSet{}
	if scores == nil {
		return set
	}
	values := map[entities.Attribute]int32{
		entities.AttributeStrength:     scores.Strength,
		entities.AttributeDexterity:    scores.Dexterity,
		entities.AttributeConstitution: scores.Constitution,
		entities.AttributeIntelligence: scores.Intelligence,
		entities.AttributeWisdom:       scores.Wisdom,
		entities.AttributeCharisma:     scores.Charisma,
	}
	for attr, v := range values {
		if v != 0 {
			set[attr] = int(v)
		}
	}
	return set
}

func printScores(scores *statgenv1alpha1.AbilityScores) {
	set := toScoreSet(scores)
	for _, attr := range entities.Attributes() {
		v, ok := set[attr]
		if !ok {
			fmt.Printf("  %s  --\n", attr.Short())
			continue
		}
		fmt.Printf("  %s  %2d (%s)\n", attr.Short(), v, entities.FormatModifier(entities.Modifier(v)))
	}
	if set.Complete() {
		fmt.Printf("  Total: %d\n", set.Total())
	}
}

func printCharacter(char *statgenv1alpha1.Character) {
	if char == nil {
		return
	}
	fmt.Printf("\nCharacter %s\n", char.Id)
	fmt.Printf("  Name:   %s\n", char.Name)
	fmt.Printf("  Player: %s\n", char.PlayerId)
	if char.ImageRef != "" {
		fmt.Printf("  Image:  %s\n", char.ImageRef)
	}
	if char.GetAbilityScores() == nil {
		fmt.Println("  No ability scores yet")
		return
	}
	fmt.Printf("  Method: %s (set %s)\n", char.ScoreMethod, time.Unix(char.ScoresSetAt, 0).Format(time.DateTime))
	printScores(char.AbilityScores)
}

func printSession(session *statgenv1alpha1.AssignmentSession) {
	if session == nil {
		return
	}

	fmt.Printf("\nAssignment for %s (%s, expires %s)\n",
		session.CharacterId, session.State, time.Unix(session.ExpiresAt, 0).Format(time.DateTime))

	fmt.Println("Pool:")
	for i, entry := range session.Pool {
		marker := " "
		if i < len(session.Consumed) && session.Consumed[i] {
			marker = "x"
		}
		fmt.Printf("  [%s] %d: %2d  kept %v dropped %v\n", marker, i, entry.Value, entry.Dice, entry.Dropped)
	}

	fmt.Println("Assigned:")
	printScores(session.Assigned)

	fmt.Printf("\n%s\n", session.Prompt)
}

func printMethod(info *statgenv1alpha1.MethodInfo) {
	fmt.Printf("\n%s (%s)\n", info.Name, info.Method)
	fmt.Printf("  %s\n", info.Summary)
	fmt.Printf("  %s\n", info.Description)
	if info.RequiresAssignment {
		fmt.Println("  You assign the rolled values yourself.")
	}
}
