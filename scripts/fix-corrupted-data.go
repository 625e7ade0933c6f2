package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/redis"
	sessionrepo "github.com/KirkDiggler/rpg-statgen/internal/repositories/assignment_session"
)

// checkFunc returns a reason when the stored value is unusable
type checkFunc func(data string) string

func main() {
	redisURL := os.Getenv("STATGEN_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	var corruptedKeys []string
	var checkedCount int

	for pattern, check := range map[string]checkFunc{
		"character:*":          checkCharacter,
		"assignment_session:*": checkSession,
	} {
		fmt.Printf("Scanning %s ...\n", pattern)

		iter := client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			checkedCount++

			data, err := client.Get(ctx, key).Result()
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", key, err)
				continue
			}

			if reason := check(data); reason != "" {
				fmt.Printf("✗ %s: %s\n", key, reason)
				corruptedKeys = append(corruptedKeys, key)
			}
		}
		if err := iter.Err(); err != nil {
			log.Fatal("Error during scan:", err)
		}
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// checkCharacter flags records that ApplyAbilityScores could never have
// produced: a partial score set or scores without a method.
func checkCharacter(data string) string {
	var character entities.Character
	if err := json.Unmarshal([]byte(data), &character); err != nil {
		return "corrupted JSON"
	}
	if character.ID == "" {
		return "missing id"
	}
	if !character.HasAbilityScores() {
		return ""
	}
	if err := character.AbilityScores.Validate(); err != nil {
		return fmt.Sprintf("invalid ability scores: %v", err)
	}
	if !character.ScoreMethod.Valid() {
		return fmt.Sprintf("unknown score method %q", character.ScoreMethod)
	}
	return ""
}

// checkSession replays the stored picks; a session that cannot be restored
// would fail every request for its character until it expires.
func checkSession(data string) string {
	var session sessionrepo.AssignmentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return "corrupted JSON"
	}
	_, err := statgenengine.RestoreSession(statgenengine.SessionData{
		Pool:  session.Pool,
		Picks: session.Picks,
	}, nil)
	if err != nil {
		return fmt.Sprintf("cannot restore session: %v", err)
	}
	return ""
}
