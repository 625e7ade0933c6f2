package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/play"
)

var playName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate ability scores interactively in the terminal",
	Long: `Play runs the generators locally without a server. Choose a method, then
for best three of four assign the pool with "pick N", "reset", "reroll" and
"commit".`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playName, "name", "Adventurer", "Character name")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game, err := play.New(&play.Config{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Generator: statgenengine.NewGenerator(nil),
	})
	if err != nil {
		return err
	}

	result, err := game.Run(ctx)
	if errors.Is(err, play.ErrQuit) {
		fmt.Fprintln(cmd.OutOrStdout(), "No scores kept.")
		return nil
	}
	if err != nil {
		return err
	}

	char := &entities.Character{ID: "local", Name: playName}
	if err := char.ApplyAbilityScores(result.Scores, result.Method, time.Now()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%s): %s\n", char.Name, char.ScoreMethod, char.AbilityScores)
	return nil
}
