package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

var applyTo string

var priorityCmd = &cobra.Command{
	Use:   "priority [most] [least]",
	Short: "Generate scores with the priority method",
	Long: `The most important ability gets 17, the least important 9 and the rest 12.

  Example: priority strength charisma --character char_123`,
	Args: cobra.ExactArgs(2),
	RunE: generatePriority,
}

var hardcoreCmd = &cobra.Command{
	Use:   "hardcore",
	Short: "Generate scores with the hardcore method",
	Long:  `Roll 3d6 for each ability in order. Sets with nothing above 12 are rerolled.`,
	Args:  cobra.NoArgs,
	RunE:  generateHardcore,
}

func init() {
	priorityCmd.Flags().StringVar(&applyTo, "character", "", "Apply the scores to this character")
	hardcoreCmd.Flags().StringVar(&applyTo, "character", "", "Apply the scores to this character")
}

func generatePriority(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.GeneratePriority(ctx, &statgenv1alpha1.GeneratePriorityRequest{
			CharacterId: applyTo,
			Most:        args[0],
			Least:       args[1],
		})
		if err != nil {
			return describeError("generate priority scores", err)
		}

		fmt.Println("Priority scores:")
		printScores(resp.Scores)
		printCharacter(resp.Character)
		return nil
	})
}

func generateHardcore(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.GenerateHardcore(ctx, &statgenv1alpha1.GenerateHardcoreRequest{
			CharacterId: applyTo,
		})
		if err != nil {
			return describeError("generate hardcore scores", err)
		}

		fmt.Println("Hardcore scores:")
		printScores(resp.Scores)
		printCharacter(resp.Character)
		return nil
	})
}
