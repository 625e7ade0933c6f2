package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

var sessionTTL time.Duration

var startAssignmentCmd = &cobra.Command{
	Use:   "start [character-id]",
	Short: "Roll a best-three-of-four pool and start assigning it",
	Args:  cobra.ExactArgs(1),
	RunE:  startAssignment,
}

var getAssignmentCmd = &cobra.Command{
	Use:   "show [character-id]",
	Short: "Show the current assignment session",
	Args:  cobra.ExactArgs(1),
	RunE:  getAssignment,
}

var pickCmd = &cobra.Command{
	Use:   "pick [character-id] [position]",
	Short: "Assign the pool value at position to the next ability",
	Long: `Abilities are filled in order: Strength, Dexterity, Constitution,
Intelligence, Wisdom, Charisma. Positions start at 0.

  Example: pick char_123 4`,
	Args: cobra.ExactArgs(2),
	RunE: pickValue,
}

var resetCmd = &cobra.Command{
	Use:   "reset [character-id]",
	Short: "Clear every assignment and keep the pool",
	Args:  cobra.ExactArgs(1),
	RunE:  resetAssignment,
}

var rerollCmd = &cobra.Command{
	Use:   "reroll [character-id]",
	Short: "Roll a new pool and clear every assignment",
	Args:  cobra.ExactArgs(1),
	RunE:  rerollAssignment,
}

var commitCmd = &cobra.Command{
	Use:   "commit [character-id]",
	Short: "Apply a complete assignment to the character",
	Args:  cobra.ExactArgs(1),
	RunE:  commitAssignment,
}

var discardCmd = &cobra.Command{
	Use:   "discard [character-id]",
	Short: "Drop the assignment session without applying it",
	Args:  cobra.ExactArgs(1),
	RunE:  discardAssignment,
}

func init() {
	startAssignmentCmd.Flags().DurationVar(&sessionTTL, "ttl", 0, "Session lifetime (server default when zero)")
}

func startAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.StartAssignment(ctx, &statgenv1alpha1.StartAssignmentRequest{
			CharacterId: args[0],
			TtlSeconds:  int64(sessionTTL / time.Second),
		})
		if err != nil {
			return describeError("start assignment", err)
		}

		printSession(resp.Session)
		return nil
	})
}

func getAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.GetAssignment(ctx, &statgenv1alpha1.GetAssignmentRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("get assignment", err)
		}

		printSession(resp.Session)
		return nil
	})
}

func pickValue(_ *cobra.Command, args []string) error {
	position, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[1], err)
	}

	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.PickValue(ctx, &statgenv1alpha1.PickValueRequest{
			CharacterId: args[0],
			Position:    int32(position),
		})
		if err != nil {
			return describeError("pick value", err)
		}

		printSession(resp.Session)
		return nil
	})
}

func resetAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.ResetAssignment(ctx, &statgenv1alpha1.ResetAssignmentRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("reset assignment", err)
		}

		printSession(resp.Session)
		return nil
	})
}

func rerollAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.RerollAssignment(ctx, &statgenv1alpha1.RerollAssignmentRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("reroll assignment", err)
		}

		printSession(resp.Session)
		return nil
	})
}

func commitAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.CommitAssignment(ctx, &statgenv1alpha1.CommitAssignmentRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("commit assignment", err)
		}

		fmt.Println("Scores committed.")
		printCharacter(resp.Character)
		return nil
	})
}

func discardAssignment(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.DiscardAssignment(ctx, &statgenv1alpha1.DiscardAssignmentRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("discard assignment", err)
		}

		if resp.Discarded {
			fmt.Println("Assignment discarded.")
		} else {
			fmt.Println("No assignment session to discard.")
		}
		return nil
	})
}
