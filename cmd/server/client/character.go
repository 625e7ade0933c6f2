package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

var (
	createPlayerID string
	createImageRef string
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character [name]",
	Short: "Create a character without ability scores",
	Long: `Create a character record to generate ability scores for.

  Example: create-character "Brienne" --player player_1 --image portraits/brienne.png`,
	Args: cobra.ExactArgs(1),
	RunE: createCharacter,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character and its ability scores",
	Args:  cobra.ExactArgs(1),
	RunE:  getCharacter,
}

func init() {
	createCharacterCmd.Flags().StringVar(&createPlayerID, "player", "", "Owning player ID (required)")
	createCharacterCmd.Flags().StringVar(&createImageRef, "image", "", "Image reference")
	_ = createCharacterCmd.MarkFlagRequired("player")
}

func createCharacter(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.CreateCharacter(ctx, &statgenv1alpha1.CreateCharacterRequest{
			PlayerId: createPlayerID,
			Name:     args[0],
			ImageRef: createImageRef,
		})
		if err != nil {
			return describeError("create character", err)
		}

		fmt.Printf("Created character %s\n", resp.Character.Id)
		printCharacter(resp.Character)
		return nil
	})
}

func getCharacter(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.GetCharacter(ctx, &statgenv1alpha1.GetCharacterRequest{CharacterId: args[0]})
		if err != nil {
			return describeError("get character", err)
		}

		printCharacter(resp.Character)
		return nil
	})
}
