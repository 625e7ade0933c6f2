package client

import (
	"context"

	"github.com/spf13/cobra"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

var listMethodsCmd = &cobra.Command{
	Use:   "list-methods",
	Short: "List the ability score generation methods",
	Args:  cobra.NoArgs,
	RunE:  listMethods,
}

func listMethods(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error {
		resp, err := client.ListMethods(ctx, &statgenv1alpha1.ListMethodsRequest{})
		if err != nil {
			return describeError("list methods", err)
		}

		for _, info := range resp.Methods {
			printMethod(info)
		}
		return nil
	})
}
