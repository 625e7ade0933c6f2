package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the server health status",
	Args:  cobra.NoArgs,
	RunE:  checkHealth,
}

func checkHealth(_ *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: statgenv1alpha1.ServiceName,
	})
	if err != nil {
		return describeError("check health", err)
	}

	fmt.Printf("%s: %s\n", statgenv1alpha1.ServiceName, resp.GetStatus())
	return nil
}
