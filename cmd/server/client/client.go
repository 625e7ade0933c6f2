// Package client provides commands that call a running statgen server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	statgenv1alpha1 "github.com/KirkDiggler/rpg-statgen/api/statgen/v1alpha1"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	details    bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running statgen server",
	Long:  `Client commands make real gRPC requests against a statgen server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&details, "details", false, "Print gRPC error details as JSON")

	ClientCmd.AddCommand(healthCmd)
	ClientCmd.AddCommand(listMethodsCmd)

	// Characters
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)

	// One-shot methods
	ClientCmd.AddCommand(priorityCmd)
	ClientCmd.AddCommand(hardcoreCmd)

	// Assignment sessions
	ClientCmd.AddCommand(startAssignmentCmd)
	ClientCmd.AddCommand(getAssignmentCmd)
	ClientCmd.AddCommand(pickCmd)
	ClientCmd.AddCommand(resetCmd)
	ClientCmd.AddCommand(rerollCmd)
	ClientCmd.AddCommand(commitCmd)
	ClientCmd.AddCommand(discardCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createStatGenClient creates a StatGenService client
func createStatGenClient() (statgenv1alpha1.StatGenServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return statgenv1alpha1.NewStatGenServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and the request timeout
func call(fn func(ctx context.Context, client statgenv1alpha1.StatGenServiceClient) error) error {
	client, cleanup, err := createStatGenClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

// describeError turns a gRPC error into a message naming its reason
func describeError(action string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	if details {
		if info := errors.ErrorInfo(st); info != nil {
			if raw, marshalErr := protojson.Marshal(info); marshalErr == nil {
				fmt.Printf("error details: %s\n", raw)
			}
		}
	}

	restored := errors.FromGRPCError(err)
	if reason := errors.GetReason(restored); reason != "" {
		return fmt.Errorf("failed to %s: %s (%s): %s", action, st.Code(), reason, st.Message())
	}
	return fmt.Errorf("failed to %s: %s: %s", action, st.Code(), st.Message())
}
