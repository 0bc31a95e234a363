// Command foodctl runs operational tasks against the foodbridge database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "foodctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "foodctl",
		Short:        "Foodbridge operations CLI",
		Long:         "foodctl applies schema migrations and bootstraps accounts using the same config as the API.",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newMigrateCmd(),
		newCreateAdminCmd(),
	)

	return cmd
}
