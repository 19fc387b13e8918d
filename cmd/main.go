package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Версия задаётся через ldflags при сборке
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// @title Shomrim Dispatch API
// @version 1.0
// @description Dispatch backend for a volunteer community-safety patrol: incidents, OTP login, push-to-talk and directories.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shomrim",
		Short:         "Shomrim dispatch backend",
		Long:          "Shomrim dispatch serves the incident, OTP login, push-to-talk and directory API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shomrim %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
