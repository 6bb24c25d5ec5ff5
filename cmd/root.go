package main

import (
	"contact-service/pkg/config"
	"contact-service/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfg *config.Config

// rootCmd runs the server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "contact-service",
	Short: "Contact book web service",
	Long: `contact-service serves a contact book: a JSON API under /api, a
server-rendered contact page, health and Prometheus endpoints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		if err := logger.InitLogger(cfg); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, browseCmd)
}
