package main

import (
	"contact-service/pkg/database"
	"contact-service/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and insert sample contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.GetLogger()

		db, err := database.InitDB(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}()

		inserted, err := database.Seed(db, seedReset, log)
		if err != nil {
			return err
		}
		log.Info("Seed complete", zap.Int("inserted", inserted), zap.Bool("reset", seedReset))
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d contacts\n", inserted)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete existing contacts before seeding")
}
