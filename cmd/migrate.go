package cmd

import (
	"github.com/spf13/cobra"

	"go-krushivishwa/config"
	"go-krushivishwa/utils"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MySQL tables used by the mysql store backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := utils.NewLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := config.OpenDB(cmd.Context(), cfg.MySQL, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := config.AutoMigrate(cmd.Context(), db, logger); err != nil {
				return err
			}
			logger.Info("database migrated successfully")
			return nil
		},
	}
}
