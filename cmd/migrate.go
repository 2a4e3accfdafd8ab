package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run data migrations",
	Long:  `Run data migrations to set up or update the stored collections without starting the server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		s, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer s.Close() //nolint:errcheck

		if err := migrate.Run(cmd.Context(), s); err != nil {
			return err
		}

		log.Info("data migrations completed successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
