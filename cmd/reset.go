package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/deffiedeff2/event-app/config"
)

var resetCmdFlags struct {
	Yes bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored users and events",
	Long:  `This command wipes the stored users and events collections along with the schema version marker. It refuses to run without --yes.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetCmdFlags.Yes, "yes", false, "Confirm that all stored data should be deleted")

	rootCmd.AddCommand(resetCmd)
}

func reset(cmd *cobra.Command, _ []string) {
	if !resetCmdFlags.Yes {
		log.Fatal("refusing to delete data without --yes")
	}

	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer s.Close() //nolint:errcheck

	if err := s.Reset(cmd.Context()); err != nil {
		log.Fatalf("failed to reset store: %v", err)
	}

	log.Info("all stored data deleted")
}
