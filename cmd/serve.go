package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/deffiedeff2/event-app/api"
	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/engine"
	"github.com/deffiedeff2/event-app/migrate"
	"github.com/deffiedeff2/event-app/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the eventapp server",
	Long:  `Start the eventapp server to handle accounts, events, RSVPs and the explore feed.`,
	Example: `eventapp serve --config config.yml
eventapp serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer s.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := migrate.Run(ctx, s); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	eng, err := engine.New(cfg, s)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}
	defer eng.Close() //nolint:errcheck

	server, err := api.New(cfg, s, eng)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	// Start the engine in a goroutine
	go func() {
		if err := eng.Run(ctx); err != nil {
			log.Error("engine error", "error", err)
		}
	}()

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("eventapp started successfully")
	<-c
	log.Info("shutting down gracefully...")

	// Give time for graceful shutdown
	cancel()
	time.Sleep(2 * time.Second)
}

func openStore(cfg *config.Config) (*store.Store, error) {
	kv, err := store.OpenSQLite(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return store.New(kv), nil
}
