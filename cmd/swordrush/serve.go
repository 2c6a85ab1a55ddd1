package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swordrush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sword Rush SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session and its own run.
All users share the server's best score and run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.swordrush/host_key

Examples:
  swordrush serve                           # Listen on :23234 with auto-generated key
  swordrush serve --ssh :2222               # Listen on port 2222
  swordrush serve --host-key ./my_host_key  # Use specific host key
  swordrush serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 32, "Maximum concurrent players (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, label, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false, "swordrush-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	sd, err := openScores(logger)
	if err != nil {
		return err
	}
	defer sd.close()

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
	}

	server, err := tui.NewSSHServer(srvCfg, tui.Deps{
		Config:  cfg,
		Scores:  sd.scores,
		History: sd.history,
		Logger:  logger,
		Label:   label,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Sword Rush SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
