package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crispy-forty/internal/config"
	"github.com/vovakirdan/crispy-forty/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Progress is saved per SSH user
name; the leaderboard is shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from config (auto-generated if missing)

Examples:
  crispy serve                           # Listen on the configured address
  crispy serve --ssh :2222               # Listen on port 2222
  crispy serve --host-key ./my_host_key  # Use specific host key
  crispy serve --db ./crispy.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(os.Stderr, "crispy-ssh")
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := tui.DefaultSSHServerConfig()
	if e.cfg.SSH.Address != "" {
		cfg.Address = e.cfg.SSH.Address
	}
	if e.cfg.SSH.IdleTimeout > 0 {
		cfg.IdleTimeout = e.cfg.SSH.IdleTimeout
	}
	hostKey := e.cfg.SSH.HostKey
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if cfg.HostKeyPath, err = config.ExpandPath(hostKey); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, tui.Shared{
		Catalog:   e.catalog,
		Board:     e.board,
		Store:     e.store,
		History:   e.backend,
		Assistant: e.assistant(),
		Hints:     e.cfg.Game.HintsAvailable,
		MinDelay:  e.cfg.Assistant.MinDelay,
		MaxDelay:  e.cfg.Assistant.MaxDelay,
	}, e.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting crispy SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
