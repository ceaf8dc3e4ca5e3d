package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeIdle   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the title menu.
All users share the same high score table and run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.invaders/host_key

Examples:
  invaders serve                           # Listen on :23234 with auto-generated key
  invaders serve --ssh :2222               # Listen on port 2222
  invaders serve --host-key ./my_host_key  # Use specific host key
  invaders serve --scores-file ./hs.txt    # Use specific high score table

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagServeIdle, "idle", 30*time.Second, "Start the attract demo after this much menu idle time (0 disables)")
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := openSession(false, false)
	if err != nil {
		return err
	}
	// The server closes the run store on shutdown.
	store := s.svc.Store
	s.svc.Store = nil
	defer s.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MenuIdle = flagServeIdle
	cfg.TickRate = flagFPS

	svc := s.svc
	svc.Store = store
	server, err := tui.NewSSHServer(cfg, svc)
	if err != nil {
		if store != nil {
			//nolint:errcheck // Best-effort close
			store.Close()
		}
		return err
	}

	fmt.Printf("Starting invaders SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
