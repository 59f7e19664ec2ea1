package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zwovieracht/internal/platform/tui"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		hostKey     string
		idleTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SSH server",
		Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu and its own game.
All users share the server's high score table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.zwovieracht/host_key

Examples:
  zwovieracht serve                           # Listen on :23234 with auto-generated key
  zwovieracht serve --ssh :2222               # Listen on port 2222
  zwovieracht serve --host-key ./my_host_key  # Use specific host key
  zwovieracht serve --idle-timeout 5m

Users can connect with:
  ssh localhost -p 23234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := tui.SSHServerConfigFrom(a.cfg)
			flags := cmd.Flags()
			if flags.Changed("ssh") {
				cfg.Address = addr
			}
			if flags.Changed("host-key") {
				cfg.HostKeyPath = hostKey
			}
			if flags.Changed("idle-timeout") {
				cfg.IdleTimeout = idleTimeout
			}

			store := a.openStore()
			if store != nil {
				defer store.Close()
			}

			server, err := tui.NewSSHServer(cfg, store, a.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "ssh", ":23234", "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().DurationVar(&idleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting a client")
	return cmd
}
