package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/web"
)

var (
	flagWebAddr string
	flagWebDir  string
	flagSSHHost string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the landing page over HTTP",
	Long: `Serve the embedded landing page, or a directory of static files.

The listen address defaults to :$PORT, then :1337.

Examples:
  arkanoid web
  arkanoid web --addr :8080
  arkanoid web --dir ./public --ssh-host games.example.com`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP address (host:port)")
	webCmd.Flags().StringVar(&flagWebDir, "dir", "", "Serve this directory instead of the embedded page")
	webCmd.Flags().StringVar(&flagSSHHost, "ssh-host", "", "Host name shown in the SSH instructions")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("arkanoid-web")
	if err != nil {
		return err
	}

	addr := flagWebAddr
	if addr == "" {
		addr = ":" + config.GetEnv("PORT", web.DefaultPort)
	}

	sshAddr := config.GetEnv("ARKANOID_SSH_ADDR", ":23234")
	_, sshPort, err := net.SplitHostPort(sshAddr)
	if err != nil {
		sshPort = "23234"
	}

	server, err := web.New(web.Config{
		Addr:    addr,
		Dir:     flagWebDir,
		SSHHost: flagSSHHost,
		SSHPort: sshPort,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
