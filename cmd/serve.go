package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/desertthunder/onboard/internal/server"
	"github.com/desertthunder/onboard/internal/shared"
	"github.com/desertthunder/onboard/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve loads the datasets once and serves the web wizard until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		cfg.Host = host
	}
	if port := int(cmd.Int("port")); port != 0 {
		cfg.Port = port
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", shared.ErrInvalidArgument, cfg.Port)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, closeDB, err := r.wizardOptions()
	if err != nil {
		return err
	}
	defer closeDB()

	topics, newsletters := r.provider().Load(ctx)
	srv := web.NewServer(topics, newsletters, shared.WithLogger(r.logger, "component", "web"), opts...)
	srv.Sessions().SetLimits(cfg.SessionTTL(), cfg.MaxSessions)

	if cmd.Bool("open") {
		url := "http://" + net.JoinHostPort(browserHost(cfg.Host), strconv.Itoa(cfg.Port)) + "/"
		go func() {
			if err := shared.OpenBrowser(url); err != nil {
				r.logger.Warn("failed to open browser", "url", url, "error", err)
			}
		}()
	}

	return server.Serve(ctx, cfg.Addr(), srv.Handler(cfg.RateLimit, cfg.Burst), r.logger)
}

// browserHost maps wildcard listen hosts to loopback.
func browserHost(host string) string {
	switch host {
	case "", "0.0.0.0", "::":
		return "localhost"
	default:
		return host
	}
}
