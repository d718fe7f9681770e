// Command shopifymcp serves the Shopify Admin GraphQL passthrough tool over
// MCP on stdin/stdout. Diagnostics go to stderr.
//
// Configuration comes from SHOPIFY_ACCESS_TOKEN, SHOPIFY_STORE_NAME,
// SHOPIFY_API_VERSION and SHOPIFY_API_URL, optionally seeded by a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/isobit/cli"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/shopifymcp/admin"
	"github.com/jonwraymond/shopifymcp/config"
	"github.com/jonwraymond/shopifymcp/server"
)

func main() {
	err := cli.New("shopifymcp", &Command{LogFormat: "text"}).
		Parse().
		Run()

	if err != nil && err != cli.ErrHelp {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type Command struct {
	EnvFile   string `cli:"name=env-file,placeholder=PATH,nodefault,help=dotenv file to load; defaults to .env next to the executable"`
	LogFormat string `cli:"name=log-format,help=diagnostic log format: text or json"`
	Quiet     bool   `cli:"short=q,help=only log warnings and errors"`
	Strict    bool   `cli:"help=exit with an error instead of serving when credentials are missing"`
}

func (cmd Command) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx, os.Stderr, &mcp.StdioTransport{})
}

func (cmd Command) run(ctx context.Context, stderr io.Writer, transport mcp.Transport) error {
	logger, err := newLogger(stderr, cmd.LogFormat, cmd.Quiet)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{EnvFile: cmd.EnvFile, Logger: logger})
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		if cmd.Strict {
			logger.Error("cannot start server, shopify credentials missing", "error", err)
			return fmt.Errorf("cannot start server: %w", err)
		}
		logger.Error("shopify credentials missing, every tool call will fail", "error", err)
	}

	client := admin.New(cfg)
	srv, err := server.New(server.Options{Executor: client, Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("shopify mcp server initialized", "endpoint", client.Endpoint())

	return srv.Run(ctx, transport)
}

func newLogger(w io.Writer, format string, quiet bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if quiet {
		opts.Level = slog.LevelWarn
	}
	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, cli.UsageErrorf("unknown --log-format %q, want text or json", format)
}

var _ admin.Logger = (*slog.Logger)(nil)
