// reclaim-platform is a native messaging host that exposes host OS
// information and a few OS actions to a browser extension.
//
// Usage:
//
//	reclaim-platform [-config file] [origin]
//	reclaim-platform -call getVersion
//	reclaim-platform -call openURL https://example.com
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/reclaim/platformhost/internal/config"
	"github.com/reclaim/platformhost/internal/facade"
	"github.com/reclaim/platformhost/internal/handlers"
	"github.com/reclaim/platformhost/internal/identity"
	xlog "github.com/reclaim/platformhost/internal/log"
	"github.com/reclaim/platformhost/internal/messaging"
	"github.com/reclaim/platformhost/internal/metrics"
	"github.com/reclaim/platformhost/internal/platform"
	"github.com/reclaim/platformhost/internal/sysinfo"
	"github.com/reclaim/platformhost/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		call        string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", defaultConfigPath(), "path to YAML configuration file")
	flag.StringVar(&call, "call", "", "invoke one method, print the JSON response and exit")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", configPath, err)
		return 1
	}

	// stdout carries the wire protocol, so logs go to a file
	logOut, closeLog := openLogOutput(cfg.Log.File)
	defer closeLog()
	xlog.Configure(xlog.Config{Level: cfg.Log.Level, Output: logOut})
	logger := xlog.WithComponent("host")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := newHandler(cfg)

	if call != "" {
		return runCall(h, call, flag.Args(), os.Stdout)
	}

	if cfg.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Listen, xlog.WithComponent("metrics")); err != nil {
				logger.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	logger.Info().Strs("args", flag.Args()).Msg("native host started")
	if err := serve(ctx, h, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("native host stopped")
		return 1
	}
	logger.Info().Msg("native host finished")
	return 0
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reclaim-platform", "config.yaml")
}

// openLogOutput resolves the configured log destination. "-" is stderr; an
// empty value is the default file in the user's cache directory.
func openLogOutput(path string) (io.Writer, func()) {
	if path == "-" {
		return os.Stderr, func() {}
	}
	if path == "" {
		path = xlog.DefaultFilePath()
	}
	f, err := xlog.OpenFile(path)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}

func newHandler(cfg config.Config) *handlers.Handler {
	plat := platform.New()
	f := facade.New(facade.Deps{
		Platform: plat,
		Query:    sysinfo.New(plat, xlog.WithComponent("sysinfo")),
		Identity: identity.New(identity.Options{
			MachineIDFile: cfg.Identity.MachineIDFile,
			Logger:        xlog.WithComponent("identity"),
		}),
		Logger:   xlog.WithComponent("facade"),
		Observer: handlers.MetricsObserver(),
	})
	return handlers.New(f, xlog.WithComponent("handlers"))
}

// serve answers framed messages until stdin closes or ctx is cancelled.
// Cancellation is observed between messages.
func serve(ctx context.Context, h *handlers.Handler, r io.Reader, w io.Writer, logger zerolog.Logger) error {
	for ctx.Err() == nil {
		msg, err := messaging.ReadMessage(r)
		if err == io.EOF {
			return nil
		}

		var resp messaging.Response
		var decodeErr *messaging.DecodeError
		switch {
		case errors.As(err, &decodeErr):
			logger.Warn().Err(err).Msg("discarding malformed message")
			resp = handlers.BadRequest(err)
		case err != nil:
			return fmt.Errorf("read message: %w", err)
		default:
			resp = h.Handle(msg)
		}

		if err := messaging.WriteMessage(w, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return nil
}

// runCall invokes a single method and prints the response as JSON.
func runCall(h *handlers.Handler, method string, args []string, w io.Writer) int {
	callArgs := make([]any, len(args))
	for i, a := range args {
		callArgs[i] = a
	}
	resp := h.Handle(&messaging.Message{Method: method, Args: callArgs})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintf(os.Stderr, "encode response: %v\n", err)
		return 1
	}
	if !resp.Success {
		return 1
	}
	return 0
}
