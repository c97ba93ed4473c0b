package greeter

import (
	"context"
	"os"

	"github.com/mcplabs/mcp-greeter/internal/config"
	"github.com/mcplabs/mcp-greeter/internal/logger"
	"github.com/mcplabs/mcp-greeter/internal/platform"
)

// Options configures a greeter run from the command line.
type Options struct {
	// ConfigPath to YAML settings file; empty means compiled-in defaults.
	ConfigPath string

	// NoWait skips the final prompt regardless of settings.
	NoWait bool
}

// Run loads settings, wires the real host provider and the process streams,
// and executes the greeter sequence.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "mcp-greeter")

	// Load settings; an empty path yields compiled-in defaults.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Adjust verbosity when the settings ask for it.
	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	// Identity is best effort and feeds the debug audit line only.
	if actor, err := platform.Identity(); err == nil {
		logger.DebugKV(ctx, "Starting greeter", "actor", actor.String())
	}

	svc := NewService(
		platform.NewHostProvider(),
		os.Stdin,
		os.Stdout,
		cfg.Greeting,
		WithSkipWait(cfg.SkipWait || opts.NoWait),
	)

	return svc.Run(ctx)
}
