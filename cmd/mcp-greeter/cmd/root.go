package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	greeter "github.com/mcplabs/mcp-greeter/internal/service/greeter"
	"github.com/mcplabs/mcp-greeter/internal/version"
)

var (
	// cfgPath stores the optional settings file path.
	cfgPath string
	// noWait controls whether to skip the final prompt for scripted runs.
	noWait bool

	// rootCmd represents the base command that runs the greeter.
	rootCmd = &cobra.Command{
		Use:   "mcp-greeter",
		Short: "Print a greeting, the current time and the host build number.",
		Long: `Build-verification stub for the Windows MCP Server toolchain.

Prints a fixed greeting, the current wall-clock time in ctime style, and the
build identifier reported by the host operating system, then waits for Enter
before exiting. A bare invocation consults no configuration; settings can
optionally be supplied via a YAML file.

This is typically used to prove the build pipeline end to end rather than to
deliver product functionality.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return greeter.Run(ctx, &greeter.Options{
				ConfigPath: cfgPath,
				NoWait:     noWait,
			})
		},
	}
)

// Execute runs the mcp-greeter CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to optional settings file")

	// Hidden flag to skip the final prompt for scripted runs.
	rootCmd.Flags().BoolVarP(&noWait, "no-wait", "n", false, "skip the final prompt")

	err := rootCmd.Flags().MarkHidden("no-wait")
	if err != nil {
		panic(err)
	}
}
