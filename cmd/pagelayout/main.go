package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pagelayout/internal/config"
	"github.com/vango-dev/pagelayout/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "pagelayout",
		Short: "Render, preview and publish the page layout shell",
		Long: `pagelayout renders a page shell with header, sidebar and main
regions. Children are placed by what they are, not by where they
were declared, so the output order is always sidebar, header, main.

Settings are read from pagelayout.json in the --config directory,
then from a .env file there, then from PAGELAYOUT_* variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing pagelayout.json")

	load := func() (*config.Config, error) {
		return loadConfig(configDir)
	}

	rootCmd.AddCommand(
		renderCmd(load),
		serveCmd(load),
		publishCmd(load),
		versionCmd(),
	)

	return rootCmd
}

type configLoader func() (*config.Config, error)

// loadConfig reads the config file, then .env, then the process
// environment, and validates the result.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// printError prints coded errors in full and everything else on one line.
func printError(w io.Writer, err error) {
	var le *errors.LayoutError
	if stderrors.As(err, &le) && le.Code != "" {
		errors.Fprint(w, err)
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
