// Command shellbar runs a system tray icon and serves script-running tools
// to a front-end.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/deixis/shellbar"
	"github.com/deixis/shellbar/internal/config"
	"github.com/deixis/shellbar/internal/logging"
	shellmcp "github.com/deixis/shellbar/internal/mcp"
	"github.com/deixis/shellbar/internal/pathenv"
	"github.com/deixis/shellbar/internal/runner"
	"github.com/deixis/shellbar/internal/tray"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "shellbar",
		Short:   "System tray shell that runs scripts for a front-end",
		Version: shellbar.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.trayMain(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "configuration file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (shows debug messages)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tray",
			Short: "Show the tray icon and serve tools (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.trayMain(cmd.Context())
			},
		},
		a.mcpCmd(),
		&cobra.Command{
			Use:   "run <script>",
			Short: "Run a script with no arguments and print its output as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runMain(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "greet <name>",
			Short: "Print a greeting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), shellmcp.Greet(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), shellbar.Version)
				return nil
			},
		},
	)
	return root
}

// init loads the configuration and builds the logger. Logs go to stderr;
// stdout carries MCP traffic or command output.
func (a *app) init() error {
	loaded, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = loaded.Config

	level := a.cfg.LogLevel()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = logging.New(os.Stderr, level)
	a.logger.Debug().
		Str("config", loaded.Path).
		Str("env_file", loaded.EnvFile).
		Msg("configuration loaded")
	return nil
}

// --- tray ---

func (a *app) trayMain(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	if a.cfg.FixPath() {
		if err := pathenv.Fix(ctx, a.logger); err != nil {
			a.logger.Warn().Err(err).Msg("keeping inherited PATH")
		}
	}

	server := shellmcp.NewServer(runner.New(a.logger), a.logger)
	go func() {
		if err := serve(ctx, server, a.cfg.HTTPAddr, a.logger); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn().Err(err).Msg("tool server stopped")
		}
	}()

	d := tray.NewDispatcher()
	// Clicking the icon does nothing; only the menu is interactive.
	d.OnClick(func(tray.Event) {})
	d.OnMenuItem(tray.QuitID, func(tray.Event) {
		a.logger.Info().Msg("quit selected")
		tray.Quit()
	})

	tray.Run(ctx, tray.Options{
		Title:   a.cfg.Title(),
		Tooltip: a.cfg.Tooltip(),
		Logger:  a.logger,
	}, d)
	return nil
}

// --- mcp ---

func (a *app) mcpCmd() *cobra.Command {
	var httpAddr string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tools without a tray icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if httpAddr == "" {
				httpAddr = a.cfg.HTTPAddr
			}
			server := shellmcp.NewServer(runner.New(a.logger), a.logger)
			return serve(ctx, server, httpAddr, a.logger)
		},
	}
	cmd.Flags().StringVar(&httpAddr, "http", "", "start HTTP server on address (e.g. :9090)")
	return cmd
}

// --- run ---

func (a *app) runMain(cmd *cobra.Command, script string) error {
	out, err := runner.New(a.logger).Run(script)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
