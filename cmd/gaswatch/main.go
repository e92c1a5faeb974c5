// Command gaswatch prints the current Ethereum gas price and can keep
// polling it, flagging prices above an alert threshold.
//
// Usage examples:
//
//	gaswatch                          one reading from the default endpoint
//	gaswatch --wei                    same, in wei
//	gaswatch -w 15 -a 40              poll every 15s, alert above 40 gwei
//	gaswatch -p alchemy -w 30 -n 10   ten polls against a configured provider
//	gaswatch providers                list configured providers
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dando385/gas-watcher/internal/config"
	"github.com/dando385/gas-watcher/internal/display"
	"github.com/dando385/gas-watcher/internal/env"
)

var version = "0.1.0"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	g := &globalOptions{}
	w := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "gaswatch",
		Short: "Monitor Ethereum gas prices",
		Long: `Query an Ethereum JSON-RPC endpoint for the current gas price (eth_gasPrice).

Without --watch the price is fetched once. With --watch N the price is
fetched every N seconds until the process is stopped; fetch errors are
reported and polling continues.

Examples:
  gaswatch
  gaswatch --rpc https://eth.drpc.org --wei
  gaswatch --watch 15 --alert 40
  gaswatch --provider alchemy --watch 30 --count 10`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.noColor {
				display.DisableColor()
			}
			return env.Load(env.DefaultFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, g, w)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "",
		fmt.Sprintf("Config file path (default %s, optional)", config.DefaultPath))
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	w.bindFlags(cmd)
	cmd.AddCommand(providersCmd(g))
	return cmd
}

// loadConfig reads the explicit --config path, or the default path if it
// exists, and reports config warnings through logger.
func loadConfig(g *globalOptions, logger *slog.Logger) (*config.Config, string, error) {
	var (
		cfg    *config.Config
		source string
		err    error
	)
	if g.configPath != "" {
		cfg, err = config.Load(g.configPath)
		source = g.configPath
	} else {
		var found bool
		cfg, found, err = config.LoadOptional(config.DefaultPath)
		if found {
			source = config.DefaultPath
		}
	}
	if err != nil {
		return nil, "", err
	}

	if source != "" {
		logger.Debug("loaded config", "path", source, "providers", len(cfg.Providers))
	} else {
		logger.Debug("no config file, using built-in defaults")
	}
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}
	return cfg, source, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
