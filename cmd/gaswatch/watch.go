package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dando385/gas-watcher/internal/config"
	"github.com/dando385/gas-watcher/internal/display"
	"github.com/dando385/gas-watcher/internal/rpc"
	"github.com/dando385/gas-watcher/internal/watch"
)

type watchOptions struct {
	rpcURL   string
	provider string
	interval uint
	count    int
	alert    float64
	wei      bool
	timeout  time.Duration
}

func (o *watchOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.rpcURL, "rpc", "r", "", fmt.Sprintf("RPC endpoint URL (default %s)", config.DefaultURL))
	f.StringVarP(&o.provider, "provider", "p", "", "Use a provider from the config file")
	f.UintVarP(&o.interval, "watch", "w", 0, "Watch mode: poll every N seconds")
	f.IntVarP(&o.count, "count", "n", 0, "Stop after N polls in watch mode (0 = forever)")
	f.Float64VarP(&o.alert, "alert", "a", 0, "Alert threshold in gwei")
	f.BoolVar(&o.wei, "wei", false, "Show prices in wei instead of gwei")
	f.DurationVar(&o.timeout, "timeout", 0, "Request timeout (default from config, 10s)")
}

// runOptions turns parsed flags into loop options. Presence of --watch and
// --alert matters, not just their values.
func (o *watchOptions) runOptions(cmd *cobra.Command) (watch.Options, error) {
	opts := watch.Options{AsWei: o.wei}

	if cmd.Flags().Changed("watch") {
		if o.interval == 0 {
			return opts, fmt.Errorf("--watch must be at least 1 second")
		}
		opts.Interval = time.Duration(o.interval) * time.Second
	}
	if o.count < 0 {
		return opts, fmt.Errorf("--count must be >= 0")
	}
	if o.count > 0 && opts.Interval == 0 {
		return opts, fmt.Errorf("--count requires --watch")
	}
	opts.Count = o.count

	if cmd.Flags().Changed("alert") {
		alert := o.alert
		opts.Alert = &alert
	}
	if o.timeout < 0 {
		return opts, fmt.Errorf("--timeout must be > 0")
	}
	return opts, nil
}

func runWatch(cmd *cobra.Command, g *globalOptions, o *watchOptions) error {
	logger := newLogger(g.verbose)

	opts, err := o.runOptions(cmd)
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(g, logger)
	if err != nil {
		return err
	}

	endpoint, err := cfg.Resolve(o.rpcURL, o.provider, o.timeout)
	if err != nil {
		return err
	}
	logger.Debug("resolved endpoint", "provider", endpoint.Name, "url", display.MaskURL(endpoint.URL), "timeout", endpoint.Timeout)

	client := rpc.NewClient(rpc.ClientConfig{
		Name:    endpoint.Name,
		URL:     endpoint.URL,
		Timeout: endpoint.Timeout,
		Logger:  logger,
	})

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	banner := &display.BannerFormatter{Version: version, Provider: endpoint.Name, URL: endpoint.URL}
	if err := banner.Format(stdout); err != nil {
		return err
	}

	report := watch.NewRunner(client, opts, stdout, stderr, logger).Run(cmd.Context())
	logger.Debug("watch finished", "polls", report.Polls, "failures", report.Failures, "alerts", report.Alerts)

	if opts.Count > 0 {
		return (&display.SummaryFormatter{Report: report}).Format(stdout)
	}
	return nil
}
