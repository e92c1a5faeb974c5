package main

import (
	"github.com/spf13/cobra"

	"github.com/dando385/gas-watcher/internal/display"
)

func providersCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List configured RPC providers",
		Long: `List the providers defined in the config file. The provider used when
--provider is not given is marked with *. URL paths are masked since they
usually contain API keys.

Examples:
  gaswatch providers
  gaswatch providers --config ./my-providers.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(g.verbose)
			cfg, source, err := loadConfig(g, logger)
			if err != nil {
				return err
			}

			selected, err := cfg.Resolve("", "", 0)
			if err != nil {
				return err
			}

			rows := make([]display.ProviderRow, len(cfg.Providers))
			for i, p := range cfg.Providers {
				rows[i] = display.ProviderRow{
					Name:    p.Name,
					Type:    p.Type,
					URL:     p.URL,
					Timeout: p.Timeout,
					Default: p.Name == selected.Name,
				}
			}

			f := &display.ProvidersFormatter{Source: source, Rows: rows}
			return f.Format(cmd.OutOrStdout())
		},
	}
}
