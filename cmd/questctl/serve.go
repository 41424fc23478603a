// cmd/questctl/serve.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/api"
	"github.com/altuslabsxyz/questline/internal/config"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/internal/output"
	"github.com/altuslabsxyz/questline/internal/version"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Long: `Run the JSON API for browser clients.

Reads are simulated against the configured ledger. Writes use the two-step
flow: POST /invocations/prepare returns an unsigned envelope for the client's
wallet to sign, and POST /transactions submits the signed envelope and waits
for its outcome. The server never holds keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if a.opts.flags.LogLevel == "" {
				logger, err := output.NewAppLogger(a.out.ErrWriter(), cfg.Server.LogLevel, cfg.Server.LogFormat)
				if err != nil {
					return err
				}
				a.logger = logger
			}

			for _, name := range []string{contracts.QuestPlatformName, contracts.BadgeNFTName, contracts.RewardTokenName} {
				if err := config.RequireContracts(cfg, name); err != nil {
					a.logger.Warn("contract not configured, its routes will fail", "contract", name)
				}
			}

			inv, err := a.invoker()
			if err != nil {
				return err
			}
			platform, err := a.readPlatform()
			if err != nil {
				return err
			}

			handler, err := api.New(api.Config{
				Platform: platform,
				Pipeline: inv,
				Ledger:   a.ledgerClient(),
				Logger:   a.logger,
				Version:  version.Version,
			})
			if err != nil {
				return err
			}

			server := api.NewServer(cfg.Server.Listen, handler, a.logger)
			if err := server.Listen(); err != nil {
				return err
			}
			a.out.Success("API listening on http://%s", server.Addr())
			a.out.Info("  Ledger: %s", cfg.Network.RPCURL)
			a.out.Info("  OpenAPI: http://%s/openapi.json", server.Addr())
			return server.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&a.opts.flags.Listen, "listen", "", "Listen address (overrides server.listen)")
	return cmd
}
