// cmd/questctl/config.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/config"
	"github.com/altuslabsxyz/questline/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.format != output.FormatText {
				return output.Render(a.out.Writer(), a.format, config.ToFile(a.cfg))
			}
			body, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = a.out.Writer().Write(body)
			return err
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Long: `Write questctl.toml with the default settings and any global flags given,
for example:

  questctl config init --rpc-url https://soroban-testnet.stellar.org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			a.opts.flags.Apply(cfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}

			path := config.NewLoader(a.opts.configPath).Path()
			if err := config.WriteFile(path, cfg, force); err != nil {
				if !force {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}
			a.out.Success("Wrote %s", path)
			a.out.Info("  Set the contract ids under [contracts] before running commands.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
