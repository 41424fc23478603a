// cmd/questctl/token.go
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Read and move the reward token",
	}
	cmd.AddCommand(
		newTokenBalanceCmd(a),
		newTokenMetadataCmd(a),
		newTokenMintCmd(a),
		newTokenTransferCmd(a),
	)
	return cmd
}

func newTokenBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show an account's reward balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.RewardTokenName)
			if err != nil {
				return err
			}
			bal, err := p.Tokens.Balance(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			return a.emit(bal, func() error {
				a.out.Field("Address", bal.Address)
				a.out.Field("Balance", bal.Display)
				a.out.Debug("base units: %s", bal.Amount)
				return nil
			})
		},
	}
}

func newTokenMetadataCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Show the reward token's name, symbol, decimals, and supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.RewardTokenName)
			if err != nil {
				return err
			}
			meta, err := p.Tokens.Metadata(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			return a.emit(meta, func() error {
				a.out.Bold("%s (%s)", meta.Name, meta.Symbol)
				a.out.Field("Decimals", meta.Decimals)
				a.out.Field("Total supply", scval.FromBaseUnits(meta.TotalSupply))
				return nil
			})
		},
	}
}

func newTokenMintCmd(a *app) *cobra.Command {
	var input dto.MintTokenInput
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint reward tokens (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "mint", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Tokens.Mint(ctx, input)
			}, contracts.RewardTokenName)
		},
	}
	f := cmd.Flags()
	f.StringVar(&input.Source, "source", "", "Signing admin account (defaults to the wallet identity)")
	f.StringVar(&input.To, "to", "", "Recipient account")
	f.StringVar(&input.Amount, "amount", "", "Amount in display units, e.g. 25.5")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newTokenTransferCmd(a *app) *cobra.Command {
	var input dto.TransferTokenInput
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer reward tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "transfer", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Tokens.Transfer(ctx, input)
			}, contracts.RewardTokenName)
		},
	}
	f := cmd.Flags()
	f.StringVar(&input.From, "from", "", "Sending account, also the signer")
	f.StringVar(&input.To, "to", "", "Recipient account")
	f.StringVar(&input.Amount, "amount", "", "Amount in display units, e.g. 25.5")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
