// cmd/questctl/badge.go
package main

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/pkg/network"
)

func newBadgeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Read and manage badges",
	}
	cmd.AddCommand(
		newBadgeGetCmd(a),
		newBadgeListCmd(a),
		newBadgeOwnerCmd(a),
		newBadgeTotalCmd(a),
		newBadgeMintCmd(a),
		newBadgeTransferCmd(a),
	)
	return cmd
}

func newBadgeGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <badge-id>",
		Short: "Show a badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.BadgeNFTName)
			if err != nil {
				return err
			}
			b, err := p.Badges.Get(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			return a.emit(b, func() error {
				a.out.Bold("Badge %s", b.ID)
				a.out.Field("Owner", b.Owner)
				a.out.Field("Quest", b.QuestID)
				a.out.Field("Minted", formatLedgerTime(b.MintedAt))
				a.out.Field("Metadata", b.Metadata)
				return nil
			})
		},
	}
}

func newBadgeListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <address>",
		Short: "List the badges an account owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.BadgeNFTName)
			if err != nil {
				return err
			}
			ids, err := p.Badges.UserBadges(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			return a.emit(ids, func() error {
				if len(ids) == 0 {
					a.out.Info("No badges")
				}
				for _, id := range ids {
					fmt.Fprintln(a.out.Writer(), id)
				}
				return nil
			})
		},
	}
}

func newBadgeOwnerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "owner <badge-id>",
		Short: "Show the owner of a badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.BadgeNFTName)
			if err != nil {
				return err
			}
			owner, err := p.Badges.Owner(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			return a.emit(map[string]string{"owner": owner}, func() error {
				fmt.Fprintln(a.out.Writer(), owner)
				return nil
			})
		},
	}
}

func newBadgeTotalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the number of badges minted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.BadgeNFTName)
			if err != nil {
				return err
			}
			n, err := p.Badges.Total(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			return a.emit(map[string]sdkmath.Int{"total": n}, func() error {
				fmt.Fprintln(a.out.Writer(), n)
				return nil
			})
		},
	}
}

func newBadgeMintCmd(a *app) *cobra.Command {
	var input dto.MintBadgeInput
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint a badge (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "mint_badge", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Badges.Mint(ctx, input)
			}, contracts.BadgeNFTName)
		},
	}
	f := cmd.Flags()
	f.StringVar(&input.Source, "source", "", "Signing admin account (defaults to the wallet identity)")
	f.StringVar(&input.To, "to", "", "Recipient account")
	f.StringVar(&input.BadgeID, "id", "", "Badge id")
	f.StringVar(&input.QuestID, "quest", "", "Quest the badge belongs to")
	f.StringVar(&input.Metadata, "metadata", "", "Badge metadata (defaults to {})")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("quest")
	return cmd
}

func newBadgeTransferCmd(a *app) *cobra.Command {
	var input dto.TransferBadgeInput
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer a badge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "transfer_badge", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Badges.Transfer(ctx, input)
			}, contracts.BadgeNFTName)
		},
	}
	f := cmd.Flags()
	f.StringVar(&input.From, "from", "", "Current owner, also the signer")
	f.StringVar(&input.To, "to", "", "Recipient account")
	f.StringVar(&input.BadgeID, "id", "", "Badge id")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
