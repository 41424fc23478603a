// Package token reads balances of and moves the reward token.
package token

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"golang.org/x/sync/errgroup"

	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Service exposes the reward token contract.
type Service struct {
	client *contracts.Client
}

// NewService creates a Service for the token deployed at contractID.
func NewService(reader ports.ContractReader, writer ports.ContractWriter, contractID string) *Service {
	return &Service{client: contracts.NewClient(contracts.RewardToken, contractID, reader, writer)}
}

// Balance returns address's holding. An account the token has never seen has
// a zero balance.
func (s *Service) Balance(ctx context.Context, address string) (domain.Balance, error) {
	v, err := s.client.Read(ctx, contracts.FnBalance, address)
	if err != nil {
		return domain.Balance{}, err
	}
	return domain.NewBalance(address, scval.AsInt(v, sdkmath.ZeroInt())), nil
}

// Metadata reads name, symbol, decimals, and total supply concurrently.
func (s *Service) Metadata(ctx context.Context) (*domain.TokenMetadata, error) {
	var name, symbol, decimals, supply scval.Value

	g, gctx := errgroup.WithContext(ctx)
	read := func(fn string, dst *scval.Value) {
		g.Go(func() error {
			v, err := s.client.Read(gctx, fn)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		})
	}
	read(contracts.FnName, &name)
	read(contracts.FnSymbol, &symbol)
	read(contracts.FnDecimals, &decimals)
	read(contracts.FnTotalSupply, &supply)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.TokenMetadata{
		Name:        scval.AsString(name, ""),
		Symbol:      scval.AsString(symbol, ""),
		Decimals:    uint32(scval.AsUint64(decimals, 0)),
		TotalSupply: scval.AsInt(supply, sdkmath.ZeroInt()),
	}, nil
}

// Mint creates amount (a display amount) for to. source must be the token
// admin.
func (s *Service) Mint(ctx context.Context, input dto.MintTokenInput) (*network.Outcome, error) {
	amount, err := scval.ToBaseUnits(input.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	return s.client.Write(ctx, contracts.FnMint, input.Source, input.To, amount)
}

// Transfer moves amount from one account to another, signed by the sender.
func (s *Service) Transfer(ctx context.Context, input dto.TransferTokenInput) (*network.Outcome, error) {
	amount, err := scval.ToBaseUnits(input.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	return s.client.Write(ctx, contracts.FnTransfer, input.From, input.From, input.To, amount)
}
