// Package badge reads and moves quest completion badges.
package badge

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Service exposes the badge NFT contract.
type Service struct {
	client *contracts.Client
}

// NewService creates a Service for the badge contract deployed at contractID.
func NewService(reader ports.ContractReader, writer ports.ContractWriter, contractID string) *Service {
	return &Service{client: contracts.NewClient(contracts.BadgeNFT, contractID, reader, writer)}
}

// Get returns the badge with id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Badge, error) {
	v, err := s.client.Read(ctx, contracts.FnGetBadge, id)
	if err != nil {
		return nil, err
	}
	b := domain.DecodeBadge(v)
	if b == nil {
		return nil, fmt.Errorf("badge %q: %w", id, ports.ErrNotFound)
	}
	return b, nil
}

// UserBadges returns the ids of the badges user holds.
func (s *Service) UserBadges(ctx context.Context, user string) ([]string, error) {
	v, err := s.client.Read(ctx, contracts.FnGetUserBadges, user)
	if err != nil {
		return nil, err
	}
	return domain.DecodeSymbols(v), nil
}

// Owner returns the account holding the badge.
func (s *Service) Owner(ctx context.Context, id string) (string, error) {
	v, err := s.client.Read(ctx, contracts.FnOwnerOf, id)
	if err != nil {
		return "", err
	}
	owner := domain.DecodeOptionalText(v)
	if owner == nil {
		return "", fmt.Errorf("badge %q: %w", id, ports.ErrNotFound)
	}
	return *owner, nil
}

// Total returns the number of badges minted.
func (s *Service) Total(ctx context.Context) (sdkmath.Int, error) {
	v, err := s.client.Read(ctx, contracts.FnTotalBadges)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return scval.AsInt(v, sdkmath.ZeroInt()), nil
}

// Mint issues a badge. Quest completion normally mints badges itself; this
// is the admin path.
func (s *Service) Mint(ctx context.Context, input dto.MintBadgeInput) (*network.Outcome, error) {
	metadata := input.Metadata
	if metadata == "" {
		metadata = domain.DefaultBadgeMetadata
	}
	return s.client.Write(ctx, contracts.FnMintBadge, input.Source,
		input.To, input.BadgeID, input.QuestID, metadata)
}

// Transfer moves a badge, signed by its current owner.
func (s *Service) Transfer(ctx context.Context, input dto.TransferBadgeInput) (*network.Outcome, error) {
	return s.client.Write(ctx, contracts.FnTransferBadge, input.From, input.From, input.To, input.BadgeID)
}
