// Package application wires the domain services over the contract read and
// write pipelines.
package application

import (
	"github.com/altuslabsxyz/questline/internal/application/badge"
	"github.com/altuslabsxyz/questline/internal/application/dashboard"
	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/application/quest"
	"github.com/altuslabsxyz/questline/internal/application/token"
	"github.com/altuslabsxyz/questline/internal/contracts"
)

// PlatformService provides unified access to the quest platform, badge, and
// token contracts.
type PlatformService struct {
	Quests    *quest.Service
	Badges    *badge.Service
	Tokens    *token.Service
	Dashboard *dashboard.DashboardUseCase

	addresses contracts.Addresses
}

// ServiceConfig holds configuration for creating a PlatformService.
type ServiceConfig struct {
	Reader    ports.ContractReader
	Writer    ports.ContractWriter
	Contracts contracts.Addresses
}

// NewPlatformService creates a PlatformService. Writer may be nil for a
// read-only service.
func NewPlatformService(cfg ServiceConfig) *PlatformService {
	quests := quest.NewService(cfg.Reader, cfg.Writer, cfg.Contracts.QuestPlatform)
	badges := badge.NewService(cfg.Reader, cfg.Writer, cfg.Contracts.BadgeNFT)
	tokens := token.NewService(cfg.Reader, cfg.Writer, cfg.Contracts.RewardToken)

	return &PlatformService{
		Quests:    quests,
		Badges:    badges,
		Tokens:    tokens,
		Dashboard: dashboard.NewDashboardUseCase(quests, badges, tokens),
		addresses: cfg.Contracts,
	}
}

// Contracts returns the configured contract ids.
func (s *PlatformService) Contracts() contracts.Addresses {
	return s.addresses
}
