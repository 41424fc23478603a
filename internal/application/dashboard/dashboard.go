// Package dashboard assembles the per-account overview shown by the UI.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// QuestReader is the quest read surface the dashboard needs.
type QuestReader interface {
	ListActive(ctx context.Context) ([]domain.Quest, error)
	CompletedQuests(ctx context.Context, user string) ([]domain.Quest, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardRow, error)
}

// BadgeReader lists an account's badges.
type BadgeReader interface {
	UserBadges(ctx context.Context, user string) ([]string, error)
}

// BalanceReader reads token balances.
type BalanceReader interface {
	Balance(ctx context.Context, address string) (domain.Balance, error)
}

// DashboardUseCase gathers quests, badges, balance, and rank for one account.
type DashboardUseCase struct {
	quests QuestReader
	badges BadgeReader
	tokens BalanceReader
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(quests QuestReader, badges BadgeReader, tokens BalanceReader) *DashboardUseCase {
	return &DashboardUseCase{
		quests: quests,
		badges: badges,
		tokens: tokens,
	}
}

// Execute runs the independent reads concurrently. Any failed read fails the
// dashboard.
func (uc *DashboardUseCase) Execute(ctx context.Context, input dto.DashboardInput) (*dto.DashboardOutput, error) {
	if _, err := scval.EncodeHint(input.Address, scval.HintAddress); err != nil {
		return nil, err
	}

	out := &dto.DashboardOutput{Address: input.Address}
	var leaderboard []domain.LeaderboardRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quests, err := uc.quests.ListActive(gctx)
		out.ActiveQuests = quests
		return err
	})
	g.Go(func() error {
		quests, err := uc.quests.CompletedQuests(gctx, input.Address)
		out.CompletedQuests = quests
		return err
	})
	g.Go(func() error {
		rows, err := uc.quests.Leaderboard(gctx)
		leaderboard = rows
		return err
	})
	g.Go(func() error {
		badges, err := uc.badges.UserBadges(gctx, input.Address)
		out.Badges = badges
		return err
	})
	g.Go(func() error {
		balance, err := uc.tokens.Balance(gctx, input.Address)
		out.Balance = balance
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if row, ok := domain.FindRank(leaderboard, input.Address); ok {
		out.Rank = &row
	}
	if input.LeaderboardSize > 0 && len(leaderboard) > input.LeaderboardSize {
		leaderboard = leaderboard[:input.LeaderboardSize]
	}
	out.Leaderboard = leaderboard
	return out, nil
}
