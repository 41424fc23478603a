// Package quest reads and writes quests on the quest platform contract.
package quest

import (
	"context"
	"errors"
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

// detailConcurrency bounds the per-quest lookups of CompletedQuests.
const detailConcurrency = 8

// Service exposes the quest platform contract as domain operations.
type Service struct {
	client *contracts.Client
}

// NewService creates a Service for the quest platform deployed at contractID.
func NewService(reader ports.ContractReader, writer ports.ContractWriter, contractID string) *Service {
	return &Service{client: contracts.NewClient(contracts.QuestPlatform, contractID, reader, writer)}
}

// Get returns the quest with id. An absent quest is a not-found error.
func (s *Service) Get(ctx context.Context, id string) (*domain.Quest, error) {
	v, err := s.client.Read(ctx, contracts.FnGetQuest, id)
	if err != nil {
		return nil, err
	}
	q := domain.DecodeQuest(v)
	if q == nil {
		return nil, fmt.Errorf("quest %q: %w", id, ports.ErrNotFound)
	}
	return q, nil
}

// ListActive returns the quests that can currently be completed.
func (s *Service) ListActive(ctx context.Context) ([]domain.Quest, error) {
	v, err := s.client.Read(ctx, contracts.FnGetActiveQuests)
	if err != nil {
		return nil, err
	}
	return domain.DecodeQuests(v), nil
}

// Count returns the number of quests ever created.
func (s *Service) Count(ctx context.Context) (sdkmath.Int, error) {
	v, err := s.client.Read(ctx, contracts.FnGetQuestCount)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return scval.AsInt(v, sdkmath.ZeroInt()), nil
}

// HasCompleted reports whether user completed the quest.
func (s *Service) HasCompleted(ctx context.Context, user, id string) (bool, error) {
	v, err := s.client.Read(ctx, contracts.FnHasCompleted, user, id)
	if err != nil {
		return false, err
	}
	return scval.AsBool(v, false), nil
}

// Completions returns the ids of the quests user completed.
func (s *Service) Completions(ctx context.Context, user string) ([]string, error) {
	v, err := s.client.Read(ctx, contracts.FnGetUserCompletions, user)
	if err != nil {
		return nil, err
	}
	return domain.DecodeSymbols(v), nil
}

// CompletedQuests returns the full quests user completed, in completion
// order. Details are fetched concurrently once the id list is known. Ids whose
// quest no longer exists are skipped.
func (s *Service) CompletedQuests(ctx context.Context, user string) ([]domain.Quest, error) {
	ids, err := s.Completions(ctx, user)
	if err != nil {
		return nil, err
	}

	found := make([]*domain.Quest, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			q, err := s.Get(gctx, id)
			if errors.Is(err, ports.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("quest %s: %w", id, err)
			}
			found[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quests := make([]domain.Quest, 0, len(found))
	for _, q := range found {
		if q != nil {
			quests = append(quests, *q)
		}
	}
	return quests, nil
}

// Leaderboard returns the ranked completion counts.
func (s *Service) Leaderboard(ctx context.Context) ([]domain.LeaderboardRow, error) {
	v, err := s.client.Read(ctx, contracts.FnGetLeaderboard)
	if err != nil {
		return nil, err
	}
	return domain.DecodeLeaderboard(v), nil
}

// Create submits a new quest signed by its creator.
func (s *Service) Create(ctx context.Context, input dto.CreateQuestInput) (*network.Outcome, error) {
	reward, err := scval.ToBaseUnits(input.Reward)
	if err != nil {
		return nil, fmt.Errorf("reward: %w", err)
	}
	var badge interface{}
	if input.BadgeID != "" {
		badge = input.BadgeID
	}
	return s.client.Write(ctx, contracts.FnCreateQuest, input.Creator,
		input.Creator,
		input.QuestID,
		input.Title,
		input.Description,
		reward,
		badge,
		input.ExpiresAt,
		input.MaxCompletions,
	)
}

// Complete records user finishing the quest. The contract pays the reward
// and mints the quest's badge, if any.
func (s *Service) Complete(ctx context.Context, input dto.CompleteQuestInput) (*network.Outcome, error) {
	return s.client.Write(ctx, contracts.FnCompleteQuest, input.User, input.User, input.QuestID)
}

// Cancel closes a quest to further completions.
func (s *Service) Cancel(ctx context.Context, input dto.CancelQuestInput) (*network.Outcome, error) {
	return s.client.Write(ctx, contracts.FnCancelQuest, input.Admin, input.QuestID)
}
