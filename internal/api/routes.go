package api

import (
	"context"
	"net/http"

	sdkmath "cosmossdk.io/math"
	"github.com/danielgtaylor/huma/v2"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/domain"
)

type idPath struct {
	ID string `path:"id" doc:"Quest or badge id (1-9 characters of [A-Za-z0-9_])"`
}

type addressPath struct {
	Address string `path:"address" doc:"Account address"`
}

type body[T any] struct {
	Body T
}

func reply[T any](v T) *body[T] {
	return &body[T]{Body: v}
}

// HealthResponse reports API and ledger status.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Ledger  string `json:"ledger" example:"healthy"`
	Network string `json:"network,omitempty"`
	Version string `json:"version"`
}

func registerHealth(api huma.API, cfg Config) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"meta"},
	}, func(ctx context.Context, _ *struct{}) (*body[HealthResponse], error) {
		resp := HealthResponse{Status: "ok", Ledger: "unknown", Version: cfg.Version}
		if cfg.Pipeline != nil {
			resp.Network = cfg.Pipeline.NetworkPassphrase()
		}
		if cfg.Ledger != nil {
			status, err := cfg.Ledger.GetHealth(ctx)
			if err != nil {
				return nil, newAPIError(http.StatusServiceUnavailable, CodeUnavailable, err.Error())
			}
			resp.Ledger = status
		}
		return reply(resp), nil
	})
}

// CountResponse carries an i128 counter as a decimal string.
type CountResponse struct {
	Count sdkmath.Int `json:"count" doc:"Decimal string"`
}

func registerQuests(api huma.API, p *application.PlatformService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-active-quests",
		Method:      http.MethodGet,
		Path:        "/quests",
		Summary:     "List active quests",
		Tags:        []string{"quests"},
	}, func(ctx context.Context, _ *struct{}) (*body[[]domain.Quest], error) {
		quests, err := p.Quests.ListActive(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(quests), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "quest-count",
		Method:      http.MethodGet,
		Path:        "/stats/quest-count",
		Summary:     "Number of quests created",
		Tags:        []string{"stats"},
	}, func(ctx context.Context, _ *struct{}) (*body[CountResponse], error) {
		n, err := p.Quests.Count(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(CountResponse{Count: n}), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-quest",
		Method:      http.MethodGet,
		Path:        "/quests/{id}",
		Summary:     "Get a quest",
		Tags:        []string{"quests"},
	}, func(ctx context.Context, input *idPath) (*body[*domain.Quest], error) {
		q, err := p.Quests.Get(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(q), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "leaderboard",
		Method:      http.MethodGet,
		Path:        "/leaderboard",
		Summary:     "Completion leaderboard",
		Tags:        []string{"quests"},
	}, func(ctx context.Context, _ *struct{}) (*body[[]domain.LeaderboardRow], error) {
		rows, err := p.Quests.Leaderboard(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(rows), nil
	})
}

// CompletedResponse reports whether a user completed a quest.
type CompletedResponse struct {
	Address   string `json:"address"`
	QuestID   string `json:"questId"`
	Completed bool   `json:"completed"`
}

func registerUsers(api huma.API, p *application.PlatformService) {
	huma.Register(api, huma.Operation{
		OperationID: "user-completions",
		Method:      http.MethodGet,
		Path:        "/users/{address}/completions",
		Summary:     "Ids of the quests a user completed",
		Tags:        []string{"users"},
	}, func(ctx context.Context, input *addressPath) (*body[[]string], error) {
		ids, err := p.Quests.Completions(ctx, input.Address)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(ids), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "user-completed-quest",
		Method:      http.MethodGet,
		Path:        "/users/{address}/completed/{questID}",
		Summary:     "Whether a user completed a quest",
		Tags:        []string{"users"},
	}, func(ctx context.Context, input *struct {
		Address string `path:"address"`
		QuestID string `path:"questID"`
	}) (*body[CompletedResponse], error) {
		done, err := p.Quests.HasCompleted(ctx, input.Address, input.QuestID)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(CompletedResponse{Address: input.Address, QuestID: input.QuestID, Completed: done}), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "user-badges",
		Method:      http.MethodGet,
		Path:        "/users/{address}/badges",
		Summary:     "Ids of the badges a user holds",
		Tags:        []string{"users"},
	}, func(ctx context.Context, input *addressPath) (*body[[]string], error) {
		ids, err := p.Badges.UserBadges(ctx, input.Address)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(ids), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "user-dashboard",
		Method:      http.MethodGet,
		Path:        "/users/{address}/dashboard",
		Summary:     "Quests, badges, balance, and rank of a user",
		Tags:        []string{"users"},
	}, func(ctx context.Context, input *struct {
		Address     string `path:"address"`
		Leaderboard int    `query:"leaderboard" minimum:"0" doc:"Leaderboard rows to include, 0 for all"`
	}) (*body[*dto.DashboardOutput], error) {
		out, err := p.Dashboard.Execute(ctx, dto.DashboardInput{
			Address:         input.Address,
			LeaderboardSize: input.Leaderboard,
		})
		if err != nil {
			return nil, handleError(err)
		}
		return reply(out), nil
	})
}

// OwnerResponse names a badge holder.
type OwnerResponse struct {
	BadgeID string `json:"badgeId"`
	Owner   string `json:"owner"`
}

func registerBadges(api huma.API, p *application.PlatformService) {
	huma.Register(api, huma.Operation{
		OperationID: "get-badge",
		Method:      http.MethodGet,
		Path:        "/badges/{id}",
		Summary:     "Get a badge",
		Tags:        []string{"badges"},
	}, func(ctx context.Context, input *idPath) (*body[*domain.Badge], error) {
		b, err := p.Badges.Get(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(b), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "badge-owner",
		Method:      http.MethodGet,
		Path:        "/badges/{id}/owner",
		Summary:     "Owner of a badge",
		Tags:        []string{"badges"},
	}, func(ctx context.Context, input *idPath) (*body[OwnerResponse], error) {
		owner, err := p.Badges.Owner(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(OwnerResponse{BadgeID: input.ID, Owner: owner}), nil
	})
}

func registerToken(api huma.API, p *application.PlatformService) {
	huma.Register(api, huma.Operation{
		OperationID: "token-metadata",
		Method:      http.MethodGet,
		Path:        "/token/metadata",
		Summary:     "Reward token metadata",
		Tags:        []string{"token"},
	}, func(ctx context.Context, _ *struct{}) (*body[*domain.TokenMetadata], error) {
		meta, err := p.Tokens.Metadata(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(meta), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "token-balance",
		Method:      http.MethodGet,
		Path:        "/token/balance/{address}",
		Summary:     "Reward token balance",
		Tags:        []string{"token"},
	}, func(ctx context.Context, input *addressPath) (*body[domain.Balance], error) {
		bal, err := p.Tokens.Balance(ctx, input.Address)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(bal), nil
	})
}
