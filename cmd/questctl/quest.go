// cmd/questctl/quest.go
package main

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/internal/output"
	"github.com/altuslabsxyz/questline/pkg/network"
)

func newQuestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Read and manage quests",
	}
	cmd.AddCommand(
		newQuestGetCmd(a),
		newQuestListCmd(a),
		newQuestCountCmd(a),
		newQuestCompletionsCmd(a),
		newQuestCompletedCmd(a),
		newLeaderboardCmd(a),
		newQuestCreateCmd(a),
		newQuestCompleteCmd(a),
		newQuestCancelCmd(a),
	)
	return cmd
}

func newQuestGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <quest-id>",
		Short: "Show a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			q, err := p.Quests.Get(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			if err := q.Validate(); err != nil {
				a.out.Warn("%v", err)
			}
			return a.emit(q, func() error {
				printQuest(a.out, q)
				return nil
			})
		},
	}
}

func printQuest(out *output.Logger, q *domain.Quest) {
	status := q.EffectiveStatus(time.Now())
	out.Bold("%s", q.Title)
	out.Field("ID", q.ID)
	out.Field("Status", status)
	out.Field("Creator", q.Creator)
	if q.Description != "" {
		out.Field("Description", q.Description)
	}
	out.Field("Reward", q.RewardDisplay())
	if q.RewardToken != "" {
		out.Field("Reward token", q.RewardToken)
	}
	if q.BadgeID != nil {
		out.Field("Badge", *q.BadgeID)
	}
	out.Field("Created", formatLedgerTime(q.CreatedAt))
	if q.ExpiresAt != nil {
		out.Field("Expires", formatLedgerTime(*q.ExpiresAt))
	}
	switch {
	case q.IsFull():
		out.Field("Completions", fmt.Sprintf("%s / %s (full)", q.CurrentCompletions, q.MaxCompletions))
	case q.MaxCompletions != nil:
		out.Field("Completions", fmt.Sprintf("%s / %s", q.CurrentCompletions, q.MaxCompletions))
	default:
		out.Field("Completions", q.CurrentCompletions.String())
	}
}

func formatLedgerTime(ts uint64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(int64(ts), 0).UTC().Format(time.RFC3339)
}

func newQuestListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			quests, err := p.Quests.ListActive(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			return a.emit(quests, func() error {
				return printQuestTable(a, quests)
			})
		},
	}
}

func printQuestTable(a *app, quests []domain.Quest) error {
	if len(quests) == 0 {
		a.out.Info("No quests found")
		return nil
	}
	now := time.Now()
	table := output.NewTable(a.out.Writer(), "ID", "TITLE", "STATUS", "REWARD", "COMPLETIONS")
	for _, q := range quests {
		completions := q.CurrentCompletions.String()
		if q.MaxCompletions != nil {
			completions = fmt.Sprintf("%s/%s", q.CurrentCompletions, q.MaxCompletions)
		}
		status := string(q.EffectiveStatus(now))
		if status == string(domain.QuestActive) && q.IsFull() {
			status = "full"
		}
		table.Row(q.ID, output.Truncate(q.Title, 40), status, q.RewardDisplay(), completions)
	}
	return table.Flush()
}

func newQuestCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the total number of quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			n, err := p.Quests.Count(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			return a.emit(map[string]sdkmath.Int{"count": n}, func() error {
				fmt.Fprintln(a.out.Writer(), n)
				return nil
			})
		},
	}
}

func newQuestCompletionsCmd(a *app) *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "completions <address>",
		Short: "List the quests an account has completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			if details {
				quests, err := p.Quests.CompletedQuests(cmd.Context(), args[0])
				if err != nil {
					return describeError(err)
				}
				return a.emit(quests, func() error {
					return printQuestTable(a, quests)
				})
			}
			ids, err := p.Quests.Completions(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}
			return a.emit(ids, func() error {
				if len(ids) == 0 {
					a.out.Info("No completed quests")
				}
				for _, id := range ids {
					fmt.Fprintln(a.out.Writer(), id)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "Fetch each completed quest")
	return cmd
}

func newQuestCompletedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "completed <address> <quest-id>",
		Short: "Check whether an account has completed a quest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			done, err := p.Quests.HasCompleted(cmd.Context(), args[0], args[1])
			if err != nil {
				return describeError(err)
			}
			return a.emit(map[string]bool{"completed": done}, func() error {
				fmt.Fprintln(a.out.Writer(), done)
				return nil
			})
		},
	}
}

func newLeaderboardCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show accounts ranked by completed quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName)
			if err != nil {
				return err
			}
			rows, err := p.Quests.Leaderboard(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			return a.emit(rows, func() error {
				return printLeaderboard(a, rows)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum rows to show (0 for all)")
	return cmd
}

func printLeaderboard(a *app, rows []domain.LeaderboardRow) error {
	if len(rows) == 0 {
		a.out.Info("Leaderboard is empty")
		return nil
	}
	table := output.NewTable(a.out.Writer(), "RANK", "ADDRESS", "COMPLETED")
	for _, row := range rows {
		table.Row(row.Rank, row.Address, row.CompletionCount.String())
	}
	return table.Flush()
}

func newQuestCreateCmd(a *app) *cobra.Command {
	var (
		input          dto.CreateQuestInput
		expiresAt      uint64
		expiresIn      time.Duration
		maxCompletions uint64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a quest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("expires-at") && cmd.Flags().Changed("expires-in") {
				return fmt.Errorf("--expires-at and --expires-in are mutually exclusive")
			}
			switch {
			case cmd.Flags().Changed("expires-at"):
				input.ExpiresAt = &expiresAt
			case cmd.Flags().Changed("expires-in"):
				ts := uint64(time.Now().Add(expiresIn).Unix())
				input.ExpiresAt = &ts
			}
			if cmd.Flags().Changed("max-completions") {
				input.MaxCompletions = &maxCompletions
			}
			return a.write(cmd, "create_quest", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Quests.Create(ctx, input)
			}, contracts.QuestPlatformName)
		},
	}
	f := cmd.Flags()
	f.StringVar(&input.Creator, "creator", "", "Creator account, also the signer")
	f.StringVar(&input.QuestID, "id", "", "Quest id (up to 9 characters of [A-Za-z0-9_])")
	f.StringVar(&input.Title, "title", "", "Quest title")
	f.StringVar(&input.Description, "description", "", "Quest description")
	f.StringVar(&input.Reward, "reward", "0", "Reward in display units, e.g. 1000.5")
	f.StringVar(&input.BadgeID, "badge", "", "Badge awarded on completion")
	f.Uint64Var(&expiresAt, "expires-at", 0, "Expiry as a unix timestamp")
	f.DurationVar(&expiresIn, "expires-in", 0, "Expiry relative to now, e.g. 72h")
	f.Uint64Var(&maxCompletions, "max-completions", 0, "Maximum number of completions")
	_ = cmd.MarkFlagRequired("creator")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newQuestCompleteCmd(a *app) *cobra.Command {
	var input dto.CompleteQuestInput
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Complete a quest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "complete_quest", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Quests.Complete(ctx, input)
			}, contracts.QuestPlatformName)
		},
	}
	cmd.Flags().StringVar(&input.User, "user", "", "Completing account, also the signer")
	cmd.Flags().StringVar(&input.QuestID, "id", "", "Quest id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newQuestCancelCmd(a *app) *cobra.Command {
	var input dto.CancelQuestInput
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a quest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, "cancel_quest", func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error) {
				return p.Quests.Cancel(ctx, input)
			}, contracts.QuestPlatformName)
		},
	}
	cmd.Flags().StringVar(&input.Admin, "admin", "", "Admin account (defaults to the wallet identity)")
	cmd.Flags().StringVar(&input.QuestID, "id", "", "Quest id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
