// cmd/questctl/dashboard.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/contracts"
)

func newDashboardCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "dashboard <address>",
		Short: "Summarize an account: balance, quests, badges, and rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPlatform(contracts.QuestPlatformName, contracts.BadgeNFTName, contracts.RewardTokenName)
			if err != nil {
				return err
			}
			out, err := p.Dashboard.Execute(cmd.Context(), dto.DashboardInput{
				Address:         args[0],
				LeaderboardSize: size,
			})
			if err != nil {
				return describeError(err)
			}
			return a.emit(out, func() error {
				return printDashboard(a, out)
			})
		},
	}
	cmd.Flags().IntVar(&size, "leaderboard", 5, "Leaderboard rows to include")
	return cmd
}

func printDashboard(a *app, d *dto.DashboardOutput) error {
	a.out.Bold("Dashboard for %s", d.Address)
	a.out.Field("Balance", d.Balance.Display)
	if d.Rank != nil {
		a.out.Field("Rank", fmt.Sprintf("#%d (%s completed)", d.Rank.Rank, d.Rank.CompletionCount))
	} else {
		a.out.Field("Rank", "-")
	}
	if len(d.Badges) > 0 {
		a.out.Field("Badges", strings.Join(d.Badges, ", "))
	} else {
		a.out.Field("Badges", "none")
	}

	fmt.Fprintln(a.out.Writer())
	a.out.Bold("Active quests")
	if err := printQuestTable(a, d.ActiveQuests); err != nil {
		return err
	}

	fmt.Fprintln(a.out.Writer())
	a.out.Bold("Completed quests")
	if err := printQuestTable(a, d.CompletedQuests); err != nil {
		return err
	}

	fmt.Fprintln(a.out.Writer())
	a.out.Bold("Leaderboard")
	return printLeaderboard(a, d.Leaderboard)
}
