package dto

import "github.com/altuslabsxyz/questline/internal/domain"

// DashboardInput contains the input for building a user dashboard.
type DashboardInput struct {
	Address string
	// LeaderboardSize limits the rows returned. Zero returns all of them.
	LeaderboardSize int
}

// DashboardOutput is everything the UI shows for one account.
type DashboardOutput struct {
	Address         string                  `json:"address"`
	Balance         domain.Balance          `json:"balance"`
	ActiveQuests    []domain.Quest          `json:"activeQuests"`
	CompletedQuests []domain.Quest          `json:"completedQuests"`
	Badges          []string                `json:"badges"`
	Leaderboard     []domain.LeaderboardRow `json:"leaderboard"`

	// Rank is nil when the account has no completions.
	Rank *domain.LeaderboardRow `json:"rank,omitempty"`
}
