// Package dto contains Data Transfer Objects used for input/output
// of the application services. These objects decouple the application
// layer from external concerns like CLI flags or JSON request bodies.
package dto

// CreateQuestInput contains the input for creating a quest.
type CreateQuestInput struct {
	// Creator signs the call and is recorded as the quest owner.
	Creator     string `json:"creator"`
	QuestID     string `json:"questId"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Reward is a display amount, e.g. "1000" or "12.5".
	Reward string `json:"reward"`

	// BadgeID is empty when completing the quest mints no badge.
	BadgeID string `json:"badgeId,omitempty"`

	// ExpiresAt is a unix timestamp in seconds.
	ExpiresAt      *uint64 `json:"expiresAt,omitempty"`
	MaxCompletions *uint64 `json:"maxCompletions,omitempty"`
}

// CompleteQuestInput contains the input for completing a quest.
type CompleteQuestInput struct {
	// User signs the call and receives the reward.
	User    string `json:"user"`
	QuestID string `json:"questId"`
}

// CancelQuestInput contains the input for cancelling a quest.
type CancelQuestInput struct {
	// Admin signs the call. Empty means the wallet's active account.
	Admin   string `json:"admin,omitempty"`
	QuestID string `json:"questId"`
}
