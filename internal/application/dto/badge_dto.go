package dto

// MintBadgeInput contains the input for minting a badge.
type MintBadgeInput struct {
	// Source signs the call. Empty means the wallet's active account.
	Source  string `json:"source,omitempty"`
	To      string `json:"to"`
	BadgeID string `json:"badgeId"`
	QuestID string `json:"questId"`

	// Metadata defaults to "{}".
	Metadata string `json:"metadata,omitempty"`
}

// TransferBadgeInput contains the input for moving a badge between accounts.
type TransferBadgeInput struct {
	From    string `json:"from"`
	To      string `json:"to"`
	BadgeID string `json:"badgeId"`
}
