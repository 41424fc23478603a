// Package domain holds the read-only projections of contract state and the
// tolerant decoders that build them from contract return values.
package domain

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// QuestStatus is the lifecycle state of a quest.
type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestCancelled QuestStatus = "cancelled"
	QuestExpired   QuestStatus = "expired"
)

// ErrCompletionsExceeded reports a quest whose completion count is above its
// declared maximum.
var ErrCompletionsExceeded = errors.New("current completions exceed max completions")

// Quest is a unit of work a user can complete on chain for a reward.
type Quest struct {
	ID          string `json:"id"`
	Creator     string `json:"creator"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// RewardAmount is in base units (7 implied decimals).
	RewardAmount sdkmath.Int `json:"rewardAmount"`
	RewardToken  string      `json:"rewardToken"`

	// BadgeID is nil when the quest awards no badge.
	BadgeID *string     `json:"badgeId,omitempty"`
	Status  QuestStatus `json:"status"`

	// CreatedAt and ExpiresAt are unix seconds.
	CreatedAt uint64  `json:"createdAt"`
	ExpiresAt *uint64 `json:"expiresAt,omitempty"`

	// MaxCompletions is nil when the quest is unlimited. Both counts are
	// i128 on the contract.
	MaxCompletions     *sdkmath.Int `json:"maxCompletions,omitempty"`
	CurrentCompletions sdkmath.Int  `json:"currentCompletions"`
}

// Validate checks the completion cap.
func (q *Quest) Validate() error {
	if q.MaxCompletions != nil && completions(q).GT(*q.MaxCompletions) {
		return fmt.Errorf("quest %s: %w (%s > %s)", q.ID, ErrCompletionsExceeded, completions(q), q.MaxCompletions)
	}
	return nil
}

// RewardDisplay returns the reward as a display amount.
func (q *Quest) RewardDisplay() string {
	return scval.FromBaseUnits(q.RewardAmount)
}

// EffectiveStatus reports expired for an active quest whose deadline passed.
func (q *Quest) EffectiveStatus(now time.Time) QuestStatus {
	if q.Status == QuestActive && q.ExpiresAt != nil && uint64(now.Unix()) > *q.ExpiresAt {
		return QuestExpired
	}
	return q.Status
}

// IsFull reports whether the quest reached its completion cap.
func (q *Quest) IsFull() bool {
	return q.MaxCompletions != nil && completions(q).GTE(*q.MaxCompletions)
}

// completions treats an unset count as zero.
func completions(q *Quest) sdkmath.Int {
	if q.CurrentCompletions.IsNil() {
		return sdkmath.ZeroInt()
	}
	return q.CurrentCompletions
}

// DecodeQuest builds a Quest from a get_quest struct. Missing fields take
// their defaults. It returns nil when v is not a struct, which is how an
// absent quest comes back.
func DecodeQuest(v scval.Value) *Quest {
	if v.Kind() != scval.KindStruct {
		return nil
	}
	status := QuestStatus(textField(v, "status", string(QuestActive)))
	if status == "" {
		status = QuestActive
	}
	return &Quest{
		ID:                 textField(v, "id", ""),
		Creator:            textField(v, "creator", ""),
		Title:              textField(v, "title", ""),
		Description:        textField(v, "description", ""),
		RewardAmount:       intField(v, "reward_amount"),
		RewardToken:        textField(v, "reward_token", ""),
		BadgeID:            optionalText(v, "badge_id"),
		Status:             status,
		CreatedAt:          uintField(v, "created_at"),
		ExpiresAt:          optionalUint(v, "expires_at"),
		MaxCompletions:     optionalInt(v, "max_completions"),
		CurrentCompletions: intField(v, "current_completions"),
	}
}

// DecodeQuests decodes a vector of quests, skipping entries that are not
// structs.
func DecodeQuests(v scval.Value) []Quest {
	items, _ := v.Items()
	quests := make([]Quest, 0, len(items))
	for _, item := range items {
		if q := DecodeQuest(item); q != nil {
			quests = append(quests, *q)
		}
	}
	return quests
}
