package domain

import "github.com/altuslabsxyz/questline/pkg/scval"

// DefaultBadgeMetadata is used when a badge carries no metadata.
const DefaultBadgeMetadata = "{}"

// Badge is a non-transferable proof of quest completion.
type Badge struct {
	ID       string `json:"id"`
	QuestID  string `json:"questId"`
	Owner    string `json:"owner"`
	MintedAt uint64 `json:"mintedAt"`
	Metadata string `json:"metadata"`
}

// DecodeBadge builds a Badge from a get_badge struct, or returns nil when v is
// not a struct.
func DecodeBadge(v scval.Value) *Badge {
	if v.Kind() != scval.KindStruct {
		return nil
	}
	metadata := textField(v, "metadata", DefaultBadgeMetadata)
	if metadata == "" {
		metadata = DefaultBadgeMetadata
	}
	return &Badge{
		ID:       textField(v, "id", ""),
		QuestID:  textField(v, "quest_id", ""),
		Owner:    textField(v, "owner", ""),
		MintedAt: uintField(v, "minted_at"),
		Metadata: metadata,
	}
}
