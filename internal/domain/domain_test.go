package domain

import (
	"errors"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

const (
	alice = "GAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSABOV"
	bob   = "GBSWMZ3INFVGW3DNNZXXA4LSON2HK5TXPB4XU634PV7H7AEBQKBYJJM6"
)

func mustEncode(t *testing.T, v interface{}) scval.Value {
	t.Helper()
	out, err := scval.Encode(v)
	require.NoError(t, err)
	return out
}

func questValue(t *testing.T, fields map[string]interface{}) scval.Value {
	return mustEncode(t, fields)
}

func TestDecodeQuest_Full(t *testing.T) {
	reward, err := scval.EncodeHint("10000000000", scval.HintI128)
	require.NoError(t, err)

	v := questValue(t, map[string]interface{}{
		"id":                  "quest1",
		"creator":             alice,
		"title":               "First steps",
		"description":         "Complete onboarding",
		"reward_amount":       reward,
		"reward_token":        "CAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSBFLM",
		"badge_id":            "badge1",
		"status":              "active",
		"created_at":          scval.NewU64(1700000000),
		"expires_at":          scval.NewU64(1800000000),
		"max_completions":     scval.I128FromInt64(100),
		"current_completions": scval.I128FromInt64(3),
	})

	q := DecodeQuest(v)
	require.NotNil(t, q)
	assert.Equal(t, "quest1", q.ID)
	assert.Equal(t, alice, q.Creator)
	assert.Equal(t, "10000000000", q.RewardAmount.String())
	assert.Equal(t, "1000", q.RewardDisplay())
	require.NotNil(t, q.BadgeID)
	assert.Equal(t, "badge1", *q.BadgeID)
	assert.Equal(t, QuestActive, q.Status)
	assert.Equal(t, uint64(1700000000), q.CreatedAt)
	require.NotNil(t, q.ExpiresAt)
	assert.Equal(t, uint64(1800000000), *q.ExpiresAt)
	require.NotNil(t, q.MaxCompletions)
	assert.Equal(t, "100", q.MaxCompletions.String())
	assert.Equal(t, "3", q.CurrentCompletions.String())
	assert.NoError(t, q.Validate())
}

func TestDecodeQuest_Defaults(t *testing.T) {
	v := questValue(t, map[string]interface{}{"id": "quest2", "badge_id": nil})

	q := DecodeQuest(v)
	require.NotNil(t, q)
	assert.Equal(t, "quest2", q.ID)
	assert.Equal(t, "", q.Title)
	assert.True(t, q.RewardAmount.IsZero())
	assert.Nil(t, q.BadgeID)
	assert.Nil(t, q.ExpiresAt)
	assert.Nil(t, q.MaxCompletions)
	assert.Equal(t, QuestActive, q.Status)
	assert.Equal(t, uint64(0), q.CreatedAt)
	assert.True(t, q.CurrentCompletions.IsZero())
}

func TestDecodeQuest_WideCounts(t *testing.T) {
	twoTo64 := sdkmath.NewIntFromUint64(^uint64(0)).AddRaw(1)
	twoTo65 := twoTo64.MulRaw(2)

	tests := []struct {
		name    string
		current sdkmath.Int
		max     sdkmath.Int
		valid   bool
		full    bool
	}{
		{"beyond u64", twoTo64, twoTo65, true, false},
		{"at cap beyond u64", twoTo65, twoTo65, true, true},
		{"negative cap", sdkmath.NewInt(3), sdkmath.NewInt(-1), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, err := scval.NewI128(tt.current)
			require.NoError(t, err)
			limit, err := scval.NewI128(tt.max)
			require.NoError(t, err)

			q := DecodeQuest(questValue(t, map[string]interface{}{
				"id":                  "wide",
				"current_completions": current,
				"max_completions":     limit,
			}))
			require.NotNil(t, q)
			require.NotNil(t, q.MaxCompletions, "cap must not decode as unlimited")
			assert.Equal(t, tt.max.String(), q.MaxCompletions.String())
			assert.Equal(t, tt.current.String(), q.CurrentCompletions.String())
			assert.Equal(t, tt.valid, q.Validate() == nil)
			assert.Equal(t, tt.full, q.IsFull())
		})
	}
}

func TestDecodeQuest_NotAStruct(t *testing.T) {
	assert.Nil(t, DecodeQuest(scval.Void()))
	assert.Nil(t, DecodeQuest(scval.NewString("x")))
}

func TestQuest_Validate(t *testing.T) {
	limit := sdkmath.NewInt(2)
	q := &Quest{ID: "q", MaxCompletions: &limit, CurrentCompletions: sdkmath.NewInt(3)}
	err := q.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompletionsExceeded))

	q.CurrentCompletions = sdkmath.NewInt(2)
	assert.NoError(t, q.Validate())
	assert.True(t, q.IsFull())

	unlimited := &Quest{ID: "u", CurrentCompletions: sdkmath.NewInt(1000)}
	assert.NoError(t, unlimited.Validate())
	assert.False(t, unlimited.IsFull())
}

func TestQuest_EffectiveStatus(t *testing.T) {
	exp := uint64(1000)
	q := &Quest{Status: QuestActive, ExpiresAt: &exp}
	assert.Equal(t, QuestActive, q.EffectiveStatus(time.Unix(999, 0)))
	assert.Equal(t, QuestExpired, q.EffectiveStatus(time.Unix(1001, 0)))

	q.Status = QuestCancelled
	assert.Equal(t, QuestCancelled, q.EffectiveStatus(time.Unix(1001, 0)))
}

func TestDecodeQuests(t *testing.T) {
	v := scval.NewVec(
		questValue(t, map[string]interface{}{"id": "a"}),
		scval.NewString("junk"),
		questValue(t, map[string]interface{}{"id": "b"}),
	)
	quests := DecodeQuests(v)
	require.Len(t, quests, 2)
	assert.Equal(t, "a", quests[0].ID)
	assert.Equal(t, "b", quests[1].ID)

	assert.Empty(t, DecodeQuests(scval.Void()))
	assert.NotNil(t, DecodeQuests(scval.NewVec()))
}

func TestDecodeBadge(t *testing.T) {
	v := mustEncode(t, map[string]interface{}{
		"id":        "badge1",
		"quest_id":  "quest1",
		"owner":     alice,
		"minted_at": scval.NewU64(42),
	})
	b := DecodeBadge(v)
	require.NotNil(t, b)
	assert.Equal(t, "badge1", b.ID)
	assert.Equal(t, "quest1", b.QuestID)
	assert.Equal(t, alice, b.Owner)
	assert.Equal(t, uint64(42), b.MintedAt)
	assert.Equal(t, "{}", b.Metadata)

	assert.Nil(t, DecodeBadge(scval.Void()))
}

func TestDecodeLeaderboard(t *testing.T) {
	v := scval.NewVec(
		scval.NewVec(mustEncode(t, alice), scval.I128FromInt64(2)),
		scval.NewVec(mustEncode(t, bob), scval.I128FromInt64(5)),
		mustEncode(t, map[string]interface{}{"address": "GCARL", "count": 2}),
	)
	rows := DecodeLeaderboard(v)
	require.Len(t, rows, 3)
	for i, want := range []struct {
		address string
		count   int64
	}{{bob, 5}, {alice, 2}, {"GCARL", 2}} {
		assert.Equal(t, want.address, rows[i].Address)
		assert.Equal(t, want.count, rows[i].CompletionCount.Int64())
		assert.Equal(t, i+1, rows[i].Rank)
	}

	row, ok := FindRank(rows, alice)
	require.True(t, ok)
	assert.Equal(t, 2, row.Rank)
	_, ok = FindRank(rows, "nobody")
	assert.False(t, ok)
}

func TestDecodeLeaderboard_WideCount(t *testing.T) {
	twoTo64 := sdkmath.NewIntFromUint64(^uint64(0)).AddRaw(1)
	wide, err := scval.NewI128(twoTo64)
	require.NoError(t, err)

	rows := DecodeLeaderboard(scval.NewVec(
		scval.NewVec(mustEncode(t, alice), scval.I128FromInt64(7)),
		scval.NewVec(mustEncode(t, bob), wide),
	))
	require.Len(t, rows, 2)
	assert.Equal(t, bob, rows[0].Address)
	assert.Equal(t, "18446744073709551616", rows[0].CompletionCount.String())
	assert.Equal(t, "7", rows[1].CompletionCount.String())
}

func TestDecodeLeaderboard_Empty(t *testing.T) {
	rows := DecodeLeaderboard(scval.NewVec())
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestDecodeSymbols(t *testing.T) {
	v := scval.NewVec(mustEncode(t, "quest1"), scval.I128FromInt64(1), mustEncode(t, "quest2"))
	assert.Equal(t, []string{"quest1", "quest2"}, DecodeSymbols(v))
	assert.Equal(t, []string{}, DecodeSymbols(scval.Void()))
}

func TestSubmission_Apply(t *testing.T) {
	s := &Submission{Phase: network.PhaseSubmitted}

	s.Apply(&network.Outcome{Phase: network.PhaseConfirmed, ReturnValue: scval.NewBool(true), Ledger: 12})
	assert.Equal(t, network.PhaseConfirmed, s.Phase)
	require.NotNil(t, s.ReturnValue)
	assert.Equal(t, int64(12), s.Ledger)

	s.Apply(&network.Outcome{Phase: network.PhaseTimedOut, Detail: network.TimedOutMessage})
	assert.Nil(t, s.ReturnValue)
	assert.Equal(t, network.TimedOutMessage, s.Error)
}

func TestSubmissionFilter(t *testing.T) {
	s := &Submission{Phase: network.PhaseTimedOut, Source: alice}
	assert.True(t, SubmissionFilter{}.Matches(s))
	assert.True(t, SubmissionFilter{Phase: network.PhaseTimedOut}.Matches(s))
	assert.False(t, SubmissionFilter{Phase: network.PhaseConfirmed}.Matches(s))
	assert.False(t, SubmissionFilter{Source: bob}.Matches(s))
}

func TestNewBalance(t *testing.T) {
	b := NewBalance(alice, sdkmath.NewInt(125000000))
	assert.Equal(t, "12.5", b.Display)
}
