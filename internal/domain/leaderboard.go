package domain

import (
	"sort"

	sdkmath "cosmossdk.io/math"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// LeaderboardRow is one ranked entry of the completion leaderboard.
type LeaderboardRow struct {
	Address         string `json:"address"`
	CompletionCount sdkmath.Int `json:"completionCount"`
	// Rank is 1-based.
	Rank int `json:"rank"`
}

// DecodeLeaderboard decodes a vector of (address, count) pairs into rows
// sorted by count, descending. Ties keep the order the contract returned.
// Pairs may arrive as two-element vectors or as structs with address and
// count fields.
func DecodeLeaderboard(v scval.Value) []LeaderboardRow {
	items, _ := v.Items()
	rows := make([]LeaderboardRow, 0, len(items))
	for _, item := range items {
		if row, ok := decodeRow(item); ok {
			rows = append(rows, row)
		}
	}
	return RankLeaderboard(rows)
}

// RankLeaderboard sorts rows by count, descending and stable, and assigns
// ranks.
func RankLeaderboard(rows []LeaderboardRow) []LeaderboardRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return count(rows[i]).GT(count(rows[j]))
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// FindRank returns the row for address, if present.
func FindRank(rows []LeaderboardRow, address string) (LeaderboardRow, bool) {
	for _, row := range rows {
		if row.Address == address {
			return row, true
		}
	}
	return LeaderboardRow{}, false
}

func decodeRow(item scval.Value) (LeaderboardRow, bool) {
	switch item.Kind() {
	case scval.KindVec:
		pair, _ := item.Items()
		if len(pair) < 2 {
			return LeaderboardRow{}, false
		}
		addr, ok := pair[0].Text()
		if !ok {
			return LeaderboardRow{}, false
		}
		return LeaderboardRow{Address: addr, CompletionCount: scval.AsInt(pair[1], sdkmath.ZeroInt())}, true
	case scval.KindStruct:
		addr := textField(item, "address", "")
		if addr == "" {
			return LeaderboardRow{}, false
		}
		return LeaderboardRow{Address: addr, CompletionCount: intField(item, "count")}, true
	}
	return LeaderboardRow{}, false
}

func count(row LeaderboardRow) sdkmath.Int {
	if row.CompletionCount.IsNil() {
		return sdkmath.ZeroInt()
	}
	return row.CompletionCount
}
