package contracts

import "github.com/altuslabsxyz/questline/pkg/scval"

func param(name string, h scval.Hint) scval.Param {
	return scval.Param{Name: name, Hint: h}
}

// QuestPlatform function names.
const (
	FnCreateQuest        = "create_quest"
	FnCompleteQuest      = "complete_quest"
	FnGetQuest           = "get_quest"
	FnGetActiveQuests    = "get_active_quests"
	FnHasCompleted       = "has_completed"
	FnGetUserCompletions = "get_user_completions"
	FnGetLeaderboard     = "get_leaderboard"
	FnGetQuestCount      = "get_quest_count"
	FnCancelQuest        = "cancel_quest"
)

// QuestPlatform is the quest registry contract.
var QuestPlatform = newContract(QuestPlatformName,
	Function{
		Name: FnCreateQuest,
		Params: scval.Schema{
			param("creator", scval.HintAddress),
			param("quest_id", scval.HintSymbol),
			param("title", scval.HintString),
			param("description", scval.HintString),
			param("reward_amount", scval.HintI128),
			param("badge_id", scval.Optional(scval.HintSymbol)),
			param("expires_at", scval.Optional(scval.HintU64)),
			param("max_completions", scval.Optional(scval.HintI128)),
		},
		Write: true,
	},
	Function{
		Name:   FnCompleteQuest,
		Params: scval.Schema{param("user", scval.HintAddress), param("quest_id", scval.HintSymbol)},
		Write:  true,
	},
	Function{Name: FnGetQuest, Params: scval.Schema{param("quest_id", scval.HintSymbol)}},
	Function{Name: FnGetActiveQuests},
	Function{
		Name:   FnHasCompleted,
		Params: scval.Schema{param("user", scval.HintAddress), param("quest_id", scval.HintSymbol)},
	},
	Function{Name: FnGetUserCompletions, Params: scval.Schema{param("user", scval.HintAddress)}},
	Function{Name: FnGetLeaderboard},
	Function{Name: FnGetQuestCount},
	Function{
		Name:   FnCancelQuest,
		Params: scval.Schema{param("quest_id", scval.HintSymbol)},
		Write:  true,
	},
)

// BadgeNFT function names.
const (
	FnGetBadge      = "get_badge"
	FnGetUserBadges = "get_user_badges"
	FnOwnerOf       = "owner_of"
	FnTotalBadges   = "total_badges"
	FnMintBadge     = "mint_badge"
	FnTransferBadge = "transfer_badge"
)

// BadgeNFT is the completion badge contract.
var BadgeNFT = newContract(BadgeNFTName,
	Function{Name: FnGetBadge, Params: scval.Schema{param("badge_id", scval.HintSymbol)}},
	Function{Name: FnGetUserBadges, Params: scval.Schema{param("user", scval.HintAddress)}},
	Function{Name: FnOwnerOf, Params: scval.Schema{param("badge_id", scval.HintSymbol)}},
	Function{Name: FnTotalBadges},
	Function{
		Name: FnMintBadge,
		Params: scval.Schema{
			param("to", scval.HintAddress),
			param("badge_id", scval.HintSymbol),
			param("quest_id", scval.HintSymbol),
			param("metadata", scval.HintString),
		},
		Write: true,
	},
	Function{
		Name: FnTransferBadge,
		Params: scval.Schema{
			param("from", scval.HintAddress),
			param("to", scval.HintAddress),
			param("badge_id", scval.HintSymbol),
		},
		Write: true,
	},
)

// RewardToken function names.
const (
	FnBalance     = "balance"
	FnMint        = "mint"
	FnTransfer    = "transfer"
	FnName        = "name"
	FnSymbol      = "symbol"
	FnDecimals    = "decimals"
	FnTotalSupply = "total_supply"
)

// RewardToken is the reward token contract. Amounts are in base units.
var RewardToken = newContract(RewardTokenName,
	Function{Name: FnBalance, Params: scval.Schema{param("id", scval.HintAddress)}},
	Function{
		Name:   FnMint,
		Params: scval.Schema{param("to", scval.HintAddress), param("amount", scval.HintI128)},
		Write:  true,
	},
	Function{
		Name: FnTransfer,
		Params: scval.Schema{
			param("from", scval.HintAddress),
			param("to", scval.HintAddress),
			param("amount", scval.HintI128),
		},
		Write: true,
	},
	Function{Name: FnName},
	Function{Name: FnSymbol},
	Function{Name: FnDecimals},
	Function{Name: FnTotalSupply},
)
