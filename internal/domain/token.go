package domain

import (
	sdkmath "cosmossdk.io/math"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// TokenMetadata describes the reward token.
type TokenMetadata struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Decimals    uint32      `json:"decimals"`
	TotalSupply sdkmath.Int `json:"totalSupply"`
}

// Balance is an account's reward token holding.
type Balance struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
	// Display is Amount rendered with the implied decimals.
	Display string `json:"display"`
}

// NewBalance builds a Balance from a base-unit amount.
func NewBalance(address string, amount sdkmath.Int) Balance {
	return Balance{Address: address, Amount: amount, Display: scval.FromBaseUnits(amount)}
}
