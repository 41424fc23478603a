// Package contracts declares the positional schemas of the quest platform,
// badge NFT, and reward token contracts. The schemas drive argument encoding;
// the encoding heuristic is never used for a declared function.
package contracts

import (
	"fmt"
	"sort"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Contract names.
const (
	QuestPlatformName = "quest_platform"
	BadgeNFTName      = "badge_nft"
	RewardTokenName   = "reward_token"
)

// Function is a declared contract function.
type Function struct {
	Name   string
	Params scval.Schema
	// Write functions require a signed submission; the rest are simulated.
	Write bool
}

// Encode converts native args to wire values per the declared schema.
func (f Function) Encode(args ...interface{}) ([]scval.Value, error) {
	return f.Params.Encode(args...)
}

// Contract is the function table of one deployed contract kind.
type Contract struct {
	Name      string
	functions map[string]Function
}

func newContract(name string, fns ...Function) *Contract {
	c := &Contract{Name: name, functions: make(map[string]Function, len(fns))}
	for _, fn := range fns {
		c.functions[fn.Name] = fn
	}
	return c
}

// Function returns the declaration of name.
func (c *Contract) Function(name string) (Function, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// Functions returns the declared function names, sorted.
func (c *Contract) Functions() []string {
	names := make([]string, 0, len(c.functions))
	for name := range c.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Addresses holds the deployed contract ids.
type Addresses struct {
	QuestPlatform string
	BadgeNFT      string
	RewardToken   string
}

// Resolve maps a contract name or id to its id and declaration. ids that are
// not one of the configured contracts are rejected, because their schema is
// unknown.
func (a Addresses) Resolve(nameOrID string) (string, *Contract, error) {
	switch nameOrID {
	case QuestPlatformName, a.QuestPlatform:
		if a.QuestPlatform != "" {
			return a.QuestPlatform, QuestPlatform, nil
		}
	case BadgeNFTName, a.BadgeNFT:
		if a.BadgeNFT != "" {
			return a.BadgeNFT, BadgeNFT, nil
		}
	case RewardTokenName, a.RewardToken:
		if a.RewardToken != "" {
			return a.RewardToken, RewardToken, nil
		}
	}
	return "", nil, fmt.Errorf("unknown contract %q", nameOrID)
}

// NewCall encodes args for fn and returns the invocation of contractID.
func NewCall(contractID string, fn Function, source string, args ...interface{}) (network.Call, error) {
	encoded, err := fn.Encode(args...)
	if err != nil {
		return network.Call{}, fmt.Errorf("%s: %w", fn.Name, err)
	}
	return network.Call{
		ContractID: contractID,
		Function:   fn.Name,
		Args:       encoded,
		Source:     source,
	}, nil
}
