package scval

import (
	"math/big"
)

// MaxSymbolLen is the longest identifier the ledger accepts as a symbol.
const MaxSymbolLen = 9

// Integer bounds of the wire tags.
var (
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	maxU64  = new(big.Int).SetUint64(^uint64(0))
	maxU32  = new(big.Int).SetUint64(uint64(^uint32(0)))
)

// IsSymbol reports whether s can be carried as a symbol.
func IsSymbol(s string) bool {
	return ValidateSymbol(s) == nil
}

// ValidateSymbol checks that s is 1 to MaxSymbolLen characters of [A-Za-z0-9_].
func ValidateSymbol(s string) error {
	if s == "" {
		return newEncodingError("symbol must not be empty")
	}
	if len(s) > MaxSymbolLen {
		return newEncodingError("symbol %q is %d characters, max %d", s, len(s), MaxSymbolLen)
	}
	for i := 0; i < len(s); i++ {
		if !isSymbolChar(s[i]) {
			return newEncodingError("symbol %q contains invalid character %q", s, s[i])
		}
	}
	return nil
}

func isSymbolChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
