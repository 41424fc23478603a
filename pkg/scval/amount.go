package scval

import (
	"strings"

	sdkmath "cosmossdk.io/math"
)

// AmountDecimals is the number of implied fractional digits of token amounts.
const AmountDecimals = 7

var amountScale = sdkmath.NewInt(10_000_000)

// ToBaseUnits converts a display amount such as "12.5" to base units
// (display * 10^7). The conversion is exact; an amount with more than seven
// fractional digits is rejected.
func ToBaseUnits(display string) (sdkmath.Int, error) {
	text := normalizeAmount(strings.TrimSpace(display))
	if text == "" {
		return sdkmath.ZeroInt(), newEncodingError("amount must not be empty")
	}
	if dot := strings.IndexByte(text, '.'); dot >= 0 && len(text)-dot-1 > AmountDecimals {
		return sdkmath.ZeroInt(), newEncodingError("amount %q has more than %d decimal places", display, AmountDecimals)
	}

	dec, err := sdkmath.LegacyNewDecFromStr(text)
	if err != nil {
		return sdkmath.ZeroInt(), newEncodingError("amount %q is not a decimal number", display)
	}
	scaled := dec.MulInt(amountScale)
	if !scaled.IsInteger() {
		return sdkmath.ZeroInt(), newEncodingError("amount %q has more than %d decimal places", display, AmountDecimals)
	}
	units := scaled.TruncateInt()
	if units.BigInt().Cmp(minI128) < 0 || units.BigInt().Cmp(maxI128) > 0 {
		return sdkmath.ZeroInt(), newEncodingError("amount %q overflows i128", display)
	}
	return units, nil
}

// normalizeAmount completes a bare leading or trailing point: ".5" -> "0.5",
// "-.5" -> "-0.5", "1." -> "1". A lone "." normalizes to "".
func normalizeAmount(text string) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	text = strings.TrimSuffix(text, ".")
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	if text == "" {
		return ""
	}
	return sign + text
}

// FromBaseUnits renders base units as a display amount with trailing
// fractional zeros removed: 10000000000 -> "1000", 125000000 -> "12.5".
func FromBaseUnits(units sdkmath.Int) string {
	if units.IsNil() {
		return "0"
	}
	neg := units.IsNegative()
	abs := units.Abs()

	whole := abs.Quo(amountScale)
	frac := abs.Mod(amountScale)

	out := whole.String()
	if !frac.IsZero() {
		digits := frac.String()
		digits = strings.Repeat("0", AmountDecimals-len(digits)) + digits
		out += "." + strings.TrimRight(digits, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}
