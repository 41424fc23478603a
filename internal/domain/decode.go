package domain

import (
	sdkmath "cosmossdk.io/math"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

func textField(v scval.Value, name, def string) string {
	field, _ := v.Field(name)
	return scval.AsString(field, def)
}

func intField(v scval.Value, name string) sdkmath.Int {
	field, _ := v.Field(name)
	return scval.AsInt(field, sdkmath.ZeroInt())
}

func uintField(v scval.Value, name string) uint64 {
	field, _ := v.Field(name)
	return scval.AsUint64(field, 0)
}

func optionalText(v scval.Value, name string) *string {
	field, _ := v.Field(name)
	s, ok := field.Text()
	if !ok {
		return nil
	}
	return &s
}

func optionalUint(v scval.Value, name string) *uint64 {
	field, _ := v.Field(name)
	n, ok := field.Uint64()
	if !ok {
		return nil
	}
	return &n
}

func optionalInt(v scval.Value, name string) *sdkmath.Int {
	field, _ := v.Field(name)
	n, ok := field.Int()
	if !ok {
		return nil
	}
	return &n
}

// DecodeSymbols decodes a vector of identifiers. Entries without text are
// skipped; a non-vector yields an empty list.
func DecodeSymbols(v scval.Value) []string {
	items, _ := v.Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.Text(); ok {
			out = append(out, s)
		}
	}
	return out
}

// DecodeOptionalText decodes an Option<Address> or Option<Symbol> result.
func DecodeOptionalText(v scval.Value) *string {
	s, ok := v.Text()
	if !ok {
		return nil
	}
	return &s
}
