// Package scval models the ledger's typed contract values and converts between
// them and native Go values.
//
// A Value is a tagged union. Exactly one tag is set per value, and Void is a
// distinct tag used for absent optionals (it is never the empty string).
package scval

import (
	"sort"

	sdkmath "cosmossdk.io/math"
)

// Kind identifies the tag of a Value.
type Kind uint8

// Value tags.
const (
	KindVoid Kind = iota
	KindBool
	KindU32
	KindU64
	KindI128
	KindSymbol
	KindString
	KindAddress
	KindVec
	KindStruct
)

var kindNames = map[Kind]string{
	KindVoid:    "void",
	KindBool:    "bool",
	KindU32:     "u32",
	KindU64:     "u64",
	KindI128:    "i128",
	KindSymbol:  "symbol",
	KindString:  "string",
	KindAddress: "address",
	KindVec:     "vec",
	KindStruct:  "struct",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// parseKind is the inverse of Kind.String.
func parseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Field is a named member of a struct value.
type Field struct {
	Name  string
	Value Value
}

// Value is a single typed contract value. The zero Value is Void.
// Values are immutable once constructed.
type Value struct {
	kind   Kind
	b      bool
	u      uint64
	i      sdkmath.Int
	s      string
	vec    []Value
	fields []Field
}

// Void returns the value used for an absent optional.
func Void() Value { return Value{kind: KindVoid} }

// NewBool returns a bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewU32 returns an unsigned 32-bit value.
func NewU32(v uint32) Value { return Value{kind: KindU32, u: uint64(v)} }

// NewU64 returns an unsigned 64-bit value.
func NewU64(v uint64) Value { return Value{kind: KindU64, u: v} }

// NewI128 returns a signed 128-bit value, failing when n is outside
// [-2^127, 2^127-1].
func NewI128(n sdkmath.Int) (Value, error) {
	if n.IsNil() {
		return Value{}, newEncodingError("i128 value is nil")
	}
	if n.BigInt().Cmp(minI128) < 0 || n.BigInt().Cmp(maxI128) > 0 {
		return Value{}, newEncodingError("integer %s overflows i128", n.String())
	}
	return Value{kind: KindI128, i: n}, nil
}

// I128FromInt64 returns an i128 value. Every int64 fits, so it cannot fail.
func I128FromInt64(n int64) Value {
	return Value{kind: KindI128, i: sdkmath.NewInt(n)}
}

// NewSymbol returns a symbol value. Symbols are 1 to 9 characters drawn from
// [A-Za-z0-9_].
func NewSymbol(s string) (Value, error) {
	if err := ValidateSymbol(s); err != nil {
		return Value{}, err
	}
	return Value{kind: KindSymbol, s: s}, nil
}

// NewString returns a string value. Any UTF-8 text is accepted, including "".
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewAddress returns an address value for an account (G...) or contract (C...)
// identifier.
func NewAddress(s string) (Value, error) {
	if _, _, err := ParseAddress(s); err != nil {
		return Value{}, &EncodingError{Index: -1, Reason: err.Error()}
	}
	return Value{kind: KindAddress, s: s}, nil
}

// NewVec returns a vector of values.
func NewVec(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindVec, vec: cp}
}

// NewStruct returns a struct value. Fields are ordered by name so that equal
// structs have equal encodings.
func NewStruct(fields ...Field) Value {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	sort.SliceStable(cp, func(a, b int) bool { return cp[a].Name < cp[b].Name })
	return Value{kind: KindStruct, fields: cp}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsVoid reports whether v is the absent marker.
func (v Value) IsVoid() bool { return v.kind == KindVoid }

// Text returns the textual payload of an address, symbol or string value.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindAddress, KindSymbol, KindString:
		return v.s, true
	}
	return "", false
}

// Int returns the numeric payload of any integer value.
func (v Value) Int() (sdkmath.Int, bool) {
	switch v.kind {
	case KindI128:
		return v.i, true
	case KindU64, KindU32:
		return sdkmath.NewIntFromUint64(v.u), true
	}
	return sdkmath.ZeroInt(), false
}

// Uint64 returns the payload of a u32 or u64 value, or of a non-negative
// i128 that fits in 64 bits.
func (v Value) Uint64() (uint64, bool) {
	switch v.kind {
	case KindU64, KindU32:
		return v.u, true
	case KindI128:
		if !v.i.IsNegative() && v.i.IsUint64() {
			return v.i.Uint64(), true
		}
	}
	return 0, false
}

// Bool returns the payload of a bool value.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Items returns the elements of a vector value.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindVec {
		return nil, false
	}
	cp := make([]Value, len(v.vec))
	copy(cp, v.vec)
	return cp, true
}

// Fields returns the fields of a struct value in name order.
func (v Value) Fields() ([]Field, bool) {
	if v.kind != KindStruct {
		return nil, false
	}
	cp := make([]Field, len(v.fields))
	copy(cp, v.fields)
	return cp, true
}

// Field looks up a struct field by name. A missing field, or a non-struct
// value, yields Void and false.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindStruct {
		return Void(), false
	}
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Void(), false
}

// Equal reports whether two values have the same tag and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindVoid:
		return true
	case KindBool:
		return v.b == o.b
	case KindU32, KindU64:
		return v.u == o.u
	case KindI128:
		return v.i.Equal(o.i)
	case KindSymbol, KindString, KindAddress:
		return v.s == o.s
	case KindVec:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if !v.vec[i].Equal(o.vec[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Name != o.fields[i].Name || !v.fields[i].Value.Equal(o.fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
