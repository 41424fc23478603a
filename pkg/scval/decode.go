package scval

import sdkmath "cosmossdk.io/math"

// Decode converts a Value to its native form:
//
//	address, symbol, string -> string
//	i128                    -> math.Int
//	u64                     -> uint64
//	u32                     -> uint32
//	bool                    -> bool
//	void                    -> nil
//	vec                     -> []interface{}
//	struct                  -> map[string]interface{}
func Decode(v Value) interface{} {
	switch v.kind {
	case KindAddress, KindSymbol, KindString:
		return v.s
	case KindI128:
		return v.i
	case KindU64:
		return v.u
	case KindU32:
		return uint32(v.u)
	case KindBool:
		return v.b
	case KindVec:
		out := make([]interface{}, len(v.vec))
		for i, item := range v.vec {
			out[i] = Decode(item)
		}
		return out
	case KindStruct:
		out := make(map[string]interface{}, len(v.fields))
		for _, f := range v.fields {
			out[f.Name] = Decode(f.Value)
		}
		return out
	}
	return nil
}

// AsString returns the textual payload of v, or def when v carries no text.
func AsString(v Value, def string) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return def
}

// AsInt returns the payload of any integer tag, or def.
func AsInt(v Value, def sdkmath.Int) sdkmath.Int {
	if n, ok := v.Int(); ok {
		return n
	}
	return def
}

// AsUint64 returns the payload of v when it is a non-negative integer that fits
// in 64 bits, or def.
func AsUint64(v Value, def uint64) uint64 {
	if n, ok := v.Uint64(); ok {
		return n
	}
	return def
}

// AsBool returns the payload of a bool value, or def.
func AsBool(v Value, def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}
