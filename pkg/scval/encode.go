package scval

import (
	"math"
	"math/big"
	"reflect"
	"sort"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Encode converts a native value with the tag heuristic:
//
//	nil                      -> void
//	string                   -> address if it parses, else symbol if it fits, else string
//	integers, integral float -> i128
//	bool                     -> bool
//	slices                   -> vec of encoded elements
//	map[string]T             -> struct with fields sorted by name
//	Value                    -> unchanged
func Encode(v interface{}) (Value, error) {
	return EncodeHint(v, HintAny)
}

// EncodeHint converts a native value to the tag declared by h. A value that
// does not fit the hint is an error; it is never coerced to another tag.
func EncodeHint(v interface{}, h Hint) (Value, error) {
	v = deref(v)
	if v == nil {
		if h.IsAny() || h.IsOptional() {
			return Void(), nil
		}
		return Value{}, newEncodingError("missing value for required %s", h)
	}

	if val, ok := v.(Value); ok {
		if h.IsAny() || val.kind == h.kind || (val.IsVoid() && h.IsOptional()) {
			return val, nil
		}
		return Value{}, newEncodingError("%s value given where %s is expected", val.kind, h)
	}

	if h.IsAny() {
		return encodeHeuristic(v)
	}

	switch h.kind {
	case KindAddress:
		s, ok := v.(string)
		if !ok {
			return Value{}, mismatch(v, h)
		}
		return NewAddress(s)
	case KindSymbol:
		s, ok := v.(string)
		if !ok {
			return Value{}, mismatch(v, h)
		}
		return NewSymbol(s)
	case KindString:
		s, ok := v.(string)
		if !ok {
			return Value{}, mismatch(v, h)
		}
		return NewString(s), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return Value{}, mismatch(v, h)
		}
		return NewBool(b), nil
	case KindI128, KindU64, KindU32:
		n, err := integerOf(v, true)
		if err != nil {
			return Value{}, err
		}
		if n == nil {
			return Value{}, mismatch(v, h)
		}
		return integerValue(n, h.kind)
	case KindVec:
		return encodeVec(v)
	case KindStruct:
		return encodeStruct(v)
	}
	return Value{}, mismatch(v, h)
}

func encodeHeuristic(v interface{}) (Value, error) {
	switch t := v.(type) {
	case string:
		return encodeText(t), nil
	case bool:
		return NewBool(t), nil
	}

	n, err := integerOf(v, false)
	if err != nil {
		return Value{}, err
	}
	if n != nil {
		return integerValue(n, KindI128)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return encodeVec(v)
	case reflect.Map:
		return encodeStruct(v)
	}
	return Value{}, newEncodingError("unsupported type %T", v)
}

// encodeText applies the address > symbol > string priority.
func encodeText(s string) Value {
	if _, _, err := ParseAddress(s); err == nil {
		return Value{kind: KindAddress, s: s}
	}
	if IsSymbol(s) {
		return Value{kind: KindSymbol, s: s}
	}
	return NewString(s)
}

func encodeVec(v interface{}) (Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Value{}, newEncodingError("%T is not a sequence", v)
	}
	items := make([]Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := Encode(rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}
		items[i] = item
	}
	return Value{kind: KindVec, vec: items}, nil
}

func encodeStruct(v interface{}) (Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Value{}, newEncodingError("%T is not a string-keyed map", v)
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fv, err := Encode(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
		if err != nil {
			return Value{}, err
		}
		fields[i] = Field{Name: k, Value: fv}
	}
	return Value{kind: KindStruct, fields: fields}, nil
}

// integerOf extracts an integer from any Go numeric type. It returns nil
// without error when v is not numeric. Decimal text is accepted only when
// allowText is set.
func integerOf(v interface{}, allowText bool) (*big.Int, error) {
	switch t := v.(type) {
	case *big.Int:
		return new(big.Int).Set(t), nil
	case sdkmath.Int:
		if t.IsNil() {
			return nil, newEncodingError("integer value is nil")
		}
		return t.BigInt(), nil
	case string:
		if !allowText {
			return nil, nil
		}
		n, ok := new(big.Int).SetString(strings.TrimSpace(t), 10)
		if !ok {
			return nil, newEncodingError("%q is not a decimal integer", t)
		}
		return n, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newEncodingError("%v is not a finite number", f)
		}
		if f != math.Trunc(f) {
			return nil, newEncodingError("%v is not an integer", f)
		}
		n, _ := big.NewFloat(f).Int(nil)
		return n, nil
	}
	return nil, nil
}

func integerValue(n *big.Int, kind Kind) (Value, error) {
	switch kind {
	case KindU32:
		if n.Sign() < 0 || n.Cmp(maxU32) > 0 {
			return Value{}, newEncodingError("integer %s overflows u32", n.String())
		}
		return NewU32(uint32(n.Uint64())), nil
	case KindU64:
		if n.Sign() < 0 || n.Cmp(maxU64) > 0 {
			return Value{}, newEncodingError("integer %s overflows u64", n.String())
		}
		return NewU64(n.Uint64()), nil
	default:
		if n.Cmp(minI128) < 0 || n.Cmp(maxI128) > 0 {
			return Value{}, newEncodingError("integer %s overflows i128", n.String())
		}
		return Value{kind: KindI128, i: sdkmath.NewIntFromBigInt(n)}, nil
	}
}

func mismatch(v interface{}, h Hint) error {
	return newEncodingError("%T value given where %s is expected", v, h)
}

// deref unwraps pointers. A nil pointer yields nil.
func deref(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if _, ok := v.(*big.Int); ok {
		if v.(*big.Int) == nil {
			return nil
		}
		return v
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
