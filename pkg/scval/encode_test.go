package scval

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccount  = "GAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSABOV"
	testContract = "CAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSBFLM"
)

func TestEncode_Heuristic(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		kind Kind
	}{
		{"nil", nil, KindVoid},
		{"account", testAccount, KindAddress},
		{"contract", testContract, KindAddress},
		{"symbol", "quest1", KindSymbol},
		{"nine chars", "abcdefghi", KindSymbol},
		{"ten chars", "abcdefghij", KindString},
		{"spaces", "hello world", KindString},
		{"empty string", "", KindString},
		{"int", 42, KindI128},
		{"negative int64", int64(-7), KindI128},
		{"uint64", uint64(1 << 63), KindI128},
		{"integral float", float64(1000), KindI128},
		{"big int", big.NewInt(5), KindI128},
		{"math int", sdkmath.NewInt(5), KindI128},
		{"bool", true, KindBool},
		{"slice", []interface{}{"a", 1}, KindVec},
		{"string slice", []string{"a", "b"}, KindVec},
		{"map", map[string]interface{}{"b": 1, "a": "x"}, KindStruct},
		{"value passthrough", NewU64(3), KindU64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestEncode_TypedNilPointer(t *testing.T) {
	var s *string
	v, err := Encode(s)
	require.NoError(t, err)
	assert.True(t, v.IsVoid())

	var n *big.Int
	v, err = Encode(n)
	require.NoError(t, err)
	assert.True(t, v.IsVoid())
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
	}{
		{"fractional float", 1.5},
		{"unsupported type", struct{}{}},
		{"int keyed map", map[int]string{1: "a"}},
		{"i128 overflow", new(big.Int).Lsh(big.NewInt(1), 127)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.in)
			require.Error(t, err)
			assert.True(t, IsEncodingError(err))
		})
	}
}

func TestEncode_StructFieldsSorted(t *testing.T) {
	v, err := Encode(map[string]interface{}{"zeta": 1, "alpha": 2, "mid": 3})
	require.NoError(t, err)
	fields, ok := v.Fields()
	require.True(t, ok)
	require.Len(t, fields, 3)
	assert.Equal(t, "alpha", fields[0].Name)
	assert.Equal(t, "mid", fields[1].Name)
	assert.Equal(t, "zeta", fields[2].Name)
}

func TestEncodeHint(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		hint    Hint
		kind    Kind
		wantErr bool
	}{
		{"symbol", "quest1", HintSymbol, KindSymbol, false},
		{"symbol too long", "my_first_quest", HintSymbol, 0, true},
		{"symbol with number", 42, HintSymbol, 0, true},
		{"string keeps short text", "abc", HintString, KindString, false},
		{"string accepts empty", "", HintString, KindString, false},
		{"address", testAccount, HintAddress, KindAddress, false},
		{"address invalid", "GABC", HintAddress, 0, true},
		{"address from number", 1, HintAddress, 0, true},
		{"i128 from int", 5, HintI128, KindI128, false},
		{"i128 from text", "10000000000", HintI128, KindI128, false},
		{"i128 from bad text", "ten", HintI128, 0, true},
		{"i128 from bool", true, HintI128, 0, true},
		{"u64", uint64(1700000000), HintU64, KindU64, false},
		{"u64 negative", -1, HintU64, 0, true},
		{"u32", 7, HintU32, KindU32, false},
		{"u32 overflow", int64(1) << 32, HintU32, 0, true},
		{"bool", false, HintBool, KindBool, false},
		{"bool from text", "true", HintBool, 0, true},
		{"optional nil", nil, Optional(HintSymbol), KindVoid, false},
		{"optional present", "badge1", Optional(HintSymbol), KindSymbol, false},
		{"required nil", nil, HintSymbol, 0, true},
		{"value mismatch", NewString("x"), HintSymbol, 0, true},
		{"void value at optional", Void(), Optional(HintU64), KindVoid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := EncodeHint(tt.in, tt.hint)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsEncodingError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestEncodeHint_IntegerBounds(t *testing.T) {
	lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

	for _, n := range []*big.Int{lo, hi, big.NewInt(0)} {
		v, err := EncodeHint(n, HintI128)
		require.NoError(t, err)
		got, ok := Decode(v).(sdkmath.Int)
		require.True(t, ok)
		assert.Equal(t, n.String(), got.String())
	}

	_, err := EncodeHint(new(big.Int).Add(hi, big.NewInt(1)), HintI128)
	assert.True(t, IsEncodingError(err))
	_, err = EncodeHint(new(big.Int).Sub(lo, big.NewInt(1)), HintI128)
	assert.True(t, IsEncodingError(err))

	v, err := EncodeHint(^uint64(0), HintU64)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), Decode(v))
}

func TestSchema_Encode(t *testing.T) {
	schema := Schema{
		{Name: "user", Hint: HintAddress},
		{Name: "quest_id", Hint: HintSymbol},
		{Name: "expires_at", Hint: Optional(HintU64)},
	}

	args, err := schema.Encode(testAccount, "quest1", nil)
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.Equal(t, KindAddress, args[0].Kind())
	assert.Equal(t, KindSymbol, args[1].Kind())
	assert.True(t, args[2].IsVoid())
	assert.Nil(t, Decode(args[2]))

	_, err = schema.Encode(testAccount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 arguments")

	_, err = schema.Encode(testAccount, "my_first_quest", nil)
	require.Error(t, err)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 1, encErr.Index)
	assert.Equal(t, "quest_id", encErr.Param)
	assert.Equal(t, "symbol", encErr.Hint)
}
