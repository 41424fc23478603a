package scval

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	sym, err := Encode("quest1")
	require.NoError(t, err)
	assert.Equal(t, "quest1", Decode(sym))

	addr, err := Encode(testAccount)
	require.NoError(t, err)
	assert.Equal(t, testAccount, Decode(addr))

	assert.Nil(t, Decode(Void()))
	assert.Equal(t, uint32(6), Decode(NewU32(6)))
	assert.Equal(t, true, Decode(NewBool(true)))

	vec := NewVec(NewString("a"), I128FromInt64(2))
	assert.Equal(t, []interface{}{"a", sdkmath.NewInt(2)}, Decode(vec))

	st := NewStruct(Field{Name: "b", Value: NewString("x")}, Field{Name: "a", Value: Void()})
	assert.Equal(t, map[string]interface{}{"a": nil, "b": "x"}, Decode(st))
}

func TestSymbol_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"one char", "q", KindSymbol},
		{"max length", "quest_123", KindSymbol},
		{"all underscore", "___", KindSymbol},
		{"all digits", "123456789", KindSymbol},
		{"mixed case", "QuEsT_9", KindSymbol},
		{"ten chars", "quest_1234", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.in, Decode(v))
		})
	}
}

func TestDecode_EmptyVector(t *testing.T) {
	v := NewVec()
	items, ok := v.Items()
	require.True(t, ok)
	assert.Empty(t, items)
	assert.Equal(t, []interface{}{}, Decode(v))
}

func TestValue_Field(t *testing.T) {
	st := NewStruct(Field{Name: "id", Value: NewString("q1")})

	got, ok := st.Field("id")
	require.True(t, ok)
	assert.Equal(t, "q1", AsString(got, ""))

	got, ok = st.Field("badge_id")
	assert.False(t, ok)
	assert.True(t, got.IsVoid())

	_, ok = NewString("x").Field("id")
	assert.False(t, ok)
}

func TestAccessorsDefaults(t *testing.T) {
	assert.Equal(t, "fallback", AsString(Void(), "fallback"))
	assert.True(t, AsInt(NewString("x"), sdkmath.NewInt(9)).Equal(sdkmath.NewInt(9)))
	assert.True(t, AsInt(NewU64(4), sdkmath.ZeroInt()).Equal(sdkmath.NewInt(4)))
	assert.Equal(t, uint64(3), AsUint64(I128FromInt64(3), 0))
	assert.Equal(t, uint64(0), AsUint64(I128FromInt64(-3), 0))
	assert.True(t, AsBool(NewBool(true), false))
}

func TestValue_JSONRoundTrip(t *testing.T) {
	big, err := EncodeHint("170141183460469231731687303715884105727", HintI128)
	require.NoError(t, err)
	addr, err := NewAddress(testContract)
	require.NoError(t, err)

	original := NewVec(
		Void(),
		NewBool(true),
		NewU32(7),
		NewU64(1700000000),
		big,
		addr,
		NewString("hello world"),
		NewStruct(Field{Name: "id", Value: NewString("q")}),
		NewVec(),
	)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Value
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded), "round trip changed the value: %s", data)
}

func TestValue_JSONForm(t *testing.T) {
	data, err := json.Marshal(I128FromInt64(-5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"i128","value":"-5"}`, string(data))

	data, err = json.Marshal(Void())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"void"}`, string(data))

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"type":"u32","value":7}`), &v))
	assert.Equal(t, uint32(7), Decode(v))

	err = json.Unmarshal([]byte(`{"type":"symbol","value":"my_first_quest"}`), &v)
	assert.True(t, IsEncodingError(err))

	err = json.Unmarshal([]byte(`{"type":"float","value":1}`), &v)
	assert.Error(t, err)
}
