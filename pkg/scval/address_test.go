package scval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	kind, payload, err := ParseAddress(testAccount)
	require.NoError(t, err)
	assert.Equal(t, AddressAccount, kind)
	assert.Len(t, payload, 32)

	kind, _, err = ParseAddress(testContract)
	require.NoError(t, err)
	assert.Equal(t, AddressContract, kind)

	// The all-zero account used as a simulation source.
	kind, payload, err = ParseAddress("GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF")
	require.NoError(t, err)
	assert.Equal(t, AddressAccount, kind)
	assert.Equal(t, make([]byte, 32), payload)
}

func TestParseAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short", "GABC"},
		{"bad checksum", testAccount[:55] + "W"},
		{"lowercase", "gaaqeayeaudaocajbifqydiob4ibceqtcqkrmfyydenbwha5dypsabov"},
		{"seed version", "SAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAddress(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAddress))
		})
	}
}

func TestEncodeAddress_RoundTrip(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i + 1)
	}

	acct, err := EncodeAddress(AddressAccount, payload)
	require.NoError(t, err)
	assert.Equal(t, testAccount, acct)

	contract, err := EncodeAddress(AddressContract, payload)
	require.NoError(t, err)
	assert.Equal(t, testContract, contract)
	assert.True(t, IsContractAddress(contract))
	assert.False(t, IsAccountAddress(contract))

	_, err = EncodeAddress(AddressAccount, payload[:31])
	assert.Error(t, err)
}

func TestValidateSymbol(t *testing.T) {
	assert.NoError(t, ValidateSymbol("a"))
	assert.NoError(t, ValidateSymbol("Quest_09"))
	assert.Error(t, ValidateSymbol(""))
	assert.Error(t, ValidateSymbol("quest-1"))
	assert.Error(t, ValidateSymbol("abcdefghij"))
	assert.Error(t, ValidateSymbol("quête"))
}
