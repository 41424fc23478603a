package network

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

func TestEncodeEnvelope_Deterministic(t *testing.T) {
	a, err := Build(validRequest())
	require.NoError(t, err)
	b, err := Build(validRequest())
	require.NoError(t, err)

	encA, err := EncodeEnvelope(a)
	require.NoError(t, err)
	encB, err := EncodeEnvelope(b)
	require.NoError(t, err)
	assert.Equal(t, encA, encB)

	b.Sequence = 9
	encC, err := EncodeEnvelope(b)
	require.NoError(t, err)
	assert.NotEqual(t, encA, encC)
}

func TestDecodeEnvelope_RoundTrip(t *testing.T) {
	env, err := Build(validRequest())
	require.NoError(t, err)
	env.Sequence = 42
	env.Resources = &Resources{
		Footprint:   Footprint{ReadOnly: []string{"k1"}, ReadWrite: []string{"k2"}},
		ResourceFee: 5000,
	}

	encoded, err := EncodeEnvelope(env)
	require.NoError(t, err)
	decoded, err := DecodeEnvelope(encoded)
	require.NoError(t, err)

	assert.Equal(t, env.Source, decoded.Source)
	assert.Equal(t, env.Sequence, decoded.Sequence)
	assert.Equal(t, env.Fee, decoded.Fee)
	assert.Equal(t, env.Resources, decoded.Resources)
	assert.Empty(t, decoded.NetworkPassphrase)
	require.Len(t, decoded.Operation.Args, 1)
	assert.True(t, env.Operation.Args[0].Equal(decoded.Operation.Args[0]))

	_, err = DecodeEnvelope("not base64!")
	assert.True(t, errors.Is(err, ErrInvalidEnvelope))
}

func TestTransactionHash(t *testing.T) {
	payload := []byte(`{"x":1}`)
	encoded := base64.StdEncoding.EncodeToString(payload)

	networkID := sha256.Sum256([]byte(testPassphrase))
	want := sha256.Sum256(append(networkID[:], payload...))

	got, err := TransactionHash(testPassphrase, encoded)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(want[:]), got)

	other, err := TransactionHash("Public Global Stellar Network ; September 2015", encoded)
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}

func TestFreeze_Immutable(t *testing.T) {
	env, err := Build(validRequest())
	require.NoError(t, err)

	prepared, err := Freeze(env)
	require.NoError(t, err)
	before := prepared.Encoded()

	env.Sequence = 100
	env.Operation.Args[0] = scval.NewString("other")
	assert.Equal(t, before, prepared.Encoded())

	cp := prepared.Envelope()
	cp.Fee = ComputedFee(1)
	assert.Equal(t, before, prepared.Encoded())
	assert.Equal(t, BaseFee(DefaultBaseFee), prepared.Envelope().Fee)

	hash, err := TransactionHash(testPassphrase, before)
	require.NoError(t, err)
	assert.Equal(t, hash, prepared.Hash())
	assert.Equal(t, testPassphrase, prepared.NetworkPassphrase())
}

func TestPhase(t *testing.T) {
	assert.False(t, PhaseSubmitted.IsTerminal())
	assert.True(t, PhaseTimedOut.IsTerminal())

	p, ok := ParsePhase("CONFIRMED")
	require.True(t, ok)
	assert.Equal(t, PhaseConfirmed, p)
	_, ok = ParsePhase("confirmed")
	assert.False(t, ok)
}
