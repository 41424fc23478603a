// pkg/network/codec.go
package network

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// EncodeEnvelope returns the canonical payload of env: its JSON form, base64
// encoded. Equal envelopes always encode to the same string.
func EncodeEnvelope(env *Envelope) (string, error) {
	if env == nil {
		return "", fmt.Errorf("%w: envelope is nil", ErrInvalidEnvelope)
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to encode envelope: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeEnvelope parses a payload produced by EncodeEnvelope. The network
// passphrase is not part of the payload and is left empty.
func DecodeEnvelope(encoded string) (*Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not base64: %v", ErrInvalidEnvelope, err)
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return &env, nil
}

// TransactionHash derives the transaction id of an encoded envelope:
// hex(sha256(sha256(passphrase) || payload)).
func TransactionHash(networkPassphrase, encoded string) (string, error) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: payload is not base64: %v", ErrInvalidEnvelope, err)
	}
	networkID := sha256.Sum256([]byte(networkPassphrase))

	h := sha256.New()
	h.Write(networkID[:])
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// PreparedEnvelope is an envelope frozen after fee and footprint preparation.
// It holds the exact payload handed to the signer.
type PreparedEnvelope struct {
	env     *Envelope
	encoded string
	hash    string
}

// Freeze encodes env and returns an immutable prepared envelope. Later changes
// to env do not affect the result.
func Freeze(env *Envelope) (*PreparedEnvelope, error) {
	frozen := env.Clone()
	encoded, err := EncodeEnvelope(frozen)
	if err != nil {
		return nil, err
	}
	hash, err := TransactionHash(frozen.NetworkPassphrase, encoded)
	if err != nil {
		return nil, err
	}
	return &PreparedEnvelope{env: frozen, encoded: encoded, hash: hash}, nil
}

// Encoded returns the payload to sign.
func (p *PreparedEnvelope) Encoded() string { return p.encoded }

// Hash returns the transaction id the ledger will assign.
func (p *PreparedEnvelope) Hash() string { return p.hash }

// NetworkPassphrase returns the passphrase the envelope was built for.
func (p *PreparedEnvelope) NetworkPassphrase() string { return p.env.NetworkPassphrase }

// Envelope returns a copy of the prepared envelope.
func (p *PreparedEnvelope) Envelope() *Envelope { return p.env.Clone() }
