// Package signer provides the external signing capability. Keys never enter
// this process: a Delegate hands the prepared envelope to a user-controlled
// wallet and returns whatever the wallet signed.
package signer

import (
	"context"
	"errors"
)

var (
	// ErrSigningRejected means the user declined to sign.
	ErrSigningRejected = errors.New("signing rejected by user")
	// ErrSigningUnavailable means no wallet could be reached.
	ErrSigningUnavailable = errors.New("signing wallet unavailable")
)

// Delegate signs envelopes on behalf of the user. Both sentinel errors are
// terminal for an attempt; callers never retry them.
type Delegate interface {
	// Sign returns the signed form of envelope for the given network.
	Sign(ctx context.Context, envelope, networkPassphrase string) (string, error)

	// IsAvailable reports whether a wallet is reachable right now.
	IsAvailable(ctx context.Context) bool

	// ActiveIdentity returns the account the wallet signs for, or "" when
	// none is selected.
	ActiveIdentity(ctx context.Context) (string, error)
}

// IsRejected reports whether err means the user declined.
func IsRejected(err error) bool { return errors.Is(err, ErrSigningRejected) }

// IsUnavailable reports whether err means the wallet could not be reached.
func IsUnavailable(err error) bool { return errors.Is(err, ErrSigningUnavailable) }
