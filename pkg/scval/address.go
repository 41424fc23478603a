package scval

import (
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
)

// AddressKind distinguishes account identities from contract identities.
type AddressKind uint8

const (
	AddressAccount AddressKind = iota + 1
	AddressContract
)

func (k AddressKind) String() string {
	switch k {
	case AddressAccount:
		return "account"
	case AddressContract:
		return "contract"
	}
	return "unknown"
}

// Version bytes of the strkey format; they render as 'G' and 'C'.
const (
	versionAccount  byte = 6 << 3
	versionContract byte = 2 << 3
)

// addressLength is the length of an encoded account or contract strkey:
// base32 of version(1) + payload(32) + checksum(2).
const addressLength = 56

var strkeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ErrInvalidAddress is returned for strings that are not a well-formed account
// or contract identifier.
var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress decodes an account (G...) or contract (C...) identifier and
// returns its kind and 32-byte payload.
func ParseAddress(s string) (AddressKind, []byte, error) {
	if len(s) != addressLength {
		return 0, nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidAddress, len(s), addressLength)
	}
	raw, err := strkeyEncoding.DecodeString(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	// Reject non-canonical encodings whose trailing bits decode leniently.
	if strkeyEncoding.EncodeToString(raw) != s {
		return 0, nil, fmt.Errorf("%w: non-canonical encoding", ErrInvalidAddress)
	}

	body, sum := raw[:len(raw)-2], raw[len(raw)-2:]
	if crc16(body) != binary.LittleEndian.Uint16(sum) {
		return 0, nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	var kind AddressKind
	switch body[0] {
	case versionAccount:
		kind = AddressAccount
	case versionContract:
		kind = AddressContract
	default:
		return 0, nil, fmt.Errorf("%w: unsupported version byte %#x", ErrInvalidAddress, body[0])
	}
	return kind, body[1:], nil
}

// IsAccountAddress reports whether s is a valid G... account identifier.
func IsAccountAddress(s string) bool {
	kind, _, err := ParseAddress(s)
	return err == nil && kind == AddressAccount
}

// IsContractAddress reports whether s is a valid C... contract identifier.
func IsContractAddress(s string) bool {
	kind, _, err := ParseAddress(s)
	return err == nil && kind == AddressContract
}

// EncodeAddress renders a 32-byte payload as a strkey of the given kind.
func EncodeAddress(kind AddressKind, payload []byte) (string, error) {
	if len(payload) != 32 {
		return "", fmt.Errorf("%w: payload must be 32 bytes, got %d", ErrInvalidAddress, len(payload))
	}
	var version byte
	switch kind {
	case AddressAccount:
		version = versionAccount
	case AddressContract:
		version = versionContract
	default:
		return "", fmt.Errorf("%w: unknown kind %d", ErrInvalidAddress, kind)
	}

	body := make([]byte, 0, 35)
	body = append(body, version)
	body = append(body, payload...)
	body = binary.LittleEndian.AppendUint16(body, crc16(body))
	return strkeyEncoding.EncodeToString(body), nil
}

// crc16 is CRC-16/XMODEM (poly 0x1021, init 0).
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
