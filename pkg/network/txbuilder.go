// pkg/network/txbuilder.go
package network

import (
	"errors"
	"fmt"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// MaxFunctionNameLen is the longest contract function name accepted.
const MaxFunctionNameLen = 32

// ErrInvalidEnvelope is wrapped by every Build validation failure.
var ErrInvalidEnvelope = errors.New("invalid envelope")

// BuildRequest contains the parameters for building an invocation envelope.
type BuildRequest struct {
	// ContractID is the C... identifier of the target contract.
	ContractID string `json:"contractId"`

	// Function is the contract function to invoke.
	Function string `json:"function"`

	// Args are the encoded positional arguments.
	Args []scval.Value `json:"args"`

	// Source is the G... account the envelope is built for.
	Source string `json:"source"`

	// Sequence is the source's next sequence number. Zero before preparation.
	Sequence int64 `json:"sequence,omitempty"`

	// Fee is the fee policy. The zero value means BaseFee(DefaultBaseFee).
	Fee FeePolicy `json:"fee"`

	// NetworkPassphrase identifies the target network.
	NetworkPassphrase string `json:"networkPassphrase"`
}

// Build constructs an unsigned envelope carrying exactly one contract call.
// It performs no I/O.
func Build(req BuildRequest) (*Envelope, error) {
	if !scval.IsContractAddress(req.ContractID) {
		return nil, fmt.Errorf("%w: contract id %q is not a contract address", ErrInvalidEnvelope, req.ContractID)
	}
	if !scval.IsAccountAddress(req.Source) {
		return nil, fmt.Errorf("%w: source %q is not an account address", ErrInvalidEnvelope, req.Source)
	}
	if err := validateFunctionName(req.Function); err != nil {
		return nil, err
	}
	if req.NetworkPassphrase == "" {
		return nil, fmt.Errorf("%w: network passphrase is required", ErrInvalidEnvelope)
	}
	if req.Sequence < 0 {
		return nil, fmt.Errorf("%w: sequence must not be negative", ErrInvalidEnvelope)
	}

	fee := req.Fee
	if fee.Kind == "" {
		fee = BaseFee(DefaultBaseFee)
	}
	if fee.Stroops < 0 {
		return nil, fmt.Errorf("%w: fee must not be negative", ErrInvalidEnvelope)
	}

	return &Envelope{
		Source:            req.Source,
		Sequence:          req.Sequence,
		Fee:               fee,
		NetworkPassphrase: req.NetworkPassphrase,
		Operation: ContractCall{
			ContractID: req.ContractID,
			Function:   req.Function,
			Args:       append([]scval.Value{}, req.Args...),
		},
		TimeoutSeconds: DefaultTimeoutSeconds,
	}, nil
}

func validateFunctionName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: function name is required", ErrInvalidEnvelope)
	}
	if len(name) > MaxFunctionNameLen {
		return fmt.Errorf("%w: function name %q exceeds %d characters", ErrInvalidEnvelope, name, MaxFunctionNameLen)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '_' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: function name %q contains invalid character %q", ErrInvalidEnvelope, name, c)
		}
	}
	return nil
}
