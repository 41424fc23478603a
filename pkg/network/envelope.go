// pkg/network/envelope.go
package network

import (
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// DefaultBaseFee is the inclusion fee, in stroops, offered before resource
// fees are known.
const DefaultBaseFee int64 = 100

// DefaultTimeoutSeconds bounds how long an envelope stays valid after it is
// built.
const DefaultTimeoutSeconds = 30

// FeeKind identifies how an envelope's fee was determined.
type FeeKind string

const (
	// FeeZero is used for read-only simulations that are never submitted.
	FeeZero FeeKind = "zero"
	// FeeBase is the flat inclusion fee before preparation.
	FeeBase FeeKind = "base"
	// FeeComputed is base fee plus the simulated resource fee.
	FeeComputed FeeKind = "computed"
)

// FeePolicy is the fee offered by an envelope.
type FeePolicy struct {
	Kind    FeeKind `json:"kind"`
	Stroops int64   `json:"stroops"`
}

// ZeroFee returns the fee used for simulations.
func ZeroFee() FeePolicy { return FeePolicy{Kind: FeeZero} }

// BaseFee returns a flat fee of n stroops.
func BaseFee(n int64) FeePolicy { return FeePolicy{Kind: FeeBase, Stroops: n} }

// ComputedFee returns a fee that already includes resource costs.
func ComputedFee(n int64) FeePolicy { return FeePolicy{Kind: FeeComputed, Stroops: n} }

// ContractCall is the single operation carried by an envelope.
type ContractCall struct {
	// ContractID is the C... identifier of the target contract.
	ContractID string `json:"contractId"`

	// Function is the contract function name.
	Function string `json:"function"`

	// Args are the positional, already-typed arguments.
	Args []scval.Value `json:"args"`
}

// Footprint lists the ledger keys a call reads and writes.
type Footprint struct {
	ReadOnly  []string `json:"readOnly"`
	ReadWrite []string `json:"readWrite"`
}

// Resources is the simulated resource declaration attached by preparation.
type Resources struct {
	Footprint   Footprint `json:"footprint"`
	ResourceFee int64     `json:"resourceFee"`
}

// Envelope is an unsigned contract invocation.
type Envelope struct {
	// Source is the G... account that pays for and authorizes the call.
	Source string `json:"source"`

	// Sequence is the source account's next sequence number (0 for simulation).
	Sequence int64 `json:"sequence"`

	// Fee is the fee offered for inclusion.
	Fee FeePolicy `json:"fee"`

	// NetworkPassphrase identifies the network. It is not part of the
	// encoded payload; it is mixed into the transaction hash instead.
	NetworkPassphrase string `json:"-"`

	// Operation is the single contract call.
	Operation ContractCall `json:"operation"`

	// TimeoutSeconds is the validity window of the envelope.
	TimeoutSeconds int `json:"timeoutSeconds"`

	// Resources is set by the preparer, nil before preparation.
	Resources *Resources `json:"resources,omitempty"`
}

// Clone returns a deep copy of the envelope.
func (e *Envelope) Clone() *Envelope {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Operation.Args = append([]scval.Value(nil), e.Operation.Args...)
	if e.Resources != nil {
		res := *e.Resources
		res.Footprint.ReadOnly = append([]string(nil), e.Resources.Footprint.ReadOnly...)
		res.Footprint.ReadWrite = append([]string(nil), e.Resources.Footprint.ReadWrite...)
		cp.Resources = &res
	}
	return &cp
}
