// pkg/network/outcome.go
package network

import (
	"time"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Phase is the lifecycle state of a write invocation.
type Phase string

const (
	PhaseBuilt     Phase = "BUILT"
	PhaseSigned    Phase = "SIGNED"
	PhaseSubmitted Phase = "SUBMITTED"
	PhaseConfirmed Phase = "CONFIRMED"
	PhaseFailed    Phase = "FAILED"
	// PhaseTimedOut means the outcome is unknown; the transaction may still
	// land and must be checked manually.
	PhaseTimedOut Phase = "TIMED_OUT"
)

// IsTerminal reports whether no further transition can happen.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseConfirmed, PhaseFailed, PhaseTimedOut:
		return true
	}
	return false
}

// ParsePhase converts a phase name, returning false if it is unknown.
func ParsePhase(s string) (Phase, bool) {
	switch p := Phase(s); p {
	case PhaseBuilt, PhaseSigned, PhaseSubmitted, PhaseConfirmed, PhaseFailed, PhaseTimedOut:
		return p, true
	}
	return "", false
}

// TimedOutMessage is reported when polling ends without a final status.
const TimedOutMessage = "unknown outcome - check manually"

// SubmissionHandle identifies a transaction accepted by the ledger.
type SubmissionHandle struct {
	TransactionID string    `json:"transactionId"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Outcome is the final state of a submitted transaction.
type Outcome struct {
	// Phase is CONFIRMED, FAILED or TIMED_OUT.
	Phase Phase `json:"phase"`

	// Handle identifies the submission.
	Handle SubmissionHandle `json:"handle"`

	// ReturnValue is the contract's return value, Void unless CONFIRMED.
	ReturnValue scval.Value `json:"returnValue"`

	// Ledger is the ledger sequence the transaction was included in.
	Ledger int64 `json:"ledger,omitempty"`

	// Detail carries the failure result or the timeout hint.
	Detail string `json:"detail,omitempty"`
}

// Succeeded reports whether the transaction is confirmed.
func (o *Outcome) Succeeded() bool { return o != nil && o.Phase == PhaseConfirmed }

// Call is a contract invocation request with encoded arguments.
type Call struct {
	ContractID string        `json:"contractId"`
	Function   string        `json:"function"`
	Args       []scval.Value `json:"args"`
	// Source is the account that signs the call.
	Source string `json:"source"`
}
