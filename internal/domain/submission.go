package domain

import (
	"time"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Submission is the journal record of a write invocation accepted by the
// ledger. TIMED_OUT records are reconciled later by re-watching TxHash.
type Submission struct {
	// ID is a uuid assigned when the record is created.
	ID string `json:"id"`

	ContractID string `json:"contractId"`
	Function   string `json:"function"`
	Source     string `json:"source"`

	// TxHash is the transaction id returned by the ledger.
	TxHash string `json:"txHash"`

	// Phase is SUBMITTED until a terminal phase is observed.
	Phase network.Phase `json:"phase"`

	// Error holds the failure detail or the timeout hint.
	Error string `json:"error,omitempty"`

	// ReturnValue is set once the transaction is confirmed.
	ReturnValue *scval.Value `json:"returnValue,omitempty"`

	// Ledger is the ledger the transaction was included in.
	Ledger int64 `json:"ledger,omitempty"`

	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Apply copies an outcome onto the record.
func (s *Submission) Apply(o *network.Outcome) {
	s.Phase = o.Phase
	s.Ledger = o.Ledger
	s.Error = ""
	s.ReturnValue = nil
	switch o.Phase {
	case network.PhaseConfirmed:
		rv := o.ReturnValue
		s.ReturnValue = &rv
	case network.PhaseFailed, network.PhaseTimedOut:
		s.Error = o.Detail
	}
}

// SubmissionFilter narrows a journal listing.
type SubmissionFilter struct {
	// Phase, when set, keeps only records in that phase.
	Phase network.Phase
	// Source, when set, keeps only records signed by that account.
	Source string
}

// Matches reports whether s passes the filter.
func (f SubmissionFilter) Matches(s *Submission) bool {
	if f.Phase != "" && s.Phase != f.Phase {
		return false
	}
	if f.Source != "" && s.Source != f.Source {
		return false
	}
	return true
}
