package invoke

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/log"
	"github.com/google/uuid"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/internal/signer"
	"github.com/altuslabsxyz/questline/pkg/network"
)

// ProgressFunc observes phase transitions of a write. detail is the
// transaction hash once known.
type ProgressFunc func(phase network.Phase, detail string)

// Invoker runs writes end to end: build, prepare, sign, submit, and poll.
type Invoker struct {
	preparer   *Preparer
	submitter  *Submitter
	delegate   signer.Delegate
	journal    ports.SubmissionJournal
	passphrase string
	logger     log.Logger
	progress   ProgressFunc
	now        func() time.Time
}

// NewInvoker wires the pipeline. journal may be nil, in which case nothing is
// recorded.
func NewInvoker(preparer *Preparer, submitter *Submitter, delegate signer.Delegate, journal ports.SubmissionJournal, networkPassphrase string) *Invoker {
	return &Invoker{
		preparer:   preparer,
		submitter:  submitter,
		delegate:   delegate,
		journal:    journal,
		passphrase: networkPassphrase,
		logger:     log.NewNopLogger(),
		progress:   func(network.Phase, string) {},
		now:        time.Now,
	}
}

// SetLogger sets the logger.
func (i *Invoker) SetLogger(logger log.Logger) {
	i.logger = logger
}

// OnProgress registers a phase observer.
func (i *Invoker) OnProgress(fn ProgressFunc) {
	if fn == nil {
		fn = func(network.Phase, string) {}
	}
	i.progress = fn
}

// NetworkPassphrase returns the network the invoker builds for.
func (i *Invoker) NetworkPassphrase() string { return i.passphrase }

// Prepare builds and prepares call without signing it. It is the first half
// of the browser-wallet flow, where signing happens outside this process.
func (i *Invoker) Prepare(ctx context.Context, call network.Call) (*network.PreparedEnvelope, error) {
	env, err := network.Build(network.BuildRequest{
		ContractID:        call.ContractID,
		Function:          call.Function,
		Args:              call.Args,
		Source:            call.Source,
		Fee:               network.BaseFee(i.preparer.BaseFee()),
		NetworkPassphrase: i.passphrase,
	})
	if err != nil {
		return nil, err
	}
	i.progress(network.PhaseBuilt, "")

	return i.preparer.Prepare(ctx, env, call.Source)
}

// Invoke runs call through the whole pipeline. An empty call.Source is
// replaced by the wallet's active identity. Errors before SUBMITTED leave no
// trace; from SUBMITTED onward the submission is journaled.
func (i *Invoker) Invoke(ctx context.Context, call network.Call) (*network.Outcome, error) {
	if !i.delegate.IsAvailable(ctx) {
		return nil, fmt.Errorf("%w: no wallet is connected", signer.ErrSigningUnavailable)
	}
	if call.Source == "" {
		identity, err := i.delegate.ActiveIdentity(ctx)
		if err != nil {
			return nil, err
		}
		if identity == "" {
			return nil, fmt.Errorf("%w: wallet has no active account", signer.ErrSigningUnavailable)
		}
		call.Source = identity
	}

	prepared, err := i.Prepare(ctx, call)
	if err != nil {
		return nil, err
	}

	signed, err := i.delegate.Sign(ctx, prepared.Encoded(), prepared.NetworkPassphrase())
	if err != nil {
		i.logger.Warn("signing did not complete", "function", call.Function, "error", err.Error())
		return nil, err
	}
	if signed == "" {
		return nil, fmt.Errorf("%w: wallet returned an empty envelope", signer.ErrSigningUnavailable)
	}
	i.progress(network.PhaseSigned, "")

	return i.SubmitSigned(ctx, signed, call)
}

// SubmitSigned submits an envelope signed elsewhere and polls it to a final
// outcome. call describes the invocation for the journal and may be partial.
func (i *Invoker) SubmitSigned(ctx context.Context, signed string, call network.Call) (*network.Outcome, error) {
	handle, err := i.submitter.Send(ctx, signed)
	if err != nil {
		return nil, err
	}
	i.progress(network.PhaseSubmitted, handle.TransactionID)

	// Journal writes must not be lost to a cancelled caller.
	bg := context.WithoutCancel(ctx)
	record := &domain.Submission{
		ID:          uuid.NewString(),
		ContractID:  call.ContractID,
		Function:    call.Function,
		Source:      call.Source,
		TxHash:      handle.TransactionID,
		Phase:       network.PhaseSubmitted,
		SubmittedAt: handle.SubmittedAt,
		UpdatedAt:   handle.SubmittedAt,
	}
	i.record(bg, record, true)

	outcome := i.submitter.Watch(bg, handle)

	record.Apply(outcome)
	record.UpdatedAt = i.now()
	i.record(bg, record, false)

	i.progress(outcome.Phase, handle.TransactionID)
	return outcome, nil
}

// Reconcile re-polls a known transaction hash, typically one that timed out,
// and updates its journal record.
func (i *Invoker) Reconcile(ctx context.Context, hash string) (*network.Outcome, error) {
	var record *domain.Submission
	if i.journal != nil {
		found, err := i.journal.GetSubmissionByHash(ctx, hash)
		if err == nil {
			record = found
		}
	}

	handle := network.SubmissionHandle{TransactionID: hash, SubmittedAt: i.now()}
	if record != nil {
		handle.SubmittedAt = record.SubmittedAt
	}

	outcome := i.submitter.Watch(ctx, handle)
	if record != nil {
		record.Apply(outcome)
		record.UpdatedAt = i.now()
		i.record(context.WithoutCancel(ctx), record, false)
	}
	return outcome, nil
}

func (i *Invoker) record(ctx context.Context, s *domain.Submission, create bool) {
	if i.journal == nil {
		return
	}
	var err error
	if create {
		err = i.journal.CreateSubmission(ctx, s)
	} else {
		err = i.journal.UpdateSubmission(ctx, s)
	}
	if err != nil {
		i.logger.Error("failed to journal submission", "id", s.ID, "hash", s.TxHash, "error", err.Error())
	}
}

var _ ports.ContractWriter = (*Invoker)(nil)
