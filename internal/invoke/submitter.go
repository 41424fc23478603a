package invoke

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/log"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

const (
	// DefaultPollInterval is the delay between status polls.
	DefaultPollInterval = 2 * time.Second

	// DefaultSubmitTimeout is how long polling runs before TIMED_OUT.
	DefaultSubmitTimeout = 60 * time.Second

	minPollInterval = time.Millisecond
)

// Submitter sends signed envelopes and polls them to a final outcome.
type Submitter struct {
	client       ports.LedgerClient
	pollInterval time.Duration
	timeout      time.Duration
	logger       log.Logger
	now          func() time.Time
}

// NewSubmitter creates a Submitter with the default interval and timeout.
func NewSubmitter(client ports.LedgerClient) *Submitter {
	return &Submitter{
		client:       client,
		pollInterval: DefaultPollInterval,
		timeout:      DefaultSubmitTimeout,
		logger:       log.NewNopLogger(),
		now:          time.Now,
	}
}

// WithPollInterval sets the status poll interval. Non-positive values poll
// as fast as the minimum ticker interval allows.
func (s *Submitter) WithPollInterval(interval time.Duration) *Submitter {
	s.pollInterval = interval
	return s
}

// WithTimeout sets the wall-clock polling budget. Non-positive values keep
// the default.
func (s *Submitter) WithTimeout(timeout time.Duration) *Submitter {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// SetLogger sets the logger.
func (s *Submitter) SetLogger(logger log.Logger) {
	s.logger = logger
}

// Submit sends signed and polls until the transaction is final or the
// timeout elapses. Only a rejected send is an error; FAILED and TIMED_OUT
// are outcomes.
func (s *Submitter) Submit(ctx context.Context, signed string) (*network.Outcome, error) {
	handle, err := s.Send(ctx, signed)
	if err != nil {
		return nil, err
	}
	return s.Watch(ctx, handle), nil
}

// Send submits signed once. On success the transaction is SUBMITTED.
func (s *Submitter) Send(ctx context.Context, signed string) (network.SubmissionHandle, error) {
	if signed == "" {
		return network.SubmissionHandle{}, &SubmissionError{Message: "signed envelope is empty"}
	}

	res, err := s.client.SendTransaction(ctx, signed)
	if err != nil {
		return network.SubmissionHandle{}, &SubmissionError{Message: err.Error(), Err: err}
	}

	switch res.Status {
	case ports.SendStatusPending, ports.SendStatusDuplicate:
	case ports.SendStatusError:
		msg := res.ErrorResult
		if msg == "" {
			msg = "transaction rejected"
		}
		return network.SubmissionHandle{}, &SubmissionError{Status: string(res.Status), Message: msg}
	case ports.SendStatusTryAgainLater:
		return network.SubmissionHandle{}, &SubmissionError{Status: string(res.Status), Message: "ledger is busy, try again later"}
	default:
		return network.SubmissionHandle{}, &SubmissionError{Status: string(res.Status), Message: "unexpected send status"}
	}
	if res.Hash == "" {
		return network.SubmissionHandle{}, &SubmissionError{Status: string(res.Status), Message: "ledger returned no transaction hash"}
	}

	s.logger.Info("transaction submitted", "hash", res.Hash, "status", res.Status)
	return network.SubmissionHandle{TransactionID: res.Hash, SubmittedAt: s.now()}, nil
}

// Watch polls handle's status until it is final or the timeout elapses.
// Cancelling ctx does not stop polling: once submitted, the transaction may
// land regardless, so the outcome is always observed or timed out.
func (s *Submitter) Watch(ctx context.Context, handle network.SubmissionHandle) *network.Outcome {
	ctx = context.WithoutCancel(ctx)

	interval := s.pollInterval
	if interval < minPollInterval {
		interval = minPollInterval
	}
	deadline := s.now().Add(s.timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	timeout := time.NewTimer(s.timeout)
	defer timeout.Stop()

	hash := handle.TransactionID
	for {
		select {
		case <-timeout.C:
			s.logger.Warn("transaction outcome unknown", "hash", hash, "timeout", s.timeout.String())
			return &network.Outcome{
				Phase:       network.PhaseTimedOut,
				Handle:      handle,
				ReturnValue: scval.Void(),
				Detail:      network.TimedOutMessage,
			}
		case <-ticker.C:
			outcome, done := s.poll(ctx, handle, deadline)
			if done {
				return outcome
			}
		}
	}
}

func (s *Submitter) poll(ctx context.Context, handle network.SubmissionHandle, deadline time.Time) (*network.Outcome, bool) {
	pollCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	res, err := s.client.GetTransaction(pollCtx, handle.TransactionID)
	if err != nil {
		// The node may be briefly unreachable; keep waiting.
		s.logger.Debug("status poll failed", "hash", handle.TransactionID, "error", err.Error())
		return nil, false
	}

	switch res.Status {
	case ports.TxStatusSuccess:
		s.logger.Info("transaction confirmed", "hash", handle.TransactionID, "ledger", res.Ledger)
		return &network.Outcome{
			Phase:       network.PhaseConfirmed,
			Handle:      handle,
			ReturnValue: res.ReturnValue,
			Ledger:      res.Ledger,
		}, true
	case ports.TxStatusFailed:
		detail := "transaction failed"
		if res.ResultXDR != "" {
			detail = fmt.Sprintf("transaction failed: %s", res.ResultXDR)
		}
		s.logger.Error("transaction failed", "hash", handle.TransactionID, "ledger", res.Ledger)
		return &network.Outcome{
			Phase:       network.PhaseFailed,
			Handle:      handle,
			ReturnValue: scval.Void(),
			Ledger:      res.Ledger,
			Detail:      detail,
		}, true
	}
	return nil, false
}
