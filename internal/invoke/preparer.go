package invoke

import (
	"context"
	"errors"

	"cosmossdk.io/log"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Preparer turns a built envelope into one the ledger will accept: it fixes
// the sequence number, attaches the simulated footprint, and computes the fee.
type Preparer struct {
	client  ports.LedgerClient
	baseFee int64
	logger  log.Logger
}

// NewPreparer creates a Preparer with the default base fee.
func NewPreparer(client ports.LedgerClient) *Preparer {
	return &Preparer{
		client:  client,
		baseFee: network.DefaultBaseFee,
		logger:  log.NewNopLogger(),
	}
}

// WithBaseFee sets the inclusion fee added to the resource fee.
func (p *Preparer) WithBaseFee(stroops int64) *Preparer {
	if stroops > 0 {
		p.baseFee = stroops
	}
	return p
}

// BaseFee returns the configured inclusion fee.
func (p *Preparer) BaseFee() int64 { return p.baseFee }

// SetLogger sets the logger.
func (p *Preparer) SetLogger(logger log.Logger) {
	p.logger = logger
}

// Prepare resolves source's sequence, simulates env as source, and returns the
// frozen result. env itself is not modified.
func (p *Preparer) Prepare(ctx context.Context, env *network.Envelope, source string) (*network.PreparedEnvelope, error) {
	if env == nil {
		return nil, &PrepareError{Source: source, Message: "envelope is nil"}
	}
	if !scval.IsAccountAddress(source) {
		return nil, &PrepareError{Source: source, Message: "source is not an account address"}
	}

	acct, err := p.client.GetAccount(ctx, source)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, &PrepareError{Source: source, Message: "account not found on ledger", Err: err}
		}
		return nil, &PrepareError{Source: source, Message: err.Error(), Err: err}
	}
	if acct.Sequence <= 0 {
		return nil, &PrepareError{Source: source, Message: "account has no sequence number"}
	}

	draft := env.Clone()
	draft.Source = source
	draft.Sequence = acct.Sequence + 1
	draft.Resources = nil

	base := p.baseFee
	if draft.Fee.Kind == network.FeeBase && draft.Fee.Stroops > 0 {
		base = draft.Fee.Stroops
	}
	draft.Fee = network.BaseFee(base)

	encoded, err := network.EncodeEnvelope(draft)
	if err != nil {
		return nil, &PrepareError{Source: source, Message: err.Error(), Err: err}
	}
	sim, err := p.client.SimulateTransaction(ctx, encoded)
	if err != nil {
		return nil, &PrepareError{Source: source, Message: err.Error(), Err: err}
	}
	if sim.Error != "" {
		return nil, &PrepareError{Source: source, Message: sim.Error}
	}

	draft.Resources = &network.Resources{
		Footprint:   sim.Footprint,
		ResourceFee: sim.MinResourceFee,
	}
	draft.Fee = network.ComputedFee(base + sim.MinResourceFee)

	prepared, err := network.Freeze(draft)
	if err != nil {
		return nil, &PrepareError{Source: source, Message: err.Error(), Err: err}
	}

	p.logger.Info("envelope prepared",
		"function", draft.Operation.Function,
		"sequence", draft.Sequence,
		"fee", draft.Fee.Stroops,
		"hash", prepared.Hash())

	return prepared, nil
}
