package invoke

import (
	"context"

	"cosmossdk.io/log"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// PlaceholderSource is the all-zero account used as the source of read-only
// simulations, which need no real account.
const PlaceholderSource = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"

// Simulator evaluates read-only contract calls without submitting anything.
type Simulator struct {
	client     ports.LedgerClient
	passphrase string
	logger     log.Logger
}

// NewSimulator creates a Simulator for the given network.
func NewSimulator(client ports.LedgerClient, networkPassphrase string) *Simulator {
	return &Simulator{
		client:     client,
		passphrase: networkPassphrase,
		logger:     log.NewNopLogger(),
	}
}

// SetLogger sets the logger.
func (s *Simulator) SetLogger(logger log.Logger) {
	s.logger = logger
}

// Simulate dry-runs function on contractID and returns its return value.
// A function that returns nothing yields Void.
func (s *Simulator) Simulate(ctx context.Context, contractID, function string, args []scval.Value) (scval.Value, error) {
	env, err := network.Build(network.BuildRequest{
		ContractID:        contractID,
		Function:          function,
		Args:              args,
		Source:            PlaceholderSource,
		Fee:               network.ZeroFee(),
		NetworkPassphrase: s.passphrase,
	})
	if err != nil {
		return scval.Void(), err
	}
	encoded, err := network.EncodeEnvelope(env)
	if err != nil {
		return scval.Void(), err
	}

	s.logger.Debug("simulating contract call", "contract", contractID, "function", function)

	res, err := s.client.SimulateTransaction(ctx, encoded)
	if err != nil {
		return scval.Void(), &SimulationError{Function: function, Message: err.Error(), Err: err}
	}
	if res.Error != "" {
		s.logger.Debug("simulation returned error", "function", function, "error", res.Error)
		return scval.Void(), &SimulationError{Function: function, Message: res.Error}
	}
	return res.ReturnValue, nil
}

var _ ports.ContractReader = (*Simulator)(nil)
