package ports

import (
	"context"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// ContractReader evaluates read-only contract calls by simulation.
type ContractReader interface {
	Simulate(ctx context.Context, contractID, function string, args []scval.Value) (scval.Value, error)
}

// ContractWriter runs the full write pipeline for a contract call.
type ContractWriter interface {
	Invoke(ctx context.Context, call network.Call) (*network.Outcome, error)
}
