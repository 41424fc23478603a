package invoke

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/signer"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

func questArgs(t *testing.T) []scval.Value {
	t.Helper()
	sym, err := scval.NewSymbol("quest1")
	require.NoError(t, err)
	return []scval.Value{sym}
}

func TestSimulator_Simulate(t *testing.T) {
	ledger := newMockLedger()
	ledger.simResult = &ports.SimulateResult{ReturnValue: scval.NewU64(3)}

	sim := NewSimulator(ledger, testPassphrase)
	got, err := sim.Simulate(context.Background(), testContract, "get_quest_count", nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(scval.NewU64(3)))

	require.Len(t, ledger.simulated, 1)
	env, err := network.DecodeEnvelope(ledger.simulated[0])
	require.NoError(t, err)
	assert.Equal(t, PlaceholderSource, env.Source)
	assert.Equal(t, network.FeeZero, env.Fee.Kind)
	assert.Equal(t, "get_quest_count", env.Operation.Function)
}

func TestSimulator_Errors(t *testing.T) {
	t.Run("contract error", func(t *testing.T) {
		ledger := newMockLedger()
		ledger.simResult = &ports.SimulateResult{Error: "HostError: quest not found"}

		_, err := NewSimulator(ledger, testPassphrase).Simulate(context.Background(), testContract, "get_quest", questArgs(t))
		var simErr *SimulationError
		require.ErrorAs(t, err, &simErr)
		assert.Equal(t, "get_quest", simErr.Function)
		assert.Contains(t, err.Error(), "quest not found")
		assert.Equal(t, StageSimulation, Stage(err))
	})

	t.Run("transport error", func(t *testing.T) {
		ledger := newMockLedger()
		ledger.simErr = errors.New("connection refused")

		_, err := NewSimulator(ledger, testPassphrase).Simulate(context.Background(), testContract, "get_quest", nil)
		assert.Equal(t, StageSimulation, Stage(err))
	})

	t.Run("invalid contract", func(t *testing.T) {
		ledger := newMockLedger()
		_, err := NewSimulator(ledger, testPassphrase).Simulate(context.Background(), testAccount, "get_quest", nil)
		assert.Equal(t, StageBuild, Stage(err))
		assert.Empty(t, ledger.simulated)
	})
}

func buildEnvelope(t *testing.T) *network.Envelope {
	t.Helper()
	env, err := network.Build(network.BuildRequest{
		ContractID:        testContract,
		Function:          "complete_quest",
		Args:              questArgs(t),
		Source:            testAccount,
		NetworkPassphrase: testPassphrase,
	})
	require.NoError(t, err)
	return env
}

func TestPreparer_Prepare(t *testing.T) {
	ledger := newMockLedger()
	ledger.simResult = &ports.SimulateResult{
		ReturnValue:    scval.Void(),
		MinResourceFee: 5000,
		Footprint:      network.Footprint{ReadOnly: []string{"quest"}, ReadWrite: []string{"completion"}},
	}

	env := buildEnvelope(t)
	prepared, err := NewPreparer(ledger).Prepare(context.Background(), env, testAccount)
	require.NoError(t, err)

	got := prepared.Envelope()
	assert.Equal(t, int64(42), got.Sequence)
	assert.Equal(t, network.ComputedFee(5100), got.Fee)
	require.NotNil(t, got.Resources)
	assert.Equal(t, int64(5000), got.Resources.ResourceFee)
	assert.Equal(t, []string{"completion"}, got.Resources.Footprint.ReadWrite)

	// The input envelope is untouched.
	assert.Equal(t, int64(0), env.Sequence)
	assert.Nil(t, env.Resources)

	hash, err := network.TransactionHash(testPassphrase, prepared.Encoded())
	require.NoError(t, err)
	assert.Equal(t, hash, prepared.Hash())
	assert.Equal(t, testPassphrase, prepared.NetworkPassphrase())

	// Simulation ran with the real sequence and the base fee.
	require.Len(t, ledger.simulated, 1)
	simulated, err := network.DecodeEnvelope(ledger.simulated[0])
	require.NoError(t, err)
	assert.Equal(t, int64(42), simulated.Sequence)
	assert.Equal(t, network.BaseFee(network.DefaultBaseFee), simulated.Fee)
}

func TestPreparer_CustomBaseFee(t *testing.T) {
	ledger := newMockLedger()
	p := NewPreparer(ledger).WithBaseFee(250)
	assert.Equal(t, int64(250), p.BaseFee())

	env := buildEnvelope(t)
	env.Fee = network.BaseFee(250)
	prepared, err := p.Prepare(context.Background(), env, testAccount)
	require.NoError(t, err)
	assert.Equal(t, network.ComputedFee(5250), prepared.Envelope().Fee)

	assert.Equal(t, int64(250), p.WithBaseFee(0).BaseFee())
}

func TestPreparer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*mockLedger)
		source  string
		wantMsg string
	}{
		{
			name:    "missing account",
			setup:   func(m *mockLedger) { m.accountErr = fmt.Errorf("lookup: %w", ports.ErrNotFound) },
			source:  testAccount,
			wantMsg: "account not found on ledger",
		},
		{
			name:    "zero sequence",
			setup:   func(m *mockLedger) { m.account = &ports.Account{ID: testAccount, Sequence: 0} },
			source:  testAccount,
			wantMsg: "no sequence number",
		},
		{
			name:    "simulation failure",
			setup:   func(m *mockLedger) { m.simResult = &ports.SimulateResult{Error: "already completed"} },
			source:  testAccount,
			wantMsg: "already completed",
		},
		{
			name:    "contract source",
			setup:   func(*mockLedger) {},
			source:  testContract,
			wantMsg: "not an account address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newMockLedger()
			tt.setup(ledger)

			_, err := NewPreparer(ledger).Prepare(context.Background(), buildEnvelope(t), tt.source)
			var prepErr *PrepareError
			require.ErrorAs(t, err, &prepErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, StagePrepare, Stage(err))
		})
	}
}

func TestPreparer_NilEnvelope(t *testing.T) {
	_, err := NewPreparer(newMockLedger()).Prepare(context.Background(), nil, testAccount)
	assert.Equal(t, StagePrepare, Stage(err))
}

func TestStage(t *testing.T) {
	_, encErr := scval.EncodeHint("abc", scval.HintU32)
	_, buildErr := network.Build(network.BuildRequest{})

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"encoding", encErr, StageEncoding},
		{"build", buildErr, StageBuild},
		{"simulation", fmt.Errorf("read: %w", &SimulationError{Function: "f", Message: "x"}), StageSimulation},
		{"prepare", &PrepareError{Source: testAccount, Message: "x"}, StagePrepare},
		{"rejected", fmt.Errorf("wallet: %w", signer.ErrSigningRejected), StageSigningRejected},
		{"unavailable", signer.ErrSigningUnavailable, StageSigningUnavailable},
		{"submission", &SubmissionError{Status: "ERROR", Message: "bad"}, StageSubmission},
		{"other", errors.New("boom"), StageInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stage(tt.err))
		})
	}
}
