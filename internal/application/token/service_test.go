package token

import (
	"context"
	"errors"
	"sync"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/internal/application/dto"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

const (
	testContract = "CCLJPGEZTKNZZHM6T6QKDIVDUSS2NJ5IVGVKXLFNV2X3BMNSWO2LKEMY"
	alice        = "GAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSABOV"
	bob          = "GBSWMZ3INFVGW3DNNZXXA4LSON2HK5TXPB4XU634PV7H7AEBQKBYJJM6"
)

type fakeReader struct {
	mu      sync.Mutex
	results map[string]scval.Value
	errs    map[string]error
	calls   []string
}

func (f *fakeReader) Simulate(_ context.Context, _, function string, _ []scval.Value) (scval.Value, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, function)
	if err := f.errs[function]; err != nil {
		return scval.Void(), err
	}
	if v, ok := f.results[function]; ok {
		return v, nil
	}
	return scval.Void(), nil
}

type fakeWriter struct {
	calls []network.Call
}

func (f *fakeWriter) Invoke(_ context.Context, call network.Call) (*network.Outcome, error) {
	f.calls = append(f.calls, call)
	return &network.Outcome{Phase: network.PhaseConfirmed, ReturnValue: scval.Void()}, nil
}

func TestService_Balance(t *testing.T) {
	reader := &fakeReader{results: map[string]scval.Value{
		contracts.FnBalance: scval.I128FromInt64(125_000_000),
	}}
	svc := NewService(reader, nil, testContract)

	bal, err := svc.Balance(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, alice, bal.Address)
	assert.Equal(t, "12.5", bal.Display)
	assert.True(t, bal.Amount.Equal(sdkmath.NewInt(125_000_000)))
}

func TestService_BalanceDefaultsToZero(t *testing.T) {
	svc := NewService(&fakeReader{}, nil, testContract)

	bal, err := svc.Balance(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, bal.Amount.IsZero())
	assert.Equal(t, "0", bal.Display)
}

func TestService_BalanceRejectsBadAddress(t *testing.T) {
	reader := &fakeReader{}
	svc := NewService(reader, nil, testContract)

	_, err := svc.Balance(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.True(t, scval.IsEncodingError(err))
	assert.Empty(t, reader.calls)
}

func TestService_Metadata(t *testing.T) {
	reader := &fakeReader{results: map[string]scval.Value{
		contracts.FnName:        scval.NewString("Quest Reward"),
		contracts.FnSymbol:      scval.NewString("QRT"),
		contracts.FnDecimals:    scval.NewU32(7),
		contracts.FnTotalSupply: scval.I128FromInt64(5_000_000_000),
	}}
	svc := NewService(reader, nil, testContract)

	meta, err := svc.Metadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Quest Reward", meta.Name)
	assert.Equal(t, "QRT", meta.Symbol)
	assert.EqualValues(t, 7, meta.Decimals)
	assert.True(t, meta.TotalSupply.Equal(sdkmath.NewInt(5_000_000_000)))
	assert.ElementsMatch(t, []string{contracts.FnName, contracts.FnSymbol, contracts.FnDecimals, contracts.FnTotalSupply}, reader.calls)
}

func TestService_MetadataFailsOnAnyRead(t *testing.T) {
	reader := &fakeReader{errs: map[string]error{contracts.FnDecimals: errors.New("boom")}}
	svc := NewService(reader, nil, testContract)

	_, err := svc.Metadata(context.Background())
	require.EqualError(t, err, "boom")
}

func TestService_Writes(t *testing.T) {
	writer := &fakeWriter{}
	svc := NewService(&fakeReader{}, writer, testContract)
	ctx := context.Background()

	_, err := svc.Mint(ctx, dto.MintTokenInput{Source: alice, To: bob, Amount: "1000"})
	require.NoError(t, err)
	_, err = svc.Transfer(ctx, dto.TransferTokenInput{From: bob, To: alice, Amount: "0.5"})
	require.NoError(t, err)

	require.Len(t, writer.calls, 2)
	minted, _ := writer.calls[0].Args[1].Int()
	assert.True(t, minted.Equal(sdkmath.NewInt(10_000_000_000)))
	assert.Equal(t, alice, writer.calls[0].Source)

	moved, _ := writer.calls[1].Args[2].Int()
	assert.True(t, moved.Equal(sdkmath.NewInt(5_000_000)))
	assert.Equal(t, bob, writer.calls[1].Source)
}

func TestService_WriteRejectsBadAmount(t *testing.T) {
	writer := &fakeWriter{}
	svc := NewService(&fakeReader{}, writer, testContract)

	_, err := svc.Transfer(context.Background(), dto.TransferTokenInput{From: bob, To: alice, Amount: "ten"})
	require.Error(t, err)
	assert.True(t, scval.IsEncodingError(err))
	assert.Empty(t, writer.calls)
}
