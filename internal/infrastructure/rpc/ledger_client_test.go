package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// rpcHandler answers JSON-RPC requests with canned results keyed by method.
type rpcHandler struct {
	results map[string]string
	errors  map[string]string
	params  map[string]map[string]string
}

func (h *rpcHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64             `json:"id"`
		Method string            `json:"method"`
		Params map[string]string `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.params == nil {
		h.params = map[string]map[string]string{}
	}
	h.params[req.Method] = req.Params

	w.Header().Set("Content-Type", "application/json")
	if msg, ok := h.errors[req.Method]; ok {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"` + msg + `"}}`))
		return
	}
	result, ok := h.results[req.Method]
	if !ok {
		result = "null"
	}
	_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
}

func newTestClient(t *testing.T, h http.Handler) *LedgerRPCClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewLedgerRPCClient(srv.URL)
}

func TestSimulateTransaction(t *testing.T) {
	h := &rpcHandler{results: map[string]string{
		"simulateTransaction": `{
			"results": [{"retval": {"type":"i128","value":"42"}}],
			"minResourceFee": "5123",
			"footprint": {"readOnly": ["ro1"], "readWrite": ["rw1", "rw2"]},
			"latestLedger": 900
		}`,
	}}
	c := newTestClient(t, h)

	res, err := c.SimulateTransaction(context.Background(), "AAAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAA", h.params["simulateTransaction"]["transaction"])
	assert.Empty(t, res.Error)
	assert.Equal(t, int64(5123), res.MinResourceFee)
	assert.Equal(t, []string{"ro1"}, res.Footprint.ReadOnly)
	assert.Equal(t, []string{"rw1", "rw2"}, res.Footprint.ReadWrite)
	assert.Equal(t, int64(900), res.LatestLedger)
	assert.True(t, res.ReturnValue.Equal(scval.I128FromInt64(42)))
}

func TestSimulateTransaction_NoReturnValue(t *testing.T) {
	h := &rpcHandler{results: map[string]string{
		"simulateTransaction": `{"results": [], "error": "HostError: Error(Contract, #3)"}`,
	}}
	c := newTestClient(t, h)

	res, err := c.SimulateTransaction(context.Background(), "AAAA")
	require.NoError(t, err)
	assert.True(t, res.ReturnValue.IsVoid())
	assert.Equal(t, "HostError: Error(Contract, #3)", res.Error)
}

func TestGetAccount(t *testing.T) {
	h := &rpcHandler{results: map[string]string{
		"getAccount": `{"id": "GABC", "sequence": "8589934593"}`,
	}}
	c := newTestClient(t, h)

	acct, err := c.GetAccount(context.Background(), "GABC")
	require.NoError(t, err)
	assert.Equal(t, "GABC", acct.ID)
	assert.Equal(t, int64(8589934593), acct.Sequence)
}

func TestGetAccount_NotFound(t *testing.T) {
	c := newTestClient(t, &rpcHandler{})

	_, err := c.GetAccount(context.Background(), "GABC")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSendTransaction(t *testing.T) {
	h := &rpcHandler{results: map[string]string{
		"sendTransaction": `{"hash": "abc123", "status": "PENDING", "latestLedger": 10}`,
	}}
	c := newTestClient(t, h)

	res, err := c.SendTransaction(context.Background(), "SIGNED")
	require.NoError(t, err)
	assert.Equal(t, "SIGNED", h.params["sendTransaction"]["transaction"])
	assert.Equal(t, "abc123", res.Hash)
	assert.Equal(t, ports.SendStatusPending, res.Status)
}

func TestGetTransaction(t *testing.T) {
	tests := []struct {
		name   string
		result string
		status ports.TxStatus
		ledger int64
		rv     scval.Value
	}{
		{"success", `{"status":"SUCCESS","ledger":77,"returnValue":{"type":"bool","value":true}}`, ports.TxStatusSuccess, 77, scval.NewBool(true)},
		{"failed", `{"status":"FAILED","ledger":78,"resultXdr":"AAAx"}`, ports.TxStatusFailed, 78, scval.Void()},
		{"not found", `{"status":"NOT_FOUND"}`, ports.TxStatusNotFound, 0, scval.Void()},
		{"null", `null`, ports.TxStatusNotFound, 0, scval.Void()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, &rpcHandler{results: map[string]string{"getTransaction": tt.result}})
			res, err := c.GetTransaction(context.Background(), "abc123")
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.ledger, res.Ledger)
			assert.True(t, tt.rv.Equal(res.ReturnValue))
		})
	}
}

func TestHealthAndNetwork(t *testing.T) {
	h := &rpcHandler{results: map[string]string{
		"getHealth":  `{"status":"healthy"}`,
		"getNetwork": `{"passphrase":"Test SDF Network ; September 2015","protocolVersion":21}`,
	}}
	c := newTestClient(t, h)

	status, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)

	info, err := c.GetNetwork(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test SDF Network ; September 2015", info.Passphrase)
	assert.Equal(t, int64(21), info.ProtocolVersion)
}

func TestCall_RPCError(t *testing.T) {
	c := newTestClient(t, &rpcHandler{errors: map[string]string{"sendTransaction": "invalid params"}})

	_, err := c.SendTransaction(context.Background(), "x")
	require.Error(t, err)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "sendTransaction", rpcErr.Operation)
	assert.Equal(t, -32602, rpcErr.Code)
	assert.False(t, IsTransport(err))
}

func TestCall_HTTPStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.GetHealth(context.Background())
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "HTTP 502", rpcErr.Message)
}

func TestCall_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewLedgerRPCClient(url)
	_, err := c.GetHealth(context.Background())
	require.Error(t, err)
	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
	assert.True(t, IsTransport(err))
}

func TestCall_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c := NewLedgerRPCClient(srv.URL).WithTimeout(50 * time.Millisecond)
	_, err := c.GetHealth(context.Background())
	require.Error(t, err)
	var timeoutErr *TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestJSONInt(t *testing.T) {
	var n jsonInt
	require.NoError(t, json.Unmarshal([]byte(`"12"`), &n))
	assert.Equal(t, jsonInt(12), n)
	require.NoError(t, json.Unmarshal([]byte(`13`), &n))
	assert.Equal(t, jsonInt(13), n)
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &n))
}
