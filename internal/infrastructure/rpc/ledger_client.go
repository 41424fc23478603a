// Package rpc provides the ledger JSON-RPC client.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

const (
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 10 * time.Second

	jsonRPCVersion = "2.0"
)

// LedgerRPCClient implements ports.LedgerClient over JSON-RPC 2.0.
type LedgerRPCClient struct {
	url     string
	client  *http.Client
	timeout time.Duration
	nextID  atomic.Int64
}

// NewLedgerRPCClient creates a client for the JSON-RPC endpoint at url.
func NewLedgerRPCClient(url string) *LedgerRPCClient {
	return &LedgerRPCClient{
		url: url,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the per-request HTTP timeout.
func (c *LedgerRPCClient) WithTimeout(timeout time.Duration) *LedgerRPCClient {
	c.timeout = timeout
	c.client.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *LedgerRPCClient) WithHTTPClient(client *http.Client) *LedgerRPCClient {
	c.client = client
	return c
}

// URL returns the endpoint the client talks to.
func (c *LedgerRPCClient) URL() string { return c.url }

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int64       `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	} `json:"error,omitempty"`
}

// call performs one JSON-RPC request. result may be nil. It returns the raw
// result so callers can detect a null result.
func (c *LedgerRPCClient) call(ctx context.Context, method string, params, result interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, &RPCError{Operation: method, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &RPCError{Operation: method, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.transportError(method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RPCError{Operation: method, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(method, err)
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &RPCError{Operation: method, Message: "failed to parse response"}
	}
	if envelope.Error != nil {
		return nil, &RPCError{Operation: method, Message: envelope.Error.Message, Code: envelope.Error.Code}
	}

	if result != nil && !isNull(envelope.Result) {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return nil, &RPCError{Operation: method, Message: fmt.Sprintf("failed to parse result: %v", err)}
		}
	}
	return envelope.Result, nil
}

func (c *LedgerRPCClient) transportError(method string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Operation: method, Duration: c.timeout.String()}
	}
	return &ConnectionError{Endpoint: c.url, Message: err.Error(), Err: err}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// jsonInt decodes integers sent either as JSON numbers or decimal strings.
type jsonInt int64

func (n *jsonInt) UnmarshalJSON(data []byte) error {
	text := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if text == "" || text == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", text)
	}
	*n = jsonInt(v)
	return nil
}

type simulateResponse struct {
	Results []struct {
		Retval *scval.Value `json:"retval"`
	} `json:"results"`
	MinResourceFee jsonInt `json:"minResourceFee"`
	Footprint      struct {
		ReadOnly  []string `json:"readOnly"`
		ReadWrite []string `json:"readWrite"`
	} `json:"footprint"`
	Error        string  `json:"error"`
	LatestLedger jsonInt `json:"latestLedger"`
}

// SimulateTransaction dry-runs an encoded envelope.
func (c *LedgerRPCClient) SimulateTransaction(ctx context.Context, envelope string) (*ports.SimulateResult, error) {
	var resp simulateResponse
	if _, err := c.call(ctx, "simulateTransaction", map[string]string{"transaction": envelope}, &resp); err != nil {
		return nil, err
	}

	result := &ports.SimulateResult{
		ReturnValue:    scval.Void(),
		Error:          resp.Error,
		MinResourceFee: int64(resp.MinResourceFee),
		Footprint: network.Footprint{
			ReadOnly:  resp.Footprint.ReadOnly,
			ReadWrite: resp.Footprint.ReadWrite,
		},
		LatestLedger: int64(resp.LatestLedger),
	}
	if len(resp.Results) > 0 && resp.Results[0].Retval != nil {
		result.ReturnValue = *resp.Results[0].Retval
	}
	return result, nil
}

// GetAccount returns the account's sequence number.
func (c *LedgerRPCClient) GetAccount(ctx context.Context, address string) (*ports.Account, error) {
	var resp struct {
		ID       string  `json:"id"`
		Sequence jsonInt `json:"sequence"`
	}
	raw, err := c.call(ctx, "getAccount", map[string]string{"address": address}, &resp)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &NotFoundError{Resource: fmt.Sprintf("account %s", address)}
	}

	id := resp.ID
	if id == "" {
		id = address
	}
	return &ports.Account{ID: id, Sequence: int64(resp.Sequence)}, nil
}

// SendTransaction submits a signed envelope.
func (c *LedgerRPCClient) SendTransaction(ctx context.Context, signed string) (*ports.SendResult, error) {
	var resp struct {
		Hash         string  `json:"hash"`
		Status       string  `json:"status"`
		ErrorResult  string  `json:"errorResult"`
		LatestLedger jsonInt `json:"latestLedger"`
	}
	if _, err := c.call(ctx, "sendTransaction", map[string]string{"transaction": signed}, &resp); err != nil {
		return nil, err
	}
	return &ports.SendResult{
		Hash:         resp.Hash,
		Status:       ports.SendStatus(resp.Status),
		ErrorResult:  resp.ErrorResult,
		LatestLedger: int64(resp.LatestLedger),
	}, nil
}

// GetTransaction returns the status of a submitted transaction.
func (c *LedgerRPCClient) GetTransaction(ctx context.Context, hash string) (*ports.TransactionResult, error) {
	var resp struct {
		Status      string       `json:"status"`
		Ledger      jsonInt      `json:"ledger"`
		ReturnValue *scval.Value `json:"returnValue"`
		ResultXDR   string       `json:"resultXdr"`
	}
	raw, err := c.call(ctx, "getTransaction", map[string]string{"hash": hash}, &resp)
	if err != nil {
		return nil, err
	}
	if isNull(raw) || resp.Status == "" {
		return &ports.TransactionResult{Status: ports.TxStatusNotFound, ReturnValue: scval.Void()}, nil
	}

	result := &ports.TransactionResult{
		Status:      ports.TxStatus(resp.Status),
		Ledger:      int64(resp.Ledger),
		ReturnValue: scval.Void(),
		ResultXDR:   resp.ResultXDR,
	}
	if resp.ReturnValue != nil {
		result.ReturnValue = *resp.ReturnValue
	}
	return result, nil
}

// GetHealth returns the node's health status.
func (c *LedgerRPCClient) GetHealth(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if _, err := c.call(ctx, "getHealth", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// GetNetwork returns the network passphrase and protocol version.
func (c *LedgerRPCClient) GetNetwork(ctx context.Context) (*ports.NetworkInfo, error) {
	var resp struct {
		Passphrase      string  `json:"passphrase"`
		ProtocolVersion jsonInt `json:"protocolVersion"`
	}
	if _, err := c.call(ctx, "getNetwork", nil, &resp); err != nil {
		return nil, err
	}
	return &ports.NetworkInfo{Passphrase: resp.Passphrase, ProtocolVersion: int64(resp.ProtocolVersion)}, nil
}

// Ensure LedgerRPCClient implements LedgerClient.
var _ ports.LedgerClient = (*LedgerRPCClient)(nil)
