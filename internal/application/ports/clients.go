// Package ports defines the interfaces the application layer requires from
// the infrastructure layer: the ledger transport, the submission journal, and
// the contract read/write pipeline.
package ports

import (
	"context"
	"errors"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// ErrNotFound is wrapped by lookups of resources the ledger does not know.
var ErrNotFound = errors.New("not found")

// LedgerClient is the JSON-RPC surface of the ledger used by the invocation
// pipeline.
type LedgerClient interface {
	// SimulateTransaction dry-runs an encoded envelope. A contract-level
	// failure is reported in SimulateResult.Error, not as an error.
	SimulateTransaction(ctx context.Context, envelope string) (*SimulateResult, error)

	// GetAccount returns the account's current sequence number.
	// Returns a not-found error when the account does not exist.
	GetAccount(ctx context.Context, address string) (*Account, error)

	// SendTransaction submits a signed envelope.
	SendTransaction(ctx context.Context, signed string) (*SendResult, error)

	// GetTransaction returns the status of a submitted transaction.
	// Unknown hashes report TxStatusNotFound, not an error.
	GetTransaction(ctx context.Context, hash string) (*TransactionResult, error)

	// GetHealth returns the node's health status string.
	GetHealth(ctx context.Context) (string, error)

	// GetNetwork returns network identification.
	GetNetwork(ctx context.Context) (*NetworkInfo, error)
}

// SimulateResult is the outcome of a dry run.
type SimulateResult struct {
	// ReturnValue is Void when the function returned nothing.
	ReturnValue scval.Value
	// Error is the contract or host error message, empty on success.
	Error          string
	MinResourceFee int64
	Footprint      network.Footprint
	LatestLedger   int64
}

// Account is the ledger state of a source account.
type Account struct {
	ID       string
	Sequence int64
}

// SendStatus is the immediate answer to a submission.
type SendStatus string

const (
	SendStatusPending       SendStatus = "PENDING"
	SendStatusDuplicate     SendStatus = "DUPLICATE"
	SendStatusTryAgainLater SendStatus = "TRY_AGAIN_LATER"
	SendStatusError         SendStatus = "ERROR"
)

// SendResult is the ledger's response to SendTransaction.
type SendResult struct {
	Hash         string
	Status       SendStatus
	ErrorResult  string
	LatestLedger int64
}

// TxStatus is the polled status of a submitted transaction.
type TxStatus string

const (
	TxStatusNotFound TxStatus = "NOT_FOUND"
	TxStatusSuccess  TxStatus = "SUCCESS"
	TxStatusFailed   TxStatus = "FAILED"
)

// TransactionResult is the ledger's response to GetTransaction.
type TransactionResult struct {
	Status      TxStatus
	Ledger      int64
	ReturnValue scval.Value
	ResultXDR   string
}

// NetworkInfo identifies the network a node serves.
type NetworkInfo struct {
	Passphrase      string
	ProtocolVersion int64
}
