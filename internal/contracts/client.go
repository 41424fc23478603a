package contracts

import (
	"context"
	"fmt"
	"strings"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/signer"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// Client binds one deployed contract to the read and write pipelines. Every
// call is encoded against the contract's declared schema.
type Client struct {
	contract   *Contract
	contractID string
	reader     ports.ContractReader
	writer     ports.ContractWriter
}

// NewClient creates a Client. writer may be nil for read-only use, in which
// case writes report signing as unavailable.
func NewClient(contract *Contract, contractID string, reader ports.ContractReader, writer ports.ContractWriter) *Client {
	return &Client{
		contract:   contract,
		contractID: contractID,
		reader:     reader,
		writer:     writer,
	}
}

// ContractID returns the deployed contract id.
func (c *Client) ContractID() string { return c.contractID }

// Read simulates fn with args and returns its raw return value.
func (c *Client) Read(ctx context.Context, fn string, args ...interface{}) (scval.Value, error) {
	decl, err := c.declared(fn)
	if err != nil {
		return scval.Void(), err
	}
	if decl.Write {
		return scval.Void(), fmt.Errorf("%s.%s is a write function", c.contract.Name, fn)
	}
	encoded, err := decl.Encode(args...)
	if err != nil {
		return scval.Void(), fmt.Errorf("%s: %w", fn, err)
	}
	return c.reader.Simulate(ctx, c.contractID, fn, encoded)
}

// Write runs fn through the signed submission pipeline with source as the
// signing account. An empty source defers to the wallet's active account.
func (c *Client) Write(ctx context.Context, fn, source string, args ...interface{}) (*network.Outcome, error) {
	decl, err := c.declared(fn)
	if err != nil {
		return nil, err
	}
	if !decl.Write {
		return nil, fmt.Errorf("%s.%s is a read-only function", c.contract.Name, fn)
	}
	if c.writer == nil {
		return nil, fmt.Errorf("%w: no signer configured", signer.ErrSigningUnavailable)
	}
	call, err := NewCall(c.contractID, decl, source, args...)
	if err != nil {
		return nil, err
	}
	return c.writer.Invoke(ctx, call)
}

func (c *Client) declared(fn string) (Function, error) {
	decl, ok := c.contract.Function(fn)
	if !ok {
		return Function{}, fmt.Errorf("%s has no function %q (declared: %s)",
			c.contract.Name, fn, strings.Join(c.contract.Functions(), ", "))
	}
	return decl, nil
}
