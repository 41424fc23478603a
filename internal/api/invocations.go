package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/contracts"
	"github.com/altuslabsxyz/questline/pkg/network"
)

// PrepareRequest asks for an unsigned, fee-prepared envelope.
type PrepareRequest struct {
	Contract string `json:"contract" minLength:"1" doc:"Contract name (quest_platform, badge_nft, reward_token) or id"`
	Function string `json:"function" minLength:"1" example:"complete_quest"`
	Source   string `json:"source" minLength:"1" doc:"Account that will sign the envelope"`
	// Integers above 2^53 must be sent as decimal strings.
	Args []any `json:"args,omitempty" doc:"Positional arguments; null for an absent optional"`
}

// PrepareResponse is handed to the browser wallet for signing.
type PrepareResponse struct {
	Envelope          string `json:"envelope"`
	NetworkPassphrase string `json:"networkPassphrase"`
	Hash              string `json:"hash"`
}

// SubmitRequest carries a wallet-signed envelope. The call fields are
// optional and only annotate the journal record.
type SubmitRequest struct {
	Envelope   string `json:"envelope" minLength:"1"`
	ContractID string `json:"contractId,omitempty"`
	Function   string `json:"function,omitempty"`
	Source     string `json:"source,omitempty"`
}

func registerInvocations(api huma.API, p *application.PlatformService, pipeline Pipeline) {
	huma.Register(api, huma.Operation{
		OperationID: "prepare-invocation",
		Method:      http.MethodPost,
		Path:        "/invocations/prepare",
		Summary:     "Build and prepare a write for external signing",
		Tags:        []string{"invocations"},
	}, func(ctx context.Context, input *body[PrepareRequest]) (*body[PrepareResponse], error) {
		call, err := resolveCall(p.Contracts(), input.Body)
		if err != nil {
			return nil, err
		}
		prepared, err := pipeline.Prepare(ctx, call)
		if err != nil {
			return nil, handleError(err)
		}
		return reply(PrepareResponse{
			Envelope:          prepared.Encoded(),
			NetworkPassphrase: prepared.NetworkPassphrase(),
			Hash:              prepared.Hash(),
		}), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "submit-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Submit a signed envelope and wait for its outcome",
		Description: "Blocks until the transaction is final or the submit timeout elapses. " +
			"FAILED and TIMED_OUT are reported in the outcome phase, not as errors.",
		Tags: []string{"invocations"},
	}, func(ctx context.Context, input *body[SubmitRequest]) (*body[*network.Outcome], error) {
		outcome, err := pipeline.SubmitSigned(ctx, input.Body.Envelope, submittedCall(input.Body))
		if err != nil {
			return nil, handleError(err)
		}
		return reply(outcome), nil
	})
}

func resolveCall(addrs contracts.Addresses, req PrepareRequest) (network.Call, error) {
	id, contract, err := addrs.Resolve(req.Contract)
	if err != nil {
		return network.Call{}, badRequest(err.Error())
	}
	fn, ok := contract.Function(req.Function)
	if !ok {
		return network.Call{}, badRequest(fmt.Sprintf("%s has no function %q (declared: %s)",
			contract.Name, req.Function, strings.Join(contract.Functions(), ", ")))
	}
	if !fn.Write {
		return network.Call{}, badRequest(fmt.Sprintf("%s is read-only; use the read endpoints", fn.Name))
	}
	call, err := contracts.NewCall(id, fn, req.Source, req.Args...)
	if err != nil {
		return network.Call{}, handleError(err)
	}
	return call, nil
}

// submittedCall returns the journal annotation of a submission. Fields the
// client left out are read from the envelope when it is in the prepared
// payload form; wallet-specific encodings are left unannotated.
func submittedCall(req SubmitRequest) network.Call {
	call := network.Call{ContractID: req.ContractID, Function: req.Function, Source: req.Source}
	if call.ContractID != "" && call.Function != "" && call.Source != "" {
		return call
	}
	env, err := network.DecodeEnvelope(req.Envelope)
	if err != nil {
		return call
	}
	if call.ContractID == "" {
		call.ContractID = env.Operation.ContractID
	}
	if call.Function == "" {
		call.Function = env.Operation.Function
	}
	if call.Source == "" {
		call.Source = env.Source
	}
	return call
}
