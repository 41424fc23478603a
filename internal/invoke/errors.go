// Package invoke runs the contract invocation pipeline: read simulation, fee
// and footprint preparation, delegated signing, and submission with polling
// to a final outcome.
package invoke

import (
	"errors"
	"fmt"

	"github.com/altuslabsxyz/questline/internal/signer"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// SimulationError is returned when a read-only call cannot be evaluated.
type SimulationError struct {
	Function string
	Message  string
	Err      error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation of %s failed: %s", e.Function, e.Message)
}

func (e *SimulationError) Unwrap() error { return e.Err }

// PrepareError is returned when an envelope cannot be made submittable.
type PrepareError struct {
	Source  string
	Message string
	Err     error
}

func (e *PrepareError) Error() string {
	return fmt.Sprintf("prepare failed for %s: %s", e.Source, e.Message)
}

func (e *PrepareError) Unwrap() error { return e.Err }

// SubmissionError is returned when the ledger does not accept a signed
// envelope. The transaction never reached SUBMITTED.
type SubmissionError struct {
	// Status is the ledger's send status, empty for transport failures.
	Status  string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("submission failed (%s): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("submission failed: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Pipeline stages, as reported by Stage.
const (
	StageEncoding           = "encoding"
	StageBuild              = "build"
	StageSimulation         = "simulation"
	StagePrepare            = "prepare"
	StageSigningRejected    = "signing_rejected"
	StageSigningUnavailable = "signing_unavailable"
	StageSubmission         = "submission"
	StageInternal           = "internal"
)

// Stage classifies err into the pipeline stage that produced it.
func Stage(err error) string {
	var (
		simErr  *SimulationError
		prepErr *PrepareError
		subErr  *SubmissionError
	)
	switch {
	case err == nil:
		return ""
	case scval.IsEncodingError(err):
		return StageEncoding
	case errors.Is(err, network.ErrInvalidEnvelope):
		return StageBuild
	case errors.As(err, &simErr):
		return StageSimulation
	case errors.As(err, &prepErr):
		return StagePrepare
	case signer.IsRejected(err):
		return StageSigningRejected
	case signer.IsUnavailable(err):
		return StageSigningUnavailable
	case errors.As(err, &subErr):
		return StageSubmission
	}
	return StageInternal
}
