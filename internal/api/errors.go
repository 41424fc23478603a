package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/infrastructure/rpc"
	"github.com/altuslabsxyz/questline/internal/invoke"
)

// Error codes that are not pipeline stages.
const (
	CodeBadRequest  = "bad_request"
	CodeNotFound    = "not_found"
	CodeUnavailable = "unavailable"
)

type apiErrorBody struct {
	Code    string `json:"code" example:"encoding"`
	Message string `json:"message" example:"encoding error: argument 0 (quest_id): symbol must not be empty"`
}

// apiError renders as {"error":{"code","message"}}.
type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

func newAPIError(status int, code, message string) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{status: status, Body: apiErrorBody{Code: code, Message: message}}
}

// stageStatus maps pipeline stages to HTTP statuses.
var stageStatus = map[string]int{
	invoke.StageEncoding:           http.StatusBadRequest,
	invoke.StageBuild:              http.StatusBadRequest,
	invoke.StageSimulation:         http.StatusUnprocessableEntity,
	invoke.StagePrepare:            http.StatusUnprocessableEntity,
	invoke.StageSigningRejected:    http.StatusForbidden,
	invoke.StageSigningUnavailable: http.StatusServiceUnavailable,
	invoke.StageSubmission:         http.StatusBadGateway,
}

// handleError classifies err by pipeline stage. Lookups of absent entities
// are 404 and an unreachable ledger is 503, regardless of stage.
func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return newAPIError(http.StatusNotFound, CodeNotFound, err.Error())
	}
	if rpc.IsTransport(err) {
		return newAPIError(http.StatusServiceUnavailable, CodeUnavailable, err.Error())
	}
	stage := invoke.Stage(err)
	if status, ok := stageStatus[stage]; ok {
		return newAPIError(status, stage, err.Error())
	}
	return newAPIError(http.StatusInternalServerError, invoke.StageInternal, err.Error())
}

func badRequest(msg string) huma.StatusError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, msg)
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeBadRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusInternalServerError:
		return invoke.StageInternal
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}
