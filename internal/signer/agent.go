package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultStatusTimeout bounds availability checks. Signing itself waits for
// the user and is bounded only by the caller's context.
const DefaultStatusTimeout = 3 * time.Second

// AgentDelegate talks to a local HTTP wallet bridge:
//
//	GET  /status -> {"available": bool, "address": "G..."}
//	POST /sign   {"envelope", "networkPassphrase"} -> {"signedEnvelope"}
//
// The bridge answers 403 or {"error":"rejected"} when the user declines.
type AgentDelegate struct {
	baseURL       string
	client        *http.Client
	statusTimeout time.Duration
}

// NewAgentDelegate creates a delegate for the bridge at baseURL.
func NewAgentDelegate(baseURL string) *AgentDelegate {
	return &AgentDelegate{
		baseURL:       strings.TrimRight(baseURL, "/"),
		client:        &http.Client{},
		statusTimeout: DefaultStatusTimeout,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (a *AgentDelegate) WithHTTPClient(client *http.Client) *AgentDelegate {
	a.client = client
	return a
}

// WithStatusTimeout sets the timeout of availability checks.
func (a *AgentDelegate) WithStatusTimeout(timeout time.Duration) *AgentDelegate {
	a.statusTimeout = timeout
	return a
}

type agentStatus struct {
	Available bool   `json:"available"`
	Address   string `json:"address"`
}

type signRequest struct {
	Envelope          string `json:"envelope"`
	NetworkPassphrase string `json:"networkPassphrase"`
}

type signResponse struct {
	SignedEnvelope string `json:"signedEnvelope"`
	Error          string `json:"error,omitempty"`
}

func (a *AgentDelegate) status(ctx context.Context) (*agentStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, a.statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: agent status HTTP %d", ErrSigningUnavailable, resp.StatusCode)
	}
	var st agentStatus
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, fmt.Errorf("%w: invalid status response: %v", ErrSigningUnavailable, err)
	}
	return &st, nil
}

// IsAvailable checks that the bridge answers.
func (a *AgentDelegate) IsAvailable(ctx context.Context) bool {
	st, err := a.status(ctx)
	return err == nil && st.Available
}

// ActiveIdentity returns the wallet's selected account.
func (a *AgentDelegate) ActiveIdentity(ctx context.Context) (string, error) {
	st, err := a.status(ctx)
	if err != nil {
		return "", err
	}
	if !st.Available {
		return "", nil
	}
	return st.Address, nil
}

// Sign asks the bridge to sign envelope and waits for the user's decision.
func (a *AgentDelegate) Sign(ctx context.Context, envelope, networkPassphrase string) (string, error) {
	body, err := json.Marshal(signRequest{Envelope: envelope, NetworkPassphrase: networkPassphrase})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/sign", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}

	// Error statuses may carry a non-JSON body, so decodeErr only matters on 200.
	var out signResponse
	decodeErr := json.Unmarshal(raw, &out)

	switch {
	case resp.StatusCode == http.StatusForbidden || strings.EqualFold(out.Error, "rejected"):
		return "", ErrSigningRejected
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: agent sign HTTP %d", ErrSigningUnavailable, resp.StatusCode)
	case decodeErr != nil:
		return "", fmt.Errorf("%w: malformed agent response: %v", ErrSigningUnavailable, decodeErr)
	case out.Error != "":
		return "", fmt.Errorf("%w: %s", ErrSigningUnavailable, out.Error)
	case out.SignedEnvelope == "":
		return "", fmt.Errorf("%w: agent returned an empty envelope", ErrSigningUnavailable)
	}
	return out.SignedEnvelope, nil
}

var _ Delegate = (*AgentDelegate)(nil)
