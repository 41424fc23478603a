package signer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// PromptDelegate signs through the terminal: it prints the envelope, asks for
// confirmation, and reads back the envelope signed by any external wallet.
type PromptDelegate struct {
	identity string
	out      io.Writer

	isTerminal func() bool
	confirm    func(label string) error
	readLine   func(label string) (string, error)
}

// NewPromptDelegate creates a terminal delegate signing for identity.
func NewPromptDelegate(identity string) *PromptDelegate {
	return &PromptDelegate{
		identity:   identity,
		out:        os.Stdout,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		confirm:    promptConfirm,
		readLine:   promptLine,
	}
}

// WithOutput changes where the envelope is printed.
func (p *PromptDelegate) WithOutput(w io.Writer) *PromptDelegate {
	p.out = w
	return p
}

// IsAvailable reports whether stdin is an interactive terminal.
func (p *PromptDelegate) IsAvailable(ctx context.Context) bool {
	return p.isTerminal()
}

// ActiveIdentity returns the configured signing account.
func (p *PromptDelegate) ActiveIdentity(ctx context.Context) (string, error) {
	return p.identity, nil
}

// Sign shows envelope and waits for the user to paste the signed form.
func (p *PromptDelegate) Sign(ctx context.Context, envelope, networkPassphrase string) (string, error) {
	if !p.isTerminal() {
		return "", fmt.Errorf("%w: stdin is not a terminal", ErrSigningUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "\nNetwork: %s\n", networkPassphrase)
	if p.identity != "" {
		fmt.Fprintf(p.out, "Signer:  %s\n", p.identity)
	}
	fmt.Fprintf(p.out, "Envelope:\n%s\n\n", envelope)

	if err := p.confirm("Sign this transaction with your wallet"); err != nil {
		if isDecline(err) {
			return "", ErrSigningRejected
		}
		return "", fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}

	signed, err := p.readLine("Paste signed envelope")
	if err != nil {
		if isDecline(err) {
			return "", ErrSigningRejected
		}
		return "", fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	signed = strings.TrimSpace(signed)
	if signed == "" {
		return "", fmt.Errorf("%w: empty signed envelope", ErrSigningUnavailable)
	}
	return signed, nil
}

func isDecline(err error) bool {
	return errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

func promptConfirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err
}

func promptLine(label string) (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("signed envelope cannot be empty")
		}
		return nil
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "{{ . | bold }}: ",
		},
	}
	return prompt.Run()
}

var _ Delegate = (*PromptDelegate)(nil)
