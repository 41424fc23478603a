// cmd/questctl/wiring.go
package main

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/config"
	"github.com/altuslabsxyz/questline/internal/infrastructure/rpc"
	"github.com/altuslabsxyz/questline/internal/invoke"
	"github.com/altuslabsxyz/questline/internal/output"
	"github.com/altuslabsxyz/questline/internal/signer"
	"github.com/altuslabsxyz/questline/internal/store"
	"github.com/altuslabsxyz/questline/internal/version"
	"github.com/altuslabsxyz/questline/pkg/network"
)

// cliLogLevel is the pipeline log level when --log-level is not given.
// Progress is shown by the spinner instead.
const cliLogLevel = "warn"

type options struct {
	configPath string
	flags      config.Flags
	noColor    bool
	verbose    bool
	format     string
}

// app holds the per-invocation state shared by commands.
type app struct {
	opts    options
	cfg     *config.Config
	out     *output.Logger
	format  output.Format
	logger  log.Logger
	ledger  *rpc.LedgerRPCClient
	journal *store.BoltJournal
}

// skipsConfig lists commands that must work without a valid config.
var skipsConfig = map[string]bool{
	"init":       true,
	"version":    true,
	"help":       true,
	"completion": true,
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = output.NewLoggerWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	a.out.SetNoColor(a.opts.noColor)
	a.out.SetVerbose(a.opts.verbose)

	format, err := output.ParseFormat(a.opts.format)
	if err != nil {
		return err
	}
	a.format = format
	a.out.SetJSONMode(format != output.FormatText)

	if skipsConfig[cmd.Name()] {
		return nil
	}

	cfg, err := config.NewLoader(a.opts.configPath).WithFlags(a.opts.flags).Load()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	level := a.opts.flags.LogLevel
	if level == "" {
		level = cliLogLevel
	}
	logger, err := output.NewAppLogger(a.out.ErrWriter(), level, cfg.Server.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil && a.out != nil {
			a.out.Warn("failed to close journal: %v", err)
		}
		a.journal = nil
	}
}

// target reports the configured deployment for the version command, which
// runs without a validated config. A config that fails to load yields an
// empty target.
func (a *app) target() version.Target {
	cfg := a.cfg
	if cfg == nil {
		loaded, err := config.NewLoader(a.opts.configPath).WithFlags(a.opts.flags).Load()
		if err != nil {
			return version.Target{}
		}
		cfg = loaded
	}
	return version.Target{
		Network:       cfg.Network.Passphrase,
		RPCURL:        cfg.Network.RPCURL,
		QuestPlatform: cfg.Contracts.QuestPlatform,
		BadgeNFT:      cfg.Contracts.BadgeNFT,
		RewardToken:   cfg.Contracts.RewardToken,
	}
}

func (a *app) ledgerClient() *rpc.LedgerRPCClient {
	if a.ledger == nil {
		a.ledger = rpc.NewLedgerRPCClient(a.cfg.Network.RPCURL).WithTimeout(a.cfg.Network.RequestTimeout)
	}
	return a.ledger
}

func (a *app) openJournal() (*store.BoltJournal, error) {
	if a.journal == nil {
		j, err := store.Open(a.cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open submission journal: %w", err)
		}
		a.journal = j
	}
	return a.journal, nil
}

func (a *app) delegate() signer.Delegate {
	if a.cfg.Wallet.Mode == config.WalletModePrompt {
		return signer.NewPromptDelegate("").WithOutput(a.out.ErrWriter())
	}
	return signer.NewAgentDelegate(a.cfg.Wallet.AgentURL)
}

func (a *app) simulator() *invoke.Simulator {
	sim := invoke.NewSimulator(a.ledgerClient(), a.cfg.Network.Passphrase)
	sim.SetLogger(a.logger)
	return sim
}

// invoker assembles the write pipeline with the journal attached.
func (a *app) invoker() (*invoke.Invoker, error) {
	client := a.ledgerClient()

	preparer := invoke.NewPreparer(client).WithBaseFee(a.cfg.Submission.BaseFee)
	preparer.SetLogger(a.logger)

	submitter := invoke.NewSubmitter(client).
		WithPollInterval(a.cfg.Submission.PollInterval).
		WithTimeout(a.cfg.Submission.Timeout)
	submitter.SetLogger(a.logger)

	journal, err := a.openJournal()
	if err != nil {
		return nil, err
	}

	inv := invoke.NewInvoker(preparer, submitter, a.delegate(), journal, a.cfg.Network.Passphrase)
	inv.SetLogger(a.logger)
	return inv, nil
}

// platform returns the domain services. writer is nil for read-only commands.
func (a *app) platform(writer ports.ContractWriter, required ...string) (*application.PlatformService, error) {
	if err := config.RequireContracts(a.cfg, required...); err != nil {
		return nil, err
	}
	return application.NewPlatformService(application.ServiceConfig{
		Reader:    a.simulator(),
		Writer:    writer,
		Contracts: a.cfg.Contracts.Addresses(),
	}), nil
}

// readPlatform is platform for commands that only simulate.
func (a *app) readPlatform(required ...string) (*application.PlatformService, error) {
	return a.platform(nil, required...)
}

// writeFunc performs one contract write on the platform.
type writeFunc func(ctx context.Context, p *application.PlatformService) (*network.Outcome, error)

// write runs fn with progress display and reports the outcome. FAILED and
// TIMED_OUT end the command with a non-zero exit status.
func (a *app) write(cmd *cobra.Command, label string, fn writeFunc, required ...string) error {
	inv, err := a.invoker()
	if err != nil {
		return err
	}
	p, err := a.platform(inv, required...)
	if err != nil {
		return err
	}

	spinner := output.NewStatusSpinner()
	interactive := a.cfg.Wallet.Mode == config.WalletModePrompt
	inv.OnProgress(func(phase network.Phase, detail string) {
		msg := fmt.Sprintf("%s: %s", label, phase)
		if detail != "" {
			msg += " " + output.Truncate(detail, 16)
		}
		if interactive {
			a.out.Debug("%s", msg)
			return
		}
		spinner.Update(msg)
	})

	if !interactive {
		spinner.Start(label)
	}
	outcome, err := fn(cmd.Context(), p)
	spinner.Stop()
	if err != nil {
		return describeError(err)
	}

	if a.format != output.FormatText {
		if err := output.Render(a.out.Writer(), a.format, outcome); err != nil {
			return err
		}
	} else {
		a.out.PrintOutcome(outcome)
	}

	return outcomeError(outcome)
}

// outcomeError maps a final outcome to the command's exit error.
func outcomeError(o *network.Outcome) error {
	switch {
	case o.Succeeded():
		return nil
	case o != nil && o.Phase == network.PhaseTimedOut:
		return errTimedOut
	default:
		return errFailed
	}
}

// describeError prefixes err with the pipeline stage that produced it.
func describeError(err error) error {
	if rpc.IsTransport(err) {
		return fmt.Errorf("ledger unreachable, check network.rpc_url: %w", err)
	}
	switch stage := invoke.Stage(err); stage {
	case invoke.StageInternal, "":
		return err
	case invoke.StageSigningRejected:
		return fmt.Errorf("signing was declined in the wallet: %w", err)
	case invoke.StageSigningUnavailable:
		return fmt.Errorf("no wallet available to sign: %w", err)
	default:
		return fmt.Errorf("%s failed: %w", stage, err)
	}
}

// emit renders v for -o json|yaml, or calls text otherwise.
func (a *app) emit(v interface{}, text func() error) error {
	if a.format != output.FormatText {
		return output.Render(a.out.Writer(), a.format, v)
	}
	return text()
}
