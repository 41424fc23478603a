// cmd/questctl/tx.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/internal/output"
	"github.com/altuslabsxyz/questline/internal/store"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

func newTxCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Inspect journaled submissions",
	}
	cmd.AddCommand(
		newTxListCmd(a),
		newTxShowCmd(a),
		newTxWaitCmd(a),
	)
	return cmd
}

func newTxListCmd(a *app) *cobra.Command {
	var phase, source string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.SubmissionFilter{Source: source}
			if phase != "" {
				p, ok := network.ParsePhase(strings.ToUpper(phase))
				if !ok {
					return fmt.Errorf("unknown phase %q", phase)
				}
				filter.Phase = p
			}

			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			subs, err := journal.ListSubmissions(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.emit(subs, func() error {
				if len(subs) == 0 {
					a.out.Info("No submissions found")
					return nil
				}
				table := output.NewTable(a.out.Writer(), "ID", "FUNCTION", "PHASE", "HASH", "SUBMITTED")
				for _, s := range subs {
					table.Row(output.Truncate(s.ID, 8), s.Function,
						output.PhaseColor(s.Phase).Sprint(s.Phase),
						output.Truncate(s.TxHash, 16),
						s.SubmittedAt.Local().Format(time.DateTime))
				}
				return table.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&phase, "phase", "", "Only show submissions in this phase")
	cmd.Flags().StringVar(&source, "source", "", "Only show submissions signed by this account")
	return cmd
}

func newTxShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|hash>",
		Short: "Show one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			sub, err := journal.GetSubmission(cmd.Context(), args[0])
			if store.IsNotFound(err) {
				sub, err = journal.GetSubmissionByHash(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return a.emit(sub, func() error {
				printSubmission(a.out, sub)
				return nil
			})
		},
	}
}

func printSubmission(out *output.Logger, s *domain.Submission) {
	out.Bold("Submission %s", s.ID)
	out.Field("Function", s.Function)
	out.Field("Contract", s.ContractID)
	out.Field("Source", s.Source)
	out.Field("Hash", s.TxHash)
	out.Field("Phase", output.PhaseColor(s.Phase).Sprint(s.Phase))
	if s.Ledger > 0 {
		out.Field("Ledger", s.Ledger)
	}
	if s.ReturnValue != nil && !s.ReturnValue.IsVoid() {
		out.Field("Result", scval.Decode(*s.ReturnValue))
	}
	if s.Error != "" {
		out.Field("Detail", s.Error)
	}
	out.Field("Submitted", s.SubmittedAt.Local().Format(time.DateTime))
	out.Field("Updated", s.UpdatedAt.Local().Format(time.DateTime))
}

func newTxWaitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wait <hash>",
		Short: "Poll a submitted transaction until it is final",
		Long: `Poll a transaction hash until it is confirmed or failed, or the submission
timeout elapses again. Use this for writes that ended TIMED_OUT. A journaled
submission is updated with the observed outcome.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.invoker()
			if err != nil {
				return err
			}

			spinner := output.NewStatusSpinner()
			spinner.Start("Waiting for " + output.Truncate(args[0], 16))
			outcome, err := inv.Reconcile(cmd.Context(), args[0])
			spinner.Stop()
			if err != nil {
				return err
			}

			if err := a.emit(outcome, func() error {
				a.out.PrintOutcome(outcome)
				return nil
			}); err != nil {
				return err
			}
			switch outcome.Phase {
			case network.PhaseFailed:
				return errFailed
			case network.PhaseTimedOut:
				return errTimedOut
			}
			return nil
		},
	}
}

