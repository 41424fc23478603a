package output

import (
	"github.com/fatih/color"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

// PhaseColor returns the display color of a phase.
func PhaseColor(p network.Phase) *color.Color {
	switch p {
	case network.PhaseConfirmed:
		return color.New(color.FgGreen)
	case network.PhaseFailed:
		return color.New(color.FgRed)
	case network.PhaseTimedOut:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgCyan)
}

// PrintOutcome prints the final state of a write.
func (l *Logger) PrintOutcome(o *network.Outcome) {
	if l.jsonMode || o == nil {
		return
	}
	switch o.Phase {
	case network.PhaseConfirmed:
		l.Success("Transaction confirmed")
	case network.PhaseFailed:
		l.Error("Transaction failed")
	case network.PhaseTimedOut:
		l.Warn("Transaction %s", network.TimedOutMessage)
	}
	l.Field("Phase", PhaseColor(o.Phase).Sprint(o.Phase))
	l.Field("Hash", o.Handle.TransactionID)
	if o.Ledger > 0 {
		l.Field("Ledger", o.Ledger)
	}
	if o.Phase == network.PhaseConfirmed && !o.ReturnValue.IsVoid() {
		l.Field("Result", scval.Decode(o.ReturnValue))
	}
	if o.Detail != "" {
		l.Field("Detail", o.Detail)
	}
	if o.Phase == network.PhaseTimedOut {
		l.Info("  Check later with: questctl tx wait %s", o.Handle.TransactionID)
	}
}
