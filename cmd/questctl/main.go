// cmd/questctl/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/questline/internal/config"
	"github.com/altuslabsxyz/questline/internal/output"
	"github.com/altuslabsxyz/questline/internal/version"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitTimedOut = 2
)

// exitCodeError ends the process with code after the command has already
// reported the problem.
type exitCodeError struct {
	code   int
	reason string
}

func (e *exitCodeError) Error() string { return e.reason }

var (
	errTimedOut = &exitCodeError{code: exitTimedOut, reason: "transaction outcome unknown"}
	errFailed   = &exitCodeError{code: exitError, reason: "transaction failed"}
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	a.close()
	return exitCode(err, a.out)
}

// exitCode reports err unless it was already reported and maps it to an exit
// status.
func exitCode(err error, out *output.Logger) int {
	if err == nil {
		return exitOK
	}
	var coded *exitCodeError
	if errors.As(err, &coded) {
		return coded.code
	}
	if out != nil {
		out.Error("%v", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitError
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "questctl",
		Short: "Quest platform contract client",
		Long: `questctl reads quests, badges, and reward token state from the ledger and
submits contract writes signed by an external wallet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Config file (default ~/.questline/"+config.ConfigFileName+")")
	flags.StringVar(&a.opts.flags.RPCURL, "rpc-url", "", "Ledger JSON-RPC endpoint")
	flags.StringVar(&a.opts.flags.Passphrase, "network-passphrase", "", "Network passphrase")
	flags.StringVar(&a.opts.flags.WalletMode, "wallet", "", "Signing wallet: agent or prompt")
	flags.StringVar(&a.opts.flags.AgentURL, "agent-url", "", "Wallet agent URL")
	flags.StringVar(&a.opts.flags.DataDir, "data-dir", "", "Directory of the submission journal")
	flags.StringVar(&a.opts.flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Verbose output")
	flags.StringVarP(&a.opts.format, "output", "o", "text", "Output format: text, json, yaml")

	rootCmd.AddCommand(
		newQuestCmd(a),
		newBadgeCmd(a),
		newTokenCmd(a),
		newDashboardCmd(a),
		newTxCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		version.NewCmd("questctl", a.target),
	)

	return rootCmd
}
