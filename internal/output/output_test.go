package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	return NewLoggerWithWriters(&out, &errOut), &out, &errOut
}

func TestLogger(t *testing.T) {
	l, out, errOut := newTestLogger()

	l.Info("hello %s", "world")
	l.Success("done")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")

	assert.Equal(t, "hello world\n✓ done\n", out.String())
	assert.Equal(t, "Warning: careful\nError: broken\n", errOut.String())

	l.SetVerbose(true)
	assert.True(t, l.IsVerbose())
	l.Debug("shown")
	assert.Contains(t, errOut.String(), "[DEBUG] shown")
}

func TestLogger_JSONMode(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.SetJSONMode(true)

	l.Info("a")
	l.Success("b")
	l.Field("c", 1)
	l.Error("still reported")

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: still reported\n", errOut.String())
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "JSON": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	doc := struct {
		QuestID string `json:"questId"`
		Count   int    `json:"count"`
	}{"quest1", 3}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, doc))
	assert.JSONEq(t, `{"questId":"quest1","count":3}`, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, FormatYAML, doc))
	assert.Contains(t, buf.String(), "questId: quest1")
	assert.Contains(t, buf.String(), "count: 3")

	assert.Error(t, Render(&buf, FormatText, doc))
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "RANK", "ADDRESS", "COUNT")
	tbl.Row(1, "GABC", 10)
	tbl.Row(2, "GDEF", 7)
	require.NoError(t, tbl.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "RANK"))
	assert.Contains(t, lines[1], "GABC")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome *network.Outcome
		wantOut []string
		wantErr string
	}{
		{
			name: "confirmed",
			outcome: &network.Outcome{
				Phase:       network.PhaseConfirmed,
				Handle:      network.SubmissionHandle{TransactionID: "abc123"},
				ReturnValue: scval.NewBool(true),
				Ledger:      42,
			},
			wantOut: []string{"✓ Transaction confirmed", "abc123", "42", "true"},
		},
		{
			name: "timed out",
			outcome: &network.Outcome{
				Phase:  network.PhaseTimedOut,
				Handle: network.SubmissionHandle{TransactionID: "abc123"},
				Detail: network.TimedOutMessage,
			},
			wantOut: []string{"TIMED_OUT", "questctl tx wait abc123"},
			wantErr: "unknown outcome - check manually",
		},
		{
			name: "failed",
			outcome: &network.Outcome{
				Phase:  network.PhaseFailed,
				Handle: network.SubmissionHandle{TransactionID: "abc123"},
				Detail: "transaction failed: txFAILED",
			},
			wantOut: []string{"FAILED", "txFAILED"},
			wantErr: "Transaction failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, errOut := newTestLogger()
			l.PrintOutcome(tt.outcome)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			if tt.wantErr != "" {
				assert.Contains(t, errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestNewAppLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewAppLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("transaction submitted", "hash", "abc")
	logger.Debug("not shown")

	assert.Contains(t, buf.String(), `"hash":"abc"`)
	assert.NotContains(t, buf.String(), "not shown")

	_, err = NewAppLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = NewAppLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
