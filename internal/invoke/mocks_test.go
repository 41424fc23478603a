package invoke

import (
	"context"
	"errors"
	"sync"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/domain"
	"github.com/altuslabsxyz/questline/pkg/network"
	"github.com/altuslabsxyz/questline/pkg/scval"
)

const (
	testAccount    = "GAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSABOV"
	testContract   = "CAAQEAYEAUDAOCAJBIFQYDIOB4IBCEQTCQKRMFYYDENBWHA5DYPSBFLM"
	testPassphrase = "Test SDF Network ; September 2015"
	testHash       = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
)

// mockLedger is a scripted LedgerClient.
type mockLedger struct {
	mu sync.Mutex

	simResult *ports.SimulateResult
	simErr    error
	simulated []string

	account    *ports.Account
	accountErr error
	accounts   []string

	sendResult *ports.SendResult
	sendErr    error
	sent       []string

	// txResults are returned in order; the last one repeats.
	txResults []*ports.TransactionResult
	txErr     error
	polls     int
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		simResult:  &ports.SimulateResult{ReturnValue: scval.Void(), MinResourceFee: 5000},
		account:    &ports.Account{ID: testAccount, Sequence: 41},
		sendResult: &ports.SendResult{Hash: testHash, Status: ports.SendStatusPending},
		txResults:  []*ports.TransactionResult{{Status: ports.TxStatusSuccess, Ledger: 1200, ReturnValue: scval.NewBool(true)}},
	}
}

func (m *mockLedger) SimulateTransaction(ctx context.Context, envelope string) (*ports.SimulateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulated = append(m.simulated, envelope)
	if m.simErr != nil {
		return nil, m.simErr
	}
	return m.simResult, nil
}

func (m *mockLedger) GetAccount(ctx context.Context, address string) (*ports.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, address)
	if m.accountErr != nil {
		return nil, m.accountErr
	}
	return m.account, nil
}

func (m *mockLedger) SendTransaction(ctx context.Context, envelope string) (*ports.SendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, envelope)
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	return m.sendResult, nil
}

func (m *mockLedger) GetTransaction(ctx context.Context, hash string) (*ports.TransactionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
	if m.txErr != nil {
		return nil, m.txErr
	}
	if len(m.txResults) == 0 {
		return &ports.TransactionResult{Status: ports.TxStatusNotFound}, nil
	}
	res := m.txResults[0]
	if len(m.txResults) > 1 {
		m.txResults = m.txResults[1:]
	}
	return res, nil
}

func (m *mockLedger) GetHealth(ctx context.Context) (string, error) { return "healthy", nil }

func (m *mockLedger) GetNetwork(ctx context.Context) (*ports.NetworkInfo, error) {
	return &ports.NetworkInfo{Passphrase: testPassphrase, ProtocolVersion: 22}, nil
}

func (m *mockLedger) pollCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polls
}

var _ ports.LedgerClient = (*mockLedger)(nil)

// mockDelegate signs by prefixing the envelope.
type mockDelegate struct {
	available bool
	identity  string
	signErr   error
	empty     bool
	signed    []string
}

func (d *mockDelegate) Sign(ctx context.Context, envelope, networkPassphrase string) (string, error) {
	d.signed = append(d.signed, envelope)
	if d.signErr != nil {
		return "", d.signErr
	}
	if d.empty {
		return "", nil
	}
	return "SIGNED:" + envelope, nil
}

func (d *mockDelegate) IsAvailable(ctx context.Context) bool { return d.available }

func (d *mockDelegate) ActiveIdentity(ctx context.Context) (string, error) { return d.identity, nil }

// mockJournal keeps submissions in memory and records every write.
type mockJournal struct {
	mu        sync.Mutex
	records   map[string]domain.Submission
	writes    []network.Phase
	createErr error
}

func newMockJournal() *mockJournal {
	return &mockJournal{records: make(map[string]domain.Submission)}
}

func (j *mockJournal) CreateSubmission(ctx context.Context, s *domain.Submission) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.createErr != nil {
		return j.createErr
	}
	j.records[s.ID] = *s
	j.writes = append(j.writes, s.Phase)
	return nil
}

func (j *mockJournal) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	s, ok := j.records[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &s, nil
}

func (j *mockJournal) GetSubmissionByHash(ctx context.Context, hash string) (*domain.Submission, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, s := range j.records {
		if s.TxHash == hash {
			return &s, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (j *mockJournal) UpdateSubmission(ctx context.Context, s *domain.Submission) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.records[s.ID]; !ok {
		return errors.New("not found")
	}
	j.records[s.ID] = *s
	j.writes = append(j.writes, s.Phase)
	return nil
}

func (j *mockJournal) ListSubmissions(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []*domain.Submission
	for _, s := range j.records {
		if filter.Matches(&s) {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (j *mockJournal) all() []domain.Submission {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]domain.Submission, 0, len(j.records))
	for _, s := range j.records {
		out = append(out, s)
	}
	return out
}

var _ ports.SubmissionJournal = (*mockJournal)(nil)
