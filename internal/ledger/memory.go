package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Transfer is one applied balance movement
type Transfer struct {
	From      string
	To        string
	Amount    int64
	Reference string
	At        time.Time
}

// MemoryLedger is an in-process standard token ledger with allowances.
// It backs local development and tests; Mint and Approve stand in for the
// token's own admin and wallet flows.
type MemoryLedger struct {
	mu         sync.Mutex
	custody    string
	balances   map[string]int64
	allowances map[string]map[string]int64
	journal    []Transfer
}

// NewMemoryLedger creates an empty ledger whose pool lives in custody
func NewMemoryLedger(custody string) *MemoryLedger {
	return &MemoryLedger{
		custody:    custody,
		balances:   make(map[string]int64),
		allowances: make(map[string]map[string]int64),
	}
}

func (l *MemoryLedger) Custody() string { return l.custody }

// Mint credits new tokens to account
func (l *MemoryLedger) Mint(account string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Approve sets spender's allowance over owner's balance
func (l *MemoryLedger) Approve(owner, spender string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[string]int64)
	}
	l.allowances[owner][spender] = amount
}

// Transfer moves tokens between accounts on the owner's authority, e.g. funding the pool
func (l *MemoryLedger) Transfer(from, to string, amount int64, reference string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount, reference)
}

func (l *MemoryLedger) BalanceOf(_ context.Context, account string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

func (l *MemoryLedger) AllowanceOf(_ context.Context, owner, spender string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[owner][spender], nil
}

func (l *MemoryLedger) Pull(_ context.Context, from string, amount int64, reference string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.allowances[from][l.custody] < amount {
		return fmt.Errorf("%w: %s", domain.ErrTransferRejected, ErrMsgAllowanceExceeded)
	}
	if err := l.move(from, l.custody, amount, reference); err != nil {
		return err
	}
	l.allowances[from][l.custody] -= amount
	return nil
}

func (l *MemoryLedger) Push(_ context.Context, to string, amount int64, reference string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(l.custody, to, amount, reference)
}

// Journal returns a copy of every applied transfer in order
func (l *MemoryLedger) Journal() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Transfer(nil), l.journal...)
}

// move must be called with mu held
func (l *MemoryLedger) move(from, to string, amount int64, reference string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrTransferRejected, ErrMsgNonPositiveAmount)
	}
	if l.balances[from] < amount {
		return fmt.Errorf("%w: %s", domain.ErrTransferRejected, ErrMsgBalanceExceeded)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	l.journal = append(l.journal, Transfer{From: from, To: to, Amount: amount, Reference: reference, At: time.Now()})
	return nil
}
