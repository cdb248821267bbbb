// Package memory provides an in-process data backend seeded with
// generated transactions. It is the default backend for local runs and
// the fixture source for tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"revboard/internal/core"
)

type Store struct {
	mu     sync.RWMutex
	txs    []core.Transaction
	wallet core.Wallet
	user   core.User
}

var productNames = []string{
	"Rich Dad Poor Dad",
	"Psychology of Money",
	"Bespoke logo design",
	"UX design fundamentals",
	"Monthly newsletter",
	"Coaching session",
}

var countries = []string{"NG", "GH", "KE", "US", "GB"}

// New builds an empty store with a wallet and user snapshot.
func New(wallet core.Wallet, user core.User) *Store {
	return &Store{wallet: wallet, user: user}
}

// NewSeeded builds a store pre-populated with n generated transactions
// spread over the ninety days before now. The same seed always produces
// the same dataset.
func NewSeeded(seed int64, n int, now time.Time) *Store {
	rng := rand.New(rand.NewSource(seed))

	s := New(core.Wallet{}, core.User{
		FirstName: "Demo",
		LastName:  "Merchant",
		Email:     "demo@revboard.dev",
	})

	for i := 0; i < n; i++ {
		t := generate(rng, now)
		s.txs = append(s.txs, t)

		if t.Status == core.StatusSuccessful {
			switch t.Type {
			case core.TypeDeposit:
				s.wallet.TotalRevenue += t.Amount
				s.wallet.Balance += t.Amount
			case core.TypeWithdrawal:
				s.wallet.TotalPayout += t.Amount
				s.wallet.Balance -= t.Amount
			}
		} else if t.Status == core.StatusPending && t.Type == core.TypeWithdrawal {
			s.wallet.PendingPayout += t.Amount
		}
	}
	s.wallet.LedgerBalance = s.wallet.Balance

	sortNewestFirst(s.txs)
	return s
}

// NewFromFiles seeds the store from JSON fixtures under base
// (transactions.json, wallet.json, user.json). Missing or unreadable
// fixtures fall back to the generated dataset.
func NewFromFiles(base string) *Store {
	var txs []core.Transaction
	if !readJSON(filepath.Join(base, "transactions.json"), &txs) {
		return NewSeeded(1, 60, time.Now())
	}

	var wallet core.Wallet
	readJSON(filepath.Join(base, "wallet.json"), &wallet)
	var user core.User
	readJSON(filepath.Join(base, "user.json"), &user)

	s := New(wallet, user)
	for _, t := range txs {
		if t.Validate() == nil {
			s.txs = append(s.txs, t)
		}
	}
	sortNewestFirst(s.txs)
	return s
}

func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func generate(rng *rand.Rand, now time.Time) core.Transaction {
	day := now.AddDate(0, 0, -rng.Intn(90))
	date := time.Date(day.Year(), day.Month(), day.Day(),
		rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.UTC)

	t := core.Transaction{
		Amount:           float64(rng.Intn(99000)+1000) / 100,
		PaymentReference: uuid.NewString(),
		Date:             date.Format(time.RFC3339),
	}

	switch rng.Intn(4) {
	case 0:
		t.Type = core.TypeWithdrawal
	default:
		t.Type = core.TypeDeposit
	}

	switch rng.Intn(10) {
	case 0:
		t.Status = core.StatusFailed
	case 1, 2:
		t.Status = core.StatusPending
	default:
		t.Status = core.StatusSuccessful
	}

	if t.Type == core.TypeDeposit {
		t.Metadata = &core.Metadata{
			Name:        "Customer " + uuid.NewString()[:8],
			Type:        "digital_product",
			Email:       fmt.Sprintf("buyer%d@example.com", rng.Intn(10000)),
			Quantity:    1,
			Country:     countries[rng.Intn(len(countries))],
			ProductName: productNames[rng.Intn(len(productNames))],
		}
	}
	return t
}

// ListTransactions returns a copy of the dataset, newest first.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

// InsertTransaction appends a transaction unless its payment reference
// is already present.
func (s *Store) InsertTransaction(_ context.Context, t core.Transaction) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref := strings.TrimSpace(t.PaymentReference)
	if ref != "" {
		for _, existing := range s.txs {
			if existing.PaymentReference == ref {
				return false, nil
			}
		}
	}

	s.txs = append(s.txs, t)
	sortNewestFirst(s.txs)
	return true, nil
}

func (s *Store) Wallet(_ context.Context) (core.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet, nil
}

func (s *Store) User(_ context.Context) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, nil
}

// sortNewestFirst orders by the raw date string descending. ISO-8601
// timestamps sort chronologically as strings.
func sortNewestFirst(txs []core.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date > txs[j].Date
	})
}
