package storage

import (
	"context"
	"path/filepath"
	"testing"

	"revboard/internal/core"
	"revboard/internal/store"
)

var _ store.Backend = (*SQLiteRepository)(nil)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestInsertAndListTransactions(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := core.Transaction{
		Amount:           500,
		Type:             core.TypeDeposit,
		Status:           core.StatusSuccessful,
		PaymentReference: "ref-1",
		Date:             "2022-03-03T10:00:00Z",
		Metadata: &core.Metadata{
			Name:        "John Doe",
			ProductName: "Rich Dad Poor Dad",
			Country:     "NG",
		},
	}
	second := core.Transaction{
		Amount:           300,
		Type:             core.TypeWithdrawal,
		Status:           core.StatusPending,
		PaymentReference: "ref-2",
		Date:             "2022-03-01T10:00:00Z",
	}

	for _, tr := range []core.Transaction{first, second} {
		inserted, err := repo.InsertTransaction(ctx, tr)
		if err != nil || !inserted {
			t.Fatalf("insert %s: inserted=%v err=%v", tr.PaymentReference, inserted, err)
		}
	}

	txs, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].PaymentReference != "ref-1" {
		t.Fatalf("expected newest first, got %s", txs[0].PaymentReference)
	}
	if txs[0].Metadata == nil || txs[0].Metadata.ProductName != "Rich Dad Poor Dad" {
		t.Fatalf("metadata not round-tripped: %+v", txs[0].Metadata)
	}
	if txs[1].Metadata != nil {
		t.Fatalf("absent metadata must stay nil, got %+v", txs[1].Metadata)
	}
}

func TestInsertTransactionDuplicateReference(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	tr := core.Transaction{
		Amount:           500,
		Type:             core.TypeDeposit,
		Status:           core.StatusSuccessful,
		PaymentReference: "ref-1",
		Date:             "2022-03-03T10:00:00Z",
	}

	if inserted, err := repo.InsertTransaction(ctx, tr); err != nil || !inserted {
		t.Fatalf("first insert: inserted=%v err=%v", inserted, err)
	}

	tr.Amount = 999
	inserted, err := repo.InsertTransaction(ctx, tr)
	if err != nil {
		t.Fatalf("duplicate insert errored: %v", err)
	}
	if inserted {
		t.Fatalf("duplicate payment reference must not insert")
	}

	txs, _ := repo.ListTransactions(ctx)
	if len(txs) != 1 || txs[0].Amount != 500 {
		t.Fatalf("original row must be untouched: %+v", txs)
	}
}

func TestInsertTransactionValidation(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	cases := []core.Transaction{
		{Amount: 10, Type: "transfer", Status: core.StatusSuccessful, PaymentReference: "a"},
		{Amount: 10, Type: core.TypeDeposit, Status: "unknown", PaymentReference: "b"},
		{Amount: -1, Type: core.TypeDeposit, Status: core.StatusSuccessful, PaymentReference: "c"},
		{Amount: 10, Type: core.TypeDeposit, Status: core.StatusSuccessful, PaymentReference: "  "},
	}
	for i, tr := range cases {
		if _, err := repo.InsertTransaction(ctx, tr); err == nil {
			t.Fatalf("case %d: expected rejection", i)
		}
	}
}

func TestWalletAndUserRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	// Fresh database carries zeroed singletons.
	w, err := repo.Wallet(ctx)
	if err != nil {
		t.Fatalf("Wallet: %v", err)
	}
	if w != (core.Wallet{}) {
		t.Fatalf("fresh wallet must be zeroed: %+v", w)
	}

	want := core.Wallet{
		Balance:       700.52,
		TotalPayout:   55080.6,
		TotalRevenue:  175580.9,
		PendingPayout: 0,
		LedgerBalance: 700.52,
	}
	if err := repo.PutWallet(ctx, want); err != nil {
		t.Fatalf("PutWallet: %v", err)
	}
	w, _ = repo.Wallet(ctx)
	if w != want {
		t.Fatalf("wallet round trip: got %+v, want %+v", w, want)
	}

	wantUser := core.User{FirstName: "Olivier", LastName: "Jones", Email: "olivier@example.com"}
	if err := repo.PutUser(ctx, wantUser); err != nil {
		t.Fatalf("PutUser: %v", err)
	}
	u, err := repo.User(ctx)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if u != wantUser {
		t.Fatalf("user round trip: got %+v, want %+v", u, wantUser)
	}
}
