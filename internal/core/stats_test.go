package core

import (
	"math/rand"
	"testing"
)

func TestComputeStatsNilVsEmpty(t *testing.T) {
	if got := ComputeStats(nil); got != nil {
		t.Fatalf("nil input must yield nil, got %+v", got)
	}
	got := ComputeStats([]Transaction{})
	if got == nil {
		t.Fatalf("empty input must yield zeroed stats, not nil")
	}
	if *got != (Stats{}) {
		t.Fatalf("expected zeroed stats, got %+v", got)
	}
}

func TestComputeStatsEndToEndScenario(t *testing.T) {
	txs := []Transaction{
		tx(500, TypeDeposit, StatusSuccessful, "2022-03-03T10:00:00Z"),
		tx(300, TypeWithdrawal, StatusSuccessful, "2022-03-01T10:00:00Z"),
		tx(200, TypeDeposit, StatusPending, "2022-02-20T10:00:00Z"),
	}
	s := ComputeStats(txs)
	if s == nil {
		t.Fatalf("expected stats")
	}
	want := Stats{
		TotalTransactions:      3,
		TotalDeposits:          2,
		TotalWithdrawals:       1,
		SuccessfulTransactions: 2,
		PendingTransactions:    1,
		FailedTransactions:     0,
		TotalDepositAmount:     500,
		TotalWithdrawalAmount:  300,
	}
	if *s != want {
		t.Fatalf("got %+v, want %+v", *s, want)
	}
}

func TestComputeStatsPartitions(t *testing.T) {
	// Both type counts and status counts must partition the list
	// exhaustively, whatever the mix.
	rng := rand.New(rand.NewSource(7))
	types := []TransactionType{TypeDeposit, TypeWithdrawal}
	statuses := []TransactionStatus{StatusSuccessful, StatusPending, StatusFailed}

	var txs []Transaction
	for i := 0; i < 200; i++ {
		txs = append(txs, tx(float64(rng.Intn(1000)), types[rng.Intn(2)], statuses[rng.Intn(3)], "2022-01-01T00:00:00Z"))
	}
	s := ComputeStats(txs)
	if s.TotalTransactions != s.TotalDeposits+s.TotalWithdrawals {
		t.Fatalf("type partition broken: %+v", s)
	}
	if s.TotalTransactions != s.SuccessfulTransactions+s.PendingTransactions+s.FailedTransactions {
		t.Fatalf("status partition broken: %+v", s)
	}
}

func TestComputeStatsAmountInvariance(t *testing.T) {
	base := []Transaction{
		tx(500, TypeDeposit, StatusSuccessful, "2022-03-03T10:00:00Z"),
		tx(300, TypeWithdrawal, StatusSuccessful, "2022-03-01T10:00:00Z"),
	}
	want := ComputeStats(base)

	// Reordering must not change the sums.
	reordered := []Transaction{base[1], base[0]}
	if got := ComputeStats(reordered); got.TotalDepositAmount != want.TotalDepositAmount ||
		got.TotalWithdrawalAmount != want.TotalWithdrawalAmount {
		t.Fatalf("sums changed under reordering: %+v vs %+v", got, want)
	}

	// Inserting non-successful transactions of any type must not change
	// the sums either.
	noisy := append(append([]Transaction{}, base...),
		tx(9999, TypeDeposit, StatusPending, "2022-03-02T10:00:00Z"),
		tx(9999, TypeWithdrawal, StatusFailed, "2022-03-02T10:00:00Z"),
	)
	got := ComputeStats(noisy)
	if got.TotalDepositAmount != want.TotalDepositAmount || got.TotalWithdrawalAmount != want.TotalWithdrawalAmount {
		t.Fatalf("sums changed under non-successful insertions: %+v", got)
	}
	if got.TotalTransactions != 4 {
		t.Fatalf("non-successful transactions must still be counted, got %d", got.TotalTransactions)
	}
}

func TestComputeStatsCountsMalformedDates(t *testing.T) {
	txs := []Transaction{
		tx(100, TypeDeposit, StatusSuccessful, ""),
		tx(100, TypeDeposit, StatusSuccessful, "2022-03-03T10:00:00Z"),
	}
	s := ComputeStats(txs)
	if s.TotalTransactions != 2 {
		t.Fatalf("records without dates must still count: %+v", s)
	}
}
