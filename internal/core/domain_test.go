package core

import "testing"

func TestTransactionValidate(t *testing.T) {
	good := Transaction{Amount: 100, Type: TypeDeposit, Status: StatusSuccessful, Date: "2022-03-03T10:00:00Z"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Amount: 1, Type: "transfer", Status: StatusSuccessful},
		{Amount: 1, Type: TypeDeposit, Status: "done"},
		{Amount: -1, Type: TypeDeposit, Status: StatusSuccessful},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	// Zero amount and missing date are legal snapshot data.
	edge := Transaction{Amount: 0, Type: TypeWithdrawal, Status: StatusFailed}
	if err := edge.Validate(); err != nil {
		t.Fatalf("expected ok for zero amount and empty date, got %v", err)
	}
}

func TestDateOnly(t *testing.T) {
	cases := []struct {
		date string
		want string
		ok   bool
	}{
		{"2022-03-03T10:00:00Z", "2022-03-03", true},
		{"2022-03-03", "2022-03-03", true},
		{"", "", false},
		{"garbage", "", false},
		{"2022-13-40T00:00:00Z", "", false},
	}
	for i, tc := range cases {
		got, ok := Transaction{Date: tc.date}.DateOnly()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("case %d: got (%q, %v), want (%q, %v)", i, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRowKey(t *testing.T) {
	if got := (Transaction{PaymentReference: "ref_1"}).RowKey(4); got != "ref_1" {
		t.Fatalf("got %q", got)
	}
	if got := (Transaction{}).RowKey(4); got != "txn-4" {
		t.Fatalf("got %q", got)
	}
}

func TestTitle(t *testing.T) {
	withProduct := Transaction{Type: TypeDeposit, Metadata: &Metadata{ProductName: "Premium Course"}}
	if got := withProduct.Title(); got != "Premium Course" {
		t.Fatalf("got %q", got)
	}
	if got := (Transaction{Type: TypeWithdrawal}).Title(); got != "Withdrawal" {
		t.Fatalf("got %q", got)
	}
}
