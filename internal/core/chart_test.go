package core

import (
	"testing"
	"time"
)

func TestBuildDailySeriesEndToEndScenario(t *testing.T) {
	txs := []Transaction{
		tx(500, TypeDeposit, StatusSuccessful, "2022-03-03T10:00:00Z"),
		tx(300, TypeWithdrawal, StatusSuccessful, "2022-03-01T10:00:00Z"),
		tx(200, TypeDeposit, StatusPending, "2022-02-20T10:00:00Z"), // ignored
	}
	got := BuildDailySeries(txs)
	want := []ChartPoint{
		{Date: "2022-03-01", Value: -300},
		{Date: "2022-03-02", Value: 0},
		{Date: "2022-03-03", Value: 500},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildDailySeriesEmptyWhenNoSuccessful(t *testing.T) {
	txs := []Transaction{
		tx(200, TypeDeposit, StatusPending, "2022-02-20T10:00:00Z"),
		tx(400, TypeWithdrawal, StatusFailed, "2022-02-21T10:00:00Z"),
	}
	got := BuildDailySeries(txs)
	if got == nil {
		t.Fatalf("series must be non-nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty series, got %+v", got)
	}
}

func TestBuildDailySeriesGapFill(t *testing.T) {
	// Two successful transactions a month apart: the series must cover
	// every calendar day between them, ascending, with zeros in the gaps.
	txs := []Transaction{
		tx(10, TypeDeposit, StatusSuccessful, "2022-01-31T00:00:00Z"),
		tx(20, TypeDeposit, StatusSuccessful, "2022-03-02T00:00:00Z"),
	}
	got := BuildDailySeries(txs)

	first, _ := time.Parse("2006-01-02", "2022-01-31")
	last, _ := time.Parse("2006-01-02", "2022-03-02")
	wantLen := int(last.Sub(first).Hours()/24) + 1
	if len(got) != wantLen {
		t.Fatalf("got %d points, want %d", len(got), wantLen)
	}
	if got[0].Date != "2022-01-31" || got[len(got)-1].Date != "2022-03-02" {
		t.Fatalf("bad endpoints: %s .. %s", got[0].Date, got[len(got)-1].Date)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date <= got[i-1].Date {
			t.Fatalf("dates not strictly ascending at %d: %s then %s", i, got[i-1].Date, got[i].Date)
		}
		if got[i].Date != "2022-03-02" && got[i].Value != 0 {
			t.Fatalf("gap day %s must be zero, got %d", got[i].Date, got[i].Value)
		}
	}
	if got[0].Value != 10 || got[len(got)-1].Value != 20 {
		t.Fatalf("endpoint values wrong: %+v", got)
	}
}

func TestBuildDailySeriesNetsSameDay(t *testing.T) {
	txs := []Transaction{
		tx(100, TypeDeposit, StatusSuccessful, "2022-05-05T01:00:00Z"),
		tx(40, TypeWithdrawal, StatusSuccessful, "2022-05-05T02:00:00Z"),
		tx(10, TypeDeposit, StatusSuccessful, "2022-05-05T03:00:00Z"),
	}
	got := BuildDailySeries(txs)
	if len(got) != 1 {
		t.Fatalf("expected single point, got %+v", got)
	}
	if got[0].Date != "2022-05-05" || got[0].Value != 70 {
		t.Fatalf("got %+v, want {2022-05-05 70}", got[0])
	}
}

func TestBuildDailySeriesRoundsNet(t *testing.T) {
	txs := []Transaction{
		tx(10.6, TypeDeposit, StatusSuccessful, "2022-05-05T01:00:00Z"),
		tx(0.1, TypeWithdrawal, StatusSuccessful, "2022-05-05T02:00:00Z"),
	}
	got := BuildDailySeries(txs)
	if len(got) != 1 || got[0].Value != 11 {
		t.Fatalf("expected rounded net 11, got %+v", got)
	}
}

func TestBuildDailySeriesRoundsHalvesTowardPositive(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		typ    TransactionType
		want   int
	}{
		{"positive half rounds up", 10.5, TypeDeposit, 11},
		{"negative half rounds toward zero", 10.5, TypeWithdrawal, -10},
	}
	for _, tc := range cases {
		got := BuildDailySeries([]Transaction{
			tx(tc.amount, tc.typ, StatusSuccessful, "2022-05-05T01:00:00Z"),
		})
		if len(got) != 1 || got[0].Value != tc.want {
			t.Fatalf("%s: expected %d, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestBuildDailySeriesSkipsUnparseableDates(t *testing.T) {
	txs := []Transaction{
		tx(100, TypeDeposit, StatusSuccessful, "garbage"),
		tx(50, TypeDeposit, StatusSuccessful, "2022-05-05T01:00:00Z"),
	}
	got := BuildDailySeries(txs)
	if len(got) != 1 || got[0].Value != 50 {
		t.Fatalf("unparseable dates must be skipped: %+v", got)
	}
}
