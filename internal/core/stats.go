package core

// Stats summarizes a transaction list. Counts partition the list by type
// and by status; the amount sums only include successful transactions.
type Stats struct {
	TotalTransactions      int     `json:"total_transactions"`
	TotalDeposits          int     `json:"total_deposits"`
	TotalWithdrawals       int     `json:"total_withdrawals"`
	SuccessfulTransactions int     `json:"successful_transactions"`
	PendingTransactions    int     `json:"pending_transactions"`
	FailedTransactions     int     `json:"failed_transactions"`
	TotalDepositAmount     float64 `json:"total_deposit_amount"`
	TotalWithdrawalAmount  float64 `json:"total_withdrawal_amount"`
}

// ComputeStats reduces a transaction list to its summary in one pass.
//
// A nil input means the data is not available yet and yields nil; an empty
// list is real data and yields a zeroed Stats. Amounts pass through
// untouched, no rounding or conversion.
func ComputeStats(txs []Transaction) *Stats {
	if txs == nil {
		return nil
	}
	s := &Stats{TotalTransactions: len(txs)}
	for _, t := range txs {
		switch t.Type {
		case TypeDeposit:
			s.TotalDeposits++
		case TypeWithdrawal:
			s.TotalWithdrawals++
		}
		switch t.Status {
		case StatusSuccessful:
			s.SuccessfulTransactions++
		case StatusPending:
			s.PendingTransactions++
		case StatusFailed:
			s.FailedTransactions++
		}
		if t.Status == StatusSuccessful {
			switch t.Type {
			case TypeDeposit:
				s.TotalDepositAmount += t.Amount
			case TypeWithdrawal:
				s.TotalWithdrawalAmount += t.Amount
			}
		}
	}
	return s
}
