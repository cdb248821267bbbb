// Package storage is the SQLite data backend.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"revboard/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListTransactions implements store.TransactionLister.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT payment_reference, amount, type, status, date,
		       meta_name, meta_type, meta_email, meta_quantity, meta_country, meta_product_name
		FROM transactions
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			t        core.Transaction
			name     sql.NullString
			mtype    sql.NullString
			email    sql.NullString
			quantity sql.NullInt64
			country  sql.NullString
			product  sql.NullString
		)
		if err := rows.Scan(&t.PaymentReference, &t.Amount, &t.Type, &t.Status, &t.Date,
			&name, &mtype, &email, &quantity, &country, &product); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if name.Valid || mtype.Valid || email.Valid || quantity.Valid || country.Valid || product.Valid {
			t.Metadata = &core.Metadata{
				Name:        name.String,
				Type:        mtype.String,
				Email:       email.String,
				Quantity:    int(quantity.Int64),
				Country:     country.String,
				ProductName: product.String,
			}
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// InsertTransaction implements store.TransactionWriter. A transaction
// whose payment reference already exists is skipped and reported as not
// inserted.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, t core.Transaction) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	ref := strings.TrimSpace(t.PaymentReference)
	if ref == "" {
		return false, fmt.Errorf("insert transaction: empty payment reference")
	}

	var (
		name     sql.NullString
		mtype    sql.NullString
		email    sql.NullString
		quantity sql.NullInt64
		country  sql.NullString
		product  sql.NullString
	)
	if m := t.Metadata; m != nil {
		name = sql.NullString{String: m.Name, Valid: true}
		mtype = sql.NullString{String: m.Type, Valid: m.Type != ""}
		email = sql.NullString{String: m.Email, Valid: m.Email != ""}
		quantity = sql.NullInt64{Int64: int64(m.Quantity), Valid: m.Quantity != 0}
		country = sql.NullString{String: m.Country, Valid: m.Country != ""}
		product = sql.NullString{String: m.ProductName, Valid: m.ProductName != ""}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(payment_reference, amount, type, status, date,
			 meta_name, meta_type, meta_email, meta_quantity, meta_country, meta_product_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ref, t.Amount, t.Type, t.Status, t.Date,
		name, mtype, email, quantity, country, product)
	if err != nil {
		return false, fmt.Errorf("insert transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert transaction rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"payment_reference", ref,
		"type", t.Type,
		"status", t.Status,
		"amount", t.Amount)
	return true, nil
}

// Wallet implements store.WalletReader.
func (r *SQLiteRepository) Wallet(ctx context.Context) (core.Wallet, error) {
	var w core.Wallet
	err := r.db.QueryRowContext(ctx, `
		SELECT balance, total_payout, total_revenue, pending_payout, ledger_balance
		FROM wallet WHERE id = 1`).
		Scan(&w.Balance, &w.TotalPayout, &w.TotalRevenue, &w.PendingPayout, &w.LedgerBalance)
	if err != nil {
		return core.Wallet{}, fmt.Errorf("read wallet: %w", err)
	}
	return w, nil
}

// PutWallet overwrites the wallet snapshot.
func (r *SQLiteRepository) PutWallet(ctx context.Context, w core.Wallet) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE wallet
		SET balance = ?, total_payout = ?, total_revenue = ?,
		    pending_payout = ?, ledger_balance = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		w.Balance, w.TotalPayout, w.TotalRevenue, w.PendingPayout, w.LedgerBalance)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	return nil
}

// User implements store.UserReader.
func (r *SQLiteRepository) User(ctx context.Context) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, `
		SELECT first_name, last_name, email FROM users WHERE id = 1`).
		Scan(&u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		return core.User{}, fmt.Errorf("read user: %w", err)
	}
	return u, nil
}

// PutUser overwrites the account owner snapshot.
func (r *SQLiteRepository) PutUser(ctx context.Context, u core.User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		u.FirstName, u.LastName, u.Email)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
