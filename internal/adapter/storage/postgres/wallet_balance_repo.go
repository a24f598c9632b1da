package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletBalanceRepo implements ports.WalletBalanceRepository. It mirrors
// AddressBalanceRepo at wallet granularity; authority refreshes read the
// address_balance rows of the wallet's member addresses instead of raw
// UTXOs, one aggregation level up.
type WalletBalanceRepo struct {
	pool Pool
}

// NewWalletBalanceRepo creates a new WalletBalanceRepo.
func NewWalletBalanceRepo(pool Pool) *WalletBalanceRepo {
	return &WalletBalanceRepo{pool: pool}
}

const walletBalanceColumns = `wallet_id, token_id, unlocked_balance, locked_balance, total_received,
		unlocked_authorities, locked_authorities, timelock_expires, transactions`

// UpsertDelta applies one transaction's delta at wallet granularity.
// totalReceived carries the gross amount sent to the wallet in the tx, not
// the net delta.
func (r *WalletBalanceRepo) UpsertDelta(ctx context.Context, tx pgx.Tx, walletID, tokenID string, d domain.BalanceDelta) error {
	query := `INSERT INTO wallet_balances (` + walletBalanceColumns + `)
		VALUES ($1, $2, GREATEST($3, 0), $4, $5, $6, $7, $8, 1)
		ON CONFLICT (wallet_id, token_id) DO UPDATE SET
			unlocked_balance = wallet_balances.unlocked_balance + $3,
			locked_balance = wallet_balances.locked_balance + $4,
			total_received = wallet_balances.total_received + $5,
			unlocked_authorities = wallet_balances.unlocked_authorities | $6,
			locked_authorities = wallet_balances.locked_authorities | $7,
			timelock_expires = LEAST(
				COALESCE(wallet_balances.timelock_expires, $8),
				COALESCE($8, wallet_balances.timelock_expires)),
			transactions = wallet_balances.transactions + 1`

	_, err := tx.Exec(ctx, query,
		walletID, tokenID, d.Unlocked, d.Locked, d.TotalReceived,
		int16(d.UnlockedAuthorities.Value()), int16(d.LockedAuthorities.Value()),
		d.TimelockExpires,
	)
	if err != nil {
		return fmt.Errorf("upsert wallet balance: %w", err)
	}
	return nil
}

// RefreshUnlockedAuthorities recomputes the unlocked authority mask by
// OR-ing across the wallet's member address balances. Those rows must have
// been refreshed first in the same processing sequence.
func (r *WalletBalanceRepo) RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, walletID, tokenID string) error {
	query := `UPDATE wallet_balances SET unlocked_authorities = (
			SELECT COALESCE(BIT_OR(ab.unlocked_authorities), 0)
			FROM address_balances ab
			JOIN addresses a ON a.address = ab.address
			WHERE a.wallet_id = $1 AND ab.token_id = $2)
		WHERE wallet_id = $1 AND token_id = $2`

	if _, err := tx.Exec(ctx, query, walletID, tokenID); err != nil {
		return fmt.Errorf("refresh wallet unlocked authorities: %w", err)
	}
	return nil
}

// ApplyUnlock moves a matured amount from locked to unlocked.
func (r *WalletBalanceRepo) ApplyUnlock(ctx context.Context, walletID, tokenID string, amount int64, authorities domain.Authorities) error {
	query := `UPDATE wallet_balances SET
			unlocked_balance = unlocked_balance + $3,
			locked_balance = locked_balance - $3,
			unlocked_authorities = unlocked_authorities | $4
		WHERE wallet_id = $1 AND token_id = $2`

	_, err := r.pool.Exec(ctx, query, walletID, tokenID, amount, int16(authorities.Value()))
	if err != nil {
		return fmt.Errorf("apply wallet unlock: %w", err)
	}
	return nil
}

// RefreshLockedAuthorities recomputes the locked authority mask from member
// address balances.
func (r *WalletBalanceRepo) RefreshLockedAuthorities(ctx context.Context, walletID, tokenID string) error {
	query := `UPDATE wallet_balances SET locked_authorities = (
			SELECT COALESCE(BIT_OR(ab.locked_authorities), 0)
			FROM address_balances ab
			JOIN addresses a ON a.address = ab.address
			WHERE a.wallet_id = $1 AND ab.token_id = $2)
		WHERE wallet_id = $1 AND token_id = $2`

	if _, err := r.pool.Exec(ctx, query, walletID, tokenID); err != nil {
		return fmt.Errorf("refresh wallet locked authorities: %w", err)
	}
	return nil
}

// RefreshTimelockExpires resets the pending expiry to the soonest among
// member address balances.
func (r *WalletBalanceRepo) RefreshTimelockExpires(ctx context.Context, walletID, tokenID string) error {
	query := `UPDATE wallet_balances SET timelock_expires = (
			SELECT MIN(ab.timelock_expires)
			FROM address_balances ab
			JOIN addresses a ON a.address = ab.address
			WHERE a.wallet_id = $1 AND ab.token_id = $2)
		WHERE wallet_id = $1 AND token_id = $2`

	if _, err := r.pool.Exec(ctx, query, walletID, tokenID); err != nil {
		return fmt.Errorf("refresh wallet timelock expires: %w", err)
	}
	return nil
}

// Get fetches one wallet balance row, nil when the pair was never seen.
func (r *WalletBalanceRepo) Get(ctx context.Context, walletID, tokenID string) (*domain.WalletBalance, error) {
	query := `SELECT ` + walletBalanceColumns + ` FROM wallet_balances
		WHERE wallet_id = $1 AND token_id = $2`

	var b domain.WalletBalance
	var ua, la int16
	err := r.pool.QueryRow(ctx, query, walletID, tokenID).Scan(
		&b.WalletID, &b.TokenID, &b.Unlocked, &b.Locked, &b.TotalReceived,
		&ua, &la, &b.TimelockExpires, &b.Transactions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet balance: %w", err)
	}
	b.UnlockedAuthorities = domain.NewAuthorities(uint8(ua))
	b.LockedAuthorities = domain.NewAuthorities(uint8(la))
	return &b, nil
}

// ListByWallet returns every token balance of the wallet.
func (r *WalletBalanceRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.WalletBalance, error) {
	query := `SELECT ` + walletBalanceColumns + ` FROM wallet_balances
		WHERE wallet_id = $1 ORDER BY token_id`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet balances: %w", err)
	}
	defer rows.Close()

	return scanWalletBalances(rows)
}

// Snapshot returns current rows before a rebuild zeroes them.
func (r *WalletBalanceRepo) Snapshot(ctx context.Context, walletID string) ([]domain.WalletBalance, error) {
	return r.ListByWallet(ctx, walletID)
}

// Reset zeroes balances, authorities and expiry for every token of the
// wallet.
func (r *WalletBalanceRepo) Reset(ctx context.Context, walletID string) error {
	query := `UPDATE wallet_balances SET
			unlocked_balance = 0, locked_balance = 0,
			unlocked_authorities = 0, locked_authorities = 0,
			timelock_expires = NULL
		WHERE wallet_id = $1`

	if _, err := r.pool.Exec(ctx, query, walletID); err != nil {
		return fmt.Errorf("reset wallet balances: %w", err)
	}
	return nil
}

// Rebuild overwrites one row with recomputed values.
func (r *WalletBalanceRepo) Rebuild(ctx context.Context, walletID, tokenID string, b domain.Balance) error {
	query := `INSERT INTO wallet_balances (` + walletBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (wallet_id, token_id) DO UPDATE SET
			unlocked_balance = EXCLUDED.unlocked_balance,
			locked_balance = EXCLUDED.locked_balance,
			total_received = EXCLUDED.total_received,
			unlocked_authorities = EXCLUDED.unlocked_authorities,
			locked_authorities = EXCLUDED.locked_authorities,
			timelock_expires = EXCLUDED.timelock_expires,
			transactions = EXCLUDED.transactions`

	_, err := r.pool.Exec(ctx, query,
		walletID, tokenID, b.Unlocked, b.Locked, b.TotalReceived,
		int16(b.UnlockedAuthorities.Value()), int16(b.LockedAuthorities.Value()),
		b.TimelockExpires, b.Transactions,
	)
	if err != nil {
		return fmt.Errorf("rebuild wallet balance: %w", err)
	}
	return nil
}

// InitFromAddresses seeds wallet balance rows by aggregating the address
// balances of newly bound addresses, then corrects the transaction counters
// to distinct transaction counts from address history.
func (r *WalletBalanceRepo) InitFromAddresses(ctx context.Context, walletID string, addresses []string) error {
	if len(addresses) == 0 {
		return nil
	}

	query := `INSERT INTO wallet_balances (` + walletBalanceColumns + `)
		SELECT $1, ab.token_id, SUM(ab.unlocked_balance), SUM(ab.locked_balance), SUM(ab.total_received),
			COALESCE(BIT_OR(ab.unlocked_authorities), 0), COALESCE(BIT_OR(ab.locked_authorities), 0),
			MIN(ab.timelock_expires), 0
		FROM address_balances ab
		WHERE ab.address = ANY($2)
		GROUP BY ab.token_id
		ON CONFLICT (wallet_id, token_id) DO UPDATE SET
			unlocked_balance = EXCLUDED.unlocked_balance,
			locked_balance = EXCLUDED.locked_balance,
			total_received = EXCLUDED.total_received,
			unlocked_authorities = EXCLUDED.unlocked_authorities,
			locked_authorities = EXCLUDED.locked_authorities,
			timelock_expires = EXCLUDED.timelock_expires`

	if _, err := r.pool.Exec(ctx, query, walletID, addresses); err != nil {
		return fmt.Errorf("init wallet balances: %w", err)
	}

	// A transaction touching two member addresses must count once.
	countQuery := `UPDATE wallet_balances wb SET transactions = (
			SELECT COUNT(DISTINCT h.tx_id) FROM address_tx_history h
			WHERE h.address = ANY($2) AND h.token_id = wb.token_id AND h.voided = FALSE)
		WHERE wb.wallet_id = $1`

	if _, err := r.pool.Exec(ctx, countQuery, walletID, addresses); err != nil {
		return fmt.Errorf("init wallet balance counters: %w", err)
	}
	return nil
}

func scanWalletBalances(rows pgx.Rows) ([]domain.WalletBalance, error) {
	var out []domain.WalletBalance
	for rows.Next() {
		var b domain.WalletBalance
		var ua, la int16
		err := rows.Scan(
			&b.WalletID, &b.TokenID, &b.Unlocked, &b.Locked, &b.TotalReceived,
			&ua, &la, &b.TimelockExpires, &b.Transactions,
		)
		if err != nil {
			return nil, fmt.Errorf("scan wallet balance: %w", err)
		}
		b.UnlockedAuthorities = domain.NewAuthorities(uint8(ua))
		b.LockedAuthorities = domain.NewAuthorities(uint8(la))
		out = append(out, b)
	}
	return out, rows.Err()
}
