package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AddressBalanceRepo implements ports.AddressBalanceRepository. Every write
// is a single atomic statement: concurrent workers coordinate through the
// commutativity of additive updates, not through application locks.
type AddressBalanceRepo struct {
	pool Pool
}

// NewAddressBalanceRepo creates a new AddressBalanceRepo.
func NewAddressBalanceRepo(pool Pool) *AddressBalanceRepo {
	return &AddressBalanceRepo{pool: pool}
}

const addressBalanceColumns = `address, token_id, unlocked_balance, locked_balance, total_received,
		unlocked_authorities, locked_authorities, timelock_expires, transactions`

// UpsertDelta applies one transaction's delta. The insert path clamps a
// negative unlocked amount to zero: a negative delta cannot be the first
// entry for the pair, so by invariant the conflict branch absorbs it against
// the pre-existing positive balance.
func (r *AddressBalanceRepo) UpsertDelta(ctx context.Context, tx pgx.Tx, address, tokenID string, d domain.BalanceDelta) error {
	query := `INSERT INTO address_balances (` + addressBalanceColumns + `)
		VALUES ($1, $2, GREATEST($3, 0), $4, $5, $6, $7, $8, 1)
		ON CONFLICT (address, token_id) DO UPDATE SET
			unlocked_balance = address_balances.unlocked_balance + $3,
			locked_balance = address_balances.locked_balance + $4,
			total_received = address_balances.total_received + $5,
			unlocked_authorities = address_balances.unlocked_authorities | $6,
			locked_authorities = address_balances.locked_authorities | $7,
			timelock_expires = LEAST(
				COALESCE(address_balances.timelock_expires, $8),
				COALESCE($8, address_balances.timelock_expires)),
			transactions = address_balances.transactions + 1`

	_, err := tx.Exec(ctx, query,
		address, tokenID, d.Unlocked, d.Locked, d.TotalReceived,
		int16(d.UnlockedAuthorities.Value()), int16(d.LockedAuthorities.Value()),
		d.TimelockExpires,
	)
	if err != nil {
		return fmt.Errorf("upsert address balance: %w", err)
	}
	return nil
}

// RefreshUnlockedAuthorities recomputes the unlocked authority mask from the
// UTXO set. Authorities are not a count, so after a removal the mask can
// only be rebuilt from ground truth. Must run after the corresponding UTXO
// changes committed.
func (r *AddressBalanceRepo) RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, address, tokenID string) error {
	query := `UPDATE address_balances SET unlocked_authorities = (
			SELECT COALESCE(BIT_OR(authorities), 0) FROM utxos
			WHERE address = $1 AND token_id = $2
			AND spent_by IS NULL AND voided = FALSE AND locked = FALSE)
		WHERE address = $1 AND token_id = $2`

	if _, err := tx.Exec(ctx, query, address, tokenID); err != nil {
		return fmt.Errorf("refresh unlocked authorities: %w", err)
	}
	return nil
}

// ApplyUnlock moves a matured amount from locked to unlocked and ORs in the
// newly unlocked authority bits.
func (r *AddressBalanceRepo) ApplyUnlock(ctx context.Context, address, tokenID string, amount int64, authorities domain.Authorities) error {
	query := `UPDATE address_balances SET
			unlocked_balance = unlocked_balance + $3,
			locked_balance = locked_balance - $3,
			unlocked_authorities = unlocked_authorities | $4
		WHERE address = $1 AND token_id = $2`

	_, err := r.pool.Exec(ctx, query, address, tokenID, amount, int16(authorities.Value()))
	if err != nil {
		return fmt.Errorf("apply unlock: %w", err)
	}
	return nil
}

// RefreshLockedAuthorities recomputes the locked authority mask over
// still-locked UTXOs.
func (r *AddressBalanceRepo) RefreshLockedAuthorities(ctx context.Context, address, tokenID string) error {
	query := `UPDATE address_balances SET locked_authorities = (
			SELECT COALESCE(BIT_OR(authorities), 0) FROM utxos
			WHERE address = $1 AND token_id = $2
			AND spent_by IS NULL AND voided = FALSE AND locked = TRUE)
		WHERE address = $1 AND token_id = $2`

	if _, err := r.pool.Exec(ctx, query, address, tokenID); err != nil {
		return fmt.Errorf("refresh locked authorities: %w", err)
	}
	return nil
}

// RefreshTimelockExpires resets the pending expiry to the soonest timelock
// among still-locked UTXOs, null when nothing is pending.
func (r *AddressBalanceRepo) RefreshTimelockExpires(ctx context.Context, address, tokenID string) error {
	query := `UPDATE address_balances SET timelock_expires = (
			SELECT MIN(timelock) FROM utxos
			WHERE address = $1 AND token_id = $2
			AND spent_by IS NULL AND voided = FALSE AND locked = TRUE)
		WHERE address = $1 AND token_id = $2`

	if _, err := r.pool.Exec(ctx, query, address, tokenID); err != nil {
		return fmt.Errorf("refresh timelock expires: %w", err)
	}
	return nil
}

// Get fetches one balance row, nil when the pair was never seen.
func (r *AddressBalanceRepo) Get(ctx context.Context, address, tokenID string) (*domain.AddressBalance, error) {
	query := `SELECT ` + addressBalanceColumns + ` FROM address_balances
		WHERE address = $1 AND token_id = $2`

	b, err := scanAddressBalance(r.pool.QueryRow(ctx, query, address, tokenID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address balance: %w", err)
	}
	return b, nil
}

// ListByAddresses returns all balance rows for the given addresses.
func (r *AddressBalanceRepo) ListByAddresses(ctx context.Context, addresses []string) ([]domain.AddressBalance, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	query := `SELECT ` + addressBalanceColumns + ` FROM address_balances
		WHERE address = ANY($1) ORDER BY address, token_id`

	rows, err := r.pool.Query(ctx, query, addresses)
	if err != nil {
		return nil, fmt.Errorf("list address balances: %w", err)
	}
	defer rows.Close()

	return scanAddressBalances(rows)
}

// Snapshot returns the current rows for an address before a rebuild zeroes
// them, preserving the transactions/totalReceived counters.
func (r *AddressBalanceRepo) Snapshot(ctx context.Context, address string) ([]domain.AddressBalance, error) {
	query := `SELECT ` + addressBalanceColumns + ` FROM address_balances
		WHERE address = $1 ORDER BY token_id`

	rows, err := r.pool.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("snapshot address balances: %w", err)
	}
	defer rows.Close()

	return scanAddressBalances(rows)
}

// Reset zeroes balances, authorities and expiry for every token of the
// address, leaving the counters for the rebuild to adjust.
func (r *AddressBalanceRepo) Reset(ctx context.Context, address string) error {
	query := `UPDATE address_balances SET
			unlocked_balance = 0, locked_balance = 0,
			unlocked_authorities = 0, locked_authorities = 0,
			timelock_expires = NULL
		WHERE address = $1`

	if _, err := r.pool.Exec(ctx, query, address); err != nil {
		return fmt.Errorf("reset address balances: %w", err)
	}
	return nil
}

// Rebuild overwrites one row with values recomputed from the UTXO set.
func (r *AddressBalanceRepo) Rebuild(ctx context.Context, address, tokenID string, b domain.Balance) error {
	query := `INSERT INTO address_balances (` + addressBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (address, token_id) DO UPDATE SET
			unlocked_balance = EXCLUDED.unlocked_balance,
			locked_balance = EXCLUDED.locked_balance,
			total_received = EXCLUDED.total_received,
			unlocked_authorities = EXCLUDED.unlocked_authorities,
			locked_authorities = EXCLUDED.locked_authorities,
			timelock_expires = EXCLUDED.timelock_expires,
			transactions = EXCLUDED.transactions`

	_, err := r.pool.Exec(ctx, query,
		address, tokenID, b.Unlocked, b.Locked, b.TotalReceived,
		int16(b.UnlockedAuthorities.Value()), int16(b.LockedAuthorities.Value()),
		b.TimelockExpires, b.Transactions,
	)
	if err != nil {
		return fmt.Errorf("rebuild address balance: %w", err)
	}
	return nil
}

func scanAddressBalance(row pgx.Row) (*domain.AddressBalance, error) {
	var b domain.AddressBalance
	var ua, la int16
	err := row.Scan(
		&b.Address, &b.TokenID, &b.Unlocked, &b.Locked, &b.TotalReceived,
		&ua, &la, &b.TimelockExpires, &b.Transactions,
	)
	if err != nil {
		return nil, err
	}
	b.UnlockedAuthorities = domain.NewAuthorities(uint8(ua))
	b.LockedAuthorities = domain.NewAuthorities(uint8(la))
	return &b, nil
}

func scanAddressBalances(rows pgx.Rows) ([]domain.AddressBalance, error) {
	var out []domain.AddressBalance
	for rows.Next() {
		var b domain.AddressBalance
		var ua, la int16
		err := rows.Scan(
			&b.Address, &b.TokenID, &b.Unlocked, &b.Locked, &b.TotalReceived,
			&ua, &la, &b.TimelockExpires, &b.Transactions,
		)
		if err != nil {
			return nil, fmt.Errorf("scan address balance: %w", err)
		}
		b.UnlockedAuthorities = domain.NewAuthorities(uint8(ua))
		b.LockedAuthorities = domain.NewAuthorities(uint8(la))
		out = append(out, b)
	}
	return out, rows.Err()
}
