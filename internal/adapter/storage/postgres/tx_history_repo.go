package postgres

import (
	"context"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TxHistoryRepo implements ports.TxHistoryRepository over the address and
// wallet history tables.
type TxHistoryRepo struct {
	pool Pool
}

// NewTxHistoryRepo creates a new TxHistoryRepo.
func NewTxHistoryRepo(pool Pool) *TxHistoryRepo {
	return &TxHistoryRepo{pool: pool}
}

// AppendAddress appends address-level history rows. Re-delivered rows are
// ignored by primary key conflict.
func (r *TxHistoryRepo) AppendAddress(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error {
	query := `INSERT INTO address_tx_history (address, tx_id, token_id, balance, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (address, tx_id, token_id) DO NOTHING`

	for _, h := range rows {
		if _, err := tx.Exec(ctx, query, h.Owner, h.TxID, h.TokenID, h.Delta, h.Timestamp); err != nil {
			return fmt.Errorf("append address history: %w", err)
		}
	}
	return nil
}

// AppendWallet appends wallet-level history rows.
func (r *TxHistoryRepo) AppendWallet(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error {
	query := `INSERT INTO wallet_tx_history (wallet_id, tx_id, token_id, balance, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (wallet_id, tx_id, token_id) DO NOTHING`

	for _, h := range rows {
		if _, err := tx.Exec(ctx, query, h.Owner, h.TxID, h.TokenID, h.Delta, h.Timestamp); err != nil {
			return fmt.Errorf("append wallet history: %w", err)
		}
	}
	return nil
}

// WalletEntryExists reports whether any history row exists for the
// transaction. It is the durable applied-transaction check behind the cache.
func (r *TxHistoryRepo) WalletEntryExists(ctx context.Context, txID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM address_tx_history WHERE tx_id = $1 AND voided = FALSE)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, txID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check history exists: %w", err)
	}
	return exists, nil
}

// MarkVoided tombstones the transaction's rows in both history tables.
func (r *TxHistoryRepo) MarkVoided(ctx context.Context, txID string) error {
	if _, err := r.pool.Exec(ctx, `UPDATE address_tx_history SET voided = TRUE WHERE tx_id = $1`, txID); err != nil {
		return fmt.Errorf("void address history: %w", err)
	}
	if _, err := r.pool.Exec(ctx, `UPDATE wallet_tx_history SET voided = TRUE WHERE tx_id = $1`, txID); err != nil {
		return fmt.Errorf("void wallet history: %w", err)
	}
	return nil
}

// DeleteVoided removes tombstoned rows once rebuild no longer needs them.
func (r *TxHistoryRepo) DeleteVoided(ctx context.Context, txID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM address_tx_history WHERE tx_id = $1 AND voided = TRUE`, txID); err != nil {
		return fmt.Errorf("delete voided address history: %w", err)
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM wallet_tx_history WHERE tx_id = $1 AND voided = TRUE`, txID); err != nil {
		return fmt.Errorf("delete voided wallet history: %w", err)
	}
	return nil
}

// ListByWallet pages through a wallet's history for one token, newest
// first.
func (r *TxHistoryRepo) ListByWallet(ctx context.Context, walletID, tokenID string, limit, offset int) ([]domain.TxHistory, error) {
	query := `SELECT wallet_id, tx_id, token_id, balance, timestamp, voided
		FROM wallet_tx_history
		WHERE wallet_id = $1 AND token_id = $2 AND voided = FALSE
		ORDER BY timestamp DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, walletID, tokenID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wallet history: %w", err)
	}
	defer rows.Close()

	var out []domain.TxHistory
	for rows.Next() {
		var h domain.TxHistory
		if err := rows.Scan(&h.Owner, &h.TxID, &h.TokenID, &h.Delta, &h.Timestamp, &h.Voided); err != nil {
			return nil, fmt.Errorf("scan wallet history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// CountVoidedByAddress returns, per token, how many distinct voided
// transactions from txIDs touched the address.
func (r *TxHistoryRepo) CountVoidedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int, error) {
	query := `SELECT token_id, COUNT(DISTINCT tx_id) FROM address_tx_history
		WHERE address = $1 AND voided = TRUE AND tx_id = ANY($2)
		GROUP BY token_id`

	return r.countByToken(ctx, query, address, txIDs)
}

// CountVoidedByWallet is the wallet-level equivalent.
func (r *TxHistoryRepo) CountVoidedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int, error) {
	query := `SELECT token_id, COUNT(DISTINCT tx_id) FROM wallet_tx_history
		WHERE wallet_id = $1 AND voided = TRUE AND tx_id = ANY($2)
		GROUP BY token_id`

	return r.countByToken(ctx, query, walletID, txIDs)
}

// CountVoidedByToken returns, per token, the number of distinct voided
// transactions among txIDs, regardless of owner.
func (r *TxHistoryRepo) CountVoidedByToken(ctx context.Context, txIDs []string) (map[string]int, error) {
	query := `SELECT token_id, COUNT(DISTINCT tx_id) FROM address_tx_history
		WHERE voided = TRUE AND tx_id = ANY($1)
		GROUP BY token_id`

	rows, err := r.pool.Query(ctx, query, txIDs)
	if err != nil {
		return nil, fmt.Errorf("count voided by token: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var tokenID string
		var count int
		if err := rows.Scan(&tokenID, &count); err != nil {
			return nil, fmt.Errorf("scan voided token count: %w", err)
		}
		out[tokenID] = count
	}
	return out, rows.Err()
}

func (r *TxHistoryRepo) countByToken(ctx context.Context, query, owner string, txIDs []string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, query, owner, txIDs)
	if err != nil {
		return nil, fmt.Errorf("count voided history: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var tokenID string
		var count int
		if err := rows.Scan(&tokenID, &count); err != nil {
			return nil, fmt.Errorf("scan voided count: %w", err)
		}
		out[tokenID] = count
	}
	return out, rows.Err()
}
