package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, xpubkey, auth_xpubkey, status, max_gap, retry_count,
		created_at, ready_at, last_used_address_index`

// Create inserts a new wallet in CREATING status.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, xpubkey, auth_xpubkey, status, max_gap, created_at, last_used_address_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.XPubKey, w.AuthXPubKey, w.Status, w.MaxGap, w.CreatedAt, w.LastUsedAddressIndex,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its id, nil when unknown.
func (r *WalletRepo) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.XPubKey, &w.AuthXPubKey, &w.Status, &w.MaxGap, &w.RetryCount,
		&w.CreatedAt, &w.ReadyAt, &w.LastUsedAddressIndex,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// UpdateStatus transitions the wallet, stamping ready_at when it becomes
// READY.
func (r *WalletRepo) UpdateStatus(ctx context.Context, id string, status domain.WalletStatus) error {
	query := `UPDATE wallets SET status = $1,
			ready_at = CASE WHEN $1 = 'READY' THEN NOW() ELSE ready_at END
		WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update wallet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", id)
	}
	return nil
}

// IncrementRetry bumps the load retry counter.
func (r *WalletRepo) IncrementRetry(ctx context.Context, id string) error {
	query := `UPDATE wallets SET retry_count = retry_count + 1 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("increment wallet retry: %w", err)
	}
	return nil
}

// SetLastUsedAddressIndex records the confirmed gap boundary. The index only
// moves forward.
func (r *WalletRepo) SetLastUsedAddressIndex(ctx context.Context, id string, index int) error {
	query := `UPDATE wallets SET last_used_address_index = GREATEST(last_used_address_index, $1)
		WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, index, id); err != nil {
		return fmt.Errorf("set last used address index: %w", err)
	}
	return nil
}
