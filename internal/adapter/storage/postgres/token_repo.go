package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// IncrementTransactions bumps the token transaction counter, creating the
// row on first sight.
func (r *TokenRepo) IncrementTransactions(ctx context.Context, tx pgx.Tx, tokenID string) error {
	query := `INSERT INTO tokens (id, transactions) VALUES ($1, 1)
		ON CONFLICT (id) DO UPDATE SET transactions = tokens.transactions + 1`

	if _, err := tx.Exec(ctx, query, tokenID); err != nil {
		return fmt.Errorf("increment token transactions: %w", err)
	}
	return nil
}

// DecrementTransactions subtracts the count of voided transactions.
func (r *TokenRepo) DecrementTransactions(ctx context.Context, tokenID string, by int) error {
	query := `UPDATE tokens SET transactions = GREATEST(transactions - $1, 0) WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, by, tokenID); err != nil {
		return fmt.Errorf("decrement token transactions: %w", err)
	}
	return nil
}

// Get fetches a token row, nil when the token was never seen.
func (r *TokenRepo) Get(ctx context.Context, tokenID string) (*domain.Token, error) {
	query := `SELECT id, transactions FROM tokens WHERE id = $1`

	t := &domain.Token{}
	err := r.pool.QueryRow(ctx, query, tokenID).Scan(&t.ID, &t.Transactions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return t, nil
}
