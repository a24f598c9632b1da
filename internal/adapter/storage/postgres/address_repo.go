package postgres

import (
	"context"
	"fmt"

	"wallet-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AddressRepo implements ports.AddressRepository.
type AddressRepo struct {
	pool Pool
}

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

const addressColumns = `address, derivation_index, wallet_id, transactions`

// GetByAddresses fetches the rows matching the given address strings.
func (r *AddressRepo) GetByAddresses(ctx context.Context, addresses []string) ([]domain.Address, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE address = ANY($1)`

	rows, err := r.pool.Query(ctx, query, addresses)
	if err != nil {
		return nil, fmt.Errorf("get addresses: %w", err)
	}
	defer rows.Close()

	return scanAddresses(rows)
}

// IncrementTransactions bumps the transaction counter, inserting an
// unclaimed row with count 1 when the address is seen for the first time.
func (r *AddressRepo) IncrementTransactions(ctx context.Context, tx pgx.Tx, address string) error {
	query := `INSERT INTO addresses (address, transactions) VALUES ($1, 1)
		ON CONFLICT (address) DO UPDATE SET transactions = addresses.transactions + 1`

	if _, err := tx.Exec(ctx, query, address); err != nil {
		return fmt.Errorf("increment address transactions: %w", err)
	}
	return nil
}

// BindNew inserts fresh address rows owned by the wallet.
func (r *AddressRepo) BindNew(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error {
	query := `INSERT INTO addresses (address, derivation_index, wallet_id, transactions)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (address) DO NOTHING`

	for _, a := range addresses {
		if _, err := r.pool.Exec(ctx, query, a.Address, a.Index, walletID); err != nil {
			return fmt.Errorf("bind new address %s: %w", a.Address, err)
		}
	}
	return nil
}

// RebindExisting claims previously unowned rows for the wallet. Rows already
// claimed by another wallet are left untouched: the binding is immutable.
func (r *AddressRepo) RebindExisting(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error {
	query := `UPDATE addresses SET wallet_id = $1, derivation_index = $2
		WHERE address = $3 AND wallet_id IS NULL`

	for _, a := range addresses {
		if _, err := r.pool.Exec(ctx, query, walletID, a.Index, a.Address); err != nil {
			return fmt.Errorf("rebind address %s: %w", a.Address, err)
		}
	}
	return nil
}

// ListByWallet returns every address bound to the wallet, in index order.
func (r *AddressRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses
		WHERE wallet_id = $1 ORDER BY derivation_index`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet addresses: %w", err)
	}
	defer rows.Close()

	return scanAddresses(rows)
}

// ListUnused returns never-used addresses of the wallet up to the confirmed
// gap boundary.
func (r *AddressRepo) ListUnused(ctx context.Context, walletID string, maxIndex int) ([]domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses
		WHERE wallet_id = $1 AND transactions = 0 AND derivation_index <= $2
		ORDER BY derivation_index`

	rows, err := r.pool.Query(ctx, query, walletID, maxIndex)
	if err != nil {
		return nil, fmt.Errorf("list unused addresses: %w", err)
	}
	defer rows.Close()

	return scanAddresses(rows)
}

// WalletsForAddresses maps each claimed address to its owning wallet.
func (r *AddressRepo) WalletsForAddresses(ctx context.Context, addresses []string) (map[string]string, error) {
	if len(addresses) == 0 {
		return map[string]string{}, nil
	}

	query := `SELECT address, wallet_id FROM addresses
		WHERE address = ANY($1) AND wallet_id IS NOT NULL`

	rows, err := r.pool.Query(ctx, query, addresses)
	if err != nil {
		return nil, fmt.Errorf("resolve address wallets: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var addr, walletID string
		if err := rows.Scan(&addr, &walletID); err != nil {
			return nil, fmt.Errorf("scan address wallet: %w", err)
		}
		out[addr] = walletID
	}
	return out, rows.Err()
}

func scanAddresses(rows pgx.Rows) ([]domain.Address, error) {
	var out []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.Address, &a.Index, &a.WalletID, &a.Transactions); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
