package ports

import (
	"context"
	"time"

	"wallet-indexer/internal/core/domain"

	"github.com/google/uuid"
)

// DerivationService derives deterministic addresses from an extended public
// key along one fixed change path. Pure: the same inputs always yield the
// same ordered result.
type DerivationService interface {
	// DeriveAddresses returns count addresses starting at startIndex, in
	// strictly increasing index order with no gaps.
	DeriveAddresses(xpubkey string, startIndex, count int) ([]domain.DerivedAddress, error)
}

// ScanResult is the outcome of a gap-limit address scan.
type ScanResult struct {
	// AllAddresses is every derived address up to the confirmed gap
	// boundary, in index order.
	AllAddresses []domain.DerivedAddress
	// NewAddresses are addresses not yet present in the address table.
	NewAddresses []domain.DerivedAddress
	// ExistingAddresses were already present in the address table; they are
	// rebound to the wallet if still unclaimed. The index comes from
	// derivation, since implicitly created rows have none.
	ExistingAddresses []domain.DerivedAddress
	// LastUsedIndex is the highest index with recorded transactions, -1 when
	// the wallet was never used.
	LastUsedIndex int
}

// GapScanner keeps wallet address derivation consistent with the address
// table under the configured gap limit.
type GapScanner interface {
	// ScanAddresses derives addresses block by block until a full gap of
	// unused addresses is confirmed past the last used one. Idempotent read:
	// rerunning without intervening writes yields the same result.
	ScanAddresses(ctx context.Context, xpubkey string, maxGap int) (*ScanResult, error)
	// BindNewAddresses inserts fresh rows for the wallet and records the
	// confirmed lastUsedIndex on the wallet row.
	BindNewAddresses(ctx context.Context, walletID string, newAddresses []domain.DerivedAddress, lastUsedIndex int) error
	// RebindExistingAddresses claims unowned rows for the wallet.
	RebindExistingAddresses(ctx context.Context, walletID string, existing []domain.DerivedAddress) error
}

// LedgerService applies confirmed transactions to the UTXO set and balance
// aggregates.
type LedgerService interface {
	// HandleTxEvent applies one transaction's ledger effects. Duplicate
	// delivery of an already-applied transaction is a no-op.
	HandleTxEvent(ctx context.Context, event *domain.TxEvent) error
}

// UnlockService runs the lazy lock-maturation maintenance pass.
type UnlockService interface {
	// UnlockMatured unlocks every UTXO whose time and height locks have both
	// passed, and moves the amounts from locked to unlocked balances. Safe
	// to re-run and to run concurrently with ingestion.
	UnlockMatured(ctx context.Context, now time.Time, height int64) error
	// UnlockAtHeight unlocks outputs height-locked exactly at the given
	// height, typically when that block arrives.
	UnlockAtHeight(ctx context.Context, height int64, now time.Time) error
	// RefreshExpired re-runs unlock for one owner when a balance read finds
	// its lock expiry in the past.
	RefreshExpired(ctx context.Context, walletID string, now time.Time, height int64) error
}

// ReorgService voids reorganized transactions and rebuilds balances from
// the authoritative UTXO set.
type ReorgService interface {
	VoidTransaction(ctx context.Context, txID string) error
	// RebuildBalances recomputes balances of the affected addresses (and
	// their wallets) from remaining UTXOs, then cleans up voided rows.
	RebuildBalances(ctx context.Context, addresses []string, txIDs []string) error
}

// WalletService drives the wallet-load workflow and read queries.
type WalletService interface {
	// LoadWallet creates the wallet in CREATING status, scans and binds
	// addresses, seeds balances and transitions to READY, or ERROR with
	// retry bookkeeping on failure.
	LoadWallet(ctx context.Context, xpubkey, authXpubkey string, maxGap int) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error)
	// GetBalances serves per-token balances, refreshing first when a lock
	// expiry has passed.
	GetBalances(ctx context.Context, walletID string, now time.Time) ([]domain.WalletBalance, error)
	GetHistory(ctx context.Context, walletID, tokenID string, limit, offset int) ([]domain.TxHistory, error)
	GetAddresses(ctx context.Context, walletID string) ([]domain.Address, error)
	// GetNewAddresses returns unused addresses up to the confirmed gap
	// boundary (lastUsedIndex + maxGap).
	GetNewAddresses(ctx context.Context, walletID string) ([]domain.Address, error)
}

// UTXOService serves filtered UTXO queries and proposal reservations.
type UTXOService interface {
	// FilterUTXOs rejects an empty address set and caps results.
	FilterUTXOs(ctx context.Context, f domain.UTXOFilter) ([]domain.UTXO, error)
	ReserveUTXOs(ctx context.Context, proposalID uuid.UUID, utxos []domain.UTXO) error
	ReleaseProposals(ctx context.Context, proposalIDs []uuid.UUID) error
}
