package ports

import (
	"context"
	"time"

	"wallet-indexer/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AddressRepository defines persistence for address identity rows.
// Methods accepting pgx.Tx run inside the per-transaction ledger update.
type AddressRepository interface {
	// GetByAddresses returns the rows matching the given address strings.
	// Unknown addresses are simply absent from the result.
	GetByAddresses(ctx context.Context, addresses []string) ([]domain.Address, error)
	// IncrementTransactions bumps the address transaction counter, creating
	// the row with count 1 (index and wallet unset) if it does not exist.
	IncrementTransactions(ctx context.Context, tx pgx.Tx, address string) error
	// BindNew inserts fresh address rows owned by the wallet with zero
	// transaction count.
	BindNew(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error
	// RebindExisting claims previously unowned rows (walletId null) for the
	// wallet, setting the derivation index.
	RebindExisting(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error
	ListByWallet(ctx context.Context, walletID string) ([]domain.Address, error)
	// ListUnused returns addresses of the wallet with no transactions and
	// index at most maxIndex (the confirmed gap boundary).
	ListUnused(ctx context.Context, walletID string, maxIndex int) ([]domain.Address, error)
	// WalletsForAddresses maps each claimed address to its owning wallet id.
	// Unclaimed addresses are absent from the result.
	WalletsForAddresses(ctx context.Context, addresses []string) (map[string]string, error)
}

// UTXOAggregate is a per-token rollup of an address's UTXOs, used when
// rebuilding balances from the authoritative set.
type UTXOAggregate struct {
	TokenID          string
	Value            int64
	Authorities      domain.Authorities
	EarliestTimelock *time.Time
}

// UTXORepository defines persistence for transaction outputs.
type UTXORepository interface {
	// InsertIfAbsent records outputs idempotently: a duplicate (txId, index)
	// is a no-op, because upstream delivery is at-least-once.
	InsertIfAbsent(ctx context.Context, tx pgx.Tx, utxos []domain.UTXO) error
	// MarkSpent sets spentBy on every referenced output. Updating fewer rows
	// than inputs supplied is a fatal inconsistency.
	MarkSpent(ctx context.Context, tx pgx.Tx, inputs []domain.TxInput, spendingTxID string) error
	// GetLockedExpired returns locked UTXOs whose timelock (if any) has
	// passed asOfTime and whose heightlock (if any) is at most asOfHeight.
	GetLockedExpired(ctx context.Context, asOfTime time.Time, asOfHeight int64) ([]domain.UTXO, error)
	// GetLockedAtHeight returns locked UTXOs whose heightlock equals the
	// given height exactly and whose timelock has passed asOfTime.
	GetLockedAtHeight(ctx context.Context, height int64, asOfTime time.Time) ([]domain.UTXO, error)
	// Unlock clears the locked flag on the given outputs.
	Unlock(ctx context.Context, utxos []domain.UTXO) error
	// Reserve earmarks outputs for a pending transaction proposal.
	Reserve(ctx context.Context, proposalID uuid.UUID, utxos []domain.UTXO) error
	// Release clears reservation markers. Affecting a different number of
	// rows than proposals released is a fatal inconsistency.
	Release(ctx context.Context, proposalIDs []uuid.UUID) error
	// MarkVoided tombstones a transaction's outputs during reconciliation.
	MarkVoided(ctx context.Context, txID string) error
	// Unspend clears spentBy on outputs consumed by a now-voided transaction.
	Unspend(ctx context.Context, spendingTxID string) error
	// DeleteVoided hard-deletes the voided outputs of a transaction once
	// rebuild no longer needs them.
	DeleteVoided(ctx context.Context, txID string) error
	Filter(ctx context.Context, f domain.UTXOFilter) ([]domain.UTXO, error)
	// UnlockedAuthoritiesFor recomputes the authority mask over unspent,
	// unlocked, non-voided UTXOs of (address, token).
	UnlockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error)
	// LockedAuthoritiesFor is the same over still-locked UTXOs.
	LockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error)
	// AggregateByAddress rolls up unspent, non-voided UTXOs of an address by
	// token, split by lock state.
	AggregateByAddress(ctx context.Context, address string, locked bool) ([]UTXOAggregate, error)
	// VoidedReceivedByAddress sums, per token, the voided output values the
	// address received from the given transactions.
	VoidedReceivedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int64, error)
	// VoidedReceivedByWallet is the wallet-level equivalent, across every
	// address bound to the wallet.
	VoidedReceivedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int64, error)
}

// AddressBalanceRepository maintains per-(address, token) aggregates.
type AddressBalanceRepository interface {
	// UpsertDelta applies one transaction's delta atomically: insert with
	// clamped unlocked amount, or additive update on conflict.
	UpsertDelta(ctx context.Context, tx pgx.Tx, address, tokenID string, d domain.BalanceDelta) error
	// RefreshUnlockedAuthorities recomputes the unlocked authority mask from
	// the UTXO set in a single statement.
	RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, address, tokenID string) error
	// ApplyUnlock moves a matured amount from locked to unlocked and ORs in
	// newly unlocked authority bits.
	ApplyUnlock(ctx context.Context, address, tokenID string, amount int64, authorities domain.Authorities) error
	// RefreshLockedAuthorities recomputes the locked authority mask over
	// still-locked UTXOs.
	RefreshLockedAuthorities(ctx context.Context, address, tokenID string) error
	// RefreshTimelockExpires resets the pending expiry to the soonest
	// timelock among still-locked UTXOs.
	RefreshTimelockExpires(ctx context.Context, address, tokenID string) error
	Get(ctx context.Context, address, tokenID string) (*domain.AddressBalance, error)
	ListByAddresses(ctx context.Context, addresses []string) ([]domain.AddressBalance, error)
	// Snapshot returns current rows for an address before a rebuild zeroes
	// them.
	Snapshot(ctx context.Context, address string) ([]domain.AddressBalance, error)
	// Reset zeroes balances, authorities and expiry, keeping the counters.
	Reset(ctx context.Context, address string) error
	// Rebuild overwrites one row with values recomputed from the UTXO set.
	Rebuild(ctx context.Context, address, tokenID string, b domain.Balance) error
}

// WalletBalanceRepository mirrors AddressBalanceRepository at wallet
// granularity. Authority refreshes source from address_balance rows of the
// wallet's member addresses, one aggregation level up from raw UTXOs.
type WalletBalanceRepository interface {
	UpsertDelta(ctx context.Context, tx pgx.Tx, walletID, tokenID string, d domain.BalanceDelta) error
	RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, walletID, tokenID string) error
	ApplyUnlock(ctx context.Context, walletID, tokenID string, amount int64, authorities domain.Authorities) error
	RefreshLockedAuthorities(ctx context.Context, walletID, tokenID string) error
	RefreshTimelockExpires(ctx context.Context, walletID, tokenID string) error
	Get(ctx context.Context, walletID, tokenID string) (*domain.WalletBalance, error)
	ListByWallet(ctx context.Context, walletID string) ([]domain.WalletBalance, error)
	Snapshot(ctx context.Context, walletID string) ([]domain.WalletBalance, error)
	Reset(ctx context.Context, walletID string) error
	Rebuild(ctx context.Context, walletID, tokenID string, b domain.Balance) error
	// InitFromAddresses seeds wallet balance rows by summing the address
	// balances of newly bound addresses during wallet load.
	InitFromAddresses(ctx context.Context, walletID string, addresses []string) error
}

// WalletRepository defines persistence for wallet lifecycle rows.
type WalletRepository interface {
	Create(ctx context.Context, w *domain.Wallet) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	// UpdateStatus transitions the wallet, stamping readyAt on READY.
	UpdateStatus(ctx context.Context, id string, status domain.WalletStatus) error
	IncrementRetry(ctx context.Context, id string) error
	SetLastUsedAddressIndex(ctx context.Context, id string, index int) error
}

// TxHistoryRepository maintains the append-only per-transaction history for
// both address and wallet granularity.
type TxHistoryRepository interface {
	AppendAddress(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error
	AppendWallet(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error
	// WalletEntryExists is the durable applied-transaction check backing
	// ingestion dedup when the cache has no answer.
	WalletEntryExists(ctx context.Context, txID string) (bool, error)
	// MarkVoided tombstones history rows of a transaction in both tables.
	MarkVoided(ctx context.Context, txID string) error
	// DeleteVoided removes tombstoned rows once cleanup runs.
	DeleteVoided(ctx context.Context, txID string) error
	ListByWallet(ctx context.Context, walletID, tokenID string, limit, offset int) ([]domain.TxHistory, error)
	// CountVoidedByAddress returns, per token, how many distinct voided
	// transactions from txIDs touched the address.
	CountVoidedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int, error)
	CountVoidedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int, error)
	// CountVoidedByToken returns, per token, how many distinct voided
	// transactions from txIDs touched it at all, for token-level counter
	// decrements.
	CountVoidedByToken(ctx context.Context, txIDs []string) (map[string]int, error)
}

// TokenRepository tracks per-token transaction counters.
type TokenRepository interface {
	IncrementTransactions(ctx context.Context, tx pgx.Tx, tokenID string) error
	DecrementTransactions(ctx context.Context, tokenID string, by int) error
	Get(ctx context.Context, tokenID string) (*domain.Token, error)
}

// AppliedTxCache marks transactions whose ledger effects have been fully
// applied, deduplicating at-least-once delivery.
type AppliedTxCache interface {
	IsApplied(ctx context.Context, txID string) (bool, error)
	MarkApplied(ctx context.Context, txID string, ttl time.Duration) error
	// Clear drops the marker so a voided-then-reconfirmed transaction can be
	// applied again.
	Clear(ctx context.Context, txID string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// HealthChecker verifies a dependency is reachable.
type HealthChecker interface {
	Name() string
	Healthy(ctx context.Context) error
}
