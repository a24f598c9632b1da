package service

import (
	"context"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReorgServiceImpl implements ports.ReorgService. Recovery rebuilds affected
// balances from the surviving UTXO set instead of reversing deltas, so a
// partially failed void can simply be retried.
type ReorgServiceImpl struct {
	utxoRepo          ports.UTXORepository
	addressRepo       ports.AddressRepository
	addrBalanceRepo   ports.AddressBalanceRepository
	walletBalanceRepo ports.WalletBalanceRepository
	historyRepo       ports.TxHistoryRepository
	tokenRepo         ports.TokenRepository
	appliedCache      ports.AppliedTxCache
	log               zerolog.Logger
}

// NewReorgService creates a new ReorgServiceImpl.
func NewReorgService(
	utxoRepo ports.UTXORepository,
	addressRepo ports.AddressRepository,
	addrBalanceRepo ports.AddressBalanceRepository,
	walletBalanceRepo ports.WalletBalanceRepository,
	historyRepo ports.TxHistoryRepository,
	tokenRepo ports.TokenRepository,
	appliedCache ports.AppliedTxCache,
	log zerolog.Logger,
) *ReorgServiceImpl {
	return &ReorgServiceImpl{
		utxoRepo:          utxoRepo,
		addressRepo:       addressRepo,
		addrBalanceRepo:   addrBalanceRepo,
		walletBalanceRepo: walletBalanceRepo,
		historyRepo:       historyRepo,
		tokenRepo:         tokenRepo,
		appliedCache:      appliedCache,
		log:               log,
	}
}

// VoidTransaction tombstones a reorganized transaction: its outputs are
// flagged voided, its spends undone and its history rows marked. The applied
// marker is cleared so a later reconfirmation applies cleanly.
func (s *ReorgServiceImpl) VoidTransaction(ctx context.Context, txID string) error {
	if err := s.utxoRepo.MarkVoided(ctx, txID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.utxoRepo.Unspend(ctx, txID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.historyRepo.MarkVoided(ctx, txID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.appliedCache.Clear(ctx, txID); err != nil {
		s.log.Warn().Err(err).Str("tx_id", txID).Msg("failed to clear applied marker")
	}

	s.log.Info().Str("tx_id", txID).Msg("transaction voided")
	return nil
}

// RebuildBalances recomputes balances of the affected addresses and their
// wallets from the surviving UTXO set, adjusts counters that the UTXO set
// cannot reproduce, and finally removes the voided rows.
func (s *ReorgServiceImpl) RebuildBalances(ctx context.Context, addresses []string, txIDs []string) error {
	for _, addr := range addresses {
		if err := s.rebuildAddress(ctx, addr, txIDs); err != nil {
			return err
		}
	}

	walletByAddr, err := s.addressRepo.WalletsForAddresses(ctx, addresses)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	seen := make(map[string]bool)
	for _, addr := range addresses {
		walletID, claimed := walletByAddr[addr]
		if !claimed || seen[walletID] {
			continue
		}
		seen[walletID] = true
		if err := s.rebuildWallet(ctx, walletID, txIDs); err != nil {
			return err
		}
	}

	// Token counters track distinct transactions globally, so decrement once
	// per voided transaction per token. Must run before history cleanup.
	voidedByToken, err := s.historyRepo.CountVoidedByToken(ctx, txIDs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	for tokenID, n := range voidedByToken {
		if err := s.tokenRepo.DecrementTransactions(ctx, tokenID, n); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	for _, txID := range txIDs {
		if err := s.utxoRepo.DeleteVoided(ctx, txID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if err := s.historyRepo.DeleteVoided(ctx, txID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	s.log.Info().
		Int("addresses", len(addresses)).
		Int("transactions", len(txIDs)).
		Msg("balances rebuilt after reorg")
	return nil
}

// rebuildAddress zeroes the address's balance rows and rewrites them from
// per-token UTXO aggregates. Transaction counters and lifetime totals are
// carried over from the snapshot minus the voided contribution, since the
// UTXO set alone cannot reproduce history.
func (s *ReorgServiceImpl) rebuildAddress(ctx context.Context, address string, txIDs []string) error {
	snapshot, err := s.addrBalanceRepo.Snapshot(ctx, address)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	voidedCount, err := s.historyRepo.CountVoidedByAddress(ctx, address, txIDs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	voidedReceived, err := s.utxoRepo.VoidedReceivedByAddress(ctx, address, txIDs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if err := s.addrBalanceRepo.Reset(ctx, address); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	balances, err := s.aggregateBalances(ctx, address)
	if err != nil {
		return err
	}

	for _, snap := range snapshot {
		b := balances[snap.TokenID]
		b.Transactions = snap.Transactions - voidedCount[snap.TokenID]
		if b.Transactions < 0 {
			b.Transactions = 0
		}
		b.TotalReceived = snap.TotalReceived - voidedReceived[snap.TokenID]
		if b.TotalReceived < 0 {
			b.TotalReceived = 0
		}
		if err := s.addrBalanceRepo.Rebuild(ctx, address, snap.TokenID, b); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}
	return nil
}

// aggregateBalances rolls the address's surviving UTXOs up into per-token
// balances, split by lock state.
func (s *ReorgServiceImpl) aggregateBalances(ctx context.Context, address string) (map[string]domain.Balance, error) {
	balances := make(map[string]domain.Balance)

	unlocked, err := s.utxoRepo.AggregateByAddress(ctx, address, false)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	for _, agg := range unlocked {
		b := balances[agg.TokenID]
		b.Unlocked = agg.Value
		b.UnlockedAuthorities = agg.Authorities
		balances[agg.TokenID] = b
	}

	locked, err := s.utxoRepo.AggregateByAddress(ctx, address, true)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	for _, agg := range locked {
		b := balances[agg.TokenID]
		b.Locked = agg.Value
		b.LockedAuthorities = agg.Authorities
		b.TimelockExpires = agg.EarliestTimelock
		balances[agg.TokenID] = b
	}

	return balances, nil
}

// rebuildWallet recomputes wallet rows by summing the already-rebuilt
// address rows of its member addresses.
func (s *ReorgServiceImpl) rebuildWallet(ctx context.Context, walletID string, txIDs []string) error {
	snapshot, err := s.walletBalanceRepo.Snapshot(ctx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	voidedCount, err := s.historyRepo.CountVoidedByWallet(ctx, walletID, txIDs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	voidedReceived, err := s.utxoRepo.VoidedReceivedByWallet(ctx, walletID, txIDs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	members, err := s.addressRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	memberAddrs := make([]string, len(members))
	for i, a := range members {
		memberAddrs[i] = a.Address
	}
	rows, err := s.addrBalanceRepo.ListByAddresses(ctx, memberAddrs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	balances := make(map[string]domain.Balance)
	for _, row := range rows {
		b := balances[row.TokenID]
		b.Unlocked += row.Unlocked
		b.Locked += row.Locked
		b.UnlockedAuthorities = b.UnlockedAuthorities.Union(row.UnlockedAuthorities)
		b.LockedAuthorities = b.LockedAuthorities.Union(row.LockedAuthorities)
		b.TimelockExpires = domain.EarliestTime(b.TimelockExpires, row.TimelockExpires)
		balances[row.TokenID] = b
	}

	if err := s.walletBalanceRepo.Reset(ctx, walletID); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	for _, snap := range snapshot {
		b := balances[snap.TokenID]
		b.Transactions = snap.Transactions - voidedCount[snap.TokenID]
		if b.Transactions < 0 {
			b.Transactions = 0
		}
		b.TotalReceived = snap.TotalReceived - voidedReceived[snap.TokenID]
		if b.TotalReceived < 0 {
			b.TotalReceived = 0
		}
		if err := s.walletBalanceRepo.Rebuild(ctx, walletID, snap.TokenID, b); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}
	return nil
}
