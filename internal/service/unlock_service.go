package service

import (
	"context"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/rs/zerolog"
)

// UnlockServiceImpl implements ports.UnlockService. Locks mature lazily: no
// row flips on its own, a maintenance pass or a balance read has to ask.
type UnlockServiceImpl struct {
	utxoRepo          ports.UTXORepository
	addressRepo       ports.AddressRepository
	addrBalanceRepo   ports.AddressBalanceRepository
	walletBalanceRepo ports.WalletBalanceRepository
	log               zerolog.Logger
}

// NewUnlockService creates a new UnlockServiceImpl.
func NewUnlockService(
	utxoRepo ports.UTXORepository,
	addressRepo ports.AddressRepository,
	addrBalanceRepo ports.AddressBalanceRepository,
	walletBalanceRepo ports.WalletBalanceRepository,
	log zerolog.Logger,
) *UnlockServiceImpl {
	return &UnlockServiceImpl{
		utxoRepo:          utxoRepo,
		addressRepo:       addressRepo,
		addrBalanceRepo:   addrBalanceRepo,
		walletBalanceRepo: walletBalanceRepo,
		log:               log,
	}
}

// unlockGroup accumulates matured value and authority bits for one
// (address, token) pair.
type unlockGroup struct {
	address     string
	tokenID     string
	amount      int64
	authorities domain.Authorities
}

// UnlockMatured unlocks every UTXO whose time and height locks have both
// passed. Re-running is harmless: already-unlocked rows no longer match the
// locked query.
func (s *UnlockServiceImpl) UnlockMatured(ctx context.Context, now time.Time, height int64) error {
	utxos, err := s.utxoRepo.GetLockedExpired(ctx, now, height)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return s.unlock(ctx, utxos)
}

// UnlockAtHeight unlocks outputs height-locked exactly at the given height.
func (s *UnlockServiceImpl) UnlockAtHeight(ctx context.Context, height int64, now time.Time) error {
	utxos, err := s.utxoRepo.GetLockedAtHeight(ctx, height, now)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return s.unlock(ctx, utxos)
}

// RefreshExpired re-runs unlock for one wallet's addresses, used when a
// balance read observes a lock expiry in the past.
func (s *UnlockServiceImpl) RefreshExpired(ctx context.Context, walletID string, now time.Time, height int64) error {
	rows, err := s.addressRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	member := make(map[string]bool, len(rows))
	for _, a := range rows {
		member[a.Address] = true
	}

	utxos, err := s.utxoRepo.GetLockedExpired(ctx, now, height)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	matured := utxos[:0]
	for _, u := range utxos {
		if member[u.Address] {
			matured = append(matured, u)
		}
	}
	return s.unlock(ctx, matured)
}

// unlock moves matured amounts from locked to unlocked. Balance rows change
// first so a crash between steps leaves a state the next pass repairs: the
// still-flagged UTXOs are re-fetched and their deltas re-applied through the
// same additive path only after this pass's Unlock succeeded.
func (s *UnlockServiceImpl) unlock(ctx context.Context, utxos []domain.UTXO) error {
	if len(utxos) == 0 {
		return nil
	}

	groups := groupMatured(utxos)

	for _, g := range groups {
		if err := s.addrBalanceRepo.ApplyUnlock(ctx, g.address, g.tokenID, g.amount, g.authorities); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	if err := s.utxoRepo.Unlock(ctx, utxos); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	// Locked-side masks and expiries shrink, which additive updates cannot
	// express. Recompute from the remaining locked UTXOs.
	for _, g := range groups {
		if !g.authorities.IsEmpty() {
			if err := s.addrBalanceRepo.RefreshLockedAuthorities(ctx, g.address, g.tokenID); err != nil {
				return apperror.ErrDatabaseError(err)
			}
		}
		if err := s.addrBalanceRepo.RefreshTimelockExpires(ctx, g.address, g.tokenID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	if err := s.propagateToWallets(ctx, groups); err != nil {
		return err
	}

	s.log.Info().Int("utxos", len(utxos)).Int("groups", len(groups)).Msg("matured locks released")
	return nil
}

func (s *UnlockServiceImpl) propagateToWallets(ctx context.Context, groups []unlockGroup) error {
	addrs := make([]string, 0, len(groups))
	for _, g := range groups {
		addrs = append(addrs, g.address)
	}
	walletByAddr, err := s.addressRepo.WalletsForAddresses(ctx, addrs)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	type walletKey struct{ walletID, tokenID string }
	merged := make(map[walletKey]*unlockGroup)
	var order []walletKey
	for _, g := range groups {
		walletID, claimed := walletByAddr[g.address]
		if !claimed {
			continue
		}
		k := walletKey{walletID, g.tokenID}
		wg, ok := merged[k]
		if !ok {
			wg = &unlockGroup{address: walletID, tokenID: g.tokenID}
			merged[k] = wg
			order = append(order, k)
		}
		wg.amount += g.amount
		wg.authorities = wg.authorities.Union(g.authorities)
	}

	for _, k := range order {
		wg := merged[k]
		if err := s.walletBalanceRepo.ApplyUnlock(ctx, wg.address, wg.tokenID, wg.amount, wg.authorities); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if !wg.authorities.IsEmpty() {
			if err := s.walletBalanceRepo.RefreshLockedAuthorities(ctx, wg.address, wg.tokenID); err != nil {
				return apperror.ErrDatabaseError(err)
			}
		}
		if err := s.walletBalanceRepo.RefreshTimelockExpires(ctx, wg.address, wg.tokenID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}
	return nil
}

// groupMatured folds UTXOs into per-(address, token) totals, preserving
// first-seen order.
func groupMatured(utxos []domain.UTXO) []unlockGroup {
	type key struct{ address, tokenID string }
	idx := make(map[key]int)
	var groups []unlockGroup
	for _, u := range utxos {
		k := key{u.Address, u.TokenID}
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, unlockGroup{address: u.Address, tokenID: u.TokenID})
		}
		groups[i].amount += u.Value
		groups[i].authorities = groups[i].authorities.Union(u.Authorities)
	}
	return groups
}
