package service

import (
	"context"
	"fmt"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// appliedTxTTL bounds how long the fast-path applied marker lives. The
// durable fallback is the history-row existence check.
const appliedTxTTL = 7 * 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService: it applies one confirmed
// transaction's effects to the UTXO set, the address and wallet balance
// aggregates, and the history tables.
type LedgerServiceImpl struct {
	transactor        ports.DBTransactor
	utxoRepo          ports.UTXORepository
	addressRepo       ports.AddressRepository
	addrBalanceRepo   ports.AddressBalanceRepository
	walletBalanceRepo ports.WalletBalanceRepository
	historyRepo       ports.TxHistoryRepository
	tokenRepo         ports.TokenRepository
	appliedCache      ports.AppliedTxCache

	// rewardSpendMinBlocks is added to a block's height to compute the
	// height lock of its reward outputs.
	rewardSpendMinBlocks int64

	log zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	transactor ports.DBTransactor,
	utxoRepo ports.UTXORepository,
	addressRepo ports.AddressRepository,
	addrBalanceRepo ports.AddressBalanceRepository,
	walletBalanceRepo ports.WalletBalanceRepository,
	historyRepo ports.TxHistoryRepository,
	tokenRepo ports.TokenRepository,
	appliedCache ports.AppliedTxCache,
	rewardSpendMinBlocks int64,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		transactor:           transactor,
		utxoRepo:             utxoRepo,
		addressRepo:          addressRepo,
		addrBalanceRepo:      addrBalanceRepo,
		walletBalanceRepo:    walletBalanceRepo,
		historyRepo:          historyRepo,
		tokenRepo:            tokenRepo,
		appliedCache:         appliedCache,
		rewardSpendMinBlocks: rewardSpendMinBlocks,
		log:                  log,
	}
}

// HandleTxEvent applies one transaction's ledger effects. Delivery is
// at-least-once: a transaction already applied is skipped, so additive
// deltas never double-apply.
func (s *LedgerServiceImpl) HandleTxEvent(ctx context.Context, event *domain.TxEvent) error {
	applied, err := s.appliedCache.IsApplied(ctx, event.TxID)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_id", event.TxID).Msg("applied-tx cache check failed, falling through to history")
	}
	if !applied {
		applied, err = s.historyRepo.WalletEntryExists(ctx, event.TxID)
		if err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}
	if applied {
		s.log.Debug().Str("tx_id", event.TxID).Msg("transaction already applied, skipping")
		return nil
	}

	utxos := s.buildUTXOs(event)
	deltas := computeDeltas(event)

	// Resolve wallets before the write sequence; addresses first seen in
	// this transaction cannot be claimed yet.
	walletByAddr, err := s.addressRepo.WalletsForAddresses(ctx, deltas.Owners())
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin ledger tx: %w", err))
	}
	defer dbTx.Rollback(ctx)

	// UTXO changes must commit within the same transaction before any
	// authority refresh reads them.
	if err := s.utxoRepo.InsertIfAbsent(ctx, dbTx, utxos); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.utxoRepo.MarkSpent(ctx, dbTx, event.Inputs, event.TxID); err != nil {
		return err
	}

	var addrHistory []domain.TxHistory
	seenTokens := domain.NewTokenBalanceMap()

	for _, addr := range deltas.Owners() {
		if err := s.addressRepo.IncrementTransactions(ctx, dbTx, addr); err != nil {
			return apperror.ErrDatabaseError(err)
		}

		tbm := deltas.Get(addr)
		for _, tokenID := range tbm.Tokens() {
			d, _ := tbm.Get(tokenID)
			if err := s.addrBalanceRepo.UpsertDelta(ctx, dbTx, addr, tokenID, d); err != nil {
				return apperror.ErrDatabaseError(err)
			}
			if d.AuthorityRemoved {
				if err := s.addrBalanceRepo.RefreshUnlockedAuthorities(ctx, dbTx, addr, tokenID); err != nil {
					return apperror.ErrDatabaseError(err)
				}
			}
			addrHistory = append(addrHistory, domain.TxHistory{
				Owner:     addr,
				TxID:      event.TxID,
				TokenID:   tokenID,
				Delta:     d.Unlocked + d.Locked,
				Timestamp: event.Timestamp,
			})
			seenTokens.Add(tokenID, domain.BalanceDelta{})
		}
	}

	if err := s.historyRepo.AppendAddress(ctx, dbTx, addrHistory); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	for _, tokenID := range seenTokens.Tokens() {
		if err := s.tokenRepo.IncrementTransactions(ctx, dbTx, tokenID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	if err := s.applyWalletDeltas(ctx, dbTx, event, deltas, walletByAddr); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit ledger tx: %w", err))
	}

	if err := s.appliedCache.MarkApplied(ctx, event.TxID, appliedTxTTL); err != nil {
		// The durable history check still covers redelivery.
		s.log.Warn().Err(err).Str("tx_id", event.TxID).Msg("failed to mark transaction applied")
	}

	s.log.Info().
		Str("tx_id", event.TxID).
		Int("outputs", len(event.Outputs)).
		Int("inputs", len(event.Inputs)).
		Int("addresses", deltas.Len()).
		Msg("transaction applied")
	return nil
}

// applyWalletDeltas mirrors the address-level application at wallet
// granularity for every claimed address.
func (s *LedgerServiceImpl) applyWalletDeltas(
	ctx context.Context,
	dbTx pgx.Tx,
	event *domain.TxEvent,
	deltas *domain.AddressDeltaMap,
	walletByAddr map[string]string,
) error {
	walletDeltas := domain.NewAddressDeltaMap()
	for _, addr := range deltas.Owners() {
		walletID, claimed := walletByAddr[addr]
		if !claimed {
			continue
		}
		tbm := deltas.Get(addr)
		for _, tokenID := range tbm.Tokens() {
			d, _ := tbm.Get(tokenID)
			walletDeltas.Add(walletID, tokenID, d)
		}
	}

	var walletHistory []domain.TxHistory
	for _, walletID := range walletDeltas.Owners() {
		tbm := walletDeltas.Get(walletID)
		for _, tokenID := range tbm.Tokens() {
			d, _ := tbm.Get(tokenID)
			if err := s.walletBalanceRepo.UpsertDelta(ctx, dbTx, walletID, tokenID, d); err != nil {
				return apperror.ErrDatabaseError(err)
			}
			if d.AuthorityRemoved {
				if err := s.walletBalanceRepo.RefreshUnlockedAuthorities(ctx, dbTx, walletID, tokenID); err != nil {
					return apperror.ErrDatabaseError(err)
				}
			}
			walletHistory = append(walletHistory, domain.TxHistory{
				Owner:     walletID,
				TxID:      event.TxID,
				TokenID:   tokenID,
				Delta:     d.Unlocked + d.Locked,
				Timestamp: event.Timestamp,
			})
		}
	}

	if err := s.historyRepo.AppendWallet(ctx, dbTx, walletHistory); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// buildUTXOs maps event outputs to UTXO rows. Authority outputs store their
// value as authority bits and a zero amount. Block reward outputs get a
// height lock relative to the block's height.
func (s *LedgerServiceImpl) buildUTXOs(event *domain.TxEvent) []domain.UTXO {
	var heightlock *int64
	if event.IsBlock() {
		h := *event.Height + s.rewardSpendMinBlocks
		heightlock = &h
	}

	utxos := make([]domain.UTXO, 0, len(event.Outputs))
	for i, out := range event.Outputs {
		u := domain.UTXO{
			TxID:       event.TxID,
			Index:      i,
			TokenID:    out.TokenID,
			Address:    out.Address,
			Timelock:   out.Timelock,
			Heightlock: heightlock,
		}
		if domain.IsAuthorityOutput(out.TokenData) {
			u.Authorities = domain.NewAuthorities(uint8(out.Value))
		} else {
			u.Value = out.Value
		}
		u.Locked = out.Locked || heightlock != nil
		utxos = append(utxos, u)
	}
	return utxos
}

// computeDeltas folds a transaction's inputs and outputs into per-address,
// per-token balance deltas.
func computeDeltas(event *domain.TxEvent) *domain.AddressDeltaMap {
	deltas := domain.NewAddressDeltaMap()

	for _, out := range event.Outputs {
		if out.Address == "" {
			continue
		}
		locked := out.Locked || event.IsBlock()

		var d domain.BalanceDelta
		if domain.IsAuthorityOutput(out.TokenData) {
			bits := domain.NewAuthorities(uint8(out.Value))
			if locked {
				d.LockedAuthorities = bits
			} else {
				d.UnlockedAuthorities = bits
			}
		} else {
			if locked {
				d.Locked = out.Value
			} else {
				d.Unlocked = out.Value
			}
			d.TotalReceived = out.Value
		}
		if locked && out.Timelock != nil {
			d.TimelockExpires = out.Timelock
		}
		deltas.Add(out.Address, out.TokenID, d)
	}

	for _, in := range event.Inputs {
		if in.Address == "" {
			continue
		}
		var d domain.BalanceDelta
		if domain.IsAuthorityOutput(in.TokenData) {
			// Spending an authority output: the mask may shrink, which
			// OR-merge cannot express. Flag for refresh from ground truth.
			d.AuthorityRemoved = true
		} else {
			d.Unlocked = -in.Value
		}
		deltas.Add(in.Address, in.TokenID, d)
	}

	return deltas
}
