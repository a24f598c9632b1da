package service

import (
	"context"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo        ports.WalletRepository
	addressRepo       ports.AddressRepository
	walletBalanceRepo ports.WalletBalanceRepository
	historyRepo       ports.TxHistoryRepository
	derivation        ports.DerivationService
	gapScanner        ports.GapScanner
	unlockService     ports.UnlockService

	maxLoadRetries int

	log zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	addressRepo ports.AddressRepository,
	walletBalanceRepo ports.WalletBalanceRepository,
	historyRepo ports.TxHistoryRepository,
	derivation ports.DerivationService,
	gapScanner ports.GapScanner,
	unlockService ports.UnlockService,
	maxLoadRetries int,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:        walletRepo,
		addressRepo:       addressRepo,
		walletBalanceRepo: walletBalanceRepo,
		historyRepo:       historyRepo,
		derivation:        derivation,
		gapScanner:        gapScanner,
		unlockService:     unlockService,
		maxLoadRetries:    maxLoadRetries,
		log:               log,
	}
}

// LoadWallet runs the wallet-load workflow: validate the key, create the
// wallet in CREATING status, scan and bind addresses under the gap limit,
// seed wallet balances from the bound addresses, then transition to READY.
// Any failure after creation lands the wallet in ERROR with its retry count
// bumped, and a later load of the same key picks the work up again.
func (s *WalletServiceImpl) LoadWallet(ctx context.Context, xpubkey, authXpubkey string, maxGap int) (*domain.Wallet, error) {
	// Reject malformed keys before touching storage.
	if _, err := s.derivation.DeriveAddresses(xpubkey, 0, 1); err != nil {
		return nil, err
	}

	walletID := domain.NewWalletID(xpubkey)
	existing, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	var wallet *domain.Wallet
	switch {
	case existing == nil:
		wallet = &domain.Wallet{
			ID:                   walletID,
			XPubKey:              xpubkey,
			AuthXPubKey:          authXpubkey,
			Status:               domain.WalletStatusCreating,
			MaxGap:               maxGap,
			LastUsedAddressIndex: -1,
		}
		if err := s.walletRepo.Create(ctx, wallet); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
	case existing.Status == domain.WalletStatusError && existing.RetryCount < s.maxLoadRetries:
		if err := s.walletRepo.UpdateStatus(ctx, walletID, domain.WalletStatusCreating); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		existing.Status = domain.WalletStatusCreating
		wallet = existing
		s.log.Info().Str("wallet_id", walletID).Int("retry", existing.RetryCount).Msg("retrying wallet load")
	default:
		return nil, apperror.ErrWalletAlreadyLoaded()
	}

	if err := s.initialize(ctx, wallet); err != nil {
		if uerr := s.walletRepo.UpdateStatus(ctx, walletID, domain.WalletStatusError); uerr != nil {
			s.log.Error().Err(uerr).Str("wallet_id", walletID).Msg("failed to record wallet load error")
		}
		if rerr := s.walletRepo.IncrementRetry(ctx, walletID); rerr != nil {
			s.log.Error().Err(rerr).Str("wallet_id", walletID).Msg("failed to bump wallet retry count")
		}
		return nil, err
	}

	if err := s.walletRepo.UpdateStatus(ctx, walletID, domain.WalletStatusReady); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	wallet.Status = domain.WalletStatusReady

	s.log.Info().Str("wallet_id", walletID).Msg("wallet loaded")
	return wallet, nil
}

func (s *WalletServiceImpl) initialize(ctx context.Context, wallet *domain.Wallet) error {
	scan, err := s.gapScanner.ScanAddresses(ctx, wallet.XPubKey, wallet.MaxGap)
	if err != nil {
		return err
	}

	if err := s.gapScanner.BindNewAddresses(ctx, wallet.ID, scan.NewAddresses, scan.LastUsedIndex); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.gapScanner.RebindExistingAddresses(ctx, wallet.ID, scan.ExistingAddresses); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	wallet.LastUsedAddressIndex = scan.LastUsedIndex

	addrs := make([]string, len(scan.AllAddresses))
	for i, da := range scan.AllAddresses {
		addrs[i] = da.Address
	}
	if err := s.walletBalanceRepo.InitFromAddresses(ctx, wallet.ID, addrs); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// GetWallet returns the wallet or a not-found error.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// GetBalances serves the wallet's per-token balances. A row whose lock
// expiry has passed triggers an unlock pass first, so reads never show an
// expired lock as still locked.
func (s *WalletServiceImpl) GetBalances(ctx context.Context, walletID string, now time.Time) ([]domain.WalletBalance, error) {
	wallet, err := s.requireReady(ctx, walletID)
	if err != nil {
		return nil, err
	}

	balances, err := s.walletBalanceRepo.ListByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	stale := false
	for _, b := range balances {
		if b.LockExpired(now) {
			stale = true
			break
		}
	}
	if stale {
		// Height zero keeps height-locked outputs out of this pass; they
		// mature through the block path instead.
		if err := s.unlockService.RefreshExpired(ctx, walletID, now, 0); err != nil {
			return nil, err
		}
		balances, err = s.walletBalanceRepo.ListByWallet(ctx, wallet.ID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
	}
	return balances, nil
}

// GetHistory pages through the wallet's transaction history for one token.
func (s *WalletServiceImpl) GetHistory(ctx context.Context, walletID, tokenID string, limit, offset int) ([]domain.TxHistory, error) {
	wallet, err := s.requireReady(ctx, walletID)
	if err != nil {
		return nil, err
	}
	rows, err := s.historyRepo.ListByWallet(ctx, wallet.ID, tokenID, limit, offset)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return rows, nil
}

// GetAddresses returns every address bound to the wallet.
func (s *WalletServiceImpl) GetAddresses(ctx context.Context, walletID string) ([]domain.Address, error) {
	wallet, err := s.requireReady(ctx, walletID)
	if err != nil {
		return nil, err
	}
	rows, err := s.addressRepo.ListByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return rows, nil
}

// GetNewAddresses returns unused addresses up to the confirmed gap boundary.
func (s *WalletServiceImpl) GetNewAddresses(ctx context.Context, walletID string) ([]domain.Address, error) {
	wallet, err := s.requireReady(ctx, walletID)
	if err != nil {
		return nil, err
	}
	boundary := wallet.LastUsedAddressIndex + wallet.MaxGap
	rows, err := s.addressRepo.ListUnused(ctx, wallet.ID, boundary)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return rows, nil
}

func (s *WalletServiceImpl) requireReady(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.GetWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if !wallet.IsReady() {
		return nil, apperror.ErrWalletNotReady()
	}
	return wallet, nil
}
