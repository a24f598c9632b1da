package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/internal/core/ports/mocks"
	"wallet-indexer/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletServiceMocks struct {
	walletRepo *mocks.MockWalletRepository
	addrRepo   *mocks.MockAddressRepository
	walBal     *mocks.MockWalletBalanceRepository
	history    *mocks.MockTxHistoryRepository
	derivation *mocks.MockDerivationService
	gapScanner *mocks.MockGapScanner
	unlock     *mocks.MockUnlockService
}

func newWalletService(t *testing.T) (*WalletServiceImpl, walletServiceMocks) {
	ctrl := gomock.NewController(t)
	m := walletServiceMocks{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		addrRepo:   mocks.NewMockAddressRepository(ctrl),
		walBal:     mocks.NewMockWalletBalanceRepository(ctrl),
		history:    mocks.NewMockTxHistoryRepository(ctrl),
		derivation: mocks.NewMockDerivationService(ctrl),
		gapScanner: mocks.NewMockGapScanner(ctrl),
		unlock:     mocks.NewMockUnlockService(ctrl),
	}
	svc := NewWalletService(
		m.walletRepo, m.addrRepo, m.walBal, m.history,
		m.derivation, m.gapScanner, m.unlock,
		3, zerolog.Nop(),
	)
	return svc, m
}

func TestLoadWallet_HappyPath(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	walletID := domain.NewWalletID("xpub")

	m.derivation.EXPECT().DeriveAddresses("xpub", 0, 1).
		Return(derivedRange(0, 1), nil)
	m.walletRepo.EXPECT().GetByID(ctx, walletID).Return(nil, nil)
	m.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	scan := &ports.ScanResult{
		AllAddresses:  derivedRange(0, 10),
		NewAddresses:  derivedRange(0, 9),
		LastUsedIndex: 4,
	}
	m.gapScanner.EXPECT().ScanAddresses(ctx, "xpub", 20).Return(scan, nil)
	m.gapScanner.EXPECT().BindNewAddresses(ctx, walletID, scan.NewAddresses, 4).Return(nil)
	m.gapScanner.EXPECT().RebindExistingAddresses(ctx, walletID, gomock.Any()).Return(nil)
	m.walBal.EXPECT().InitFromAddresses(ctx, walletID, addressStrings(scan.AllAddresses)).Return(nil)
	m.walletRepo.EXPECT().UpdateStatus(ctx, walletID, domain.WalletStatusReady).Return(nil)

	wallet, err := svc.LoadWallet(ctx, "xpub", "auth-xpub", 20)
	require.NoError(t, err)
	assert.Equal(t, walletID, wallet.ID)
	assert.Equal(t, domain.WalletStatusReady, wallet.Status)
	assert.Equal(t, 4, wallet.LastUsedAddressIndex)
}

func TestLoadWallet_DuplicateRejected(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	walletID := domain.NewWalletID("xpub")

	m.derivation.EXPECT().DeriveAddresses("xpub", 0, 1).Return(derivedRange(0, 1), nil)
	m.walletRepo.EXPECT().GetByID(ctx, walletID).
		Return(&domain.Wallet{ID: walletID, Status: domain.WalletStatusReady}, nil)

	_, err := svc.LoadWallet(ctx, "xpub", "", 20)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_003", appErr.Code)
}

func TestLoadWallet_RetryAfterError(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	walletID := domain.NewWalletID("xpub")

	m.derivation.EXPECT().DeriveAddresses("xpub", 0, 1).Return(derivedRange(0, 1), nil)
	m.walletRepo.EXPECT().GetByID(ctx, walletID).
		Return(&domain.Wallet{ID: walletID, XPubKey: "xpub", Status: domain.WalletStatusError, MaxGap: 20, RetryCount: 1}, nil)
	m.walletRepo.EXPECT().UpdateStatus(ctx, walletID, domain.WalletStatusCreating).Return(nil)

	scan := &ports.ScanResult{AllAddresses: derivedRange(0, 20), NewAddresses: derivedRange(0, 20), LastUsedIndex: -1}
	m.gapScanner.EXPECT().ScanAddresses(ctx, "xpub", 20).Return(scan, nil)
	m.gapScanner.EXPECT().BindNewAddresses(ctx, walletID, scan.NewAddresses, -1).Return(nil)
	m.gapScanner.EXPECT().RebindExistingAddresses(ctx, walletID, gomock.Any()).Return(nil)
	m.walBal.EXPECT().InitFromAddresses(ctx, walletID, gomock.Any()).Return(nil)
	m.walletRepo.EXPECT().UpdateStatus(ctx, walletID, domain.WalletStatusReady).Return(nil)

	wallet, err := svc.LoadWallet(ctx, "xpub", "", 20)
	require.NoError(t, err)
	assert.Equal(t, domain.WalletStatusReady, wallet.Status)
}

func TestLoadWallet_RetryBudgetExhausted(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	walletID := domain.NewWalletID("xpub")

	m.derivation.EXPECT().DeriveAddresses("xpub", 0, 1).Return(derivedRange(0, 1), nil)
	m.walletRepo.EXPECT().GetByID(ctx, walletID).
		Return(&domain.Wallet{ID: walletID, Status: domain.WalletStatusError, RetryCount: 3}, nil)

	_, err := svc.LoadWallet(ctx, "xpub", "", 20)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_003", appErr.Code)
}

func TestLoadWallet_ScanFailureMarksError(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	walletID := domain.NewWalletID("xpub")

	m.derivation.EXPECT().DeriveAddresses("xpub", 0, 1).Return(derivedRange(0, 1), nil)
	m.walletRepo.EXPECT().GetByID(ctx, walletID).Return(nil, nil)
	m.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.gapScanner.EXPECT().ScanAddresses(ctx, "xpub", 20).Return(nil, errors.New("derivation exploded"))
	m.walletRepo.EXPECT().UpdateStatus(ctx, walletID, domain.WalletStatusError).Return(nil)
	m.walletRepo.EXPECT().IncrementRetry(ctx, walletID).Return(nil)

	_, err := svc.LoadWallet(ctx, "xpub", "", 20)
	assert.Error(t, err)
}

func TestLoadWallet_InvalidKeyRejectedEarly(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()

	m.derivation.EXPECT().DeriveAddresses("bad", 0, 1).
		Return(nil, apperror.ErrInvalidKey(errors.New("checksum mismatch")))

	_, err := svc.LoadWallet(ctx, "bad", "", 20)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}

func TestGetBalances_NotReady(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()

	m.walletRepo.EXPECT().GetByID(ctx, "w1").
		Return(&domain.Wallet{ID: "w1", Status: domain.WalletStatusCreating}, nil)

	_, err := svc.GetBalances(ctx, "w1", time.Now())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_004", appErr.Code)
}

func TestGetBalances_RefreshesExpiredLocks(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Minute)

	wallet := &domain.Wallet{ID: "w1", Status: domain.WalletStatusReady}
	m.walletRepo.EXPECT().GetByID(ctx, "w1").Return(wallet, nil)

	stale := []domain.WalletBalance{{
		WalletID: "w1", TokenID: domain.DefaultTokenID,
		Balance: domain.Balance{Locked: 50, TimelockExpires: &past},
	}}
	fresh := []domain.WalletBalance{{
		WalletID: "w1", TokenID: domain.DefaultTokenID,
		Balance: domain.Balance{Unlocked: 50},
	}}
	gomock.InOrder(
		m.walBal.EXPECT().ListByWallet(ctx, "w1").Return(stale, nil),
		m.unlock.EXPECT().RefreshExpired(ctx, "w1", now, int64(0)).Return(nil),
		m.walBal.EXPECT().ListByWallet(ctx, "w1").Return(fresh, nil),
	)

	out, err := svc.GetBalances(ctx, "w1", now)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(50), out[0].Unlocked)
	assert.Equal(t, int64(0), out[0].Locked)
}

func TestGetBalances_NoRefreshWhenNotExpired(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()
	now := time.Now()
	future := now.Add(time.Hour)

	m.walletRepo.EXPECT().GetByID(ctx, "w1").
		Return(&domain.Wallet{ID: "w1", Status: domain.WalletStatusReady}, nil)
	m.walBal.EXPECT().ListByWallet(ctx, "w1").Return([]domain.WalletBalance{{
		WalletID: "w1", TokenID: domain.DefaultTokenID,
		Balance: domain.Balance{Locked: 50, TimelockExpires: &future},
	}}, nil)

	out, err := svc.GetBalances(ctx, "w1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(50), out[0].Locked)
}

func TestGetNewAddresses_UsesGapBoundary(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()

	m.walletRepo.EXPECT().GetByID(ctx, "w1").
		Return(&domain.Wallet{ID: "w1", Status: domain.WalletStatusReady, MaxGap: 5, LastUsedAddressIndex: 4}, nil)
	m.addrRepo.EXPECT().ListUnused(ctx, "w1", 9).Return([]domain.Address{{Address: "addr-5"}}, nil)

	out, err := svc.GetNewAddresses(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "addr-5", out[0].Address)
}

func TestGetWallet_NotFound(t *testing.T) {
	svc, m := newWalletService(t)
	ctx := context.Background()

	m.walletRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

	_, err := svc.GetWallet(ctx, "missing")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
}
