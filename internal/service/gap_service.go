package service

import (
	"context"
	"fmt"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"

	"github.com/rs/zerolog"
)

// GapScannerService implements ports.GapScanner.
type GapScannerService struct {
	derivation  ports.DerivationService
	addressRepo ports.AddressRepository
	walletRepo  ports.WalletRepository
	log         zerolog.Logger
}

// NewGapScannerService creates a new GapScannerService.
func NewGapScannerService(
	derivation ports.DerivationService,
	addressRepo ports.AddressRepository,
	walletRepo ports.WalletRepository,
	log zerolog.Logger,
) *GapScannerService {
	return &GapScannerService{
		derivation:  derivation,
		addressRepo: addressRepo,
		walletRepo:  walletRepo,
		log:         log,
	}
}

// ScanAddresses derives addresses in blocks of maxGap until a full gap of
// unused addresses is confirmed past the last used index. Pure read:
// rerunning without intervening writes yields the same result.
func (s *GapScannerService) ScanAddresses(ctx context.Context, xpubkey string, maxGap int) (*ports.ScanResult, error) {
	if maxGap <= 0 {
		return nil, fmt.Errorf("maxGap must be positive, got %d", maxGap)
	}

	lastUsedIndex := -1
	highestChecked := -1

	var all, newAddresses, existing []domain.DerivedAddress

	for lastUsedIndex+maxGap > highestChecked {
		batch, err := s.derivation.DeriveAddresses(xpubkey, highestChecked+1, maxGap)
		if err != nil {
			return nil, err
		}

		strs := make([]string, len(batch))
		for i, da := range batch {
			strs[i] = da.Address
		}
		rows, err := s.addressRepo.GetByAddresses(ctx, strs)
		if err != nil {
			return nil, err
		}
		byAddr := make(map[string]domain.Address, len(rows))
		for _, row := range rows {
			byAddr[row.Address] = row
		}

		for _, da := range batch {
			row, known := byAddr[da.Address]
			if known {
				existing = append(existing, da)
				if row.Transactions > 0 && da.Index > lastUsedIndex {
					lastUsedIndex = da.Index
				}
			} else {
				newAddresses = append(newAddresses, da)
			}
		}
		all = append(all, batch...)
		highestChecked += maxGap
	}

	// The loop may overshoot by up to one block; drop everything past the
	// confirmed gap boundary.
	boundary := lastUsedIndex + maxGap
	all = trimPastIndex(all, boundary)
	newAddresses = trimPastIndex(newAddresses, boundary)
	existing = trimPastIndex(existing, boundary)

	s.log.Debug().
		Int("last_used_index", lastUsedIndex).
		Int("total", len(all)).
		Int("new", len(newAddresses)).
		Msg("address scan complete")

	return &ports.ScanResult{
		AllAddresses:      all,
		NewAddresses:      newAddresses,
		ExistingAddresses: existing,
		LastUsedIndex:     lastUsedIndex,
	}, nil
}

// BindNewAddresses inserts fresh rows for the wallet and records the
// confirmed gap boundary on the wallet row.
func (s *GapScannerService) BindNewAddresses(ctx context.Context, walletID string, newAddresses []domain.DerivedAddress, lastUsedIndex int) error {
	if err := s.addressRepo.BindNew(ctx, walletID, newAddresses); err != nil {
		return err
	}
	return s.walletRepo.SetLastUsedAddressIndex(ctx, walletID, lastUsedIndex)
}

// RebindExistingAddresses claims previously unowned rows for the wallet.
func (s *GapScannerService) RebindExistingAddresses(ctx context.Context, walletID string, existing []domain.DerivedAddress) error {
	return s.addressRepo.RebindExisting(ctx, walletID, existing)
}

func trimPastIndex(in []domain.DerivedAddress, maxIndex int) []domain.DerivedAddress {
	out := in[:0]
	for _, da := range in {
		if da.Index <= maxIndex {
			out = append(out, da)
		}
	}
	return out
}
