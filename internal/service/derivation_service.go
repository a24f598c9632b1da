package service

import (
	"fmt"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// externalBranch is the fixed change path all wallet addresses derive from.
const externalBranch = 0

// HDDerivationService implements ports.DerivationService using BIP32 public
// derivation. It is a pure function of its inputs: no storage, no state.
type HDDerivationService struct {
	params *chaincfg.Params
}

// NewHDDerivationService creates a derivation service for the given network
// (mainnet, testnet, simnet).
func NewHDDerivationService(network string) (*HDDerivationService, error) {
	var params *chaincfg.Params
	switch network {
	case "mainnet":
		params = &chaincfg.MainNetParams
	case "testnet":
		params = &chaincfg.TestNet3Params
	case "simnet":
		params = &chaincfg.SimNetParams
	default:
		return nil, fmt.Errorf("unknown network %q", network)
	}
	return &HDDerivationService{params: params}, nil
}

// DeriveAddresses derives count addresses starting at startIndex along the
// external branch, in strictly increasing index order with no gaps.
func (s *HDDerivationService) DeriveAddresses(xpubkey string, startIndex, count int) ([]domain.DerivedAddress, error) {
	if startIndex < 0 || count <= 0 {
		return nil, fmt.Errorf("invalid derivation range [%d, %d)", startIndex, startIndex+count)
	}

	key, err := hdkeychain.NewKeyFromString(xpubkey)
	if err != nil {
		return nil, apperror.ErrInvalidKey(err)
	}
	if key.IsPrivate() {
		return nil, apperror.ErrInvalidKey(fmt.Errorf("expected public extended key"))
	}

	branch, err := key.Derive(externalBranch)
	if err != nil {
		return nil, apperror.ErrInvalidKey(fmt.Errorf("deriving external branch: %w", err))
	}

	out := make([]domain.DerivedAddress, 0, count)
	for i := 0; i < count; i++ {
		index := startIndex + i
		child, err := branch.Derive(uint32(index))
		if err != nil {
			return nil, fmt.Errorf("deriving child %d: %w", index, err)
		}
		addr, err := child.Address(s.params)
		if err != nil {
			return nil, fmt.Errorf("encoding address %d: %w", index, err)
		}
		out = append(out, domain.DerivedAddress{Address: addr.EncodeAddress(), Index: index})
	}
	return out, nil
}
