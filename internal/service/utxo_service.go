package service

import (
	"context"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UTXOServiceImpl implements ports.UTXOService.
type UTXOServiceImpl struct {
	utxoRepo ports.UTXORepository
	log      zerolog.Logger
}

// NewUTXOService creates a new UTXOServiceImpl.
func NewUTXOService(utxoRepo ports.UTXORepository, log zerolog.Logger) *UTXOServiceImpl {
	return &UTXOServiceImpl{utxoRepo: utxoRepo, log: log}
}

// FilterUTXOs validates and runs a filtered UTXO query. An unconstrained
// scan over every address is never allowed.
func (s *UTXOServiceImpl) FilterUTXOs(ctx context.Context, f domain.UTXOFilter) ([]domain.UTXO, error) {
	if len(f.Addresses) == 0 {
		return nil, apperror.ErrInvalidFilter("at least one address is required")
	}
	if (f.TxID == nil) != (f.Index == nil) {
		return nil, apperror.ErrInvalidFilter("txId and index must be provided together")
	}
	if f.BiggerThan != nil && f.SmallerThan != nil && *f.BiggerThan >= *f.SmallerThan {
		return nil, apperror.ErrInvalidFilter("biggerThan must be below smallerThan")
	}
	if f.TokenID == "" {
		f.TokenID = domain.DefaultTokenID
	}
	if f.MaxOutputs <= 0 || f.MaxOutputs > domain.DefaultMaxFilterOutputs {
		f.MaxOutputs = domain.DefaultMaxFilterOutputs
	}

	utxos, err := s.utxoRepo.Filter(ctx, f)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return utxos, nil
}

// ReserveUTXOs earmarks outputs for a pending transaction proposal.
func (s *UTXOServiceImpl) ReserveUTXOs(ctx context.Context, proposalID uuid.UUID, utxos []domain.UTXO) error {
	if len(utxos) == 0 {
		return apperror.Validation("no UTXOs to reserve")
	}
	if err := s.utxoRepo.Reserve(ctx, proposalID, utxos); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	s.log.Debug().Str("proposal_id", proposalID.String()).Int("utxos", len(utxos)).Msg("UTXOs reserved")
	return nil
}

// ReleaseProposals clears reservation markers for abandoned proposals.
func (s *UTXOServiceImpl) ReleaseProposals(ctx context.Context, proposalIDs []uuid.UUID) error {
	if len(proposalIDs) == 0 {
		return nil
	}
	return s.utxoRepo.Release(ctx, proposalIDs)
}
