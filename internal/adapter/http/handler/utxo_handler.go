package handler

import (
	"time"

	"wallet-indexer/internal/adapter/http/dto"
	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"
	"wallet-indexer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UTXOHandler handles UTXO query and reservation endpoints.
type UTXOHandler struct {
	utxoSvc ports.UTXOService
}

// NewUTXOHandler creates a new UTXOHandler.
func NewUTXOHandler(utxoSvc ports.UTXOService) *UTXOHandler {
	return &UTXOHandler{utxoSvc: utxoSvc}
}

// FilterUTXOs handles POST /api/v1/utxos/filter.
func (h *UTXOHandler) FilterUTXOs(c *gin.Context) {
	var req dto.FilterUTXOsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	utxos, err := h.utxoSvc.FilterUTXOs(c.Request.Context(), domain.UTXOFilter{
		Addresses:    req.Addresses,
		TokenID:      req.TokenID,
		Authorities:  domain.NewAuthorities(req.Authorities),
		IgnoreLocked: req.IgnoreLocked,
		BiggerThan:   req.BiggerThan,
		SmallerThan:  req.SmallerThan,
		SkipSpent:    req.SkipSpent,
		MaxOutputs:   req.MaxOutputs,
		TxID:         req.TxID,
		Index:        req.Index,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.UTXOResponse, 0, len(utxos))
	for _, u := range utxos {
		out = append(out, toUTXOResponse(u))
	}
	response.OK(c, out)
}

// ReserveUTXOs handles POST /api/v1/utxos/reserve.
func (h *UTXOHandler) ReserveUTXOs(c *gin.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	proposalID, err := uuid.Parse(req.TxProposalID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid tx_proposal_id"))
		return
	}

	utxos := make([]domain.UTXO, 0, len(req.UTXOs))
	for _, u := range req.UTXOs {
		utxos = append(utxos, domain.UTXO{TxID: u.TxID, Index: u.Index})
	}
	if err := h.utxoSvc.ReserveUTXOs(c.Request.Context(), proposalID, utxos); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"tx_proposal_id": proposalID.String(), "reserved": len(utxos)})
}

// ReleaseProposals handles POST /api/v1/utxos/release.
func (h *UTXOHandler) ReleaseProposals(c *gin.Context) {
	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.TxProposalIDs))
	for _, raw := range req.TxProposalIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid tx_proposal_id"))
			return
		}
		ids = append(ids, id)
	}
	if err := h.utxoSvc.ReleaseProposals(c.Request.Context(), ids); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"released": len(ids)})
}

func toUTXOResponse(u domain.UTXO) dto.UTXOResponse {
	resp := dto.UTXOResponse{
		TxID:        u.TxID,
		Index:       u.Index,
		TokenID:     u.TokenID,
		Address:     u.Address,
		Value:       u.Value,
		Authorities: toAuthoritiesBody(u.Authorities),
		Heightlock:  u.Heightlock,
		Locked:      u.Locked,
	}
	if u.Timelock != nil {
		s := u.Timelock.UTC().Format(time.RFC3339)
		resp.Timelock = &s
	}
	return resp
}
