package handler

import (
	"net/http"
	"time"

	"wallet-indexer/internal/adapter/http/dto"
	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"
	"wallet-indexer/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler handles ingestion and maintenance endpoints. Its callers are
// queue consumers and cron jobs, not end users.
type EventHandler struct {
	ledgerSvc ports.LedgerService
	unlockSvc ports.UnlockService
	reorgSvc  ports.ReorgService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(ledgerSvc ports.LedgerService, unlockSvc ports.UnlockService, reorgSvc ports.ReorgService) *EventHandler {
	return &EventHandler{ledgerSvc: ledgerSvc, unlockSvc: unlockSvc, reorgSvc: reorgSvc}
}

// HandleTxEvent handles POST /api/v1/events/tx. Delivery is at-least-once:
// redelivering an applied transaction returns 200 without effect.
func (h *EventHandler) HandleTxEvent(c *gin.Context) {
	var req dto.TxEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	event := toTxEvent(req)
	if err := h.ledgerSvc.HandleTxEvent(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	// A new block matures rewards locked exactly at its height.
	if event.IsBlock() {
		if err := h.unlockSvc.UnlockAtHeight(c.Request.Context(), *event.Height, time.Now()); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.OK(c, gin.H{"tx_id": event.TxID})
}

// Unlock handles POST /api/v1/maintenance/unlock.
func (h *EventHandler) Unlock(c *gin.Context) {
	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var err error
	if req.AtHeight {
		err = h.unlockSvc.UnlockAtHeight(c.Request.Context(), req.Height, time.Now())
	} else {
		err = h.unlockSvc.UnlockMatured(c.Request.Context(), time.Now(), req.Height)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Void handles POST /api/v1/maintenance/void: it voids the reorganized
// transactions and rebuilds the affected addresses from the surviving UTXOs.
func (h *EventHandler) Void(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	for _, txID := range req.TxIDs {
		if err := h.reorgSvc.VoidTransaction(c.Request.Context(), txID); err != nil {
			response.Error(c, err)
			return
		}
	}
	if err := h.reorgSvc.RebuildBalances(c.Request.Context(), req.Addresses, req.TxIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"voided": len(req.TxIDs), "rebuilt": len(req.Addresses)})
}

func toTxEvent(req dto.TxEventRequest) *domain.TxEvent {
	event := &domain.TxEvent{
		TxID:      req.TxID,
		Timestamp: req.Timestamp,
		Height:    req.Height,
		Inputs:    make([]domain.TxInput, 0, len(req.Inputs)),
		Outputs:   make([]domain.TxOutput, 0, len(req.Outputs)),
	}
	for _, in := range req.Inputs {
		event.Inputs = append(event.Inputs, domain.TxInput{
			TxID:      in.TxID,
			Index:     in.Index,
			Value:     in.Value,
			TokenID:   in.TokenID,
			TokenData: in.TokenData,
			Address:   in.Address,
			Timelock:  in.Timelock,
		})
	}
	for _, out := range req.Outputs {
		event.Outputs = append(event.Outputs, domain.TxOutput{
			Value:     out.Value,
			TokenID:   out.TokenID,
			TokenData: out.TokenData,
			Address:   out.Address,
			Timelock:  out.Timelock,
			Locked:    out.Locked,
		})
	}
	return event
}
