package handler

import (
	"strconv"
	"time"

	"wallet-indexer/internal/adapter/http/dto"
	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"
	"wallet-indexer/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// WalletHandler handles wallet lifecycle and read endpoints.
type WalletHandler struct {
	walletSvc     ports.WalletService
	defaultMaxGap int
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, defaultMaxGap int) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, defaultMaxGap: defaultMaxGap}
}

// LoadWallet handles POST /api/v1/wallet.
func (h *WalletHandler) LoadWallet(c *gin.Context) {
	var req dto.LoadWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	maxGap := req.MaxGap
	if maxGap == 0 {
		maxGap = h.defaultMaxGap
	}

	wallet, err := h.walletSvc.LoadWallet(c.Request.Context(), req.XPubKey, req.AuthXPubKey, maxGap)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toWalletResponse(wallet))
}

// GetWallet handles GET /api/v1/wallet/:walletId.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), c.Param("walletId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// GetBalances handles GET /api/v1/wallet/:walletId/balances.
func (h *WalletHandler) GetBalances(c *gin.Context) {
	balances, err := h.walletSvc.GetBalances(c.Request.Context(), c.Param("walletId"), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, toBalanceResponse(b))
	}
	response.OK(c, out)
}

// GetHistory handles GET /api/v1/wallet/:walletId/history.
func (h *WalletHandler) GetHistory(c *gin.Context) {
	tokenID := c.DefaultQuery("token_id", domain.DefaultTokenID)
	limit := intQuery(c, "limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	rows, err := h.walletSvc.GetHistory(c.Request.Context(), c.Param("walletId"), tokenID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.HistoryEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.HistoryEntryResponse{
			TxID:      row.TxID,
			TokenID:   row.TokenID,
			Balance:   row.Delta,
			Timestamp: row.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	response.OK(c, out)
}

// GetAddresses handles GET /api/v1/wallet/:walletId/addresses.
func (h *WalletHandler) GetAddresses(c *gin.Context) {
	rows, err := h.walletSvc.GetAddresses(c.Request.Context(), c.Param("walletId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAddressResponses(rows))
}

// GetNewAddresses handles GET /api/v1/wallet/:walletId/addresses/new.
func (h *WalletHandler) GetNewAddresses(c *gin.Context) {
	rows, err := h.walletSvc.GetNewAddresses(c.Request.Context(), c.Param("walletId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAddressResponses(rows))
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	resp := dto.WalletResponse{
		WalletID:             w.ID,
		XPubKey:              w.XPubKey,
		Status:               string(w.Status),
		MaxGap:               w.MaxGap,
		RetryCount:           w.RetryCount,
		LastUsedAddressIndex: w.LastUsedAddressIndex,
		CreatedAt:            w.CreatedAt.UTC().Format(time.RFC3339),
	}
	if w.ReadyAt != nil {
		s := w.ReadyAt.UTC().Format(time.RFC3339)
		resp.ReadyAt = &s
	}
	return resp
}

func toBalanceResponse(b domain.WalletBalance) dto.BalanceResponse {
	resp := dto.BalanceResponse{
		TokenID:             b.TokenID,
		Unlocked:            b.Unlocked,
		Locked:              b.Locked,
		Total:               b.Total(),
		TotalReceived:       b.TotalReceived,
		Transactions:        b.Transactions,
		UnlockedAuthorities: toAuthoritiesBody(b.UnlockedAuthorities),
		LockedAuthorities:   toAuthoritiesBody(b.LockedAuthorities),
	}
	if b.TimelockExpires != nil {
		s := b.TimelockExpires.UTC().Format(time.RFC3339)
		resp.LockExpires = &s
	}
	return resp
}

func toAuthoritiesBody(a domain.Authorities) dto.AuthoritiesBody {
	return dto.AuthoritiesBody{Mint: a.HasMint(), Melt: a.HasMelt()}
}

func toAddressResponses(rows []domain.Address) []dto.AddressResponse {
	out := make([]dto.AddressResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.AddressResponse{
			Address:      a.Address,
			Index:        a.Index,
			Transactions: a.Transactions,
		})
	}
	return out
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
