package dto

import "time"

// LoadWalletRequest is the request body for the wallet load workflow.
type LoadWalletRequest struct {
	XPubKey     string `json:"xpubkey" binding:"required"`
	AuthXPubKey string `json:"auth_xpubkey,omitempty"`
	MaxGap      int    `json:"max_gap,omitempty" binding:"omitempty,gt=0,lte=1000"`
}

// WalletResponse is the wallet status response body.
type WalletResponse struct {
	WalletID             string  `json:"wallet_id"`
	XPubKey              string  `json:"xpubkey"`
	Status               string  `json:"status"`
	MaxGap               int     `json:"max_gap"`
	RetryCount           int     `json:"retry_count"`
	LastUsedAddressIndex int     `json:"last_used_address_index"`
	CreatedAt            string  `json:"created_at"`
	ReadyAt              *string `json:"ready_at,omitempty"`
}

// AuthoritiesBody is the decoded authority mask in balance responses.
type AuthoritiesBody struct {
	Mint bool `json:"mint"`
	Melt bool `json:"melt"`
}

// BalanceResponse is one per-token balance row.
type BalanceResponse struct {
	TokenID             string          `json:"token_id"`
	Unlocked            int64           `json:"unlocked"`
	Locked              int64           `json:"locked"`
	Total               int64           `json:"total"`
	TotalReceived       int64           `json:"total_received"`
	Transactions        int             `json:"transactions"`
	LockExpires         *string         `json:"lock_expires,omitempty"`
	UnlockedAuthorities AuthoritiesBody `json:"unlocked_authorities"`
	LockedAuthorities   AuthoritiesBody `json:"locked_authorities"`
}

// HistoryEntryResponse is one wallet history row.
type HistoryEntryResponse struct {
	TxID      string `json:"tx_id"`
	TokenID   string `json:"token_id"`
	Balance   int64  `json:"balance"`
	Timestamp string `json:"timestamp"`
}

// AddressResponse is one address row.
type AddressResponse struct {
	Address      string `json:"address"`
	Index        *int   `json:"index,omitempty"`
	Transactions int    `json:"transactions"`
}

// FilterUTXOsRequest is the request body for the filtered UTXO query.
type FilterUTXOsRequest struct {
	Addresses    []string `json:"addresses" binding:"required,min=1"`
	TokenID      string   `json:"token_id,omitempty"`
	Authorities  uint8    `json:"authorities,omitempty"`
	IgnoreLocked bool     `json:"ignore_locked,omitempty"`
	BiggerThan   *int64   `json:"bigger_than,omitempty"`
	SmallerThan  *int64   `json:"smaller_than,omitempty"`
	SkipSpent    bool     `json:"skip_spent,omitempty"`
	MaxOutputs   int      `json:"max_utxos,omitempty" binding:"omitempty,gt=0"`
	TxID         *string  `json:"tx_id,omitempty"`
	Index        *int     `json:"index,omitempty"`
}

// UTXOResponse is one UTXO row in filter responses.
type UTXOResponse struct {
	TxID        string          `json:"tx_id"`
	Index       int             `json:"index"`
	TokenID     string          `json:"token_id"`
	Address     string          `json:"address"`
	Value       int64           `json:"value"`
	Authorities AuthoritiesBody `json:"authorities"`
	Timelock    *string         `json:"timelock,omitempty"`
	Heightlock  *int64          `json:"heightlock,omitempty"`
	Locked      bool            `json:"locked"`
}

// TxInputBody is a consumed output inside a transaction event.
type TxInputBody struct {
	TxID      string     `json:"tx_id" binding:"required"`
	Index     int        `json:"index"`
	Value     int64      `json:"value"`
	TokenID   string     `json:"token" binding:"required"`
	TokenData uint8      `json:"token_data"`
	Address   string     `json:"address"`
	Timelock  *time.Time `json:"timelock,omitempty"`
}

// TxOutputBody is a created output inside a transaction event.
type TxOutputBody struct {
	Value     int64      `json:"value"`
	TokenID   string     `json:"token" binding:"required"`
	TokenData uint8      `json:"token_data"`
	Address   string     `json:"address"`
	Timelock  *time.Time `json:"timelock,omitempty"`
	Locked    bool       `json:"locked"`
}

// TxEventRequest is the ingestion request body for one confirmed
// transaction.
type TxEventRequest struct {
	TxID      string         `json:"tx_id" binding:"required"`
	Timestamp time.Time      `json:"timestamp" binding:"required"`
	Inputs    []TxInputBody  `json:"inputs"`
	Outputs   []TxOutputBody `json:"outputs" binding:"required,min=1"`
	Height    *int64         `json:"height,omitempty"`
}

// ReserveUTXO identifies one output to reserve.
type ReserveUTXO struct {
	TxID  string `json:"tx_id" binding:"required"`
	Index int    `json:"index"`
}

// ReserveRequest earmarks outputs for a transaction proposal.
type ReserveRequest struct {
	TxProposalID string        `json:"tx_proposal_id" binding:"required,uuid"`
	UTXOs        []ReserveUTXO `json:"utxos" binding:"required,min=1"`
}

// ReleaseRequest clears reservation markers for abandoned proposals.
type ReleaseRequest struct {
	TxProposalIDs []string `json:"tx_proposal_ids" binding:"required,min=1,dive,uuid"`
}

// UnlockRequest triggers a lock-maturation maintenance pass.
type UnlockRequest struct {
	Height int64 `json:"height"`
	// AtHeight restricts the pass to outputs height-locked exactly at
	// Height, the new-block path.
	AtHeight bool `json:"at_height,omitempty"`
}

// VoidRequest voids reorganized transactions and rebuilds the affected
// addresses.
type VoidRequest struct {
	TxIDs     []string `json:"tx_ids" binding:"required,min=1"`
	Addresses []string `json:"addresses" binding:"required,min=1"`
}
