package domain

import "time"

// TxInput is a consumed output reference inside an ingestion event.
type TxInput struct {
	TxID      string     `json:"tx_id"`
	Index     int        `json:"index"`
	Value     int64      `json:"value"`
	TokenID   string     `json:"token"`
	TokenData uint8      `json:"token_data"`
	Address   string     `json:"address"`
	Timelock  *time.Time `json:"timelock,omitempty"`
}

// TxOutput is a created output inside an ingestion event.
type TxOutput struct {
	Value     int64      `json:"value"`
	TokenID   string     `json:"token"`
	TokenData uint8      `json:"token_data"`
	Address   string     `json:"address"`
	Timelock  *time.Time `json:"timelock,omitempty"`
	Locked    bool       `json:"locked"`
}

// TxEvent is one confirmed transaction delivered by the ingestion queue.
// Delivery is at-least-once; processing must tolerate duplicates.
type TxEvent struct {
	TxID      string     `json:"tx_id"`
	Timestamp time.Time  `json:"timestamp"`
	Inputs    []TxInput  `json:"inputs"`
	Outputs   []TxOutput `json:"outputs"`

	// Height is set when the event is a block; its reward outputs get a
	// height lock relative to it.
	Height *int64 `json:"height,omitempty"`
}

// IsBlock reports whether the event carries a block height.
func (e *TxEvent) IsBlock() bool { return e.Height != nil }

// TxHistory is one append row recording a transaction's net effect on an
// owner (address or wallet id) for one token.
type TxHistory struct {
	Owner     string
	TxID      string
	TokenID   string
	Delta     int64
	Timestamp time.Time
	Voided    bool
}

// Token is a token bookkeeping row with a transactions counter.
type Token struct {
	ID           string
	Transactions int
}
