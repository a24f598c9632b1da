package domain

import (
	"time"

	"github.com/google/uuid"
)

// UTXO is one transaction output. Identity is (TxID, Index). Unspent,
// non-voided rows are the authoritative ground truth for balance rebuilds.
type UTXO struct {
	TxID        string
	Index       int
	TokenID     string
	Address     string
	Value       int64 // 0 for authority-only outputs
	Authorities Authorities
	Timelock    *time.Time
	Heightlock  *int64
	Locked      bool
	SpentBy     *string // txId of the spending transaction, nil while unspent
	Voided      bool

	// Reservation markers set while a transaction proposal earmarks this
	// output, so concurrent proposals cannot double-spend it.
	TxProposalID    *uuid.UUID
	TxProposalIndex *int
}

// IsAuthority reports whether this output carries authority bits instead of
// a value.
func (u *UTXO) IsAuthority() bool { return !u.Authorities.IsEmpty() }

// IsSpent reports whether a later transaction consumed this output.
func (u *UTXO) IsSpent() bool { return u.SpentBy != nil }

// CanUnlock reports whether both lock conditions are satisfied at the given
// time and height.
func (u *UTXO) CanUnlock(now time.Time, height int64) bool {
	if u.Timelock != nil && u.Timelock.After(now) {
		return false
	}
	if u.Heightlock != nil && *u.Heightlock > height {
		return false
	}
	return true
}

// UTXOFilter selects UTXOs for the filtered-query operation. Addresses must
// be non-empty. Results are ordered by value descending and capped at
// MaxOutputs.
type UTXOFilter struct {
	Addresses    []string
	TokenID      string
	Authorities  Authorities // zero selects value UTXOs
	IgnoreLocked bool
	BiggerThan   *int64 // exclusive lower bound, ignored in authority mode
	SmallerThan  *int64 // exclusive upper bound, ignored in authority mode
	SkipSpent    bool
	MaxOutputs   int

	// TxID and Index select a single output; both must be set together.
	TxID  *string
	Index *int
}

// DefaultTokenID is the base asset of the chain.
const DefaultTokenID = "00"

// DefaultMaxFilterOutputs caps filter results when the caller sets no limit.
const DefaultMaxFilterOutputs = 255
