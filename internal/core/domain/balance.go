package domain

import "time"

// Balance is the running aggregate for one (owner, token) pair. The same
// shape serves address and wallet granularity.
//
// Invariant: Unlocked+Locked equals the sum of unspent, non-voided UTXO
// values for the owner and token, and Unlocked is never negative at rest.
type Balance struct {
	Unlocked            int64
	Locked              int64
	TotalReceived       int64 // lifetime gross received, monotonic
	UnlockedAuthorities Authorities
	LockedAuthorities   Authorities
	TimelockExpires     *time.Time // soonest pending unlock, nil when none
	Transactions        int
}

// Total returns the full balance regardless of lock state.
func (b Balance) Total() int64 { return b.Unlocked + b.Locked }

// LockExpired reports whether a pending lock expiry has passed, meaning a
// refresh pass should run before this balance is served.
func (b Balance) LockExpired(now time.Time) bool {
	return b.TimelockExpires != nil && !b.TimelockExpires.After(now)
}

// AddressBalance is a Balance keyed by address.
type AddressBalance struct {
	Address string
	TokenID string
	Balance
}

// WalletBalance is a Balance keyed by wallet.
type WalletBalance struct {
	WalletID string
	TokenID  string
	Balance
}
