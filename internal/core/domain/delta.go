package domain

import "time"

// BalanceDelta is the effect of a single transaction on one (owner, token)
// pair. Deltas are commutative under Merge, so two transactions touching the
// same pair may be applied in either order.
type BalanceDelta struct {
	Unlocked      int64 // net change to spendable balance, may be negative
	Locked        int64 // net change to time/height-locked balance
	TotalReceived int64 // gross value received in this tx (sum of outputs, not net)

	UnlockedAuthorities Authorities
	LockedAuthorities   Authorities

	// AuthorityRemoved is set when an unlocked authority UTXO was spent.
	// The unlocked authority mask can then no longer be derived by OR-merge
	// and must be refreshed from the UTXO set.
	AuthorityRemoved bool

	// TimelockExpires is the earliest pending unlock among the tx's locked
	// outputs for this pair, nil when nothing is time-locked.
	TimelockExpires *time.Time
}

// Merge combines another delta into d: amounts add, authority bits OR,
// AuthorityRemoved is sticky and lock expiries keep the earliest value.
func (d *BalanceDelta) Merge(other BalanceDelta) {
	d.Unlocked += other.Unlocked
	d.Locked += other.Locked
	d.TotalReceived += other.TotalReceived
	d.UnlockedAuthorities = d.UnlockedAuthorities.Union(other.UnlockedAuthorities)
	d.LockedAuthorities = d.LockedAuthorities.Union(other.LockedAuthorities)
	d.AuthorityRemoved = d.AuthorityRemoved || other.AuthorityRemoved
	d.TimelockExpires = EarliestTime(d.TimelockExpires, other.TimelockExpires)
}

// IsZero reports whether applying the delta would change nothing.
func (d BalanceDelta) IsZero() bool {
	return d.Unlocked == 0 && d.Locked == 0 && d.TotalReceived == 0 &&
		d.UnlockedAuthorities.IsEmpty() && d.LockedAuthorities.IsEmpty() &&
		!d.AuthorityRemoved && d.TimelockExpires == nil
}

// EarliestTime returns the earlier of two optional timestamps. A nil value
// means "no pending expiry" and loses to any concrete value.
func EarliestTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Before(*a):
		return b
	default:
		return a
	}
}

// TokenBalanceMap maps token ids to balance deltas with stable iteration
// order (first-seen). The explicit merge contract keeps the additive and
// OR-merge semantics in one place.
type TokenBalanceMap struct {
	order  []string
	deltas map[string]BalanceDelta
}

// NewTokenBalanceMap creates an empty map.
func NewTokenBalanceMap() *TokenBalanceMap {
	return &TokenBalanceMap{deltas: make(map[string]BalanceDelta)}
}

// Add merges a delta into the entry for tokenID, creating it if absent.
func (m *TokenBalanceMap) Add(tokenID string, delta BalanceDelta) {
	existing, ok := m.deltas[tokenID]
	if !ok {
		m.order = append(m.order, tokenID)
		m.deltas[tokenID] = delta
		return
	}
	existing.Merge(delta)
	m.deltas[tokenID] = existing
}

// Get returns the delta for tokenID and whether it exists.
func (m *TokenBalanceMap) Get(tokenID string) (BalanceDelta, bool) {
	d, ok := m.deltas[tokenID]
	return d, ok
}

// Tokens returns token ids in first-seen order.
func (m *TokenBalanceMap) Tokens() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of tokens with a recorded delta.
func (m *TokenBalanceMap) Len() int { return len(m.order) }

// AddressDeltaMap maps owner keys (addresses or wallet ids) to their
// per-token deltas, also in first-seen order.
type AddressDeltaMap struct {
	order  []string
	owners map[string]*TokenBalanceMap
}

// NewAddressDeltaMap creates an empty map.
func NewAddressDeltaMap() *AddressDeltaMap {
	return &AddressDeltaMap{owners: make(map[string]*TokenBalanceMap)}
}

// Add merges a delta for (owner, token).
func (m *AddressDeltaMap) Add(owner, tokenID string, delta BalanceDelta) {
	tbm, ok := m.owners[owner]
	if !ok {
		tbm = NewTokenBalanceMap()
		m.order = append(m.order, owner)
		m.owners[owner] = tbm
	}
	tbm.Add(tokenID, delta)
}

// Get returns the token map for an owner, nil if the owner is unknown.
func (m *AddressDeltaMap) Get(owner string) *TokenBalanceMap {
	return m.owners[owner]
}

// Owners returns owner keys in first-seen order.
func (m *AddressDeltaMap) Owners() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of owners with at least one delta.
func (m *AddressDeltaMap) Len() int { return len(m.order) }
