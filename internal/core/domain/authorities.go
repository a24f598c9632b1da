package domain

// Authority bit positions, mirroring the wire format of authority outputs.
const (
	AuthorityMint uint8 = 1 << 0
	AuthorityMelt uint8 = 1 << 1

	// tokenDataAuthorityMask marks an output's token_data as authority-carrying.
	tokenDataAuthorityMask = 0x80
)

// Authorities is a mint/melt permission bitmask. Bits are "has been seen"
// flags: merging is bitwise OR, removal requires recomputing from the
// authoritative UTXO set because authorities are not a count.
type Authorities uint8

// NewAuthorities builds an Authorities value from its raw bitmask.
func NewAuthorities(bits uint8) Authorities {
	return Authorities(bits & (AuthorityMint | AuthorityMelt))
}

// HasMint reports whether the mint bit is set.
func (a Authorities) HasMint() bool { return uint8(a)&AuthorityMint != 0 }

// HasMelt reports whether the melt bit is set.
func (a Authorities) HasMelt() bool { return uint8(a)&AuthorityMelt != 0 }

// IsEmpty reports whether no authority bit is set.
func (a Authorities) IsEmpty() bool { return a == 0 }

// Union returns the bitwise OR of both masks.
func (a Authorities) Union(other Authorities) Authorities { return a | other }

// Value returns the raw bitmask for storage.
func (a Authorities) Value() uint8 { return uint8(a) }

// IsAuthorityOutput reports whether an output's token_data flags it as an
// authority output, in which case its value field carries authority bits
// instead of an amount.
func IsAuthorityOutput(tokenData uint8) bool {
	return tokenData&tokenDataAuthorityMask != 0
}
