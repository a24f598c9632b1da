package domain

// Address is an address identity row. Rows appear implicitly (Index and
// WalletID nil) the first time an address shows up in a transaction; a
// wallet later claims the row when gap scanning discovers it. Once claimed,
// the (walletId, index) binding is immutable.
type Address struct {
	Address      string
	Index        *int
	WalletID     *string
	Transactions int
}

// DerivedAddress pairs a derived address string with its derivation index.
type DerivedAddress struct {
	Address string
	Index   int
}
