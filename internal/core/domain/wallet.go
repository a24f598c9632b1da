package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// WalletStatus is the wallet-load lifecycle state.
type WalletStatus string

const (
	WalletStatusCreating WalletStatus = "CREATING"
	WalletStatusReady    WalletStatus = "READY"
	WalletStatusError    WalletStatus = "ERROR"
)

// Wallet groups every address derived from one extended public key. The id
// is a deterministic hash of the xpub, so duplicate load requests for the
// same key collide naturally.
type Wallet struct {
	ID          string
	XPubKey     string
	AuthXPubKey string
	Status      WalletStatus
	MaxGap      int
	RetryCount  int
	CreatedAt   time.Time
	ReadyAt     *time.Time

	// LastUsedAddressIndex is the highest derivation index with at least one
	// transaction, -1 when no address was ever used. "New address" queries
	// respect the confirmed gap boundary derived from this, not the physical
	// max index.
	LastUsedAddressIndex int
}

// IsReady reports whether the wallet finished loading.
func (w *Wallet) IsReady() bool { return w.Status == WalletStatusReady }

// NewWalletID derives the deterministic wallet id from an xpub.
func NewWalletID(xpubkey string) string {
	sum := sha256.Sum256([]byte(xpubkey))
	return hex.EncodeToString(sum[:])
}
