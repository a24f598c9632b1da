package service

import (
	"context"
	"testing"
	"time"

	"wallet-indexer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoidAndRebuild_RestoresPriorState(t *testing.T) {
	f := newLedgerFixture()
	f.world.claim("addr-a", "wallet-1")
	f.world.claim("addr-b", "wallet-2")
	ctx := context.Background()

	require.NoError(t, f.ledger.HandleTxEvent(ctx, payment("tx1", "addr-a", 100)))

	spend := &domain.TxEvent{
		TxID:      "tx2",
		Timestamp: time.Now(),
		Inputs: []domain.TxInput{
			{TxID: "tx1", Index: 0, Value: 100, TokenID: domain.DefaultTokenID, Address: "addr-a"},
		},
		Outputs: []domain.TxOutput{
			{Value: 60, TokenID: domain.DefaultTokenID, Address: "addr-b"},
			{Value: 40, TokenID: domain.DefaultTokenID, Address: "addr-a"},
		},
	}
	require.NoError(t, f.ledger.HandleTxEvent(ctx, spend))
	require.Equal(t, 2, f.world.tokens[domain.DefaultTokenID])

	require.NoError(t, f.reorg.VoidTransaction(ctx, "tx2"))
	require.NoError(t, f.reorg.RebuildBalances(ctx, []string{"addr-a", "addr-b"}, []string{"tx2"}))

	a := f.world.addrBalance("addr-a", domain.DefaultTokenID)
	assert.Equal(t, int64(100), a.Unlocked)
	assert.Equal(t, int64(100), a.TotalReceived)
	assert.Equal(t, 1, a.Transactions)

	b := f.world.addrBalance("addr-b", domain.DefaultTokenID)
	assert.Equal(t, int64(0), b.Unlocked)
	assert.Equal(t, int64(0), b.TotalReceived)
	assert.Equal(t, 0, b.Transactions)

	wa := f.world.walletBalance("wallet-1", domain.DefaultTokenID)
	assert.Equal(t, int64(100), wa.Unlocked)
	assert.Equal(t, 1, wa.Transactions)

	// The spent input is restored, the voided outputs are gone.
	u := f.world.utxos[utxoKey{"tx1", 0}]
	require.NotNil(t, u)
	assert.Nil(t, u.SpentBy)
	_, ok := f.world.utxos[utxoKey{"tx2", 0}]
	assert.False(t, ok)
	_, ok = f.world.utxos[utxoKey{"tx2", 1}]
	assert.False(t, ok)

	assert.Equal(t, 1, f.world.tokens[domain.DefaultTokenID])
	for _, h := range f.world.addrHist {
		assert.NotEqual(t, "tx2", h.TxID)
	}
}

func TestVoidTransaction_AllowsReapply(t *testing.T) {
	f := newLedgerFixture()
	f.world.claim("addr-a", "wallet-1")
	ctx := context.Background()

	require.NoError(t, f.ledger.HandleTxEvent(ctx, payment("tx1", "addr-a", 100)))
	require.True(t, f.world.applied["tx1"])

	require.NoError(t, f.reorg.VoidTransaction(ctx, "tx1"))
	assert.False(t, f.world.applied["tx1"])

	// Dedup no longer fires: the history rows are tombstoned.
	require.NoError(t, f.reorg.RebuildBalances(ctx, []string{"addr-a"}, []string{"tx1"}))
	require.NoError(t, f.ledger.HandleTxEvent(ctx, payment("tx1", "addr-a", 100)))

	a := f.world.addrBalance("addr-a", domain.DefaultTokenID)
	assert.Equal(t, int64(100), a.Unlocked)
}

func TestRebuildBalances_VoidedReceiveOnly(t *testing.T) {
	f := newLedgerFixture()
	f.world.claim("addr-a", "wallet-1")
	ctx := context.Background()

	require.NoError(t, f.ledger.HandleTxEvent(ctx, payment("tx1", "addr-a", 100)))
	require.NoError(t, f.ledger.HandleTxEvent(ctx, payment("tx2", "addr-a", 30)))

	require.NoError(t, f.reorg.VoidTransaction(ctx, "tx2"))
	require.NoError(t, f.reorg.RebuildBalances(ctx, []string{"addr-a"}, []string{"tx2"}))

	a := f.world.addrBalance("addr-a", domain.DefaultTokenID)
	assert.Equal(t, int64(100), a.Unlocked)
	assert.Equal(t, int64(100), a.TotalReceived)
	assert.Equal(t, 1, a.Transactions)

	wa := f.world.walletBalance("wallet-1", domain.DefaultTokenID)
	assert.Equal(t, int64(100), wa.Unlocked)
	assert.Equal(t, int64(100), wa.TotalReceived)
	assert.Equal(t, 1, wa.Transactions)
}

func TestRebuildBalances_AuthorityMaskFromSurvivors(t *testing.T) {
	f := newLedgerFixture()
	f.world.claim("addr-a", "wallet-1")
	ctx := context.Background()

	mint := &domain.TxEvent{
		TxID:      "tx1",
		Timestamp: time.Now(),
		Outputs: []domain.TxOutput{
			{Value: int64(domain.AuthorityMint), TokenID: "tok1", TokenData: 0x81, Address: "addr-a"},
		},
	}
	melt := &domain.TxEvent{
		TxID:      "tx2",
		Timestamp: time.Now(),
		Outputs: []domain.TxOutput{
			{Value: int64(domain.AuthorityMelt), TokenID: "tok1", TokenData: 0x81, Address: "addr-a"},
		},
	}
	require.NoError(t, f.ledger.HandleTxEvent(ctx, mint))
	require.NoError(t, f.ledger.HandleTxEvent(ctx, melt))

	require.NoError(t, f.reorg.VoidTransaction(ctx, "tx2"))
	require.NoError(t, f.reorg.RebuildBalances(ctx, []string{"addr-a"}, []string{"tx2"}))

	a := f.world.addrBalance("addr-a", "tok1")
	assert.True(t, a.UnlockedAuthorities.HasMint())
	assert.False(t, a.UnlockedAuthorities.HasMelt())
}
