package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-indexer/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxHistoryRepo_AppendAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)
	ts := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO address_tx_history").
		WithArgs("addr-1", "tx-1", domain.DefaultTokenID, int64(500), ts).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AppendAddress(context.Background(), tx, []domain.TxHistory{
		{Owner: "addr-1", TxID: "tx-1", TokenID: domain.DefaultTokenID, Delta: 500, Timestamp: ts},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxHistoryRepo_WalletEntryExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("tx-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.WalletEntryExists(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxHistoryRepo_MarkVoided(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)

	mock.ExpectExec("UPDATE address_tx_history SET voided = TRUE").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec("UPDATE wallet_tx_history SET voided = TRUE").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkVoided(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxHistoryRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)
	ts := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM wallet_tx_history").
		WithArgs("w1", domain.DefaultTokenID, 50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "tx_id", "token_id", "balance", "timestamp", "voided"}).
			AddRow("w1", "tx-2", domain.DefaultTokenID, int64(-100), ts, false).
			AddRow("w1", "tx-1", domain.DefaultTokenID, int64(500), ts.Add(-time.Minute), false))

	rows, err := repo.ListByWallet(context.Background(), "w1", domain.DefaultTokenID, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "tx-2", rows[0].TxID)
	assert.Equal(t, int64(-100), rows[0].Delta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxHistoryRepo_CountVoidedByAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)

	mock.ExpectQuery("SELECT token_id, COUNT\\(DISTINCT tx_id\\) FROM address_tx_history").
		WithArgs("addr-1", []string{"tx-1", "tx-2"}).
		WillReturnRows(pgxmock.NewRows([]string{"token_id", "count"}).
			AddRow(domain.DefaultTokenID, 2))

	counts, err := repo.CountVoidedByAddress(context.Background(), "addr-1", []string{"tx-1", "tx-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.DefaultTokenID])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxHistoryRepo_DeleteVoided(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTxHistoryRepo(mock)

	mock.ExpectExec("DELETE FROM address_tx_history").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM wallet_tx_history").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.DeleteVoided(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
