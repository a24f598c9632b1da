package postgres

import (
	"context"
	"testing"

	"wallet-indexer/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepo_GetByAddresses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	idx := 3
	walletID := "w1"

	mock.ExpectQuery("SELECT .+ FROM addresses WHERE address = ANY").
		WithArgs([]string{"addr-1", "addr-2"}).
		WillReturnRows(pgxmock.NewRows([]string{"address", "derivation_index", "wallet_id", "transactions"}).
			AddRow("addr-1", &idx, &walletID, 5).
			AddRow("addr-2", (*int)(nil), (*string)(nil), 1))

	rows, err := repo.GetByAddresses(context.Background(), []string{"addr-1", "addr-2"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, *rows[0].Index)
	assert.Equal(t, "w1", *rows[0].WalletID)
	assert.Nil(t, rows[1].WalletID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_GetByAddresses_EmptyInput(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	rows, err := repo.GetByAddresses(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_IncrementTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO addresses").
		WithArgs("addr-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.IncrementTransactions(context.Background(), tx, "addr-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_BindNew(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	mock.ExpectExec("INSERT INTO addresses").
		WithArgs("addr-0", 0, "w1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO addresses").
		WithArgs("addr-1", 1, "w1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.BindNew(context.Background(), "w1", []domain.DerivedAddress{
		{Address: "addr-0", Index: 0},
		{Address: "addr-1", Index: 1},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_RebindExisting_ClaimedRowUntouched(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	// Zero rows affected means another wallet already owns the row. Not an
	// error: the binding is immutable.
	mock.ExpectExec("UPDATE addresses SET wallet_id").
		WithArgs("w1", 2, "addr-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.RebindExisting(context.Background(), "w1", []domain.DerivedAddress{
		{Address: "addr-2", Index: 2},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_ListUnused(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	idx := 7
	walletID := "w1"

	mock.ExpectQuery("SELECT .+ FROM addresses").
		WithArgs("w1", 9).
		WillReturnRows(pgxmock.NewRows([]string{"address", "derivation_index", "wallet_id", "transactions"}).
			AddRow("addr-7", &idx, &walletID, 0))

	rows, err := repo.ListUnused(context.Background(), "w1", 9)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "addr-7", rows[0].Address)
	assert.Zero(t, rows[0].Transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_WalletsForAddresses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	mock.ExpectQuery("SELECT address, wallet_id FROM addresses").
		WithArgs([]string{"addr-1", "addr-2"}).
		WillReturnRows(pgxmock.NewRows([]string{"address", "wallet_id"}).
			AddRow("addr-1", "w1"))

	out, err := repo.WalletsForAddresses(context.Background(), []string{"addr-1", "addr-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"addr-1": "w1"}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
