package postgres

import (
	"context"
	"fmt"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UTXORepo implements ports.UTXORepository.
type UTXORepo struct {
	pool Pool
}

// NewUTXORepo creates a new UTXORepo.
func NewUTXORepo(pool Pool) *UTXORepo {
	return &UTXORepo{pool: pool}
}

const utxoColumns = `tx_id, output_index, token_id, address, value, authorities,
		timelock, heightlock, locked, spent_by, voided, tx_proposal_id, tx_proposal_index`

// InsertIfAbsent records outputs. A duplicate (txId, index) is a no-op, not
// an error: upstream delivery is at-least-once.
func (r *UTXORepo) InsertIfAbsent(ctx context.Context, tx pgx.Tx, utxos []domain.UTXO) error {
	query := `INSERT INTO utxos (tx_id, output_index, token_id, address, value, authorities,
			timelock, heightlock, locked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tx_id, output_index) DO NOTHING`

	for _, u := range utxos {
		_, err := tx.Exec(ctx, query,
			u.TxID, u.Index, u.TokenID, u.Address, u.Value, int16(u.Authorities.Value()),
			u.Timelock, u.Heightlock, u.Locked,
		)
		if err != nil {
			return fmt.Errorf("insert utxo %s:%d: %w", u.TxID, u.Index, err)
		}
	}
	return nil
}

// MarkSpent sets spentBy on every referenced output in one statement. A row
// count below the number of inputs means the UTXO set is missing entries and
// processing must halt.
func (r *UTXORepo) MarkSpent(ctx context.Context, tx pgx.Tx, inputs []domain.TxInput, spendingTxID string) error {
	if len(inputs) == 0 {
		return nil
	}

	txIDs := make([]string, len(inputs))
	indexes := make([]int32, len(inputs))
	for i, in := range inputs {
		txIDs[i] = in.TxID
		indexes[i] = int32(in.Index)
	}

	query := `UPDATE utxos SET spent_by = $1
		FROM (SELECT unnest($2::text[]) AS tx_id, unnest($3::int[]) AS output_index) AS s
		WHERE utxos.tx_id = s.tx_id AND utxos.output_index = s.output_index AND utxos.voided = FALSE`

	tag, err := tx.Exec(ctx, query, spendingTxID, txIDs, indexes)
	if err != nil {
		return fmt.Errorf("mark utxos spent: %w", err)
	}
	if int(tag.RowsAffected()) != len(inputs) {
		return apperror.ErrMissingUTXOs(len(inputs), int(tag.RowsAffected()))
	}
	return nil
}

// GetLockedExpired returns locked UTXOs whose time and height locks have
// both matured.
func (r *UTXORepo) GetLockedExpired(ctx context.Context, asOfTime time.Time, asOfHeight int64) ([]domain.UTXO, error) {
	query := `SELECT ` + utxoColumns + ` FROM utxos
		WHERE locked = TRUE AND voided = FALSE AND spent_by IS NULL
		AND (timelock IS NULL OR timelock <= $1)
		AND (heightlock IS NULL OR heightlock <= $2)`

	rows, err := r.pool.Query(ctx, query, asOfTime, asOfHeight)
	if err != nil {
		return nil, fmt.Errorf("get expired locked utxos: %w", err)
	}
	defer rows.Close()

	return scanUTXOs(rows)
}

// GetLockedAtHeight returns locked UTXOs height-locked exactly at the given
// height, used when that block arrives.
func (r *UTXORepo) GetLockedAtHeight(ctx context.Context, height int64, asOfTime time.Time) ([]domain.UTXO, error) {
	query := `SELECT ` + utxoColumns + ` FROM utxos
		WHERE locked = TRUE AND voided = FALSE AND spent_by IS NULL
		AND heightlock = $1
		AND (timelock IS NULL OR timelock <= $2)`

	rows, err := r.pool.Query(ctx, query, height, asOfTime)
	if err != nil {
		return nil, fmt.Errorf("get utxos locked at height: %w", err)
	}
	defer rows.Close()

	return scanUTXOs(rows)
}

// Unlock clears the locked flag on the given outputs. Already-unlocked rows
// are unaffected, which keeps the maintenance pass idempotent.
func (r *UTXORepo) Unlock(ctx context.Context, utxos []domain.UTXO) error {
	if len(utxos) == 0 {
		return nil
	}

	txIDs := make([]string, len(utxos))
	indexes := make([]int32, len(utxos))
	for i, u := range utxos {
		txIDs[i] = u.TxID
		indexes[i] = int32(u.Index)
	}

	query := `UPDATE utxos SET locked = FALSE
		FROM (SELECT unnest($1::text[]) AS tx_id, unnest($2::int[]) AS output_index) AS s
		WHERE utxos.tx_id = s.tx_id AND utxos.output_index = s.output_index`

	if _, err := r.pool.Exec(ctx, query, txIDs, indexes); err != nil {
		return fmt.Errorf("unlock utxos: %w", err)
	}
	return nil
}

// Reserve earmarks outputs for a pending transaction proposal.
func (r *UTXORepo) Reserve(ctx context.Context, proposalID uuid.UUID, utxos []domain.UTXO) error {
	query := `UPDATE utxos SET tx_proposal_id = $1, tx_proposal_index = $2
		WHERE tx_id = $3 AND output_index = $4 AND tx_proposal_id IS NULL`

	for i, u := range utxos {
		tag, err := r.pool.Exec(ctx, query, proposalID, i, u.TxID, u.Index)
		if err != nil {
			return fmt.Errorf("reserve utxo %s:%d: %w", u.TxID, u.Index, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("utxo %s:%d already reserved", u.TxID, u.Index)
		}
	}
	return nil
}

// Release clears reservation markers for the given proposals. A row count
// that does not match the number of proposals released signals a consistency
// bug and is fatal.
func (r *UTXORepo) Release(ctx context.Context, proposalIDs []uuid.UUID) error {
	if len(proposalIDs) == 0 {
		return nil
	}

	query := `UPDATE utxos SET tx_proposal_id = NULL, tx_proposal_index = NULL
		WHERE tx_proposal_id = ANY($1)`

	tag, err := r.pool.Exec(ctx, query, proposalIDs)
	if err != nil {
		return fmt.Errorf("release proposals: %w", err)
	}
	if int(tag.RowsAffected()) != len(proposalIDs) {
		return apperror.ErrPartialRelease(len(proposalIDs), int(tag.RowsAffected()))
	}
	return nil
}

// MarkVoided tombstones a transaction's outputs during reorg reconciliation.
func (r *UTXORepo) MarkVoided(ctx context.Context, txID string) error {
	query := `UPDATE utxos SET voided = TRUE WHERE tx_id = $1`

	if _, err := r.pool.Exec(ctx, query, txID); err != nil {
		return fmt.Errorf("void utxos: %w", err)
	}
	return nil
}

// Unspend returns outputs consumed by a now-voided transaction to the
// unspent pool.
func (r *UTXORepo) Unspend(ctx context.Context, spendingTxID string) error {
	query := `UPDATE utxos SET spent_by = NULL WHERE spent_by = $1`

	if _, err := r.pool.Exec(ctx, query, spendingTxID); err != nil {
		return fmt.Errorf("unspend utxos: %w", err)
	}
	return nil
}

// DeleteVoided hard-deletes the voided outputs of a transaction. The UTXO
// set is the source of truth for rebuilds, so stale rows cannot be left
// behind a soft flag.
func (r *UTXORepo) DeleteVoided(ctx context.Context, txID string) error {
	query := `DELETE FROM utxos WHERE tx_id = $1 AND voided = TRUE`

	if _, err := r.pool.Exec(ctx, query, txID); err != nil {
		return fmt.Errorf("delete voided utxos: %w", err)
	}
	return nil
}

// Filter returns UTXOs matching the criteria, ordered by value descending
// and capped at MaxOutputs.
func (r *UTXORepo) Filter(ctx context.Context, f domain.UTXOFilter) ([]domain.UTXO, error) {
	if len(f.Addresses) == 0 {
		return nil, fmt.Errorf("filter requires a non-empty address set")
	}

	conditions := []string{"voided = FALSE"}
	var args []any
	argIdx := 1

	add := func(cond string, value any) {
		conditions = append(conditions, fmt.Sprintf(cond, argIdx))
		args = append(args, value)
		argIdx++
	}

	add("address = ANY($%d)", f.Addresses)

	tokenID := f.TokenID
	if tokenID == "" {
		tokenID = domain.DefaultTokenID
	}
	add("token_id = $%d", tokenID)

	if f.TxID != nil && f.Index != nil {
		add("tx_id = $%d", *f.TxID)
		add("output_index = $%d", *f.Index)
	}

	if f.Authorities.IsEmpty() {
		conditions = append(conditions, "authorities = 0")
		// Value bounds only make sense for value-bearing outputs.
		if f.BiggerThan != nil {
			add("value > $%d", *f.BiggerThan)
		}
		if f.SmallerThan != nil {
			add("value < $%d", *f.SmallerThan)
		}
	} else {
		add("authorities & $%d > 0", int16(f.Authorities.Value()))
	}

	if f.IgnoreLocked {
		conditions = append(conditions, "locked = FALSE")
	}
	if f.SkipSpent {
		conditions = append(conditions, "spent_by IS NULL", "tx_proposal_id IS NULL")
	}

	maxOutputs := f.MaxOutputs
	if maxOutputs <= 0 || maxOutputs > domain.DefaultMaxFilterOutputs {
		maxOutputs = domain.DefaultMaxFilterOutputs
	}

	query := `SELECT ` + utxoColumns + ` FROM utxos WHERE `
	for i, cond := range conditions {
		if i > 0 {
			query += " AND "
		}
		query += cond
	}
	query += fmt.Sprintf(" ORDER BY value DESC LIMIT %d", maxOutputs)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter utxos: %w", err)
	}
	defer rows.Close()

	return scanUTXOs(rows)
}

// UnlockedAuthoritiesFor recomputes the authority mask over unspent,
// unlocked, non-voided UTXOs of (address, token).
func (r *UTXORepo) UnlockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error) {
	return r.authoritiesFor(ctx, address, tokenID, false)
}

// LockedAuthoritiesFor recomputes the authority mask over still-locked
// UTXOs of (address, token).
func (r *UTXORepo) LockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error) {
	return r.authoritiesFor(ctx, address, tokenID, true)
}

func (r *UTXORepo) authoritiesFor(ctx context.Context, address, tokenID string, locked bool) (domain.Authorities, error) {
	query := `SELECT COALESCE(BIT_OR(authorities), 0) FROM utxos
		WHERE address = $1 AND token_id = $2 AND spent_by IS NULL AND voided = FALSE AND locked = $3`

	var bits int16
	if err := r.pool.QueryRow(ctx, query, address, tokenID, locked).Scan(&bits); err != nil {
		return 0, fmt.Errorf("aggregate authorities: %w", err)
	}
	return domain.NewAuthorities(uint8(bits)), nil
}

// AggregateByAddress rolls up unspent, non-voided UTXOs of an address by
// token for one lock state.
func (r *UTXORepo) AggregateByAddress(ctx context.Context, address string, locked bool) ([]ports.UTXOAggregate, error) {
	query := `SELECT token_id, COALESCE(SUM(value), 0), COALESCE(BIT_OR(authorities), 0), MIN(timelock)
		FROM utxos
		WHERE address = $1 AND spent_by IS NULL AND voided = FALSE AND locked = $2
		GROUP BY token_id`

	rows, err := r.pool.Query(ctx, query, address, locked)
	if err != nil {
		return nil, fmt.Errorf("aggregate utxos: %w", err)
	}
	defer rows.Close()

	var out []ports.UTXOAggregate
	for rows.Next() {
		var agg ports.UTXOAggregate
		var bits int16
		if err := rows.Scan(&agg.TokenID, &agg.Value, &bits, &agg.EarliestTimelock); err != nil {
			return nil, fmt.Errorf("scan utxo aggregate: %w", err)
		}
		agg.Authorities = domain.NewAuthorities(uint8(bits))
		out = append(out, agg)
	}
	return out, rows.Err()
}

// VoidedReceivedByAddress sums voided output values the address received
// from the given transactions, per token.
func (r *UTXORepo) VoidedReceivedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int64, error) {
	query := `SELECT token_id, COALESCE(SUM(value), 0) FROM utxos
		WHERE address = $1 AND voided = TRUE AND tx_id = ANY($2)
		GROUP BY token_id`

	return r.sumByToken(ctx, query, address, txIDs)
}

// VoidedReceivedByWallet sums voided output values across every address
// bound to the wallet, per token.
func (r *UTXORepo) VoidedReceivedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int64, error) {
	query := `SELECT u.token_id, COALESCE(SUM(u.value), 0) FROM utxos u
		JOIN addresses a ON a.address = u.address
		WHERE a.wallet_id = $1 AND u.voided = TRUE AND u.tx_id = ANY($2)
		GROUP BY u.token_id`

	return r.sumByToken(ctx, query, walletID, txIDs)
}

func (r *UTXORepo) sumByToken(ctx context.Context, query, owner string, txIDs []string) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, query, owner, txIDs)
	if err != nil {
		return nil, fmt.Errorf("sum voided received: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var tokenID string
		var sum int64
		if err := rows.Scan(&tokenID, &sum); err != nil {
			return nil, fmt.Errorf("scan voided received: %w", err)
		}
		out[tokenID] = sum
	}
	return out, rows.Err()
}

func scanUTXOs(rows pgx.Rows) ([]domain.UTXO, error) {
	var out []domain.UTXO
	for rows.Next() {
		var u domain.UTXO
		var bits int16
		err := rows.Scan(
			&u.TxID, &u.Index, &u.TokenID, &u.Address, &u.Value, &bits,
			&u.Timelock, &u.Heightlock, &u.Locked, &u.SpentBy, &u.Voided,
			&u.TxProposalID, &u.TxProposalIndex,
		)
		if err != nil {
			return nil, fmt.Errorf("scan utxo: %w", err)
		}
		u.Authorities = domain.NewAuthorities(uint8(bits))
		out = append(out, u)
	}
	return out, rows.Err()
}
