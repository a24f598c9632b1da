package service

import (
	"context"
	"sort"
	"time"

	"wallet-indexer/internal/core/domain"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ledgerWorld is an in-memory stand-in for the whole storage layer, letting
// the ledger, unlock and reorg services run end to end against consistent
// state without a database.
type ledgerWorld struct {
	utxos    map[utxoKey]*domain.UTXO
	addrs    map[string]*domain.Address
	walletOf map[string]string
	addrBal  map[balKey]*domain.Balance
	walBal   map[balKey]*domain.Balance
	addrHist []domain.TxHistory
	walHist  []domain.TxHistory
	tokens   map[string]int
	applied  map[string]bool
}

type utxoKey struct {
	txID  string
	index int
}

type balKey struct {
	owner string
	token string
}

func newLedgerWorld() *ledgerWorld {
	return &ledgerWorld{
		utxos:    make(map[utxoKey]*domain.UTXO),
		addrs:    make(map[string]*domain.Address),
		walletOf: make(map[string]string),
		addrBal:  make(map[balKey]*domain.Balance),
		walBal:   make(map[balKey]*domain.Balance),
		tokens:   make(map[string]int),
		applied:  make(map[string]bool),
	}
}

// claim binds an address to a wallet for wallet-level propagation.
func (w *ledgerWorld) claim(address, walletID string) {
	w.walletOf[address] = walletID
}

func (w *ledgerWorld) addrBalance(address, token string) domain.Balance {
	if b, ok := w.addrBal[balKey{address, token}]; ok {
		return *b
	}
	return domain.Balance{}
}

func (w *ledgerWorld) walletBalance(walletID, token string) domain.Balance {
	if b, ok := w.walBal[balKey{walletID, token}]; ok {
		return *b
	}
	return domain.Balance{}
}

// fakeTx satisfies pgx.Tx for code that only threads it through. Unused
// methods panic via the embedded nil interface.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeTransactor struct{}

func (fakeTransactor) Begin(ctx context.Context) (pgx.Tx, error) { return &fakeTx{}, nil }

// ---- UTXO repository ----

type fakeUTXORepo struct{ w *ledgerWorld }

func (r *fakeUTXORepo) InsertIfAbsent(ctx context.Context, tx pgx.Tx, utxos []domain.UTXO) error {
	for _, u := range utxos {
		k := utxoKey{u.TxID, u.Index}
		if _, ok := r.w.utxos[k]; ok {
			continue
		}
		cp := u
		r.w.utxos[k] = &cp
	}
	return nil
}

func (r *fakeUTXORepo) MarkSpent(ctx context.Context, tx pgx.Tx, inputs []domain.TxInput, spendingTxID string) error {
	got := 0
	for _, in := range inputs {
		u, ok := r.w.utxos[utxoKey{in.TxID, in.Index}]
		if !ok || u.Voided || (u.SpentBy != nil && *u.SpentBy != spendingTxID) {
			continue
		}
		id := spendingTxID
		u.SpentBy = &id
		got++
	}
	if got != len(inputs) {
		return apperror.ErrMissingUTXOs(len(inputs), got)
	}
	return nil
}

func (r *fakeUTXORepo) GetLockedExpired(ctx context.Context, asOfTime time.Time, asOfHeight int64) ([]domain.UTXO, error) {
	var out []domain.UTXO
	for _, u := range r.w.utxos {
		if u.Locked && !u.Voided && u.SpentBy == nil && u.CanUnlock(asOfTime, asOfHeight) {
			out = append(out, *u)
		}
	}
	sortUTXOs(out)
	return out, nil
}

func (r *fakeUTXORepo) GetLockedAtHeight(ctx context.Context, height int64, asOfTime time.Time) ([]domain.UTXO, error) {
	var out []domain.UTXO
	for _, u := range r.w.utxos {
		if u.Locked && !u.Voided && u.SpentBy == nil &&
			u.Heightlock != nil && *u.Heightlock == height &&
			(u.Timelock == nil || !u.Timelock.After(asOfTime)) {
			out = append(out, *u)
		}
	}
	sortUTXOs(out)
	return out, nil
}

func (r *fakeUTXORepo) Unlock(ctx context.Context, utxos []domain.UTXO) error {
	for _, u := range utxos {
		if row, ok := r.w.utxos[utxoKey{u.TxID, u.Index}]; ok {
			row.Locked = false
		}
	}
	return nil
}

func (r *fakeUTXORepo) Reserve(ctx context.Context, proposalID uuid.UUID, utxos []domain.UTXO) error {
	for i, u := range utxos {
		if row, ok := r.w.utxos[utxoKey{u.TxID, u.Index}]; ok {
			id := proposalID
			idx := i
			row.TxProposalID = &id
			row.TxProposalIndex = &idx
		}
	}
	return nil
}

func (r *fakeUTXORepo) Release(ctx context.Context, proposalIDs []uuid.UUID) error {
	ids := make(map[uuid.UUID]bool, len(proposalIDs))
	for _, id := range proposalIDs {
		ids[id] = true
	}
	for _, u := range r.w.utxos {
		if u.TxProposalID != nil && ids[*u.TxProposalID] {
			u.TxProposalID = nil
			u.TxProposalIndex = nil
		}
	}
	return nil
}

func (r *fakeUTXORepo) MarkVoided(ctx context.Context, txID string) error {
	for k, u := range r.w.utxos {
		if k.txID == txID {
			u.Voided = true
		}
	}
	return nil
}

func (r *fakeUTXORepo) Unspend(ctx context.Context, spendingTxID string) error {
	for _, u := range r.w.utxos {
		if u.SpentBy != nil && *u.SpentBy == spendingTxID {
			u.SpentBy = nil
		}
	}
	return nil
}

func (r *fakeUTXORepo) DeleteVoided(ctx context.Context, txID string) error {
	for k, u := range r.w.utxos {
		if k.txID == txID && u.Voided {
			delete(r.w.utxos, k)
		}
	}
	return nil
}

func (r *fakeUTXORepo) Filter(ctx context.Context, f domain.UTXOFilter) ([]domain.UTXO, error) {
	want := make(map[string]bool, len(f.Addresses))
	for _, a := range f.Addresses {
		want[a] = true
	}
	var out []domain.UTXO
	for _, u := range r.w.utxos {
		if u.Voided || !want[u.Address] || u.TokenID != f.TokenID {
			continue
		}
		if f.SkipSpent && (u.SpentBy != nil || u.TxProposalID != nil) {
			continue
		}
		if f.IgnoreLocked && u.Locked {
			continue
		}
		if f.Authorities.IsEmpty() {
			if u.IsAuthority() {
				continue
			}
			if f.BiggerThan != nil && u.Value <= *f.BiggerThan {
				continue
			}
			if f.SmallerThan != nil && u.Value >= *f.SmallerThan {
				continue
			}
		} else if u.Authorities.Value()&f.Authorities.Value() == 0 {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > f.MaxOutputs {
		out = out[:f.MaxOutputs]
	}
	return out, nil
}

func (r *fakeUTXORepo) UnlockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error) {
	return r.authoritiesFor(address, tokenID, false), nil
}

func (r *fakeUTXORepo) LockedAuthoritiesFor(ctx context.Context, address, tokenID string) (domain.Authorities, error) {
	return r.authoritiesFor(address, tokenID, true), nil
}

func (r *fakeUTXORepo) authoritiesFor(address, tokenID string, locked bool) domain.Authorities {
	var mask domain.Authorities
	for _, u := range r.w.utxos {
		if u.Address == address && u.TokenID == tokenID && u.Locked == locked &&
			!u.Voided && u.SpentBy == nil {
			mask = mask.Union(u.Authorities)
		}
	}
	return mask
}

func (r *fakeUTXORepo) AggregateByAddress(ctx context.Context, address string, locked bool) ([]ports.UTXOAggregate, error) {
	agg := make(map[string]*ports.UTXOAggregate)
	for _, u := range r.w.utxos {
		if u.Address != address || u.Locked != locked || u.Voided || u.SpentBy != nil {
			continue
		}
		a, ok := agg[u.TokenID]
		if !ok {
			a = &ports.UTXOAggregate{TokenID: u.TokenID}
			agg[u.TokenID] = a
		}
		a.Value += u.Value
		a.Authorities = a.Authorities.Union(u.Authorities)
		a.EarliestTimelock = domain.EarliestTime(a.EarliestTimelock, u.Timelock)
	}
	var out []ports.UTXOAggregate
	for _, a := range agg {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenID < out[j].TokenID })
	return out, nil
}

func (r *fakeUTXORepo) VoidedReceivedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int64, error) {
	ids := make(map[string]bool, len(txIDs))
	for _, id := range txIDs {
		ids[id] = true
	}
	out := make(map[string]int64)
	for k, u := range r.w.utxos {
		if u.Voided && u.Address == address && ids[k.txID] {
			out[u.TokenID] += u.Value
		}
	}
	return out, nil
}

func (r *fakeUTXORepo) VoidedReceivedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int64, error) {
	ids := make(map[string]bool, len(txIDs))
	for _, id := range txIDs {
		ids[id] = true
	}
	out := make(map[string]int64)
	for k, u := range r.w.utxos {
		if u.Voided && r.w.walletOf[u.Address] == walletID && ids[k.txID] {
			out[u.TokenID] += u.Value
		}
	}
	return out, nil
}

func sortUTXOs(utxos []domain.UTXO) {
	sort.Slice(utxos, func(i, j int) bool {
		if utxos[i].TxID != utxos[j].TxID {
			return utxos[i].TxID < utxos[j].TxID
		}
		return utxos[i].Index < utxos[j].Index
	})
}

// ---- address repository ----

type fakeAddressRepo struct{ w *ledgerWorld }

func (r *fakeAddressRepo) GetByAddresses(ctx context.Context, addresses []string) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range addresses {
		if row, ok := r.w.addrs[a]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) IncrementTransactions(ctx context.Context, tx pgx.Tx, address string) error {
	row, ok := r.w.addrs[address]
	if !ok {
		row = &domain.Address{Address: address}
		r.w.addrs[address] = row
	}
	row.Transactions++
	return nil
}

func (r *fakeAddressRepo) BindNew(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error {
	for _, da := range addresses {
		idx := da.Index
		wid := walletID
		r.w.addrs[da.Address] = &domain.Address{Address: da.Address, Index: &idx, WalletID: &wid}
		r.w.walletOf[da.Address] = walletID
	}
	return nil
}

func (r *fakeAddressRepo) RebindExisting(ctx context.Context, walletID string, addresses []domain.DerivedAddress) error {
	for _, da := range addresses {
		row, ok := r.w.addrs[da.Address]
		if !ok || row.WalletID != nil {
			continue
		}
		idx := da.Index
		wid := walletID
		row.Index = &idx
		row.WalletID = &wid
		r.w.walletOf[da.Address] = walletID
	}
	return nil
}

func (r *fakeAddressRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Address, error) {
	var out []domain.Address
	for addr, wid := range r.w.walletOf {
		if wid != walletID {
			continue
		}
		if row, ok := r.w.addrs[addr]; ok {
			out = append(out, *row)
		} else {
			out = append(out, domain.Address{Address: addr})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out, nil
}

func (r *fakeAddressRepo) ListUnused(ctx context.Context, walletID string, maxIndex int) ([]domain.Address, error) {
	rows, _ := r.ListByWallet(ctx, walletID)
	var out []domain.Address
	for _, row := range rows {
		if row.Transactions == 0 && row.Index != nil && *row.Index <= maxIndex {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) WalletsForAddresses(ctx context.Context, addresses []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, a := range addresses {
		if wid, ok := r.w.walletOf[a]; ok {
			out[a] = wid
		}
	}
	return out, nil
}

// ---- balance repositories ----

func applyDelta(b *domain.Balance, d domain.BalanceDelta, created bool) {
	if created && d.Unlocked < 0 {
		// New rows never start negative, mirroring the insert clamp.
		b.Unlocked = 0
	} else {
		b.Unlocked += d.Unlocked
	}
	b.Locked += d.Locked
	b.TotalReceived += d.TotalReceived
	b.UnlockedAuthorities = b.UnlockedAuthorities.Union(d.UnlockedAuthorities)
	b.LockedAuthorities = b.LockedAuthorities.Union(d.LockedAuthorities)
	b.TimelockExpires = domain.EarliestTime(b.TimelockExpires, d.TimelockExpires)
	b.Transactions++
}

type fakeAddrBalanceRepo struct {
	w    *ledgerWorld
	utxo *fakeUTXORepo
}

func (r *fakeAddrBalanceRepo) row(address, tokenID string) *domain.Balance {
	k := balKey{address, tokenID}
	b, ok := r.w.addrBal[k]
	if !ok {
		b = &domain.Balance{}
		r.w.addrBal[k] = b
	}
	return b
}

func (r *fakeAddrBalanceRepo) UpsertDelta(ctx context.Context, tx pgx.Tx, address, tokenID string, d domain.BalanceDelta) error {
	k := balKey{address, tokenID}
	_, existed := r.w.addrBal[k]
	applyDelta(r.row(address, tokenID), d, !existed)
	return nil
}

func (r *fakeAddrBalanceRepo) RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, address, tokenID string) error {
	r.row(address, tokenID).UnlockedAuthorities = r.utxo.authoritiesFor(address, tokenID, false)
	return nil
}

func (r *fakeAddrBalanceRepo) ApplyUnlock(ctx context.Context, address, tokenID string, amount int64, authorities domain.Authorities) error {
	b := r.row(address, tokenID)
	b.Unlocked += amount
	b.Locked -= amount
	b.UnlockedAuthorities = b.UnlockedAuthorities.Union(authorities)
	return nil
}

func (r *fakeAddrBalanceRepo) RefreshLockedAuthorities(ctx context.Context, address, tokenID string) error {
	r.row(address, tokenID).LockedAuthorities = r.utxo.authoritiesFor(address, tokenID, true)
	return nil
}

func (r *fakeAddrBalanceRepo) RefreshTimelockExpires(ctx context.Context, address, tokenID string) error {
	var earliest *time.Time
	for _, u := range r.w.utxos {
		if u.Address == address && u.TokenID == tokenID && u.Locked && !u.Voided && u.SpentBy == nil {
			earliest = domain.EarliestTime(earliest, u.Timelock)
		}
	}
	r.row(address, tokenID).TimelockExpires = earliest
	return nil
}

func (r *fakeAddrBalanceRepo) Get(ctx context.Context, address, tokenID string) (*domain.AddressBalance, error) {
	b, ok := r.w.addrBal[balKey{address, tokenID}]
	if !ok {
		return nil, nil
	}
	return &domain.AddressBalance{Address: address, TokenID: tokenID, Balance: *b}, nil
}

func (r *fakeAddrBalanceRepo) ListByAddresses(ctx context.Context, addresses []string) ([]domain.AddressBalance, error) {
	want := make(map[string]bool, len(addresses))
	for _, a := range addresses {
		want[a] = true
	}
	var out []domain.AddressBalance
	for k, b := range r.w.addrBal {
		if want[k.owner] {
			out = append(out, domain.AddressBalance{Address: k.owner, TokenID: k.token, Balance: *b})
		}
	}
	sortAddressBalances(out)
	return out, nil
}

func (r *fakeAddrBalanceRepo) Snapshot(ctx context.Context, address string) ([]domain.AddressBalance, error) {
	var out []domain.AddressBalance
	for k, b := range r.w.addrBal {
		if k.owner == address {
			out = append(out, domain.AddressBalance{Address: k.owner, TokenID: k.token, Balance: *b})
		}
	}
	sortAddressBalances(out)
	return out, nil
}

func (r *fakeAddrBalanceRepo) Reset(ctx context.Context, address string) error {
	for k, b := range r.w.addrBal {
		if k.owner == address {
			*b = domain.Balance{Transactions: b.Transactions, TotalReceived: b.TotalReceived}
		}
	}
	return nil
}

func (r *fakeAddrBalanceRepo) Rebuild(ctx context.Context, address, tokenID string, b domain.Balance) error {
	cp := b
	r.w.addrBal[balKey{address, tokenID}] = &cp
	return nil
}

func sortAddressBalances(rows []domain.AddressBalance) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Address != rows[j].Address {
			return rows[i].Address < rows[j].Address
		}
		return rows[i].TokenID < rows[j].TokenID
	})
}

type fakeWalletBalanceRepo struct {
	w    *ledgerWorld
	addr *fakeAddrBalanceRepo
}

func (r *fakeWalletBalanceRepo) row(walletID, tokenID string) *domain.Balance {
	k := balKey{walletID, tokenID}
	b, ok := r.w.walBal[k]
	if !ok {
		b = &domain.Balance{}
		r.w.walBal[k] = b
	}
	return b
}

func (r *fakeWalletBalanceRepo) memberRows(walletID, tokenID string) []*domain.Balance {
	var out []*domain.Balance
	for k, b := range r.w.addrBal {
		if k.token == tokenID && r.w.walletOf[k.owner] == walletID {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeWalletBalanceRepo) UpsertDelta(ctx context.Context, tx pgx.Tx, walletID, tokenID string, d domain.BalanceDelta) error {
	k := balKey{walletID, tokenID}
	_, existed := r.w.walBal[k]
	applyDelta(r.row(walletID, tokenID), d, !existed)
	return nil
}

func (r *fakeWalletBalanceRepo) RefreshUnlockedAuthorities(ctx context.Context, tx pgx.Tx, walletID, tokenID string) error {
	var mask domain.Authorities
	for _, b := range r.memberRows(walletID, tokenID) {
		mask = mask.Union(b.UnlockedAuthorities)
	}
	r.row(walletID, tokenID).UnlockedAuthorities = mask
	return nil
}

func (r *fakeWalletBalanceRepo) ApplyUnlock(ctx context.Context, walletID, tokenID string, amount int64, authorities domain.Authorities) error {
	b := r.row(walletID, tokenID)
	b.Unlocked += amount
	b.Locked -= amount
	b.UnlockedAuthorities = b.UnlockedAuthorities.Union(authorities)
	return nil
}

func (r *fakeWalletBalanceRepo) RefreshLockedAuthorities(ctx context.Context, walletID, tokenID string) error {
	var mask domain.Authorities
	for _, b := range r.memberRows(walletID, tokenID) {
		mask = mask.Union(b.LockedAuthorities)
	}
	r.row(walletID, tokenID).LockedAuthorities = mask
	return nil
}

func (r *fakeWalletBalanceRepo) RefreshTimelockExpires(ctx context.Context, walletID, tokenID string) error {
	var earliest *time.Time
	for _, b := range r.memberRows(walletID, tokenID) {
		earliest = domain.EarliestTime(earliest, b.TimelockExpires)
	}
	r.row(walletID, tokenID).TimelockExpires = earliest
	return nil
}

func (r *fakeWalletBalanceRepo) Get(ctx context.Context, walletID, tokenID string) (*domain.WalletBalance, error) {
	b, ok := r.w.walBal[balKey{walletID, tokenID}]
	if !ok {
		return nil, nil
	}
	return &domain.WalletBalance{WalletID: walletID, TokenID: tokenID, Balance: *b}, nil
}

func (r *fakeWalletBalanceRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.WalletBalance, error) {
	var out []domain.WalletBalance
	for k, b := range r.w.walBal {
		if k.owner == walletID {
			out = append(out, domain.WalletBalance{WalletID: k.owner, TokenID: k.token, Balance: *b})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenID < out[j].TokenID })
	return out, nil
}

func (r *fakeWalletBalanceRepo) Snapshot(ctx context.Context, walletID string) ([]domain.WalletBalance, error) {
	return r.ListByWallet(ctx, walletID)
}

func (r *fakeWalletBalanceRepo) Reset(ctx context.Context, walletID string) error {
	for k, b := range r.w.walBal {
		if k.owner == walletID {
			*b = domain.Balance{Transactions: b.Transactions, TotalReceived: b.TotalReceived}
		}
	}
	return nil
}

func (r *fakeWalletBalanceRepo) Rebuild(ctx context.Context, walletID, tokenID string, b domain.Balance) error {
	cp := b
	r.w.walBal[balKey{walletID, tokenID}] = &cp
	return nil
}

func (r *fakeWalletBalanceRepo) InitFromAddresses(ctx context.Context, walletID string, addresses []string) error {
	rows, _ := r.addr.ListByAddresses(context.Background(), addresses)
	for _, row := range rows {
		b := r.row(walletID, row.TokenID)
		b.Unlocked += row.Unlocked
		b.Locked += row.Locked
		b.TotalReceived += row.TotalReceived
		b.UnlockedAuthorities = b.UnlockedAuthorities.Union(row.UnlockedAuthorities)
		b.LockedAuthorities = b.LockedAuthorities.Union(row.LockedAuthorities)
		b.TimelockExpires = domain.EarliestTime(b.TimelockExpires, row.TimelockExpires)
		b.Transactions += row.Transactions
	}
	return nil
}

// ---- history, tokens, applied cache ----

type fakeHistoryRepo struct{ w *ledgerWorld }

func appendHistory(dst []domain.TxHistory, rows []domain.TxHistory) []domain.TxHistory {
	for _, h := range rows {
		dup := false
		for _, e := range dst {
			if e.Owner == h.Owner && e.TxID == h.TxID && e.TokenID == h.TokenID {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, h)
		}
	}
	return dst
}

func (r *fakeHistoryRepo) AppendAddress(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error {
	r.w.addrHist = appendHistory(r.w.addrHist, rows)
	return nil
}

func (r *fakeHistoryRepo) AppendWallet(ctx context.Context, tx pgx.Tx, rows []domain.TxHistory) error {
	r.w.walHist = appendHistory(r.w.walHist, rows)
	return nil
}

func (r *fakeHistoryRepo) WalletEntryExists(ctx context.Context, txID string) (bool, error) {
	for _, h := range r.w.addrHist {
		if h.TxID == txID && !h.Voided {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHistoryRepo) MarkVoided(ctx context.Context, txID string) error {
	for i := range r.w.addrHist {
		if r.w.addrHist[i].TxID == txID {
			r.w.addrHist[i].Voided = true
		}
	}
	for i := range r.w.walHist {
		if r.w.walHist[i].TxID == txID {
			r.w.walHist[i].Voided = true
		}
	}
	return nil
}

func (r *fakeHistoryRepo) DeleteVoided(ctx context.Context, txID string) error {
	keep := func(rows []domain.TxHistory) []domain.TxHistory {
		out := rows[:0]
		for _, h := range rows {
			if !(h.TxID == txID && h.Voided) {
				out = append(out, h)
			}
		}
		return out
	}
	r.w.addrHist = keep(r.w.addrHist)
	r.w.walHist = keep(r.w.walHist)
	return nil
}

func (r *fakeHistoryRepo) ListByWallet(ctx context.Context, walletID, tokenID string, limit, offset int) ([]domain.TxHistory, error) {
	var out []domain.TxHistory
	for _, h := range r.w.walHist {
		if h.Owner == walletID && h.TokenID == tokenID && !h.Voided {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func countVoided(rows []domain.TxHistory, owner string, txIDs []string) map[string]int {
	ids := make(map[string]bool, len(txIDs))
	for _, id := range txIDs {
		ids[id] = true
	}
	type seenKey struct{ tx, token string }
	seen := make(map[seenKey]bool)
	out := make(map[string]int)
	for _, h := range rows {
		if h.Voided && ids[h.TxID] && (owner == "" || h.Owner == owner) {
			k := seenKey{h.TxID, h.TokenID}
			if !seen[k] {
				seen[k] = true
				out[h.TokenID]++
			}
		}
	}
	return out
}

func (r *fakeHistoryRepo) CountVoidedByAddress(ctx context.Context, address string, txIDs []string) (map[string]int, error) {
	return countVoided(r.w.addrHist, address, txIDs), nil
}

func (r *fakeHistoryRepo) CountVoidedByWallet(ctx context.Context, walletID string, txIDs []string) (map[string]int, error) {
	return countVoided(r.w.walHist, walletID, txIDs), nil
}

func (r *fakeHistoryRepo) CountVoidedByToken(ctx context.Context, txIDs []string) (map[string]int, error) {
	return countVoided(r.w.addrHist, "", txIDs), nil
}

type fakeTokenRepo struct{ w *ledgerWorld }

func (r *fakeTokenRepo) IncrementTransactions(ctx context.Context, tx pgx.Tx, tokenID string) error {
	r.w.tokens[tokenID]++
	return nil
}

func (r *fakeTokenRepo) DecrementTransactions(ctx context.Context, tokenID string, by int) error {
	r.w.tokens[tokenID] -= by
	if r.w.tokens[tokenID] < 0 {
		r.w.tokens[tokenID] = 0
	}
	return nil
}

func (r *fakeTokenRepo) Get(ctx context.Context, tokenID string) (*domain.Token, error) {
	n, ok := r.w.tokens[tokenID]
	if !ok {
		return nil, nil
	}
	return &domain.Token{ID: tokenID, Transactions: n}, nil
}

type fakeAppliedCache struct{ w *ledgerWorld }

func (c *fakeAppliedCache) IsApplied(ctx context.Context, txID string) (bool, error) {
	return c.w.applied[txID], nil
}

func (c *fakeAppliedCache) MarkApplied(ctx context.Context, txID string, ttl time.Duration) error {
	c.w.applied[txID] = true
	return nil
}

func (c *fakeAppliedCache) Clear(ctx context.Context, txID string) error {
	delete(c.w.applied, txID)
	return nil
}

var (
	_ ports.DBTransactor             = fakeTransactor{}
	_ ports.UTXORepository           = (*fakeUTXORepo)(nil)
	_ ports.AddressRepository        = (*fakeAddressRepo)(nil)
	_ ports.AddressBalanceRepository = (*fakeAddrBalanceRepo)(nil)
	_ ports.WalletBalanceRepository  = (*fakeWalletBalanceRepo)(nil)
	_ ports.TxHistoryRepository      = (*fakeHistoryRepo)(nil)
	_ ports.TokenRepository          = (*fakeTokenRepo)(nil)
	_ ports.AppliedTxCache           = (*fakeAppliedCache)(nil)
)
