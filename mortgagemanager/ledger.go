package mortgagemanager

import (
	"math/big"
	"time"

	"github.com/ch1ch0gz/NFTMortgage/data"
	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ch1ch0gz/NFTMortgage/lib"
	"github.com/ch1ch0gz/NFTMortgage/mortgage"
	"github.com/ch1ch0gz/NFTMortgage/payments"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/slices"

	"go.uber.org/atomic"
)

// Ledger owns the mortgage id -> record map and is the single source of truth
// for lifecycle state. The host execution context serializes all mutating
// calls and supplies the caller identity and timestamp per call; the ledger
// never reads a wall clock of its own. Ids are sequential starting at 1 and
// never reused.
type Ledger struct {
	// dependencies
	registry interfaces.ICollateralRegistry
	settlers interfaces.ISettlementFactory
	journal  *mortgage.Journal
	log      interfaces.ILogger

	store    interfaces.ICollection[uint64, *mortgage.Record]
	schedule payments.Schedule
	escrow   common.Address
	admin    common.Address

	nextID *atomic.Uint64
	halted *atomic.Bool
}

func NewLedger(
	registry interfaces.ICollateralRegistry,
	settlers interfaces.ISettlementFactory,
	journal *mortgage.Journal,
	schedule payments.Schedule,
	escrow common.Address,
	admin common.Address,
	log interfaces.ILogger,
) *Ledger {
	if journal == nil {
		journal = mortgage.NewJournal(mortgage.DefaultJournalCapacity)
	}

	return &Ledger{
		registry: registry,
		settlers: settlers,
		journal:  journal,
		log:      log,
		store:    data.NewCollection[uint64, *mortgage.Record](),
		schedule: schedule,
		escrow:   escrow,
		admin:    admin,
		nextID:   atomic.NewUint64(0),
		halted:   atomic.NewBool(false),
	}
}

// CreateMortgage escrows the caller's collateral and lists a new agreement.
// The caller must own the referenced token and have pre-authorized the escrow
// identity with the custody collaborator.
func (l *Ledger) CreateMortgage(caller common.Address, now time.Time, price *big.Int, collection common.Address, tokenID *big.Int, deposit, interest *big.Int, duration uint64, token common.Address) (uint64, error) {
	if l.halted.Load() {
		return 0, ErrHalted
	}
	if err := validateTerms(price, deposit, interest, duration); err != nil {
		return 0, err
	}
	// the settlement asset must be resolvable before listing, not at the
	// first deposit attempt
	if _, err := l.settlers.SettlerFor(token); err != nil {
		return 0, lib.WrapError(ErrInvalidTerms, err)
	}

	if err := l.registry.TransferInto(caller, l.escrow, collection, tokenID); err != nil {
		return 0, lib.WrapError(ErrNotOwnerOrNotApproved, err)
	}

	id := l.nextID.Add(1)
	record := mortgage.NewRecord(id, caller, collection, tokenID, price, deposit, interest, duration, token)
	l.store.Store(id, record)

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.MortgageCreatedHash,
		Name:       "mortgageCreated",
		MortgageID: id,
		Actor:      caller,
		At:         now,
	})
	l.log.Infof("mortgage %d listed by %s", id, lib.AddrShort(caller.Hex()))

	return id, nil
}

// RequestMortgage binds the caller as buyer. The supplied amount must exactly
// equal the initial deposit, which moves directly from buyer to seller; only
// the collateral is held in escrow. First accepted request wins.
func (l *Ledger) RequestMortgage(caller common.Address, now time.Time, id uint64, amount *big.Int) error {
	if l.halted.Load() {
		return ErrHalted
	}
	record, ok := l.store.Load(id)
	if !ok {
		return ErrNotFound
	}
	if record.Status != mortgage.StatusListed || record.HasBuyer() {
		return ErrAlreadyAccepted
	}
	if amount.Cmp(record.InitialDeposit) != 0 {
		return ErrWrongDepositAmount
	}

	settler, err := l.settlers.SettlerFor(record.Token)
	if err != nil {
		return err
	}
	if err := settler.Settle(caller, record.Seller, amount); err != nil {
		return err
	}

	record.Buyer = caller
	record.LastPayment = now
	record.Status = mortgage.StatusActive

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.MortgageRequestedHash,
		Name:       "mortgageRequested",
		MortgageID: id,
		Actor:      caller,
		Amount:     new(big.Int).Set(amount),
		At:         now,
	})
	l.log.Infof("mortgage %d accepted by %s", id, lib.AddrShort(caller.Hex()))

	return nil
}

// MonthlyPayment returns the per-period installment. Pure query.
func (l *Ledger) MonthlyPayment(id uint64) (*big.Int, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	return payments.MonthlyPayment(record.Price, record.Interest, record.InitialDeposit, record.Duration), nil
}

// RemainingBalance returns the lump sum required to close out early. Pure query.
func (l *Ledger) RemainingBalance(id uint64) (*big.Int, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	return payments.RemainingBalance(record.Price, record.Interest, record.InitialDeposit, record.Duration, record.PeriodsPaid), nil
}

// FinalBalance returns the total owed over the life of the agreement before
// any payments. Pure query.
func (l *Ledger) FinalBalance(id uint64) (*big.Int, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	return payments.FinalBalance(record.Price, record.Interest, record.InitialDeposit), nil
}

// RepayPeriod accepts exactly one installment per elapsed period from the
// bound buyer. The guard is a time comparison against the last accepted
// payment, so a late payment still succeeds exactly once. The final period's
// installment absorbs the rounding remainder; on the last accepted payment
// the collateral moves to the buyer and the record completes.
func (l *Ledger) RepayPeriod(caller common.Address, now time.Time, id uint64, amount *big.Int) error {
	if l.halted.Load() {
		return ErrHalted
	}
	record, ok := l.store.Load(id)
	if !ok {
		return ErrNotFound
	}
	if record.Status != mortgage.StatusActive {
		return ErrNotActive
	}
	if caller != record.Buyer {
		return ErrUnauthorized
	}
	if !l.schedule.PeriodElapsed(record.LastPayment, now) {
		return ErrPeriodAlreadyPaid
	}

	due := payments.InstallmentDue(record.Price, record.Interest, record.InitialDeposit, record.Duration, record.PeriodsPaid)
	if amount.Cmp(due) != 0 {
		return ErrWrongPaymentAmount
	}

	settler, err := l.settlers.SettlerFor(record.Token)
	if err != nil {
		return err
	}
	if err := settler.Settle(caller, record.Seller, amount); err != nil {
		return err
	}

	if record.PeriodsPaid+1 == record.Duration {
		// escrow owns the collateral for the whole Active lifetime, this
		// transfer cannot be rejected by the custody collaborator
		if err := l.registry.TransferOut(l.escrow, record.Buyer, record.Collection, record.TokenID); err != nil {
			return err
		}
	}

	record.PeriodsPaid++
	record.LastPayment = now

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.PaymentReceivedHash,
		Name:       "paymentReceived",
		MortgageID: id,
		Actor:      caller,
		Amount:     new(big.Int).Set(amount),
		At:         now,
	})

	if record.PeriodsPaid == record.Duration {
		record.Status = mortgage.StatusCompleted
		l.journal.Record(mortgage.Event{
			Topic:      mortgage.MortgageCompletedHash,
			Name:       "mortgageCompleted",
			MortgageID: id,
			Actor:      caller,
			At:         now,
		})
		l.log.Infof("mortgage %d completed, collateral released to buyer", id)
		return nil
	}

	l.log.Debugf("mortgage %d period %d/%d paid", id, record.PeriodsPaid, record.Duration)
	return nil
}

// RepayFull closes out the agreement early with a lump sum exactly equal to
// RemainingBalance. Collateral moves to the buyer immediately.
func (l *Ledger) RepayFull(caller common.Address, now time.Time, id uint64, amount *big.Int) error {
	if l.halted.Load() {
		return ErrHalted
	}
	record, ok := l.store.Load(id)
	if !ok {
		return ErrNotFound
	}
	if record.Status != mortgage.StatusActive {
		return ErrNotActive
	}
	if caller != record.Buyer {
		return ErrUnauthorized
	}

	remaining := payments.RemainingBalance(record.Price, record.Interest, record.InitialDeposit, record.Duration, record.PeriodsPaid)
	if amount.Cmp(remaining) != 0 {
		return ErrWrongPaymentAmount
	}

	settler, err := l.settlers.SettlerFor(record.Token)
	if err != nil {
		return err
	}
	if err := settler.Settle(caller, record.Seller, amount); err != nil {
		return err
	}
	if err := l.registry.TransferOut(l.escrow, record.Buyer, record.Collection, record.TokenID); err != nil {
		return err
	}

	record.PeriodsPaid = record.Duration
	record.LastPayment = now
	record.Status = mortgage.StatusCompleted

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.MortgageCompletedHash,
		Name:       "mortgageCompleted",
		MortgageID: id,
		Actor:      caller,
		Amount:     new(big.Int).Set(amount),
		At:         now,
	})
	l.log.Infof("mortgage %d paid off early, collateral released to buyer", id)

	return nil
}

// RefreshStatus recomputes the default condition and persists an
// Active -> Defaulted transition when the due date plus grace has passed
// unpaid. Idempotent.
func (l *Ledger) RefreshStatus(now time.Time, id uint64) (mortgage.Status, error) {
	if l.halted.Load() {
		return 0, ErrHalted
	}
	record, ok := l.store.Load(id)
	if !ok {
		return 0, ErrNotFound
	}

	if record.Status == mortgage.StatusActive && l.schedule.InDefault(record.LastPayment, now) {
		record.Status = mortgage.StatusDefaulted
		l.journal.Record(mortgage.Event{
			Topic:      mortgage.MortgageDefaultedHash,
			Name:       "mortgageDefaulted",
			MortgageID: id,
			At:         now,
		})
		l.log.Warnf("mortgage %d defaulted", id)
	}

	return record.Status, nil
}

// StatusOf is the pure-read variant of RefreshStatus: it reports the status
// the record would have after a refresh without persisting anything.
func (l *Ledger) StatusOf(now time.Time, id uint64) (mortgage.Status, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return 0, ErrNotFound
	}
	return l.effectiveStatus(record, now), nil
}

func (l *Ledger) effectiveStatus(record *mortgage.Record, now time.Time) mortgage.Status {
	if record.Status == mortgage.StatusActive && l.schedule.InDefault(record.LastPayment, now) {
		return mortgage.StatusDefaulted
	}
	return record.Status
}

// Liquidate enforces a default: collateral returns to the seller, all
// payments made to date stay with the seller. Callable by anyone once the
// record is (or would refresh to) Defaulted.
func (l *Ledger) Liquidate(caller common.Address, now time.Time, id uint64) error {
	if l.halted.Load() {
		return ErrHalted
	}
	record, ok := l.store.Load(id)
	if !ok {
		return ErrNotFound
	}
	if l.effectiveStatus(record, now) != mortgage.StatusDefaulted {
		return ErrNotDefaulted
	}

	if err := l.registry.TransferOut(l.escrow, record.Seller, record.Collection, record.TokenID); err != nil {
		return err
	}

	record.Status = mortgage.StatusLiquidated

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.MortgageLiquidatedHash,
		Name:       "mortgageLiquidated",
		MortgageID: id,
		Actor:      caller,
		At:         now,
	})
	l.log.Warnf("mortgage %d liquidated, collateral returned to seller", id)

	return nil
}

// Halt irreversibly disables every mutating operation. Reads keep working so
// the audit trail stays queryable. Gated to the administrator identity.
func (l *Ledger) Halt(caller common.Address, now time.Time) error {
	if caller != l.admin {
		return ErrUnauthorized
	}
	if l.halted.Swap(true) {
		return nil
	}

	l.journal.Record(mortgage.Event{
		Topic:      mortgage.LedgerHaltedHash,
		Name:       "ledgerHalted",
		MortgageID: 0,
		Actor:      caller,
		At:         now,
	})
	l.log.Warnf("ledger halted by %s", lib.AddrShort(caller.Hex()))

	return nil
}

func (l *Ledger) Halted() bool {
	return l.halted.Load()
}

// GetMortgage returns a copy of the record
func (l *Ledger) GetMortgage(id uint64) (mortgage.Record, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return mortgage.Record{}, ErrNotFound
	}
	return record.Copy(), nil
}

// Mortgages returns copies of all records ordered by id
func (l *Ledger) Mortgages() []mortgage.Record {
	records := make([]mortgage.Record, 0, l.store.Len())
	l.store.Range(func(id uint64, record *mortgage.Record) bool {
		records = append(records, record.Copy())
		return true
	})
	slices.SortFunc(records, func(a, b mortgage.Record) bool {
		return a.ID < b.ID
	})
	return records
}

// Events returns the journal snapshot, oldest first
func (l *Ledger) Events() []mortgage.Event {
	return l.journal.Events()
}

func validateTerms(price, deposit, interest *big.Int, duration uint64) error {
	if duration < 1 {
		return ErrInvalidTerms
	}
	if price.Sign() <= 0 || deposit.Sign() < 0 || interest.Sign() < 0 {
		return ErrInvalidTerms
	}
	// a deposit covering the full balance leaves nothing to amortize
	if deposit.Cmp(new(big.Int).Add(price, interest)) >= 0 {
		return ErrInvalidTerms
	}
	return nil
}
