package mortgagemanager

import (
	"time"

	"github.com/ch1ch0gz/NFTMortgage/mortgage"
	"github.com/ch1ch0gz/NFTMortgage/payments"
)

// Summary is the read-only projection of a record for external callers,
// with the derived payment figures precomputed.
type Summary struct {
	ID              uint64
	Status          string
	Seller          string
	Buyer           string
	Collection      string
	TokenID         string
	SettlementAsset string
	Price           string
	Interest        string
	InitialDeposit  string
	Duration        uint64
	PeriodsPaid     uint64
	MonthlyPayment  string
	RemainingBal    string
	FinalBalance    string
	NextDueDate     *time.Time
	InDefault       bool
}

// GetMortgageSummary projects the record against the supplied time. The
// reported status is the effective one, as RefreshStatus would compute it.
func (l *Ledger) GetMortgageSummary(now time.Time, id uint64) (Summary, error) {
	record, ok := l.store.Load(id)
	if !ok {
		return Summary{}, ErrNotFound
	}

	status := l.effectiveStatus(record, now)

	summary := Summary{
		ID:             record.ID,
		Status:         status.String(),
		Seller:         record.Seller.Hex(),
		Collection:     record.Collection.Hex(),
		TokenID:        record.TokenID.String(),
		Price:          record.Price.String(),
		Interest:       record.Interest.String(),
		InitialDeposit: record.InitialDeposit.String(),
		Duration:       record.Duration,
		PeriodsPaid:    record.PeriodsPaid,
		MonthlyPayment: payments.MonthlyPayment(record.Price, record.Interest, record.InitialDeposit, record.Duration).String(),
		RemainingBal:   payments.RemainingBalance(record.Price, record.Interest, record.InitialDeposit, record.Duration, record.PeriodsPaid).String(),
		FinalBalance:   payments.FinalBalance(record.Price, record.Interest, record.InitialDeposit).String(),
		InDefault:      status == mortgage.StatusDefaulted,
	}

	if record.IsNative() {
		summary.SettlementAsset = "native"
	} else {
		summary.SettlementAsset = record.Token.Hex()
	}
	if record.HasBuyer() {
		summary.Buyer = record.Buyer.Hex()
	}
	if status == mortgage.StatusActive {
		due := l.schedule.NextDueDate(record.LastPayment)
		summary.NextDueDate = &due
	}

	return summary, nil
}
