// Package payments holds the pure installment and due-date arithmetic for the
// escrow ledger. All monetary amounts are wei-scale big integers; division
// rounds down and the remainder is collected at final settlement: the last
// scheduled installment (and any early payoff) is sized against FinalBalance,
// so the sum of accepted payments never drifts below it.
package payments

import (
	"math/big"
	"time"
)

const (
	DefaultPeriodDuration = 28 * 24 * time.Hour
	DefaultGraceDuration  = 7 * 24 * time.Hour
)

// Schedule is the fixed period length plus the grace window allowed after a
// due date before default may be declared.
type Schedule struct {
	Period time.Duration
	Grace  time.Duration
}

func NewSchedule(period, grace time.Duration) Schedule {
	if period <= 0 {
		period = DefaultPeriodDuration
	}
	if grace < 0 {
		grace = DefaultGraceDuration
	}
	return Schedule{Period: period, Grace: grace}
}

// FinalBalance is the total owed across the life of the agreement before any
// payments: price + interest - initialDeposit.
func FinalBalance(price, interest, deposit *big.Int) *big.Int {
	total := new(big.Int).Add(price, interest)
	return total.Sub(total, deposit)
}

// MonthlyPayment is the per-period installment, rounded down:
// (price + interest - initialDeposit) / duration.
func MonthlyPayment(price, interest, deposit *big.Int, duration uint64) *big.Int {
	return new(big.Int).Quo(FinalBalance(price, interest, deposit), new(big.Int).SetUint64(duration))
}

// InstallmentDue is the exact amount required for the next period. Equal to
// MonthlyPayment for every period except the last, which additionally absorbs
// the rounding remainder.
func InstallmentDue(price, interest, deposit *big.Int, duration, periodsPaid uint64) *big.Int {
	monthly := MonthlyPayment(price, interest, deposit, duration)
	if periodsPaid+1 < duration {
		return monthly
	}

	paid := new(big.Int).Mul(monthly, new(big.Int).SetUint64(duration-1))
	return new(big.Int).Sub(FinalBalance(price, interest, deposit), paid)
}

// RemainingBalance is the lump sum required to close out early:
// FinalBalance - MonthlyPayment * periodsPaid, so an early payoff collects
// the rounding remainder as well.
func RemainingBalance(price, interest, deposit *big.Int, duration, periodsPaid uint64) *big.Int {
	monthly := MonthlyPayment(price, interest, deposit, duration)
	paid := new(big.Int).Mul(monthly, new(big.Int).SetUint64(periodsPaid))
	return paid.Sub(FinalBalance(price, interest, deposit), paid)
}

// NextDueDate is when the next installment becomes payable
func (s Schedule) NextDueDate(lastPayment time.Time) time.Time {
	return lastPayment.Add(s.Period)
}

// DefaultDeadline is the instant after which an unpaid record is in default
func (s Schedule) DefaultDeadline(lastPayment time.Time) time.Time {
	return lastPayment.Add(s.Period + s.Grace)
}

// PeriodElapsed reports whether a full period has passed since the last
// accepted payment. The double-payment guard: a second payment is rejected
// until this turns true, and a late payment still succeeds exactly once.
func (s Schedule) PeriodElapsed(lastPayment, now time.Time) bool {
	return !now.Before(lastPayment.Add(s.Period))
}

// InDefault reports whether the due date plus grace has passed unpaid
func (s Schedule) InDefault(lastPayment, now time.Time) bool {
	return now.After(s.DefaultDeadline(lastPayment))
}
