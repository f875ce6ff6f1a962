package payments

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func TestMonthlyPayment(t *testing.T) {
	// price=10, interest=2, deposit=3, duration=4 -> 2.25 per period
	monthly := MonthlyPayment(eth(10), eth(2), eth(3), 4)
	expected := new(big.Int).Mul(big.NewInt(225), big.NewInt(1e16))
	assert.Zero(t, monthly.Cmp(expected))
}

func TestFinalBalance(t *testing.T) {
	assert.Zero(t, FinalBalance(eth(10), eth(2), eth(3)).Cmp(eth(9)))
}

func TestInstallmentsSumToFinalBalance(t *testing.T) {
	cases := []struct {
		name     string
		price    *big.Int
		interest *big.Int
		deposit  *big.Int
		duration uint64
	}{
		{"evenly divisible", eth(10), eth(2), eth(3), 4},
		{"remainder in last period", big.NewInt(10), big.NewInt(0), big.NewInt(0), 3},
		{"large remainder", big.NewInt(1000), big.NewInt(17), big.NewInt(3), 7},
		{"single period", eth(5), eth(1), eth(2), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum := new(big.Int)
			for paid := uint64(0); paid < tc.duration; paid++ {
				sum.Add(sum, InstallmentDue(tc.price, tc.interest, tc.deposit, tc.duration, paid))
			}
			require.Zero(t, sum.Cmp(FinalBalance(tc.price, tc.interest, tc.deposit)),
				"sum of installments must equal final balance")
		})
	}
}

func TestInstallmentDueAbsorbsRemainder(t *testing.T) {
	// 10 / 3 -> 3 per period, final period owes 4
	assert.Zero(t, InstallmentDue(big.NewInt(10), big.NewInt(0), big.NewInt(0), 3, 0).Cmp(big.NewInt(3)))
	assert.Zero(t, InstallmentDue(big.NewInt(10), big.NewInt(0), big.NewInt(0), 3, 1).Cmp(big.NewInt(3)))
	assert.Zero(t, InstallmentDue(big.NewInt(10), big.NewInt(0), big.NewInt(0), 3, 2).Cmp(big.NewInt(4)))
}

func TestRemainingBalance(t *testing.T) {
	assert.Zero(t, RemainingBalance(eth(10), eth(2), eth(3), 4, 0).Cmp(eth(9)))

	// after one accepted payment of 2.25 the payoff is 6.75
	expected := new(big.Int).Mul(big.NewInt(675), big.NewInt(1e16))
	assert.Zero(t, RemainingBalance(eth(10), eth(2), eth(3), 4, 1).Cmp(expected))

	assert.Zero(t, RemainingBalance(eth(10), eth(2), eth(3), 4, 4).Sign())

	// remainder case: paying off after 2 of 3 periods collects 10-2*3=4
	assert.Zero(t, RemainingBalance(big.NewInt(10), big.NewInt(0), big.NewInt(0), 3, 2).Cmp(big.NewInt(4)))
}

func TestSchedulePeriodElapsed(t *testing.T) {
	schedule := NewSchedule(28*24*time.Hour, 7*24*time.Hour)
	last := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, schedule.PeriodElapsed(last, last))
	assert.False(t, schedule.PeriodElapsed(last, last.Add(schedule.Period-time.Second)))
	assert.True(t, schedule.PeriodElapsed(last, last.Add(schedule.Period)))
	// late payment is still payable
	assert.True(t, schedule.PeriodElapsed(last, last.Add(10*schedule.Period)))
}

func TestScheduleInDefault(t *testing.T) {
	schedule := NewSchedule(28*24*time.Hour, 7*24*time.Hour)
	last := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, schedule.InDefault(last, last.Add(schedule.Period)))
	assert.False(t, schedule.InDefault(last, last.Add(schedule.Period+schedule.Grace)))
	assert.True(t, schedule.InDefault(last, last.Add(schedule.Period+schedule.Grace+time.Second)))
}

func TestNewScheduleDefaults(t *testing.T) {
	schedule := NewSchedule(0, -1)
	assert.Equal(t, DefaultPeriodDuration, schedule.Period)
	assert.Equal(t, DefaultGraceDuration, schedule.Grace)

	custom := NewSchedule(time.Hour, 0)
	assert.Equal(t, time.Hour, custom.Period)
	assert.Equal(t, time.Duration(0), custom.Grace)
}
