package mortgage

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Status uint8

const (
	StatusListed Status = iota
	StatusActive
	StatusCompleted
	StatusDefaulted
	StatusLiquidated
)

func (s Status) String() string {
	switch s {
	case StatusListed:
		return "listed"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusDefaulted:
		return "defaulted"
	case StatusLiquidated:
		return "liquidated"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can leave the status
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusLiquidated
}

// Record is a single escrow agreement. Seller, collateral reference, terms
// and settlement asset are fixed at creation; Buyer is bound once at
// acceptance. Records are never deleted, terminal states stay queryable.
type Record struct {
	ID             uint64
	Seller         common.Address
	Buyer          common.Address // zero until a request is accepted
	Collection     common.Address
	TokenID        *big.Int
	Price          *big.Int
	Interest       *big.Int
	InitialDeposit *big.Int
	Duration       uint64
	Token          common.Address // settlement asset, zero address means native currency
	PeriodsPaid    uint64
	LastPayment    time.Time // acceptance time or most recent accepted payment
	Status         Status
}

func NewRecord(id uint64, seller, collection common.Address, tokenID, price, deposit, interest *big.Int, duration uint64, token common.Address) *Record {
	return &Record{
		ID:             id,
		Seller:         seller,
		Collection:     collection,
		TokenID:        new(big.Int).Set(tokenID),
		Price:          new(big.Int).Set(price),
		Interest:       new(big.Int).Set(interest),
		InitialDeposit: new(big.Int).Set(deposit),
		Duration:       duration,
		Token:          token,
		Status:         StatusListed,
	}
}

func (r *Record) HasBuyer() bool {
	return r.Buyer != (common.Address{})
}

func (r *Record) IsNative() bool {
	return r.Token == (common.Address{})
}

func (r *Record) Copy() Record {
	return Record{
		ID:             r.ID,
		Seller:         r.Seller,
		Buyer:          r.Buyer,
		Collection:     r.Collection,
		TokenID:        new(big.Int).Set(r.TokenID),
		Price:          new(big.Int).Set(r.Price),
		Interest:       new(big.Int).Set(r.Interest),
		InitialDeposit: new(big.Int).Set(r.InitialDeposit),
		Duration:       r.Duration,
		Token:          r.Token,
		PeriodsPaid:    r.PeriodsPaid,
		LastPayment:    r.LastPayment,
		Status:         r.Status,
	}
}
