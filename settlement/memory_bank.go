package settlement

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("negative amount")
)

// MemoryBank is an in-process native-currency ledger for tests and the local
// simulator binary.
type MemoryBank struct {
	mu       sync.Mutex
	balances map[common.Address]*big.Int
}

func NewMemoryBank() *MemoryBank {
	return &MemoryBank{balances: make(map[common.Address]*big.Int)}
}

func (b *MemoryBank) Deposit(addr common.Address, amount *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(addr, amount)
}

func (b *MemoryBank) BalanceOf(addr common.Address) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if balance, ok := b.balances[addr]; ok {
		return new(big.Int).Set(balance)
	}
	return new(big.Int)
}

func (b *MemoryBank) Transfer(from, to common.Address, amount *big.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	balance, ok := b.balances[from]
	if !ok || balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	balance.Sub(balance, amount)
	b.credit(to, amount)
	return nil
}

func (b *MemoryBank) credit(addr common.Address, amount *big.Int) {
	if balance, ok := b.balances[addr]; ok {
		balance.Add(balance, amount)
		return
	}
	b.balances[addr] = new(big.Int).Set(amount)
}

var _ interfaces.INativeBank = new(MemoryBank)
