package settlement

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ethereum/go-ethereum/common"
)

var ErrNotAllowed = errors.New("transfer exceeds allowance")

// MemoryToken is an in-process fungible token with ERC20 allowance semantics
type MemoryToken struct {
	mu         sync.Mutex
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int // owner -> spender -> amount
}

func NewMemoryToken() *MemoryToken {
	return &MemoryToken{
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (t *MemoryToken) Mint(addr common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if balance, ok := t.balances[addr]; ok {
		balance.Add(balance, amount)
		return
	}
	t.balances[addr] = new(big.Int).Set(amount)
}

func (t *MemoryToken) BalanceOf(owner common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if balance, ok := t.balances[owner]; ok {
		return new(big.Int).Set(balance)
	}
	return new(big.Int)
}

func (t *MemoryToken) Approve(owner, spender common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.allowances[owner]; !ok {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *MemoryToken) Allowance(owner, spender common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.allowance(owner, spender))
}

func (t *MemoryToken) TransferFrom(spender, owner, recipient common.Address, amount *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	allowance := t.allowance(owner, spender)
	if allowance.Cmp(amount) < 0 {
		return ErrNotAllowed
	}
	balance, ok := t.balances[owner]
	if !ok || balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	allowance.Sub(allowance, amount)
	balance.Sub(balance, amount)
	if recipientBalance, ok := t.balances[recipient]; ok {
		recipientBalance.Add(recipientBalance, amount)
	} else {
		t.balances[recipient] = new(big.Int).Set(amount)
	}
	return nil
}

func (t *MemoryToken) allowance(owner, spender common.Address) *big.Int {
	if spenders, ok := t.allowances[owner]; ok {
		if amount, ok := spenders[spender]; ok {
			return amount
		}
	}
	return new(big.Int)
}

var _ interfaces.IFungibleToken = new(MemoryToken)
