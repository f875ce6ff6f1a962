package interfaces

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ISettlementAdapter moves an exact amount of the settlement asset from payer
// to payee. No partial acceptance, no change-making: either the whole amount
// moves or the call fails with no effect.
type ISettlementAdapter interface {
	Settle(payer, payee common.Address, amount *big.Int) error
}

// ISettlementFactory selects the adapter variant for a record's settlement
// asset. The zero address stands for the native currency.
type ISettlementFactory interface {
	SettlerFor(token common.Address) (ISettlementAdapter, error)
}

// IFungibleToken is the ERC20-shaped boundary used by the token adapter.
// TransferFrom is a transfer-on-behalf call spending the spender's allowance.
type IFungibleToken interface {
	BalanceOf(owner common.Address) *big.Int
	Allowance(owner, spender common.Address) *big.Int
	TransferFrom(spender, owner, recipient common.Address, amount *big.Int) error
}

// INativeBank is the attached-value boundary for native-currency settlement.
type INativeBank interface {
	BalanceOf(addr common.Address) *big.Int
	Transfer(from, to common.Address, amount *big.Int) error
}
