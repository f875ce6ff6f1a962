// Package settlement implements the exact-amount value-transfer capability
// used by the escrow ledger, with a native-currency variant (attached-value
// push) and a fungible-token variant (allowance pull).
package settlement

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ch1ch0gz/NFTMortgage/lib"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrSettlementFailed = errors.New("settlement failed")
	ErrUnknownAsset     = errors.New("unknown settlement asset")
	ErrAllowanceTooLow  = errors.New("allowance below required amount")
)

// NativeAdapter pushes attached native value directly to the recipient.
// A rejected receipt is a hard failure of the whole operation.
type NativeAdapter struct {
	bank interfaces.INativeBank
}

func NewNativeAdapter(bank interfaces.INativeBank) *NativeAdapter {
	return &NativeAdapter{bank: bank}
}

func (a *NativeAdapter) Settle(payer, payee common.Address, amount *big.Int) error {
	if err := a.bank.Transfer(payer, payee, amount); err != nil {
		return lib.WrapError(ErrSettlementFailed, err)
	}
	return nil
}

// TokenAdapter pulls funds via a transfer-on-behalf call. The payer must have
// pre-authorized the escrow identity for at least the required amount.
type TokenAdapter struct {
	token  interfaces.IFungibleToken
	escrow common.Address
}

func NewTokenAdapter(token interfaces.IFungibleToken, escrow common.Address) *TokenAdapter {
	return &TokenAdapter{token: token, escrow: escrow}
}

func (a *TokenAdapter) Settle(payer, payee common.Address, amount *big.Int) error {
	if a.token.Allowance(payer, a.escrow).Cmp(amount) < 0 {
		return lib.WrapError(ErrSettlementFailed, ErrAllowanceTooLow)
	}
	if err := a.token.TransferFrom(a.escrow, payer, payee, amount); err != nil {
		return lib.WrapError(ErrSettlementFailed, err)
	}
	return nil
}

// Factory selects the adapter variant by settlement asset. The zero address
// maps to the native adapter, any other address must be a registered token.
type Factory struct {
	mu     sync.Mutex
	native *NativeAdapter
	tokens map[common.Address]*TokenAdapter
	escrow common.Address
}

func NewFactory(bank interfaces.INativeBank, escrow common.Address) *Factory {
	return &Factory{
		native: NewNativeAdapter(bank),
		tokens: make(map[common.Address]*TokenAdapter),
		escrow: escrow,
	}
}

func (f *Factory) RegisterToken(addr common.Address, token interfaces.IFungibleToken) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[addr] = NewTokenAdapter(token, f.escrow)
}

func (f *Factory) SettlerFor(token common.Address) (interfaces.ISettlementAdapter, error) {
	if token == (common.Address{}) {
		return f.native, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	adapter, ok := f.tokens[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, token.Hex())
	}
	return adapter, nil
}

var (
	_ interfaces.ISettlementAdapter = new(NativeAdapter)
	_ interfaces.ISettlementAdapter = new(TokenAdapter)
	_ interfaces.ISettlementFactory = new(Factory)
)
