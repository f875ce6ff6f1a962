package settlement

import (
	"math/big"
	"testing"

	"github.com/ch1ch0gz/NFTMortgage/lib"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeAdapterSettle(t *testing.T) {
	bank := NewMemoryBank()
	payer := lib.GetRandomAddr()
	payee := lib.GetRandomAddr()
	bank.Deposit(payer, big.NewInt(100))

	adapter := NewNativeAdapter(bank)
	require.NoError(t, adapter.Settle(payer, payee, big.NewInt(60)))

	assert.Zero(t, bank.BalanceOf(payer).Cmp(big.NewInt(40)))
	assert.Zero(t, bank.BalanceOf(payee).Cmp(big.NewInt(60)))
}

func TestNativeAdapterInsufficientFunds(t *testing.T) {
	bank := NewMemoryBank()
	payer := lib.GetRandomAddr()
	payee := lib.GetRandomAddr()
	bank.Deposit(payer, big.NewInt(10))

	adapter := NewNativeAdapter(bank)
	err := adapter.Settle(payer, payee, big.NewInt(60))
	assert.ErrorIs(t, err, ErrSettlementFailed)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// all-or-nothing, no partial movement
	assert.Zero(t, bank.BalanceOf(payer).Cmp(big.NewInt(10)))
	assert.Zero(t, bank.BalanceOf(payee).Sign())
}

func TestTokenAdapterRequiresAllowance(t *testing.T) {
	token := NewMemoryToken()
	escrow := lib.GetRandomAddr()
	payer := lib.GetRandomAddr()
	payee := lib.GetRandomAddr()
	token.Mint(payer, big.NewInt(100))

	adapter := NewTokenAdapter(token, escrow)

	err := adapter.Settle(payer, payee, big.NewInt(50))
	assert.ErrorIs(t, err, ErrSettlementFailed)
	assert.ErrorIs(t, err, ErrAllowanceTooLow)

	token.Approve(payer, escrow, big.NewInt(50))
	require.NoError(t, adapter.Settle(payer, payee, big.NewInt(50)))

	assert.Zero(t, token.BalanceOf(payer).Cmp(big.NewInt(50)))
	assert.Zero(t, token.BalanceOf(payee).Cmp(big.NewInt(50)))
	assert.Zero(t, token.Allowance(payer, escrow).Sign())
}

func TestTokenAdapterAllowanceWithoutBalance(t *testing.T) {
	token := NewMemoryToken()
	escrow := lib.GetRandomAddr()
	payer := lib.GetRandomAddr()
	token.Approve(payer, escrow, big.NewInt(50))

	adapter := NewTokenAdapter(token, escrow)
	err := adapter.Settle(payer, lib.GetRandomAddr(), big.NewInt(50))
	assert.ErrorIs(t, err, ErrSettlementFailed)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestFactorySelectsVariant(t *testing.T) {
	bank := NewMemoryBank()
	token := NewMemoryToken()
	escrow := lib.GetRandomAddr()
	tokenAddr := lib.GetRandomAddr()

	factory := NewFactory(bank, escrow)
	factory.RegisterToken(tokenAddr, token)

	native, err := factory.SettlerFor(common.Address{})
	require.NoError(t, err)
	assert.IsType(t, &NativeAdapter{}, native)

	tokenAdapter, err := factory.SettlerFor(tokenAddr)
	require.NoError(t, err)
	assert.IsType(t, &TokenAdapter{}, tokenAdapter)

	_, err = factory.SettlerFor(lib.GetRandomAddr())
	assert.ErrorIs(t, err, ErrUnknownAsset)
}
