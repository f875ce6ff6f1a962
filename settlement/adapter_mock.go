package settlement

import (
	"math/big"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ethereum/go-ethereum/common"
)

type AdapterMock struct {
	SettleErr    error
	SettleCalled bool
	LastPayer    common.Address
	LastPayee    common.Address
	LastAmount   *big.Int
}

func (m *AdapterMock) Settle(payer, payee common.Address, amount *big.Int) error {
	m.SettleCalled = true
	m.LastPayer = payer
	m.LastPayee = payee
	m.LastAmount = new(big.Int).Set(amount)
	return m.SettleErr
}

type FactoryMock struct {
	Adapter    *AdapterMock
	SettlerErr error
}

func (m *FactoryMock) SettlerFor(token common.Address) (interfaces.ISettlementAdapter, error) {
	if m.SettlerErr != nil {
		return nil, m.SettlerErr
	}
	return m.Adapter, nil
}

var (
	_ interfaces.ISettlementAdapter = new(AdapterMock)
	_ interfaces.ISettlementFactory = new(FactoryMock)
)
