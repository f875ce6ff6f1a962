package wallet

import (
	"fmt"
	"strings"

	"github.com/ch1ch0gz/NFTMortgage/interop"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// EthereumWallet holds the administrator identity that gates the ledger's
// emergency halt.
type EthereumWallet struct {
	address    interop.BlockchainAddress
	privateKey string
}

func NewEthereumWalletFromMnemonic(mnemonic string, accountIndex int) (*EthereumWallet, error) {
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	path := hdwallet.MustParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", accountIndex))

	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, err
	}

	address, err := wallet.Address(account)
	if err != nil {
		return nil, err
	}

	privateKey, err := wallet.PrivateKeyHex(account)
	if err != nil {
		return nil, err
	}

	return &EthereumWallet{
		address:    address,
		privateKey: privateKey,
	}, nil
}

func NewEthereumWalletFromPrivateKey(privateKey string) (*EthereumWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, err
	}

	return &EthereumWallet{
		address:    crypto.PubkeyToAddress(key.PublicKey),
		privateKey: privateKey,
	}, nil
}

func (wallet *EthereumWallet) GetAccountAddress() interop.BlockchainAddress {
	return wallet.address
}

func (wallet *EthereumWallet) GetPrivateKey() string {
	return wallet.privateKey
}
