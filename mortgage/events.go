package mortgage

import "github.com/ethereum/go-ethereum/crypto"

const (
	mortgageCreatedSig    = "mortgageCreated(uint256,address)"
	mortgageRequestedSig  = "mortgageRequested(uint256,address)"
	paymentReceivedSig    = "paymentReceived(uint256,address,uint256)"
	mortgageCompletedSig  = "mortgageCompleted(uint256)"
	mortgageDefaultedSig  = "mortgageDefaulted(uint256)"
	mortgageLiquidatedSig = "mortgageLiquidated(uint256)"
	ledgerHaltedSig       = "ledgerHalted(address)"
)

var (
	MortgageCreatedHash    = crypto.Keccak256Hash([]byte(mortgageCreatedSig))
	MortgageRequestedHash  = crypto.Keccak256Hash([]byte(mortgageRequestedSig))
	PaymentReceivedHash    = crypto.Keccak256Hash([]byte(paymentReceivedSig))
	MortgageCompletedHash  = crypto.Keccak256Hash([]byte(mortgageCompletedSig))
	MortgageDefaultedHash  = crypto.Keccak256Hash([]byte(mortgageDefaultedSig))
	MortgageLiquidatedHash = crypto.Keccak256Hash([]byte(mortgageLiquidatedSig))
	LedgerHaltedHash       = crypto.Keccak256Hash([]byte(ledgerHaltedSig))

	MortgageCreatedHex    = MortgageCreatedHash.Hex()
	MortgageRequestedHex  = MortgageRequestedHash.Hex()
	PaymentReceivedHex    = PaymentReceivedHash.Hex()
	MortgageCompletedHex  = MortgageCompletedHash.Hex()
	MortgageDefaultedHex  = MortgageDefaultedHash.Hex()
	MortgageLiquidatedHex = MortgageLiquidatedHash.Hex()
	LedgerHaltedHex       = LedgerHaltedHash.Hex()
)
