package interfaces

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ICollateralRegistry is the custody collaborator that owns NFT transfer
// semantics. TransferInto requires prior authorization by the current owner.
type ICollateralRegistry interface {
	OwnerOf(collection common.Address, tokenID *big.Int) (common.Address, error)
	TransferInto(owner, escrow common.Address, collection common.Address, tokenID *big.Int) error
	TransferOut(escrow, recipient common.Address, collection common.Address, tokenID *big.Int) error
}
