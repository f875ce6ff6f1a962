package custody

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownToken  = errors.New("unknown token")
	ErrNotOwner      = errors.New("caller is not the token owner")
	ErrNotApproved   = errors.New("escrow is not approved for the token")
	ErrAlreadyMinted = errors.New("token already minted")
)

type tokenKey struct {
	collection common.Address
	tokenID    string
}

func keyOf(collection common.Address, tokenID *big.Int) tokenKey {
	return tokenKey{collection: collection, tokenID: tokenID.String()}
}

// MemoryRegistry is an in-process collateral custody collaborator with
// ERC721-shaped ownership and single-operator approval semantics. Used by
// tests and the local simulator binary.
type MemoryRegistry struct {
	mu        sync.Mutex
	owners    map[tokenKey]common.Address
	approvals map[tokenKey]common.Address
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		owners:    make(map[tokenKey]common.Address),
		approvals: make(map[tokenKey]common.Address),
	}
}

func (r *MemoryRegistry) Mint(owner, collection common.Address, tokenID *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(collection, tokenID)
	if _, ok := r.owners[key]; ok {
		return ErrAlreadyMinted
	}
	r.owners[key] = owner
	return nil
}

// Approve authorizes the operator to move the token once
func (r *MemoryRegistry) Approve(caller, operator, collection common.Address, tokenID *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(collection, tokenID)
	owner, ok := r.owners[key]
	if !ok {
		return ErrUnknownToken
	}
	if owner != caller {
		return ErrNotOwner
	}
	r.approvals[key] = operator
	return nil
}

func (r *MemoryRegistry) OwnerOf(collection common.Address, tokenID *big.Int) (common.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[keyOf(collection, tokenID)]
	if !ok {
		return common.Address{}, ErrUnknownToken
	}
	return owner, nil
}

func (r *MemoryRegistry) TransferInto(owner, escrow common.Address, collection common.Address, tokenID *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(collection, tokenID)
	current, ok := r.owners[key]
	if !ok {
		return ErrUnknownToken
	}
	if current != owner {
		return fmt.Errorf("%w: owner is %s", ErrNotOwner, current.Hex())
	}
	if r.approvals[key] != escrow {
		return ErrNotApproved
	}

	r.owners[key] = escrow
	delete(r.approvals, key)
	return nil
}

func (r *MemoryRegistry) TransferOut(escrow, recipient common.Address, collection common.Address, tokenID *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(collection, tokenID)
	current, ok := r.owners[key]
	if !ok {
		return ErrUnknownToken
	}
	if current != escrow {
		return fmt.Errorf("%w: owner is %s", ErrNotOwner, current.Hex())
	}

	r.owners[key] = recipient
	return nil
}

var _ interfaces.ICollateralRegistry = new(MemoryRegistry)
