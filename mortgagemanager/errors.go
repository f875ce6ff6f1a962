package mortgagemanager

import "errors"

// Every failed call aborts with no state change. The sentinel classifies the
// violated precondition so callers can correct and re-issue.
var (
	ErrHalted                = errors.New("ledger is halted")
	ErrNotFound              = errors.New("mortgage not found")
	ErrInvalidTerms          = errors.New("invalid mortgage terms")
	ErrNotOwnerOrNotApproved = errors.New("caller does not own the collateral or escrow is not approved")
	ErrAlreadyAccepted       = errors.New("mortgage already accepted")
	ErrWrongDepositAmount    = errors.New("deposit amount does not match")
	ErrWrongPaymentAmount    = errors.New("payment amount does not match")
	ErrPeriodAlreadyPaid     = errors.New("current period already paid")
	ErrNotActive             = errors.New("mortgage is not active")
	ErrNotDefaulted          = errors.New("mortgage is not defaulted")
	ErrUnauthorized          = errors.New("caller is not authorized")
)
