package repository

import "errors"

// Precondition failures detected inside the payment and deposit
// transactions. The service layer maps these onto its public taxonomy.
var (
	ErrJobAlreadyPaid      = errors.New("job already paid")
	ErrContractTerminated  = errors.New("contract terminated")
	ErrNotContractClient   = errors.New("caller is not the contract client")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDepositCapExceeded  = errors.New("deposit cap exceeded")
	ErrInvalidContractor   = errors.New("contract references an invalid contractor profile")
)
