package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrIntegrity marks store states that violate ledger invariants.
	// Unreachable in correct operation; surfaced apart from business
	// rejections so operators can tell broken data from disallowed use.
	ErrIntegrity = errors.New("data integrity violation")
)
