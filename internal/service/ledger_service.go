package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigledger/internal/config"
	"github.com/nurpe/gigledger/internal/model"
	"github.com/nurpe/gigledger/internal/repository"
)

// LedgerStore is the transactional entity store the ledger operates on.
// Implementations report missing rows as gorm.ErrRecordNotFound and
// in-transaction precondition failures via the repository sentinels.
type LedgerStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetContractForParty(ctx context.Context, contractID, partyID uuid.UUID) (*model.Contract, error)
	ListContractsForParty(ctx context.Context, partyID uuid.UUID) ([]model.Contract, error)
	ListUnpaidJobsForParty(ctx context.Context, partyID uuid.UUID) ([]model.Job, error)
	PayJob(ctx context.Context, callerID, jobID uuid.UUID, now time.Time) error
	Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, capDivisor int64) error
}

type LedgerService struct {
	store      LedgerStore
	capDivisor int64
	now        func() time.Time
}

func NewLedgerService(store LedgerStore, cfg *config.Config) *LedgerService {
	return &LedgerService{
		store:      store,
		capDivisor: cfg.Ledger.DepositCapDivisor,
		now:        time.Now,
	}
}

// GetOwnProfile returns the caller's profile, including the current
// balance.
func (s *LedgerService) GetOwnProfile(ctx context.Context, principal model.Principal) (*model.Profile, error) {
	profile, err := s.store.GetProfile(ctx, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *LedgerService) GetContract(ctx context.Context, principal model.Principal, contractID uuid.UUID) (*model.Contract, error) {
	contract, err := s.store.GetContractForParty(ctx, contractID, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *LedgerService) ListContracts(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	return s.store.ListContractsForParty(ctx, principal.ProfileID)
}

func (s *LedgerService) ListUnpaidJobs(ctx context.Context, principal model.Principal) ([]model.Job, error) {
	return s.store.ListUnpaidJobsForParty(ctx, principal.ProfileID)
}

// PayJob settles one job on behalf of the paying client. Only the client
// on the job's contract may pay; a contractor calling this is rejected
// up front as a permission failure. The store applies the transfer
// atomically, so a lost race surfaces as ErrConflict with no effect.
func (s *LedgerService) PayJob(ctx context.Context, principal model.Principal, jobID uuid.UUID) error {
	if !principal.IsClient() {
		return fmt.Errorf("%w: only clients can pay for jobs", ErrPermissionDenied)
	}

	err := s.store.PayJob(ctx, principal.ProfileID, jobID, s.now().UTC())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrJobAlreadyPaid):
		return fmt.Errorf("%w: job already paid", ErrConflict)
	case errors.Is(err, repository.ErrContractTerminated):
		return fmt.Errorf("%w: contract is terminated", ErrPermissionDenied)
	case errors.Is(err, repository.ErrNotContractClient):
		return fmt.Errorf("%w: job belongs to another client", ErrPermissionDenied)
	case errors.Is(err, repository.ErrInsufficientBalance):
		return fmt.Errorf("%w: insufficient balance", ErrPermissionDenied)
	case errors.Is(err, repository.ErrInvalidContractor):
		return fmt.Errorf("%w: contractor profile is invalid", ErrIntegrity)
	default:
		return err
	}
}

// Deposit credits a client balance. Callers may fund their own balance;
// the admin capability extends that to any client. The cap against
// outstanding unpaid work is enforced by the store inside the same
// transaction that applies the credit.
func (s *LedgerService) Deposit(ctx context.Context, principal model.Principal, targetClientID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if principal.ProfileID != targetClientID && !principal.IsAdmin() {
		return fmt.Errorf("%w: cannot deposit into another client's balance", ErrPermissionDenied)
	}

	err := s.store.Deposit(ctx, targetClientID, amount, s.capDivisor)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDepositCapExceeded):
		return fmt.Errorf("%w: amount exceeds deposit cap", ErrPermissionDenied)
	default:
		return err
	}
}
