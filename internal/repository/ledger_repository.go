package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigledger/internal/model"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, role, first_name, last_name, profession, balance, created_at
		FROM profiles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&profile).Error; err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

// GetContractForParty returns the contract only when the caller is the
// client or the contractor on it. A contract that exists but belongs to
// other parties is indistinguishable from a missing one.
func (r *LedgerRepository) GetContractForParty(ctx context.Context, contractID, partyID uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE id = ? AND (client_id = ? OR contractor_id = ?)
		LIMIT 1
	`, contractID, partyID, partyID).Scan(&contract).Error; err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *LedgerRepository) ListContractsForParty(ctx context.Context, partyID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE (client_id = ? OR contractor_id = ?)
			AND status <> 'terminated'
		ORDER BY created_at ASC
	`, partyID, partyID).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *LedgerRepository) ListUnpaidJobsForParty(ctx context.Context, partyID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Raw(`
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE (c.client_id = ? OR c.contractor_id = ?)
			AND c.status <> 'terminated'
			AND j.paid = FALSE
		ORDER BY j.created_at ASC
	`, partyID, partyID).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// PayJob settles one job in a single transaction: the job row is locked
// first so concurrent attempts on the same job serialize, then the
// contract and both profiles. Preconditions are re-checked against the
// locked rows, so a loser of the race sees the job as paid.
func (r *LedgerRepository) PayJob(ctx context.Context, callerID, jobID uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Raw(`
			SELECT id, contract_id, description, price, paid, payment_date, created_at
			FROM jobs
			WHERE id = ?
			FOR UPDATE
		`, jobID).Scan(&job).Error; err != nil {
			return err
		}
		if job.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		if job.Paid {
			return ErrJobAlreadyPaid
		}

		var contract model.Contract
		if err := tx.Raw(`
			SELECT id, client_id, contractor_id, terms, status, created_at
			FROM contracts
			WHERE id = ?
			FOR UPDATE
		`, job.ContractID).Scan(&contract).Error; err != nil {
			return err
		}
		if contract.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		if contract.Status == model.ContractStatusTerminated {
			return ErrContractTerminated
		}
		if contract.ClientID != callerID {
			return ErrNotContractClient
		}

		// Stable lock order on profile rows keeps concurrent payments
		// across different jobs deadlock-free.
		var profiles []model.Profile
		if err := tx.Raw(`
			SELECT id, role, first_name, last_name, profession, balance, created_at
			FROM profiles
			WHERE id IN (?, ?)
			ORDER BY id
			FOR UPDATE
		`, contract.ClientID, contract.ContractorID).Scan(&profiles).Error; err != nil {
			return err
		}

		var client, contractor *model.Profile
		for i := range profiles {
			switch profiles[i].ID {
			case contract.ClientID:
				client = &profiles[i]
			case contract.ContractorID:
				contractor = &profiles[i]
			}
		}
		if client == nil || contractor == nil {
			return gorm.ErrRecordNotFound
		}
		if contractor.Role != model.RoleContractor {
			return ErrInvalidContractor
		}
		if client.Balance.LessThan(job.Price) {
			return ErrInsufficientBalance
		}

		if err := tx.Exec(`
			UPDATE profiles SET balance = balance - ? WHERE id = ?
		`, job.Price, client.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, job.Price, contractor.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE jobs SET paid = TRUE, payment_date = ? WHERE id = ?
		`, now, job.ID).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE contracts SET status = 'terminated' WHERE id = ?
		`, contract.ID).Error
	})
}

// Deposit credits a client balance, capped at a fraction of the client's
// outstanding unpaid work. The outstanding sum is computed inside the
// same transaction that locks the profile row, so a concurrent payment
// cannot slip between the check and the credit.
func (r *LedgerRepository) Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, capDivisor int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client model.Profile
		if err := tx.Raw(`
			SELECT id, role, first_name, last_name, profession, balance, created_at
			FROM profiles
			WHERE id = ? AND role = 'client'
			FOR UPDATE
		`, clientID).Scan(&client).Error; err != nil {
			return err
		}
		if client.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		var outstanding decimal.Decimal
		if err := tx.Raw(`
			SELECT COALESCE(SUM(j.price), 0)
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE c.client_id = ?
				AND c.status <> 'terminated'
				AND j.paid = FALSE
		`, clientID).Scan(&outstanding).Error; err != nil {
			return err
		}

		maxDeposit := outstanding.Div(decimal.NewFromInt(capDivisor))
		if amount.GreaterThan(maxDeposit) {
			return ErrDepositCapExceeded
		}

		return tx.Exec(`
			UPDATE profiles SET balance = balance + ? WHERE id = ?
		`, amount, clientID).Error
	})
}
