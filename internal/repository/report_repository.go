package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/gigledger/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ProfessionEarnings sums paid job prices per contractor profession over
// the inclusive payment-date window, highest total first. Ties resolve
// lexicographically on the profession name so results are deterministic.
func (r *ReportRepository) ProfessionEarnings(ctx context.Context, start, end time.Time) ([]model.ProfessionEarnings, error) {
	var rows []model.ProfessionEarnings
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			contractor.profession AS profession,
			SUM(j.price) AS total_earned
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles contractor ON contractor.id = c.contractor_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY contractor.profession
		ORDER BY total_earned DESC, profession ASC
	`, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopClients sums paid job prices per client over the inclusive window
// and returns the top spenders. Ties resolve on last name, first name,
// then id.
func (r *ReportRepository) TopClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpend, error) {
	var rows []model.ClientSpend
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			client.id AS client_id,
			client.first_name || ' ' || client.last_name AS full_name,
			SUM(j.price) AS total_paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles client ON client.id = c.client_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY client.id, client.first_name, client.last_name
		ORDER BY total_paid DESC, client.last_name ASC, client.first_name ASC, client.id ASC
		LIMIT ?
	`, start, end, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
