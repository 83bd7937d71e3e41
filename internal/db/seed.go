package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Development fixtures mirroring a small marketplace: two clients, two
// contractors, a few contracts with unpaid jobs. Applied only when
// DB_SEED is set and the profiles table is empty.
var seedStatements = []string{
	`INSERT INTO profiles (id, role, first_name, last_name, profession, balance) VALUES
		('11111111-1111-1111-1111-111111111111', 'client', 'Harry', 'Potter', '', 1150.00),
		('22222222-2222-2222-2222-222222222222', 'client', 'Ash', 'Ketchum', '', 11.30),
		('33333333-3333-3333-3333-333333333333', 'contractor', 'John', 'Lenon', 'Musician', 64.00),
		('44444444-4444-4444-4444-444444444444', 'contractor', 'Linus', 'Torvalds', 'Programmer', 1214.00);`,
	`INSERT INTO contracts (id, client_id, contractor_id, terms, status) VALUES
		('aaaaaaaa-0000-0000-0000-000000000001', '11111111-1111-1111-1111-111111111111', '33333333-3333-3333-3333-333333333333', 'bla bla bla', 'in_progress'),
		('aaaaaaaa-0000-0000-0000-000000000002', '11111111-1111-1111-1111-111111111111', '44444444-4444-4444-4444-444444444444', 'bla bla bla', 'in_progress'),
		('aaaaaaaa-0000-0000-0000-000000000003', '22222222-2222-2222-2222-222222222222', '44444444-4444-4444-4444-444444444444', 'bla bla bla', 'new');`,
	`INSERT INTO jobs (contract_id, description, price, paid, payment_date) VALUES
		('aaaaaaaa-0000-0000-0000-000000000001', 'work', 200.00, FALSE, NULL),
		('aaaaaaaa-0000-0000-0000-000000000001', 'work', 201.00, FALSE, NULL),
		('aaaaaaaa-0000-0000-0000-000000000002', 'work', 202.00, TRUE, '2020-08-15T19:11:26.737Z'),
		('aaaaaaaa-0000-0000-0000-000000000002', 'work', 200.00, FALSE, NULL),
		('aaaaaaaa-0000-0000-0000-000000000003', 'work', 121.00, TRUE, '2020-08-14T23:11:26.737Z');`,
}

func runSeed(db *gorm.DB) error {
	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM profiles`).Scan(&count).Error; err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, stmt := range seedStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("seed %d failed: %w", i+1, err)
			}
		}
		return nil
	})
}
