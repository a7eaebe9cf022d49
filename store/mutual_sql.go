package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/sparadrap/pharmacie-api/domain"
)

// MutualSQLStore persists mutuals to PostgreSQL over the documented
// `mutuals` table. The running application does not depend on it; when a
// DATABASE_URL is configured, the seeded in-memory mutuals are written
// through at startup and mutations are mirrored.
type MutualSQLStore struct {
	db *sql.DB
}

const mutualsSchema = `
CREATE TABLE IF NOT EXISTS mutuals (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	street TEXT NOT NULL,
	zip_code TEXT NOT NULL,
	city TEXT NOT NULL,
	department_code TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	email TEXT NOT NULL,
	reimbursement_rate DOUBLE PRECISION NOT NULL
)`

// OpenMutualSQLStore connects to PostgreSQL and ensures the mutuals
// table exists.
func OpenMutualSQLStore(ctx context.Context, databaseURL string) (*MutualSQLStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if _, err := db.ExecContext(ctx, mutualsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create mutuals table: %w", err)
	}

	return &MutualSQLStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *MutualSQLStore) Close() error {
	return s.db.Close()
}

// Insert writes a mutual row.
func (s *MutualSQLStore) Insert(ctx context.Context, m *domain.Mutual) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mutuals (id, name, street, zip_code, city, department_code, phone_number, email, reimbursement_rate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		m.ID, m.Name, m.Address.Street, m.Address.ZipCode, m.Address.City,
		m.Department.String(), m.PhoneNumber, m.Email, m.ReimbursementRate)
	if err != nil {
		return fmt.Errorf("failed to insert mutual %s: %w", m.Name, err)
	}
	return nil
}

// GetByID reads one mutual row.
func (s *MutualSQLStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mutual, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, street, zip_code, city, department_code, phone_number, email, reimbursement_rate
		 FROM mutuals WHERE id = $1`, id)

	m, err := scanMutual(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mutual %s: %w", id, err)
	}
	return m, nil
}

// GetAll reads every mutual row in name order.
func (s *MutualSQLStore) GetAll(ctx context.Context) ([]*domain.Mutual, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, street, zip_code, city, department_code, phone_number, email, reimbursement_rate
		 FROM mutuals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutuals: %w", err)
	}
	defer rows.Close()

	var mutuals []*domain.Mutual
	for rows.Next() {
		m, err := scanMutual(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mutual row: %w", err)
		}
		mutuals = append(mutuals, m)
	}
	return mutuals, rows.Err()
}

// Update rewrites a mutual row.
func (s *MutualSQLStore) Update(ctx context.Context, m *domain.Mutual) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE mutuals SET name = $2, street = $3, zip_code = $4, city = $5,
		 department_code = $6, phone_number = $7, email = $8, reimbursement_rate = $9
		 WHERE id = $1`,
		m.ID, m.Name, m.Address.Street, m.Address.ZipCode, m.Address.City,
		m.Department.String(), m.PhoneNumber, m.Email, m.ReimbursementRate)
	if err != nil {
		return fmt.Errorf("failed to update mutual %s: %w", m.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a mutual row.
func (s *MutualSQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM mutuals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mutual %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SyncAll writes through every given mutual, used at startup to mirror
// the seeded registry.
func (s *MutualSQLStore) SyncAll(ctx context.Context, mutuals []*domain.Mutual) error {
	for _, m := range mutuals {
		if err := s.Insert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMutual(row rowScanner) (*domain.Mutual, error) {
	var m domain.Mutual
	var departmentCode string
	err := row.Scan(&m.ID, &m.Name, &m.Address.Street, &m.Address.ZipCode, &m.Address.City,
		&departmentCode, &m.PhoneNumber, &m.Email, &m.ReimbursementRate)
	if err != nil {
		return nil, err
	}
	m.Department = domain.Department(departmentCode)
	return &m, nil
}
