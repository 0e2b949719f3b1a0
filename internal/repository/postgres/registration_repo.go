package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, name, email, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, reg.EventID, reg.Name, reg.Email, reg.Timestamp).
		Scan(&reg.ID)
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, name, email, timestamp
		FROM registrations
		WHERE event_id = $1
		ORDER BY timestamp DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.Email, &reg.Timestamp); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM registrations`)
	return err
}
