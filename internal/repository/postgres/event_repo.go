package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	e := &domain.Event{}
	var dateNull sql.NullTime
	var descNull, locNull sql.NullString
	if err := scan(&e.ID, &e.Title, &descNull, &dateNull, &locNull, &e.Category); err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	if dateNull.Valid {
		e.Date = &dateNull.Time
	}
	if locNull.Valid {
		e.Location = locNull.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, category
		FROM events
		ORDER BY date ASC NULLS LAST
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, category
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, location, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, nullString(e.Description), nullTime(e.Date), nullString(e.Location), e.Category,
	).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, id, title, description string, date *time.Time, location string) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, location = $4
		WHERE id = $5
		RETURNING id, title, description, date, location, category
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		title, nullString(description), nullTime(date), nullString(location), id,
	).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events`)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
