package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

func (s *Storage) CreateEvent(ctx context.Context, userID int, req *domain.CreateEventRequest) (*domain.CustomEvent, error) {
	const query = `
        INSERT INTO custom_events (user_id, title, times)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, title, times;
    `

	var event domain.CustomEvent
	err := s.pool.QueryRow(ctx, query, userID, req.Title, req.Times).Scan(
		&event.ID, &event.UserID, &event.Title, &event.Times,
	)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (s *Storage) GetEventByID(ctx context.Context, id int) (*domain.CustomEvent, error) {
	const query = `SELECT id, user_id, title, times FROM custom_events WHERE id = $1;`

	var event domain.CustomEvent
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.UserID, &event.Title, &event.Times,
	)
	if err != nil {
		return nil, notFound(err)
	}

	return &event, nil
}

func (s *Storage) GetUserEvents(ctx context.Context, userID int) ([]domain.CustomEvent, error) {
	const query = `
        SELECT id, user_id, title, times
        FROM custom_events
        WHERE user_id = $1
        ORDER BY id;
    `

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, e *domain.CustomEvent) error {
		return r.Scan(&e.ID, &e.UserID, &e.Title, &e.Times)
	})
}

func (s *Storage) UpdateEvent(ctx context.Context, id int, req *domain.UpdateEventRequest) (*domain.CustomEvent, error) {
	const query = `
        UPDATE custom_events
        SET title = COALESCE($2, title),
            times = COALESCE($3, times)
        WHERE id = $1
        RETURNING id, user_id, title, times;
    `

	var event domain.CustomEvent
	err := s.pool.QueryRow(ctx, query, id, req.Title, req.Times).Scan(
		&event.ID, &event.UserID, &event.Title, &event.Times,
	)
	if err != nil {
		return nil, notFound(err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	const deleteMappings = `DELETE FROM schedule_event_map WHERE custom_event_id = $1;`
	const deleteEvent = `DELETE FROM custom_events WHERE id = $1;`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteMappings, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, deleteEvent, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
