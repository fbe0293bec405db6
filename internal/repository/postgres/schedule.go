package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

func (s *Storage) CreateSchedule(ctx context.Context, userID int, req *domain.CreateScheduleRequest) (*domain.Schedule, error) {
	const query = `
		INSERT INTO schedules (user_id, title, term)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, title, term, is_public;
	`

	var schedule domain.Schedule
	err := s.pool.QueryRow(ctx, query, userID, req.Title, req.Term).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Title,
		&schedule.Term,
		&schedule.IsPublic,
	)
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

func (s *Storage) GetUserSchedules(ctx context.Context, userID int) ([]domain.Schedule, error) {
	const query = `
		SELECT id, user_id, title, term, is_public
        FROM schedules
        WHERE user_id = $1
        ORDER BY term, id;
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, sch *domain.Schedule) error {
		return r.Scan(
			&sch.ID,
			&sch.UserID,
			&sch.Title,
			&sch.Term,
			&sch.IsPublic,
		)
	})
}

func (s *Storage) GetScheduleByID(ctx context.Context, id int) (*domain.Schedule, error) {
	const query = `SELECT id, user_id, title, term, is_public FROM schedules WHERE id = $1;`

	var schedule domain.Schedule
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Title,
		&schedule.Term,
		&schedule.IsPublic,
	)
	if err != nil {
		return nil, notFound(err)
	}

	return &schedule, nil
}

func (s *Storage) DeleteSchedule(ctx context.Context, id int) error {
	const deleteCourses = `DELETE FROM schedule_course_map WHERE schedule_id = $1;`
	const deleteEvents = `DELETE FROM schedule_event_map WHERE schedule_id = $1;`
	const deleteSchedule = `DELETE FROM schedules WHERE id = $1;`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteCourses, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, deleteEvents, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, deleteSchedule, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) AddCourseToSchedule(ctx context.Context, scheduleID int, courseID string, color int) error {
	const query = `
        INSERT INTO schedule_course_map (schedule_id, course_id, color)
        VALUES ($1, $2, $3)
        ON CONFLICT (schedule_id, course_id) DO NOTHING;
    `
	_, err := s.pool.Exec(ctx, query, scheduleID, courseID, color)
	return err
}

func (s *Storage) RemoveCourseFromSchedule(ctx context.Context, scheduleID int, courseID string) error {
	const query = `DELETE FROM schedule_course_map WHERE schedule_id = $1 AND course_id = $2;`
	_, err := s.pool.Exec(ctx, query, scheduleID, courseID)
	return err
}

// GetScheduleCourses returns the courses mapped onto a schedule in a
// stable order so downstream conflict reports are reproducible.
func (s *Storage) GetScheduleCourses(ctx context.Context, scheduleID int) ([]domain.Course, error) {
	const query = `
		SELECT c.id, c.listing_id, c.term, c.code, c.title, c.description, c.status, c.dists, c.grading_basis, c.has_final
        FROM schedule_course_map scm
        JOIN courses c ON scm.course_id = c.id
        WHERE scm.schedule_id = $1
        ORDER BY c.code;
    `

	rows, err := s.pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, c *domain.Course) error {
		return r.Scan(
			&c.ID,
			&c.ListingID,
			&c.Term,
			&c.Code,
			&c.Title,
			&c.Description,
			&c.Status,
			&c.Dists,
			&c.GradingBasis,
			&c.HasFinal,
		)
	})
}

func (s *Storage) AddEventToSchedule(ctx context.Context, scheduleID, eventID int) error {
	const query = `
        INSERT INTO schedule_event_map (schedule_id, custom_event_id)
        VALUES ($1, $2)
        ON CONFLICT (schedule_id, custom_event_id) DO NOTHING;
    `
	_, err := s.pool.Exec(ctx, query, scheduleID, eventID)
	return err
}

func (s *Storage) RemoveEventFromSchedule(ctx context.Context, scheduleID, eventID int) error {
	const query = `DELETE FROM schedule_event_map WHERE schedule_id = $1 AND custom_event_id = $2;`
	_, err := s.pool.Exec(ctx, query, scheduleID, eventID)
	return err
}

func (s *Storage) GetScheduleEvents(ctx context.Context, scheduleID int) ([]domain.CustomEvent, error) {
	const query = `
		SELECT e.id, e.user_id, e.title, e.times
        FROM schedule_event_map sem
        JOIN custom_events e ON sem.custom_event_id = e.id
        WHERE sem.schedule_id = $1
        ORDER BY e.id;
    `

	rows, err := s.pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, e *domain.CustomEvent) error {
		return r.Scan(&e.ID, &e.UserID, &e.Title, &e.Times)
	})
}
