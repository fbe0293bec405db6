package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

func (s *Storage) GetCoursesByTerm(ctx context.Context, term int) ([]domain.Course, error) {
	const query = `
		SELECT id, listing_id, term, code, title, description, status, dists, grading_basis, has_final
        FROM courses
        WHERE term = $1
        ORDER BY code;
	`

	rows, err := s.pool.Query(ctx, query, term)
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

func (s *Storage) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	const query = `
		SELECT id, listing_id, term, code, title, description, status, dists, grading_basis, has_final
        FROM courses WHERE id = $1;
	`

	var c domain.Course
	err := s.pool.QueryRow(ctx, query, id).Scan(
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
	if err != nil {
		return nil, notFound(err)
	}

	return &c, nil
}

func (s *Storage) GetSectionsForCourse(ctx context.Context, courseID string) ([]domain.Section, error) {
	const query = `
		SELECT id, course_id, title, num, room, tot, cap, days, start_time, end_time, status
		FROM sections
		WHERE course_id = $1
		ORDER BY title, num;
	`

	rows, err := s.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, sec *domain.Section) error {
		return r.Scan(
			&sec.ID,
			&sec.CourseID,
			&sec.Title,
			&sec.Num,
			&sec.Room,
			&sec.Tot,
			&sec.Cap,
			&sec.Days,
			&sec.StartTime,
			&sec.EndTime,
			&sec.Status,
		)
	})
}

func (s *Storage) GetInstructorsForCourse(ctx context.Context, courseID string) ([]domain.Instructor, error) {
	const query = `
		SELECT i.emplid, i.netid, i.name, i.full_name, i.rating
		FROM course_instructor_map cim
		JOIN instructors i ON cim.instructor_id = i.emplid
		WHERE cim.course_id = $1
		ORDER BY i.full_name;
	`

	rows, err := s.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, func(r pgx.Rows, in *domain.Instructor) error {
		return r.Scan(&in.EmplID, &in.NetID, &in.Name, &in.FullName, &in.Rating)
	})
}

// UpsertCourse replaces a course's row, its full section set, and its
// instructor mappings in one transaction. The registrar feed is
// authoritative, so sections and mappings are deleted and reinserted
// rather than diffed. Instructor rows themselves are merged so a rating
// survives refreshes.
func (s *Storage) UpsertCourse(ctx context.Context, course *domain.Course, sections []domain.Section, instructors []domain.Instructor) error {
	const courseQuery = `
		INSERT INTO courses (id, listing_id, term, code, title, description, status, dists, grading_basis, has_final)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			dists = EXCLUDED.dists,
			grading_basis = EXCLUDED.grading_basis,
			has_final = EXCLUDED.has_final;
	`
	const deleteSections = `DELETE FROM sections WHERE course_id = $1;`
	const sectionQuery = `
		INSERT INTO sections (course_id, title, num, room, tot, cap, days, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	const instructorQuery = `
		INSERT INTO instructors (emplid, name, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (emplid) DO UPDATE SET
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name;
	`
	const deleteMappings = `DELETE FROM course_instructor_map WHERE course_id = $1;`
	const mappingQuery = `
		INSERT INTO course_instructor_map (course_id, instructor_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, courseQuery,
		course.ID, course.ListingID, course.Term, course.Code, course.Title,
		course.Description, course.Status, course.Dists, course.GradingBasis, course.HasFinal,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteSections, course.ID); err != nil {
		return err
	}

	for _, sec := range sections {
		_, err := tx.Exec(ctx, sectionQuery,
			course.ID, sec.Title, sec.Num, sec.Room, sec.Tot, sec.Cap,
			sec.Days, sec.StartTime, sec.EndTime, sec.Status,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, deleteMappings, course.ID); err != nil {
		return err
	}
	for _, in := range instructors {
		if _, err := tx.Exec(ctx, instructorQuery, in.EmplID, in.Name, in.FullName); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, mappingQuery, course.ID, in.EmplID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
