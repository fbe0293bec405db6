package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/registrar"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the tables if they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// seedSection describes one demo section in human-readable registrar
// form; days and times are converted on insert.
type seedSection struct {
	title string
	num   string
	days  []string
	start string
	end   string
	room  string
}

type seedCourse struct {
	listingID string
	code      string
	title     string
	dists     []string
	sections  []seedSection
}

var seedCourses = []seedCourse{
	{
		listingID: "002051",
		code:      "COS126 / EGR126",
		title:     "Computer Science: An Interdisciplinary Approach",
		dists:     []string{"QCR"},
		sections: []seedSection{
			{"Lecture", "L01", []string{"M", "W"}, "10:00 AM", "10:50 AM", "Friend 101"},
			{"Precept", "P01", []string{"Th"}, "11:00 AM", "12:20 PM", "CS Building 104"},
			{"Precept", "P02", []string{"F"}, "1:30 PM", "2:50 PM", "CS Building 104"},
		},
	},
	{
		listingID: "002054",
		code:      "COS226",
		title:     "Algorithms and Data Structures",
		dists:     []string{"QCR"},
		sections: []seedSection{
			{"Lecture", "L01", []string{"T", "Th"}, "11:00 AM", "12:20 PM", "McCosh 50"},
			{"Precept", "P01", []string{"M"}, "1:30 PM", "2:20 PM", "Sherrerd 101"},
			{"Precept", "P02", []string{"W"}, "3:30 PM", "4:20 PM", "Sherrerd 101"},
		},
	},
	{
		listingID: "007405",
		code:      "MAT202",
		title:     "Linear Algebra with Applications",
		dists:     []string{"QCR"},
		sections: []seedSection{
			{"Lecture", "L01", []string{"T", "Th"}, "11:00 AM", "11:50 AM", "Fine 314"},
			{"Precept", "P01", []string{"F"}, "9:00 AM", "9:50 AM", "Fine 214"},
		},
	},
	{
		listingID: "009321",
		code:      "ENG385",
		title:     "Children's Literature",
		dists:     []string{"LA"},
		sections: []seedSection{
			{"Lecture", "L01", []string{"M", "W"}, "3:30 PM", "4:20 PM", "McCosh 28"},
			{"Seminar", "S01", []string{"Th"}, "7:30 PM", "8:50 PM", "McCosh 40"},
		},
	},
}

// Seed loads a demo term of courses into an empty database. A database
// that already has courses is left untouched.
func (s *Storage) Seed(ctx context.Context, term int, logger *slog.Logger) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM courses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check courses: %w", err)
	}

	if count > 0 {
		logger.Info("database already seeded", "courses", count)
		return nil
	}

	for _, sc := range seedCourses {
		course := &domain.Course{
			ID:           sc.listingID + "-" + fmt.Sprint(term),
			ListingID:    sc.listingID,
			Term:         term,
			Code:         sc.code,
			Title:        sc.title,
			Status:       domain.StatusOpen,
			Dists:        sc.dists,
			GradingBasis: "NAU",
		}

		var sections []domain.Section
		for _, ss := range sc.sections {
			room := ss.room
			sections = append(sections, domain.Section{
				CourseID:  course.ID,
				Title:     ss.title,
				Num:       ss.num,
				Room:      &room,
				Cap:       120,
				Days:      registrar.DaysToValue(ss.days),
				StartTime: registrar.TimeToValue(ss.start),
				EndTime:   registrar.TimeToValue(ss.end),
				Status:    domain.StatusOpen,
			})
		}

		if err := s.UpsertCourse(ctx, course, sections, nil); err != nil {
			return fmt.Errorf("failed to seed %s: %w", sc.code, err)
		}
	}

	logger.Info("database seeded", "courses", len(seedCourses), "term", term)
	return nil
}
