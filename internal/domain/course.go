package domain

// Course statuses follow the registrar rollup: open if every section
// type still has an open section, closed otherwise, canceled when all
// sections are canceled.
const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusCanceled = "canceled"
)

type Course struct {
	// ID is "<listingId>-<term>" so the same listing can exist across terms.
	ID           string   `db:"id" json:"id"`
	ListingID    string   `db:"listing_id" json:"listing_id"`
	Term         int      `db:"term" json:"term"`
	Code         string   `db:"code" json:"code"`
	Title        string   `db:"title" json:"title"`
	Description  string   `db:"description" json:"description"`
	Status       string   `db:"status" json:"status"`
	Dists        []string `db:"dists" json:"dists"`
	GradingBasis string   `db:"grading_basis" json:"grading_basis"`
	HasFinal     *bool    `db:"has_final" json:"has_final"`
}

type Section struct {
	ID        int     `db:"id" json:"id"`
	CourseID  string  `db:"course_id" json:"course_id"`
	Title     string  `db:"title" json:"title"`
	Num       string  `db:"num" json:"num"`
	Room      *string `db:"room" json:"room"`
	Tot       int     `db:"tot" json:"tot"`
	Cap       int     `db:"cap" json:"cap"`
	Days      int     `db:"days" json:"days"`
	StartTime int     `db:"start_time" json:"start_time"`
	EndTime   int     `db:"end_time" json:"end_time"`
	Status    string  `db:"status" json:"status"`
}

// Instructor is keyed by emplid; the registrar feed does not carry
// netids, so netid stays empty until filled from another source.
type Instructor struct {
	EmplID   string   `db:"emplid" json:"emplid"`
	NetID    *string  `db:"netid" json:"netid"`
	Name     string   `db:"name" json:"name"`
	FullName string   `db:"full_name" json:"full_name"`
	Rating   *float64 `db:"rating" json:"rating"`
}

// Composite types for API responses

type CourseWithSections struct {
	Course
	Sections    []Section    `json:"sections"`
	Instructors []Instructor `json:"instructors,omitempty"`
}
