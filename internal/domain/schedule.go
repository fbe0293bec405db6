package domain

type Schedule struct {
	ID       int    `db:"id" json:"id"`
	UserID   int    `db:"user_id" json:"user_id"`
	Title    string `db:"title" json:"title"`
	Term     int    `db:"term" json:"term"`
	IsPublic bool   `db:"is_public" json:"is_public"`
}

type CreateScheduleRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Term  int    `json:"term" validate:"required"`
}

type AddCourseRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	Color    int    `json:"color" validate:"min=0,max=9"`
}

type AddEventRequest struct {
	EventID int `json:"event_id" validate:"required"`
}

// ScheduleDetail is the full serving shape for one schedule: the
// courses on it, every section those courses own, and the conflict
// strings (or the no-conflict sentinel) computed over the lot.
type ScheduleDetail struct {
	Schedule  Schedule      `json:"schedule"`
	Courses   []Course      `json:"courses"`
	Sections  []Section     `json:"sections"`
	Events    []CustomEvent `json:"events"`
	Conflicts []string      `json:"conflicts"`
}

// FitResult answers "can this course join the schedule": Fits is false
// when any of the candidate's sections collides with something already
// on the schedule, and ConflictingWith names what it collides with.
type FitResult struct {
	Fits            bool     `json:"fits"`
	ConflictingWith []string `json:"conflicting_with"`
}
