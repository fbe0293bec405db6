// Package registrar fetches course offerings from the university
// registrar API and upserts them into the store. Types here mirror the
// registrar's JSON (which hopefully does not change anytime soon).
package registrar

type Meeting struct {
	MeetingNumber string   `json:"meeting_number"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Days          []string `json:"days"`
	Building      *struct {
		Name string `json:"name"`
	} `json:"building"`
	Room string `json:"room"`
}

type Class struct {
	ClassNumber  string `json:"class_number"`
	Section      string `json:"section"`
	Status       string `json:"status"`
	PuCalcStatus string `json:"pu_calc_status"`
	TypeName     string `json:"type_name"`
	Capacity     string `json:"capacity"`
	Enrollment   string `json:"enrollment"`
	Schedule     struct {
		StartDate string    `json:"start_date"`
		EndDate   string    `json:"end_date"`
		Meetings  []Meeting `json:"meetings"`
	} `json:"schedule"`
}

type DeptCourse struct {
	GUID          string `json:"guid"`
	CourseID      string `json:"course_id"`
	CatalogNumber string `json:"catalog_number"`
	Title         string `json:"title"`
	Detail        struct {
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Description string `json:"description"`
	} `json:"detail"`
	Instructors []struct {
		EmplID    string `json:"emplid"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		FullName  string `json:"full_name"`
	} `json:"instructors"`
	Crosslistings []struct {
		Subject       string `json:"subject"`
		CatalogNumber string `json:"catalog_number"`
	} `json:"crosslistings"`
	Classes []Class `json:"classes"`
}

type Subject struct {
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	Courses []DeptCourse `json:"courses"`
}

type coursesResponse struct {
	Term []struct {
		Code     string    `json:"code"`
		Subjects []Subject `json:"subjects"`
	} `json:"term"`
}
