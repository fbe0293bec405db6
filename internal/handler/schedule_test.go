package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/schedule"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

// fakeScheduleStore backs the schedule handlers and the aggregator
// from memory.
type fakeScheduleStore struct {
	schedules map[int]*domain.Schedule
	courses   map[string]*domain.Course
	sections  map[string][]domain.Section
	onSched   map[int][]string
	events    map[int][]domain.CustomEvent
	added     []string
}

func (f *fakeScheduleStore) GetUserSchedules(_ context.Context, userID int) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) CreateSchedule(_ context.Context, userID int, req *domain.CreateScheduleRequest) (*domain.Schedule, error) {
	sched := &domain.Schedule{ID: len(f.schedules) + 1, UserID: userID, Title: req.Title, Term: req.Term}
	f.schedules[sched.ID] = sched
	return sched, nil
}

func (f *fakeScheduleStore) GetScheduleByID(_ context.Context, id int) (*domain.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeScheduleStore) DeleteSchedule(_ context.Context, id int) error {
	delete(f.schedules, id)
	return nil
}

func (f *fakeScheduleStore) GetCourseByID(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeScheduleStore) AddCourseToSchedule(_ context.Context, scheduleID int, courseID string, _ int) error {
	f.added = append(f.added, courseID)
	f.onSched[scheduleID] = append(f.onSched[scheduleID], courseID)
	return nil
}

func (f *fakeScheduleStore) RemoveCourseFromSchedule(_ context.Context, _ int, _ string) error {
	return nil
}

func (f *fakeScheduleStore) GetEventByID(_ context.Context, _ int) (*domain.CustomEvent, error) {
	return nil, utils.ErrNotFound
}

func (f *fakeScheduleStore) AddEventToSchedule(_ context.Context, _, _ int) error { return nil }

func (f *fakeScheduleStore) RemoveEventFromSchedule(_ context.Context, _, _ int) error {
	return nil
}

func (f *fakeScheduleStore) GetScheduleCourses(_ context.Context, scheduleID int) ([]domain.Course, error) {
	var out []domain.Course
	for _, id := range f.onSched[scheduleID] {
		out = append(out, *f.courses[id])
	}
	return out, nil
}

func (f *fakeScheduleStore) GetSectionsForCourse(_ context.Context, courseID string) ([]domain.Section, error) {
	return f.sections[courseID], nil
}

func (f *fakeScheduleStore) GetScheduleEvents(_ context.Context, scheduleID int) ([]domain.CustomEvent, error) {
	return f.events[scheduleID], nil
}

func newHandlerFixture() *fakeScheduleStore {
	return &fakeScheduleStore{
		schedules: map[int]*domain.Schedule{
			1: {ID: 1, UserID: 7, Title: "Fall Draft", Term: 1262},
			2: {ID: 2, UserID: 7, Title: "Shared Fall", Term: 1262, IsPublic: true},
		},
		courses: map[string]*domain.Course{
			"cos226-1262": {ID: "cos226-1262", Code: "COS226", Term: 1262},
			"mat202-1254": {ID: "mat202-1254", Code: "MAT202", Term: 1254},
		},
		sections: map[string][]domain.Section{},
		onSched:  map[int][]string{},
		events:   map[int][]domain.CustomEvent{},
	}
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	if err := t.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// newScheduleContext builds an echo context for a request against
// /api/schedules/:id, authenticated as userID.
func newScheduleContext(method, body string, scheduleID string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(scheduleID)
	c.Set("user_id", userID)
	return c, rec
}

func TestAddCourseToScheduleRejectsCrossTerm(t *testing.T) {
	store := newHandlerFixture()
	c, rec := newScheduleContext(http.MethodPost, `{"course_id":"mat202-1254","color":1}`, "1", 7)

	err := AddCourseToSchedule(store)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "term")
	assert.Empty(t, store.added)
}

func TestAddCourseToSchedule(t *testing.T) {
	store := newHandlerFixture()
	c, rec := newScheduleContext(http.MethodPost, `{"course_id":"cos226-1262","color":1}`, "1", 7)

	err := AddCourseToSchedule(store)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cos226-1262"}, store.added)
}

func TestDeleteScheduleDeniedForNonOwner(t *testing.T) {
	store := newHandlerFixture()
	c, _ := newScheduleContext(http.MethodDelete, "", "1", 8)

	err := DeleteSchedule(store)(c)
	var he *echo.HTTPError
	if assert.True(t, errors.As(err, &he)) {
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
	// The schedule survives the denied request.
	_, err = store.GetScheduleByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestDeleteScheduleDeniedForPublicNonOwner(t *testing.T) {
	// Public visibility opens reads, never writes.
	store := newHandlerFixture()
	c, _ := newScheduleContext(http.MethodDelete, "", "2", 8)

	err := DeleteSchedule(store)(c)
	var he *echo.HTTPError
	if assert.True(t, errors.As(err, &he)) {
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}

func TestGetScheduleConflictsPublicReadable(t *testing.T) {
	store := newHandlerFixture()
	agg := schedule.NewAggregator(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newScheduleContext(http.MethodGet, "", "2", 8)

	err := GetScheduleConflicts(store, agg)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No conflicts detected")
}

func TestGetScheduleConflictsPrivateDenied(t *testing.T) {
	store := newHandlerFixture()
	agg := schedule.NewAggregator(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, _ := newScheduleContext(http.MethodGet, "", "1", 8)

	err := GetScheduleConflicts(store, agg)(c)
	var he *echo.HTTPError
	if assert.True(t, errors.As(err, &he)) {
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}

func TestGetScheduleUnknownID(t *testing.T) {
	store := newHandlerFixture()
	c, _ := newScheduleContext(http.MethodDelete, "", "99", 7)

	err := DeleteSchedule(store)(c)
	var he *echo.HTTPError
	if assert.True(t, errors.As(err, &he)) {
		assert.Equal(t, http.StatusNotFound, he.Code)
	}
}
