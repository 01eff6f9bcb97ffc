package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
	"github.com/hasansisik/kurstanbul-kos-server/internal/http/handlers"
	"github.com/hasansisik/kurstanbul-kos-server/internal/mocks"
)

func newCourseRouter(svc domain.CourseService, authed bool) *gin.Engine {
	h := handlers.NewCourseHandlers(svc)

	r := gin.New()
	g := r.Group("/v1/course")
	if authed {
		g.Use(withAccount(42))
	}
	g.POST("/", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/instructor", h.AddInstructor)
	return r
}

const createCourseBody = `{
	"companyId": 7,
	"title": "B Sinifi Hafta Sonu Kursu",
	"quata": 20,
	"opening": "09:00",
	"closing": "18:00",
	"description": "Hafta sonu egitimi",
	"images": ["https://cdn.kurstanbul.com/c1.jpg"],
	"location": "Kadikoy, Istanbul",
	"coordinates": [29.0275, 40.9901],
	"feature": {"parking": true},
	"licance": {"b": true}
}`

func TestCourseCreateHandler(t *testing.T) {
	svc := &mocks.MockCourseService{}
	var gotInput domain.CourseInput
	svc.CreateFunc = func(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
		gotInput = in
		return &domain.Course{ID: 3, Title: in.Title}, nil
	}

	w, body := doJSON(t, newCourseRouter(svc, false), http.MethodPost, "/v1/course/", createCourseBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, uint(7), gotInput.CompanyID)
	assert.Equal(t, 20, gotInput.Quata)
	assert.NotNil(t, gotInput.Feature)
	assert.NotNil(t, gotInput.Licence)
	assert.True(t, gotInput.Licence.B)
}

func TestCourseCreateHandler_AuthenticatedOwnerWins(t *testing.T) {
	svc := &mocks.MockCourseService{}
	var gotInput domain.CourseInput
	svc.CreateFunc = func(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
		gotInput = in
		return &domain.Course{ID: 3}, nil
	}

	// The body claims companyId 7; the authenticated account is 42.
	w, _ := doJSON(t, newCourseRouter(svc, true), http.MethodPost, "/v1/course/", createCourseBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(42), gotInput.CompanyID)
}

func TestCourseCreateHandler_MissingFields(t *testing.T) {
	svc := &mocks.MockCourseService{}
	svc.CreateFunc = func(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
		return nil, domain.ErrMissingCourseFields
	}

	w, body := doJSON(t, newCourseRouter(svc, false), http.MethodPost, "/v1/course/", `{"title": "x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FIELDS", body["code"])
}

func TestCourseGetHandler(t *testing.T) {
	svc := &mocks.MockCourseService{}
	svc.GetFunc = func(ctx context.Context, id uint) (*domain.Course, error) {
		if id == 3 {
			return &domain.Course{ID: 3, Title: "B Sinifi Kursu"}, nil
		}
		return nil, domain.ErrCourseNotFound
	}
	r := newCourseRouter(svc, false)

	w, body := doJSON(t, r, http.MethodGet, "/v1/course/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	course := body["course"].(map[string]interface{})
	assert.Equal(t, "B Sinifi Kursu", course["Title"])

	w, body = doJSON(t, r, http.MethodGet, "/v1/course/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "COURSE_NOT_FOUND", body["code"])

	w, _ = doJSON(t, r, http.MethodGet, "/v1/course/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseUpdateHandler_PartialFields(t *testing.T) {
	svc := &mocks.MockCourseService{}
	var gotUpd domain.CourseUpdate
	svc.UpdateFunc = func(ctx context.Context, id uint, upd domain.CourseUpdate) (*domain.Course, error) {
		gotUpd = upd
		return &domain.Course{ID: id}, nil
	}

	w, _ := doJSON(t, newCourseRouter(svc, false), http.MethodPut, "/v1/course/3", `{"quata": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, gotUpd.Title)
	assert.NotNil(t, gotUpd.Quata)
	assert.Equal(t, 5, *gotUpd.Quata)
}

func TestCourseDeleteHandler(t *testing.T) {
	svc := &mocks.MockCourseService{}
	var deleted uint
	svc.DeleteFunc = func(ctx context.Context, id uint) error {
		deleted = id
		return nil
	}

	w, body := doJSON(t, newCourseRouter(svc, false), http.MethodDelete, "/v1/course/3", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, uint(3), deleted)
}

func TestAddInstructorHandler_NumericStringAge(t *testing.T) {
	svc := &mocks.MockCourseService{}
	var gotIn domain.InstructorInput
	svc.AddInstructorFunc = func(ctx context.Context, courseID uint, in domain.InstructorInput) ([]domain.Instructor, error) {
		gotIn = in
		return []domain.Instructor{{Name: in.Name, Age: in.Age, Rating: 0}}, nil
	}

	w, _ := doJSON(t, newCourseRouter(svc, false), http.MethodPost, "/v1/course/3/instructor",
		`{"name": "Mehmet", "age": "38", "experienceYear": 12, "picture": "p.jpg"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mehmet", gotIn.Name)
	assert.Equal(t, 38, gotIn.Age)
	assert.Equal(t, 12, gotIn.ExperienceYear)
}
