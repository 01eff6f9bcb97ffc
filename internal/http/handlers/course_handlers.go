package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// CourseHandlers handles course listing HTTP requests
type CourseHandlers struct {
	courseSvc domain.CourseService
}

// NewCourseHandlers creates new course handlers
func NewCourseHandlers(courseSvc domain.CourseService) *CourseHandlers {
	return &CourseHandlers{courseSvc: courseSvc}
}

// CreateCourseRequest represents course creation request
type CreateCourseRequest struct {
	CompanyID   uint            `json:"companyId"`
	Title       string          `json:"title"`
	Quata       int             `json:"quata"`
	Opening     string          `json:"opening"`
	Closing     string          `json:"closing"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Location    string          `json:"location"`
	Coordinates []float64       `json:"coordinates"`
	Feature     *domain.Feature `json:"feature"`
	Licence     *domain.Licence `json:"licance"`
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Title       *string         `json:"title"`
	Quata       *int            `json:"quata"`
	Opening     *string         `json:"opening"`
	Closing     *string         `json:"closing"`
	Description *string         `json:"description"`
	Images      []string        `json:"images"`
	Location    *string         `json:"location"`
	Coordinates []float64       `json:"coordinates"`
	Feature     *domain.Feature `json:"feature"`
	Licence     *domain.Licence `json:"licance"`
}

// AddInstructorRequest represents the add-instructor request. Age and
// experience are accepted as numbers or numeric strings.
type AddInstructorRequest struct {
	Name           string      `json:"name"`
	Age            json.Number `json:"age"`
	ExperienceYear json.Number `json:"experienceYear"`
	Picture        string      `json:"picture"`
}

// Create handles course creation
func (h *CourseHandlers) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	// An authenticated company owns the listing it creates.
	companyID := req.CompanyID
	if v, exists := c.Get("account_id"); exists {
		companyID = v.(uint)
	}

	course, err := h.courseSvc.Create(c.Request.Context(), domain.CourseInput{
		CompanyID:   companyID,
		Title:       req.Title,
		Quata:       req.Quata,
		Opening:     req.Opening,
		Closing:     req.Closing,
		Description: req.Description,
		Images:      req.Images,
		Location:    req.Location,
		Coordinates: req.Coordinates,
		Feature:     req.Feature,
		Licence:     req.Licence,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": course})
}

// Get handles course retrieval
func (h *CourseHandlers) Get(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

// Update handles course update (admin gated in the router)
func (h *CourseHandlers) Update(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, domain.CourseUpdate{
		Title:       req.Title,
		Quata:       req.Quata,
		Opening:     req.Opening,
		Closing:     req.Closing,
		Description: req.Description,
		Images:      req.Images,
		Location:    req.Location,
		Coordinates: req.Coordinates,
		Feature:     req.Feature,
		Licence:     req.Licence,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": course})
}

// Delete handles course deletion (admin gated in the router)
func (h *CourseHandlers) Delete(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Course deleted"})
}

// AddInstructor appends an instructor to a course
func (h *CourseHandlers) AddInstructor(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	var req AddInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	age, _ := req.Age.Int64()
	exp, _ := req.ExperienceYear.Int64()

	instructors, err := h.courseSvc.AddInstructor(c.Request.Context(), id, domain.InstructorInput{
		Name:           req.Name,
		Age:            int(age),
		ExperienceYear: int(exp),
		Picture:        req.Picture,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, instructors)
}

func (h *CourseHandlers) courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid course id", "code": "BAD_REQUEST"})
		return 0, false
	}
	return uint(id), true
}
