package mocks

import (
	"context"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// MockCourseService is a configurable course service double for handler
// tests.
type MockCourseService struct {
	CreateFunc        func(ctx context.Context, in domain.CourseInput) (*domain.Course, error)
	GetFunc           func(ctx context.Context, id uint) (*domain.Course, error)
	UpdateFunc        func(ctx context.Context, id uint, upd domain.CourseUpdate) (*domain.Course, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	AddInstructorFunc func(ctx context.Context, courseID uint, in domain.InstructorInput) ([]domain.Instructor, error)
}

var _ domain.CourseService = (*MockCourseService)(nil)

func (m *MockCourseService) Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return nil, domain.ErrMissingCourseFields
}

func (m *MockCourseService) Get(ctx context.Context, id uint) (*domain.Course, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *MockCourseService) Update(ctx context.Context, id uint, upd domain.CourseUpdate) (*domain.Course, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *MockCourseService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCourseService) AddInstructor(ctx context.Context, courseID uint, in domain.InstructorInput) ([]domain.Instructor, error) {
	if m.AddInstructorFunc != nil {
		return m.AddInstructorFunc(ctx, courseID, in)
	}
	return nil, domain.ErrCourseNotFound
}
