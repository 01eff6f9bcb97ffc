package services

import (
	"context"
	"fmt"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// CourseServiceImpl implements domain.CourseService
type CourseServiceImpl struct {
	courseRepo domain.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo domain.CourseRepository) domain.CourseService {
	return &CourseServiceImpl{courseRepo: courseRepo}
}

// Create implements domain.CourseService. InitialQuata is snapshotted
// from the supplied capacity here and never recomputed.
func (s *CourseServiceImpl) Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	if in.Title == "" || in.Quata == 0 || in.Opening == "" || in.Closing == "" ||
		in.Description == "" || len(in.Images) == 0 || in.Location == "" ||
		len(in.Coordinates) == 0 || in.Feature == nil || in.Licence == nil {
		return nil, domain.ErrMissingCourseFields
	}

	course := &domain.Course{
		CompanyID:    in.CompanyID,
		Title:        in.Title,
		Quata:        in.Quata,
		InitialQuata: in.Quata,
		Opening:      in.Opening,
		Closing:      in.Closing,
		Description:  in.Description,
		Images:       in.Images,
		Location:     in.Location,
		Coordinates:  in.Coordinates,
		Feature:      *in.Feature,
		Licence:      *in.Licence,
		Instructors:  []domain.Instructor{},
		Reviews:      []domain.Review{},
		Lessons:      []domain.Lesson{},
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

// Get implements domain.CourseService
func (s *CourseServiceImpl) Get(ctx context.Context, id uint) (*domain.Course, error) {
	return s.courseRepo.FindByID(ctx, id)
}

// Update implements domain.CourseService. The document is loaded,
// transformed and re-validated in full before the save; InitialQuata is
// never part of the transform.
func (s *CourseServiceImpl) Update(ctx context.Context, id uint, upd domain.CourseUpdate) (*domain.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Quata != nil {
		course.Quata = *upd.Quata
	}
	if upd.Opening != nil {
		course.Opening = *upd.Opening
	}
	if upd.Closing != nil {
		course.Closing = *upd.Closing
	}
	if upd.Description != nil {
		course.Description = *upd.Description
	}
	if upd.Images != nil {
		course.Images = upd.Images
	}
	if upd.Location != nil {
		course.Location = *upd.Location
	}
	if upd.Coordinates != nil {
		course.Coordinates = upd.Coordinates
	}
	if upd.Feature != nil {
		course.Feature = *upd.Feature
	}
	if upd.Licence != nil {
		course.Licence = *upd.Licence
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

// Delete implements domain.CourseService
func (s *CourseServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.courseRepo.Delete(ctx, id)
}

// AddInstructor implements domain.CourseService. The new instructor
// starts with rating 0 and the full updated collection is returned.
func (s *CourseServiceImpl) AddInstructor(ctx context.Context, courseID uint, in domain.InstructorInput) ([]domain.Instructor, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course.Instructors = append(course.Instructors, domain.Instructor{
		Name:           in.Name,
		Age:            in.Age,
		ExperienceYear: in.ExperienceYear,
		Picture:        in.Picture,
		Rating:         0,
	})

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course.Instructors, nil
}
