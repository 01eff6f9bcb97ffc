package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// CourseRepositoryImpl implements domain.CourseRepository using GORM.
// Instructors, reviews and lessons are embedded children serialized into
// JSON columns; they have no identity outside their course.
type CourseRepositoryImpl struct {
	db *gorm.DB
}

// DBCourse represents the database model for Course
type DBCourse struct {
	ID           uint   `gorm:"primaryKey"`
	CompanyID    uint   `gorm:"index"`
	Title        string `gorm:"size:255"`
	Quata        int
	InitialQuata int
	Opening      string              `gorm:"size:64"`
	Closing      string              `gorm:"size:64"`
	Description  string              `gorm:"size:2000"`
	Images       []string            `gorm:"serializer:json"`
	Location     string              `gorm:"size:512"`
	Coordinates  []float64           `gorm:"serializer:json"`
	Feature      domain.Feature      `gorm:"serializer:json"`
	Licence      domain.Licence      `gorm:"serializer:json"`
	Rating       domain.Rating       `gorm:"serializer:json"`
	Instructors  []domain.Instructor `gorm:"serializer:json"`
	Reviews      []domain.Review     `gorm:"serializer:json"`
	Lessons      []domain.Lesson     `gorm:"serializer:json"`
	CreatedAt    time.Time           `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBCourse) TableName() string {
	return "courses"
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

// Create implements domain.CourseRepository
func (r *CourseRepositoryImpl) Create(ctx context.Context, course *domain.Course) error {
	dbCourse := r.domainToDB(course)
	if err := r.db.WithContext(ctx).Create(dbCourse).Error; err != nil {
		return err
	}
	course.ID = dbCourse.ID
	course.CreatedAt = dbCourse.CreatedAt
	course.UpdatedAt = dbCourse.UpdatedAt
	return nil
}

// FindByID implements domain.CourseRepository
func (r *CourseRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Course, error) {
	var dbCourse DBCourse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCourse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCourse), nil
}

// Update implements domain.CourseRepository
func (r *CourseRepositoryImpl) Update(ctx context.Context, course *domain.Course) error {
	dbCourse := r.domainToDB(course)
	return r.db.WithContext(ctx).Model(dbCourse).Select("*").
		Omit("id", "created_at").Updates(dbCourse).Error
}

// Delete implements domain.CourseRepository
func (r *CourseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBCourse{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) domainToDB(course *domain.Course) *DBCourse {
	return &DBCourse{
		ID:           course.ID,
		CompanyID:    course.CompanyID,
		Title:        course.Title,
		Quata:        course.Quata,
		InitialQuata: course.InitialQuata,
		Opening:      course.Opening,
		Closing:      course.Closing,
		Description:  course.Description,
		Images:       course.Images,
		Location:     course.Location,
		Coordinates:  course.Coordinates,
		Feature:      course.Feature,
		Licence:      course.Licence,
		Rating:       course.Rating,
		Instructors:  course.Instructors,
		Reviews:      course.Reviews,
		Lessons:      course.Lessons,
	}
}

func (r *CourseRepositoryImpl) dbToDomain(dbCourse *DBCourse) *domain.Course {
	return &domain.Course{
		ID:           dbCourse.ID,
		CompanyID:    dbCourse.CompanyID,
		Title:        dbCourse.Title,
		Quata:        dbCourse.Quata,
		InitialQuata: dbCourse.InitialQuata,
		Opening:      dbCourse.Opening,
		Closing:      dbCourse.Closing,
		Description:  dbCourse.Description,
		Images:       dbCourse.Images,
		Location:     dbCourse.Location,
		Coordinates:  dbCourse.Coordinates,
		Feature:      dbCourse.Feature,
		Licence:      dbCourse.Licence,
		Rating:       dbCourse.Rating,
		Instructors:  dbCourse.Instructors,
		Reviews:      dbCourse.Reviews,
		Lessons:      dbCourse.Lessons,
		CreatedAt:    dbCourse.CreatedAt,
		UpdatedAt:    dbCourse.UpdatedAt,
	}
}
