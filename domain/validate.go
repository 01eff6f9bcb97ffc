package domain

import (
	"fmt"
	"regexp"
)

const (
	MinPasswordLength    = 8
	MaxDescriptionLength = 2000
)

// phoneRe matches Turkish mobile numbers, with or without the country
// prefix.
var phoneRe = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidPhone reports whether v is an acceptable mobile number. An empty
// phone is allowed; the field is optional on the account.
func ValidPhone(v string) bool {
	return v == "" || phoneRe.MatchString(v)
}

// ValidEmail reports whether v looks like an email address.
func ValidEmail(v string) bool {
	return emailRe.MatchString(v)
}

// Validate checks the schema-level constraints of a course listing. It
// runs on every persist, creation and update alike.
func (c *Course) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrCourseInvalid)
	}
	if c.Quata <= 0 {
		return fmt.Errorf("%w: quata must be positive", ErrCourseInvalid)
	}
	if len(c.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description longer than %d characters", ErrCourseInvalid, MaxDescriptionLength)
	}
	if len(c.Coordinates) != 2 {
		return fmt.Errorf("%w: coordinates must be a latitude/longitude pair", ErrCourseInvalid)
	}
	for _, ins := range c.Instructors {
		if ins.Rating < 0 || ins.Rating > 5 {
			return fmt.Errorf("%w: instructor rating must be between 0 and 5", ErrCourseInvalid)
		}
	}
	for _, rv := range c.Reviews {
		for _, score := range []float64{rv.Rating, rv.Vehicle, rv.Instructor, rv.Lesson, rv.Facility} {
			if score < 1 || score > 5 {
				return fmt.Errorf("%w: review ratings must be between 1 and 5", ErrCourseInvalid)
			}
		}
	}
	return nil
}
