package domain

import "time"

// Account types. The legacy deployment carried a near-identical copy of the
// company model under the course routes; both are served by one entity
// carrying a type tag.
const (
	AccountTypeCompany = "company"
	AccountTypeCourse  = "course"
)

// Subscription tiers.
const (
	SubsBasic   = "basic"
	SubsPremium = "premium"
	SubsElite   = "elite"
)

// Account represents an authenticable driving-school account
type Account struct {
	ID           uint
	Type         string
	Name         string
	Address      string
	Phone        string
	Code         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	Subs         string
	Status       bool
	IsVerified   bool

	// VerificationCode and ResetCode are transient numeric secrets.
	// Zero means no code is outstanding.
	VerificationCode   int
	ResetCode          int
	ResetCodeExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	Account      *Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// SessionToken pairs the tokens issued at login with the requesting
// device's metadata. One row is written per login; logout removes every
// row belonging to the account.
type SessionToken struct {
	ID           string
	AccountID    uint
	RefreshToken string
	AccessToken  string
	IP           string
	UserAgent    string
	IsValid      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Feature holds the amenity flags of a course listing.
type Feature struct {
	Parking        bool `json:"parking"`
	Wifi           bool `json:"wifi"`
	Canteen        bool `json:"canteen"`
	Simulator      bool `json:"simulator"`
	DisabledAccess bool `json:"disabledAccess"`
}

// Licence enumerates the fixed set of driving-licence categories a
// course can teach.
type Licence struct {
	A1 bool `json:"a1"`
	A2 bool `json:"a2"`
	A  bool `json:"a"`
	B  bool `json:"b"`
	BE bool `json:"be"`
	C  bool `json:"c"`
	D  bool `json:"d"`
	F  bool `json:"f"`
}

// Rating is the aggregate score of a course, overall plus the four
// review categories.
type Rating struct {
	Overall    float64 `json:"overall"`
	Vehicle    float64 `json:"vehicle"`
	Instructor float64 `json:"instructor"`
	Lesson     float64 `json:"lesson"`
	Facility   float64 `json:"facility"`
}

// Instructor is an embedded child of a course, rated 0-5.
type Instructor struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	ExperienceYear int     `json:"experienceYear"`
	Picture        string  `json:"picture"`
	Rating         float64 `json:"rating"`
}

// InstructorRating is a per-instructor score inside a review.
type InstructorRating struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Review is an embedded course review, 1-5 overall with four category
// sub-ratings.
type Review struct {
	RaterID           uint               `json:"raterId"`
	RaterName         string             `json:"raterName"`
	Rating            float64            `json:"rating"`
	Vehicle           float64            `json:"vehicle"`
	Instructor        float64            `json:"instructor"`
	Lesson            float64            `json:"lesson"`
	Facility          float64            `json:"facility"`
	Comment           string             `json:"comment"`
	InstructorRatings []InstructorRating `json:"instructorRatings"`
}

// Lesson is a booking entry, one email address per booked seat.
type Lesson struct {
	Email string `json:"email"`
}

// Course is a bookable driving-course listing. Instructors, reviews and
// lessons are embedded children with no identity outside their course.
type Course struct {
	ID           uint
	CompanyID    uint
	Title        string
	Quata        int
	InitialQuata int // snapshotted at creation, never recomputed
	Opening      string
	Closing      string
	Description  string
	Images       []string
	Location     string
	Coordinates  []float64
	Feature      Feature
	Licence      Licence
	Rating       Rating
	Instructors  []Instructor
	Reviews      []Review
	Lessons      []Lesson
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	AccountID   uint   `json:"account_id"`
	AccountType string `json:"account_type"`
	Role        string `json:"role"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}
