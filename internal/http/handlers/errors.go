package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// errorStatus maps every domain error to an HTTP status and a stable
// machine-readable code. All endpoints go through this table; nothing
// falls back to a blanket 500 with the cause masked.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrMissingCredentials: {http.StatusBadRequest, "MISSING_CREDENTIALS"},
	domain.ErrMissingEmail:       {http.StatusBadRequest, "MISSING_EMAIL"},
	domain.ErrMissingResetFields: {http.StatusBadRequest, "MISSING_RESET_FIELDS"},
	domain.ErrInvalidEmail:       {http.StatusBadRequest, "INVALID_EMAIL"},
	domain.ErrInvalidPhone:       {http.StatusBadRequest, "INVALID_PHONE"},
	domain.ErrPasswordTooShort:   {http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	domain.ErrInvalidFields:      {http.StatusBadRequest, "INVALID_FIELDS"},
	domain.ErrEmailTaken:         {http.StatusBadRequest, "EMAIL_TAKEN"},

	domain.ErrAccountNotFound: {http.StatusNotFound, "ACCOUNT_NOT_FOUND"},

	domain.ErrInvalidPassword: {http.StatusUnauthorized, "INVALID_PASSWORD"},
	domain.ErrNotVerified:     {http.StatusUnauthorized, "NOT_VERIFIED"},
	domain.ErrTokenInvalid:    {http.StatusUnauthorized, "TOKEN_INVALID"},
	domain.ErrTokenExpired:    {http.StatusUnauthorized, "TOKEN_EXPIRED"},
	domain.ErrTokenMalformed:  {http.StatusUnauthorized, "TOKEN_INVALID"},
	domain.ErrSessionNotFound: {http.StatusUnauthorized, "SESSION_NOT_FOUND"},

	domain.ErrInvalidVerificationCode: {http.StatusBadRequest, "VERIFICATION_CODE_INVALID"},
	domain.ErrInvalidResetCode:        {http.StatusBadRequest, "RESET_CODE_INVALID"},
	domain.ErrResetCodeExpired:        {http.StatusBadRequest, "RESET_CODE_EXPIRED"},

	domain.ErrTooManyAttempts: {http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS"},
	domain.ErrResendThrottled: {http.StatusTooManyRequests, "RESEND_THROTTLED"},

	domain.ErrCourseNotFound:      {http.StatusNotFound, "COURSE_NOT_FOUND"},
	domain.ErrMissingCourseFields: {http.StatusBadRequest, "MISSING_FIELDS"},
	domain.ErrCourseInvalid:       {http.StatusBadRequest, "VALIDATION_FAILED"},
}

func writeError(c *gin.Context, err error) {
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			msg := err.Error()
			c.JSON(m.status, gin.H{"error": msg, "code": m.code})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again.", "code": "INTERNAL"})
}
