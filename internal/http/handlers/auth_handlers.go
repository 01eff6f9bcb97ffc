package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

const refreshCookieName = "refreshToken"

// AuthHandlers handles the account lifecycle HTTP requests for one route
// group. Two instances exist, one for /v1/company and one for the legacy
// /v1/course account group; they differ only in the account type tag and
// the refresh-cookie path.
type AuthHandlers struct {
	authSvc     domain.AuthService
	accountType string
	cookiePath  string
}

// NewAuthHandlers creates auth handlers bound to one account type.
func NewAuthHandlers(authSvc domain.AuthService, accountType, cookiePath string) *AuthHandlers {
	return &AuthHandlers{
		authSvc:     authSvc,
		accountType: accountType,
		cookiePath:  cookiePath,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"courseName"`
	Address  string `json:"courseAdress"`
	Phone    string `json:"courseTel"`
	Code     string `json:"courseCode"`
	Email    string `json:"courseEmail"`
	Password string `json:"password"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"courseEmail"`
	Password string `json:"password"`
}

// VerifyEmailRequest represents email verification request. The code is
// accepted as a bare number or a numeric string.
type VerifyEmailRequest struct {
	Email string      `json:"courseEmail"`
	Code  json.Number `json:"verificationCode"`
}

// Register handles account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), h.accountType, domain.RegisterInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Code:     req.Code,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully. Please verify your email address.",
		"company": h.profileJSON(result.Account, result.AccessToken),
	})
}

// Login handles account login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), h.accountType, domain.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	profile := h.profileJSON(result.Account, result.AccessToken)
	profile["subs"] = result.Account.Subs
	profile["status"] = result.Account.Status

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"company": profile,
	})
}

// Refresh exchanges the refresh cookie for a new access token.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token cookie required", "code": "TOKEN_INVALID"})
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), h.accountType, refreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   result.ExpiresIn,
	})
}

// Logout handles account logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context", "code": "UNAUTHORIZED"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), accountID.(uint)); err != nil {
		writeError(c, err)
		return
	}

	// Expire the cookie on the same path it was set.
	c.SetCookie(refreshCookieName, "", -1, h.cookiePath, "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// VerifyEmail handles the verification-code check
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	code, _ := req.Code.Int64()
	if err := h.authSvc.VerifyEmail(c.Request.Context(), h.accountType, req.Email, int(code)); err != nil {
		// Account lookup failures stay a soft 400 on this endpoint,
		// matching the legacy behavior.
		if err == domain.ErrAccountNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account not found", "code": "ACCOUNT_NOT_FOUND"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account verified successfully."})
}

// ResendVerification regenerates and re-sends the verification code
func (h *AuthHandlers) ResendVerification(c *gin.Context) {
	var req struct {
		Email string `json:"courseEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	if err := h.authSvc.ResendVerification(c.Request.Context(), h.accountType, req.Email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// ForgotPassword issues a password-reset code
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"courseEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), h.accountType, req.Email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Please check your email for the reset code."})
}

// ResetPasswordRequest represents the password-reset request
type ResetPasswordRequest struct {
	Email       string      `json:"courseEmail"`
	Code        json.Number `json:"passwordToken"`
	NewPassword string      `json:"newPassword"`
}

// ResetPassword consumes the reset code and overwrites the password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	code, _ := req.Code.Int64()
	if err := h.authSvc.ResetPassword(c.Request.Context(), h.accountType, req.Email, int(code), req.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

// Me returns the authenticated account's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context", "code": "UNAUTHORIZED"})
		return
	}

	account, err := h.authSvc.GetProfile(c.Request.Context(), accountID.(uint))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": h.accountJSON(account),
	})
}

// EditProfile applies a partial profile update
func (h *AuthHandlers) EditProfile(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context", "code": "UNAUTHORIZED"})
		return
	}

	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "BAD_REQUEST"})
		return
	}

	if _, err := h.authSvc.EditProfile(c.Request.Context(), accountID.(uint), updates); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully."})
}

func (h *AuthHandlers) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(refreshCookieName, refreshToken, 30*24*60*60, h.cookiePath, "", false, true)
}

// profileJSON is the registration/login response shape: profile fields
// plus the access token, never the password hash.
func (h *AuthHandlers) profileJSON(account *domain.Account, accessToken string) gin.H {
	return gin.H{
		"_id":          account.ID,
		"courseName":   account.Name,
		"courseEmail":  account.Email,
		"courseAdress": account.Address,
		"courseCode":   account.Code,
		"courseTel":    account.Phone,
		"token":        accessToken,
	}
}

// accountJSON is the stored account document as the profile endpoint
// returns it; the password hash stays private.
func (h *AuthHandlers) accountJSON(account *domain.Account) gin.H {
	return gin.H{
		"_id":              account.ID,
		"type":             account.Type,
		"courseName":       account.Name,
		"courseEmail":      account.Email,
		"courseAdress":     account.Address,
		"courseCode":       account.Code,
		"courseTel":        account.Phone,
		"subs":             account.Subs,
		"status":           account.Status,
		"isVerified":       account.IsVerified,
		"verificationCode": account.VerificationCode,
		"createdAt":        account.CreatedAt,
		"updatedAt":        account.UpdatedAt,
	}
}
