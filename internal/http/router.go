package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/hasansisik/kurstanbul-kos-server/internal/http/handlers"
	"github.com/hasansisik/kurstanbul-kos-server/internal/http/middleware"
)

// BuildRouter wires the two account route groups (company plus the
// legacy course-account duplicate), the course resource routes and the
// admin policy routes.
func BuildRouter(
	companyH *handlers.AuthHandlers,
	courseAcctH *handlers.AuthHandlers,
	courseH *handlers.CourseHandlers,
	policyH *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	accountRoutes(r.Group("/v1/company"), companyH, jwtmw)

	course := r.Group("/v1/course")
	accountRoutes(course, courseAcctH, jwtmw)

	course.POST("/", courseH.Create)
	course.GET("/:id", courseH.Get)
	course.PUT("/:id", jwtmw.WithJWT(), cb.Enforce(), courseH.Update)
	course.DELETE("/:id", jwtmw.WithJWT(), cb.Enforce(), courseH.Delete)
	course.POST("/:id/instructor", courseH.AddInstructor)

	adm := r.Group("/admin", jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", policyH.List)
	adm.POST("/policies", policyH.Add)
	adm.DELETE("/policies", policyH.Remove)

	return r
}

func accountRoutes(g *gin.RouterGroup, ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) {
	g.POST("/register", ah.Register)
	g.POST("/login", ah.Login)
	g.POST("/verify-email", ah.VerifyEmail)
	g.POST("/again-email", ah.ResendVerification)
	g.POST("/forgot-password", ah.ForgotPassword)
	g.POST("/reset-password", ah.ResetPassword)
	g.POST("/refreshtoken", ah.Refresh)

	g.GET("/me", jwtmw.WithJWT(), ah.Me)
	g.POST("/edit-profile", jwtmw.WithJWT(), ah.EditProfile)
	g.POST("/logout", jwtmw.WithJWT(), ah.Logout)
}
