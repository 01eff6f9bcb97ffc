package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
	"github.com/hasansisik/kurstanbul-kos-server/internal/config"
	httpx "github.com/hasansisik/kurstanbul-kos-server/internal/http"
	"github.com/hasansisik/kurstanbul-kos-server/internal/http/handlers"
	"github.com/hasansisik/kurstanbul-kos-server/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	companyH := handlers.NewAuthHandlers(c.AuthSvc, domain.AccountTypeCompany, "/v1/company/refreshtoken")
	courseAcctH := handlers.NewAuthHandlers(c.AuthSvc, domain.AccountTypeCourse, "/v1/course/refreshtoken")
	courseH := handlers.NewCourseHandlers(c.CourseSvc)
	policyH := &handlers.PolicyHandlers{Svc: c.PolicySvc}

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(companyH, courseAcctH, courseH, policyH, jwtMW, casbinMW)

	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) == 0 {
		c.Casbin.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
		c.Casbin.E.AddPolicy("role_admin", "/v1/course/*", "(PUT|DELETE)")
		_ = c.Casbin.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
