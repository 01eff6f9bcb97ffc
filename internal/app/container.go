package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
	"github.com/hasansisik/kurstanbul-kos-server/internal/config"
	"github.com/hasansisik/kurstanbul-kos-server/internal/infrastructure/auth"
	"github.com/hasansisik/kurstanbul-kos-server/internal/infrastructure/database"
	"github.com/hasansisik/kurstanbul-kos-server/internal/infrastructure/notifications"
	"github.com/hasansisik/kurstanbul-kos-server/internal/infrastructure/repositories"
	"github.com/hasansisik/kurstanbul-kos-server/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	AccountRepo domain.AccountRepository
	SessionRepo domain.SessionTokenRepository
	CourseRepo  domain.CourseRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	CodeSvc     domain.CodeService
	AuthSvc     domain.AuthService
	CourseSvc   domain.CourseService
	PolicySvc   domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	c.Casbin = cas

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	c.AccountRepo = repositories.NewAccountRepository(db)
	c.SessionRepo = repositories.NewSessionTokenRepository(db)
	c.CourseRepo = repositories.NewCourseRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.JWTIssuer,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)
	c.Mailer = notifications.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)
	c.CodeSvc = services.NewCodeService(c.RedisClient, services.CodeConfig{
		MaxAttempts:  cfg.CodeMaxAttempts,
		AttemptTTL:   cfg.CodeAttemptTTL,
		ResendWindow: cfg.CodeResendWindow,
	})

	c.AuthSvc = services.NewAuthService(
		c.AccountRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.CodeSvc,
		c.Mailer,
	)
	c.CourseSvc = services.NewCourseService(c.CourseRepo)
	c.PolicySvc = services.NewPolicyService(cas.E)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
