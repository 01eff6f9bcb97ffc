package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// Code scopes. Attempt counters and resend throttles are tracked per
// scope so a burst of reset attempts cannot burn verification attempts.
const (
	ScopeVerify = "verify"
	ScopeReset  = "reset"
)

// CodeServiceImpl implements domain.CodeService. The codes themselves
// live on the account row; Redis only tracks attempt counters and resend
// throttles, since a 4-digit code leaves just 9000 possibilities.
type CodeServiceImpl struct {
	redisClient *redis.Client
	config      CodeConfig
}

type CodeConfig struct {
	MaxAttempts  int
	AttemptTTL   time.Duration
	ResendWindow time.Duration
}

// NewCodeService creates a new Redis-backed code service
func NewCodeService(redisClient *redis.Client, config CodeConfig) domain.CodeService {
	return &CodeServiceImpl{
		redisClient: redisClient,
		config:      config,
	}
}

// Generate implements domain.CodeService: a uniform random code in the
// inclusive range 1000-9999.
func (s *CodeServiceImpl) Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return 0, fmt.Errorf("failed to generate code: %w", err)
	}
	return int(n.Int64()) + 1000, nil
}

// RegisterAttempt implements domain.CodeService. The counter is
// incremented atomically; exceeding the limit returns
// domain.ErrTooManyAttempts until the window expires.
func (s *CodeServiceImpl) RegisterAttempt(ctx context.Context, scope, email string) error {
	key := fmt.Sprintf("code:att:%s:%s", scope, email)

	attempts, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	if attempts == 1 {
		s.redisClient.Expire(ctx, key, s.config.AttemptTTL)
	}

	if attempts > int64(s.config.MaxAttempts) {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// ClearAttempts implements domain.CodeService
func (s *CodeServiceImpl) ClearAttempts(ctx context.Context, scope, email string) error {
	key := fmt.Sprintf("code:att:%s:%s", scope, email)
	return s.redisClient.Del(ctx, key).Err()
}

// CheckResend implements domain.CodeService with Redis-based throttling
func (s *CodeServiceImpl) CheckResend(ctx context.Context, scope, email string) (bool, int64, error) {
	key := fmt.Sprintf("code:res:%s:%s", scope, email)

	ttl, err := s.redisClient.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key is gone or never existed.
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// MarkResend implements domain.CodeService
func (s *CodeServiceImpl) MarkResend(ctx context.Context, scope, email string) error {
	key := fmt.Sprintf("code:res:%s:%s", scope, email)
	return s.redisClient.Set(ctx, key, 1, s.config.ResendWindow).Err()
}
