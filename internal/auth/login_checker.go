package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// SessionUser returns the id of the user owning the session token.
func (c *LoginChecker) SessionUser(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	cmd := c.redisClient.HGetAll(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return 0, err
	}

	session := cmd.Val()
	if len(session) == 0 {
		return 0, ErrNoSession
	}

	createdAtUnix, err := strconv.ParseInt(session[fieldCreatedAt], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session created at: %w", err)
	}
	if time.Since(time.Unix(createdAtUnix, 0)) > c.ttl {
		return 0, ErrSessionExpired
	}

	userID, err := strconv.Atoi(session[fieldUserID])
	if err != nil {
		return 0, fmt.Errorf("parse session user id: %w", err)
	}

	return userID, nil
}
