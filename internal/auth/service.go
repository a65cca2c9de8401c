package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/mesotracker/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=auth

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "mesotracker-session||"
	tokensSetKey     = "mesotracker-sessions"

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"

	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 6
	maxPasswordLen = 72
)

var (
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type usersRepo interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if len(c.Username) < minUsernameLen || len(c.Username) > maxUsernameLen {
		return fmt.Errorf("%w: username must have %d to %d characters", ErrInvalidCredentials, minUsernameLen, maxUsernameLen)
	}
	if len(c.Password) < minPasswordLen || len(c.Password) > maxPasswordLen {
		return fmt.Errorf("%w: password must have %d to %d characters", ErrInvalidCredentials, minPasswordLen, maxPasswordLen)
	}
	return nil
}

type Service struct {
	users       usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	users usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Register(ctx context.Context, credentials Credentials) (*User, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	hash, err := pkg.HashPassword(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := as.users.Add(ctx, credentials.Username, hash)
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and creates a new session, returning its token.
func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	user, err := as.users.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrWrongCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdHSet := as.redisClient.HSet(ctx, sessionKey, fieldUserID, user.ID, fieldCreatedAt, createdAt.Unix())
	if err := cmdHSet.Err(); err != nil {
		return "", err
	}

	// add token to the set of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. Returns false if there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the set of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.HGet(ctx, sessionKeyPrefix+token, fieldCreatedAt)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// session hash is gone, only the set entry is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}
