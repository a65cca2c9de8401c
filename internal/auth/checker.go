package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	SessionUser(ctx context.Context, token string) (int, error)
}

// LoginTestChecker is an in-memory Checker, mapping tokens to user ids.
type LoginTestChecker struct {
	Sessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]int{},
	}
}

func (c *LoginTestChecker) SessionUser(_ context.Context, token string) (int, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}
