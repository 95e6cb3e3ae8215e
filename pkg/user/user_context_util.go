package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

// userKey carries the user resolved by the identity middleware through the
// request context.
const userKey contextKey = "currentUser"

var ErrNoUser = errors.New("no user in request context")

// WithUser attaches the resolved user to the context for downstream
// handlers and services.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the user attached to the context, or ErrNoUser when
// the request was never resolved to one.
func CurrentUser(ctx context.Context) (User, error) {
	u, ok := ctx.Value(userKey).(User)
	if !ok {
		log.Trace("no user attached to context")
		return User{}, ErrNoUser
	}
	return u, nil
}

// CurrentId is a shorthand for callers that only need the numeric id.
func CurrentId(ctx context.Context) (int, error) {
	u, err := CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	return u.Id, nil
}
