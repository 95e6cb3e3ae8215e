package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUserDataInvalid = errors.New("user data invalid")

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

// Provider is the minimal read surface other packages depend on.
type Provider interface {
	GetCurrentUser(ctx context.Context) (User, error)
}

type UserServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.GetUser(ctx, userId)
}

func (u *UserServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.repo.GetUserByUid(ctx, uid)
}

func (u *UserServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	if user.Username == "" || user.DisplayName == "" {
		return User{}, ErrUserDataInvalid
	}
	if user.Settings.Timezone == "" {
		user.Settings.Timezone = "UTC"
	}
	user.Uid = uuid.NewString()
	userId, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = userId
	return user, nil
}

func (u *UserServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.UpdateUser(ctx, userId, user)
}

func (u *UserServiceImpl) DeleteUser(ctx context.Context, id int) error {
	return u.repo.DeleteUser(ctx, id)
}

func (u *UserServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	taken, err := u.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
