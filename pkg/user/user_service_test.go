package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserServiceImpl_CreateUser(t *testing.T) {
	service := NewUserService(NewStubUserRepo())

	created, err := service.CreateUser(context.Background(), User{
		Username:    "learner",
		DisplayName: "Learner",
	})

	assert.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "UTC", created.Settings.Timezone)
}

func TestUserServiceImpl_CreateUser_Validation(t *testing.T) {
	service := NewUserService(NewStubUserRepo())

	_, err := service.CreateUser(context.Background(), User{Username: "learner"})
	assert.ErrorIs(t, err, ErrUserDataInvalid)

	_, err = service.CreateUser(context.Background(), User{DisplayName: "Learner"})
	assert.ErrorIs(t, err, ErrUserDataInvalid)
}

func TestUserServiceImpl_GetCurrentUser(t *testing.T) {
	repo := NewStubUserRepo()
	service := NewUserService(repo)
	created, err := service.CreateUser(context.Background(), User{Username: "learner", DisplayName: "Learner"})
	assert.NoError(t, err)

	ctx := WithUser(context.Background(), created)
	current, err := service.GetCurrentUser(ctx)

	assert.NoError(t, err)
	assert.Equal(t, created.Id, current.Id)
}

func TestUserServiceImpl_GetCurrentUser_NoUserInContext(t *testing.T) {
	service := NewUserService(NewStubUserRepo())

	_, err := service.GetCurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoUser)
}

func TestUserServiceImpl_UpdateUser_ChangesGoals(t *testing.T) {
	service := NewUserService(NewStubUserRepo())
	created, err := service.CreateUser(context.Background(), User{Username: "learner", DisplayName: "Learner"})
	assert.NoError(t, err)

	ctx := WithUser(context.Background(), created)
	created.Settings.MonthlyGoalMinutes = 2400
	created.Settings.MonthlyGoalSessions = 80
	updated, err := service.UpdateUser(ctx, created)

	assert.NoError(t, err)
	assert.Equal(t, 2400, updated.Settings.MonthlyGoalMinutes)
	assert.Equal(t, 80, updated.Settings.MonthlyGoalSessions)
}

func TestUserServiceImpl_IsUsernameAvailable(t *testing.T) {
	service := NewUserService(NewStubUserRepo())
	_, err := service.CreateUser(context.Background(), User{Username: "learner", DisplayName: "Learner"})
	assert.NoError(t, err)

	available, err := service.IsUsernameAvailable(context.Background(), "learner")
	assert.NoError(t, err)
	assert.False(t, available)

	available, err = service.IsUsernameAvailable(context.Background(), "someone-else")
	assert.NoError(t, err)
	assert.True(t, available)
}
