package user

import (
	"context"
)

type StubUserRepo struct {
	users  map[int]User
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{
		users:  make(map[int]User),
		nextId: 1,
	}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) (int, error) {
	id := s.nextId
	s.nextId++
	user.Id = id
	s.users[id] = user
	return id, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, u := range s.users {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) UpdateUser(ctx context.Context, id int, user User) (User, error) {
	existing, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	existing.DisplayName = user.DisplayName
	existing.Settings = user.Settings
	s.users[id] = existing
	return existing, nil
}

func (s *StubUserRepo) DeleteUser(ctx context.Context, id int) error {
	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *StubUserRepo) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}
