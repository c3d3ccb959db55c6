package service

import (
	"context"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// UserService handles submitter/admin accounts.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	return s.store.Users().Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, id int32) (*model.User, error) {
	return s.store.Users().Get(ctx, id)
}
