package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUsername = errors.New("invalid username")
)

// IUserUseCase exposes the placeholder user operations. No HTTP surface
// consumes this yet; it exists for the future authenticated admin area.

type IUserUseCase interface {
	Create(ctx context.Context, in entities.UserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, in entities.UserInput) (entities.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return entities.User{}, ErrInvalidUsername
	}

	user := entities.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: in.Password,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrInvalidUsername
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
