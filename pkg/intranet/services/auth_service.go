package services

import (
	"context"
	"errors"
	"strings"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthService implements the bootstrap registration guard: exactly one admin
// account can ever be created.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, body models.RegisterInput) (*models.RegisteredUser, error) {
	var invalids []problem.InvalidParam
	if body.Email == "" || !strings.Contains(body.Email, "@") {
		invalids = append(invalids, problem.InvalidParam{Name: "email", Reason: "must be a valid email address"})
	}
	if len(body.Password) < minPasswordLength {
		invalids = append(invalids, problem.InvalidParam{Name: "password", Reason: "must be at least 8 characters"})
	}
	if len(invalids) > 0 {
		return nil, problem.NewBadRequest("body", "invalid registration input", invalids...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, problem.NewInternalServerError("cannot hash password: " + err.Error())
	}

	user := &models.User{
		Id:           uuid.New().String(),
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Singleton:    1,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			return nil, problem.NewRegistrationClosed("registration is disabled: an admin user already exists")
		}
		return nil, problem.NewInternalServerError("cannot create user: " + err.Error())
	}

	return &models.RegisteredUser{Id: user.Id, Email: user.Email, Role: user.Role}, nil
}
