package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	repo "github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

type AuthService struct {
	Users  repo.UserRepository
	Tokens TokenIssuer
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens TokenIssuer, hasher PasswordHasher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Hasher: hasher, Logger: logger}
}

type RegisterInput struct {
	FullName string          `json:"FullName" validate:"required"`
	Email    string          `json:"Email" validate:"required"`
	Password string          `json:"Password" validate:"required"`
	PhoneNo  entity.LooseInt `json:"PhoneNo"`
	Address  string          `json:"Address"`
	Pincode  entity.LooseInt `json:"Pincode"`
	Role     string          `json:"role"`
}

type LoginInput struct {
	Email    string `json:"Email" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  entity.PublicUser `json:"user"`
}

// registrationRole maps the requested role to the stored one. Only recruiter
// can be chosen; admin and anything else fall back to jobseeker.
func registrationRole(requested string) entity.Role {
	if entity.Role(requested) == entity.RoleRecruiter {
		return entity.RoleRecruiter
	}
	return entity.RoleJobseeker
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
	}

	existing, err := s.Users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("%w: Email already registered", ErrConflict)
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, storeErr("lookup user", "user", err)
	}

	hash, err := hashPassword(s.Hasher, in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PhoneNo:      in.PhoneNo.Ptr(),
		Address:      in.Address,
		Pincode:      in.Pincode.Ptr(),
		PasswordHash: hash,
		Role:         registrationRole(in.Role),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: Email already registered", ErrConflict)
		}
		return nil, storeErr("create user", "user", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	return s.issue(u)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
	}
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr("lookup user", "user", err)
	}
	if !s.Hasher.Compare(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, _, err := s.Tokens.IssueDefault(u.ID, u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}
