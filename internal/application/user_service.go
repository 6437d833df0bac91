package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	repo "github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

// UserService is the administrative CRUD over users. It carries no policy.
type UserService struct {
	Users  repo.UserRepository
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, hasher PasswordHasher, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Hasher: hasher, Logger: logger}
}

type UserInput struct {
	FullName string          `json:"FullName" validate:"required"`
	Email    string          `json:"Email" validate:"required"`
	Password string          `json:"Password" validate:"required"`
	PhoneNo  entity.LooseInt `json:"PhoneNo"`
	Address  string          `json:"Address"`
	Pincode  entity.LooseInt `json:"Pincode"`
	Role     string          `json:"role" validate:"omitempty,oneof=admin recruiter jobseeker"`
}

// UserPatch deliberately has no role field.
type UserPatch struct {
	FullName *string         `json:"FullName"`
	Email    *string         `json:"Email"`
	Password *string         `json:"Password"`
	PhoneNo  entity.LooseInt `json:"PhoneNo"`
	Address  *string         `json:"Address"`
	Pincode  entity.LooseInt `json:"Pincode"`
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := invalid(validation.Struct(in)); err != nil {
		return nil, err
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
		Role:         entity.ParseRole(in.Role),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, storeErr("create user", "user", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user created")
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, storeErr("list users", "user", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get user", "user", err)
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get user", "user", err)
	}
	setString(&u.FullName, patch.FullName)
	if patch.Email != nil {
		u.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.PhoneNo.Present {
		u.PhoneNo = patch.PhoneNo.Ptr()
	}
	setString(&u.Address, patch.Address)
	if patch.Pincode.Present {
		u.Pincode = patch.Pincode.Ptr()
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := hashPassword(s.Hasher, *patch.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, storeErr("update user", "user", err)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return storeErr("delete user", "user", s.Users.Delete(ctx, id))
}
