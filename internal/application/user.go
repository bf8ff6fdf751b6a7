package application

import (
	"errors"
	"strings"

	"github.com/linskybing/residence-hub/internal/api/middleware"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(input user.CreateUserInput) (user.User, error) {
	return s.create(input, config.RoleResident)
}

// CreateAdmin is used by the operator CLI.
func (s *UserService) CreateAdmin(input user.CreateUserInput) (user.User, error) {
	return s.create(input, config.RoleAdmin)
}

func (s *UserService) create(input user.CreateUserInput, role string) (user.User, error) {
	email := normalizeEmail(input.Email)
	_, err := s.Repos.User.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:      email,
		Password:   string(hashed),
		FlatNumber: input.FlatNumber,
		Role:       role,
		FullName:   input.FullName,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		// two registrations racing on the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Email, usr.Role, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) List(limit, offset int) ([]user.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repos.User.ListUsers(limit, offset)
}

// Update changes a profile. Residents may edit only themselves and never
// their role.
func (s *UserService) Update(actor user.Actor, id uint, input user.UpdateUserInput) (user.User, error) {
	if actor.ID != id && !actor.IsAdmin {
		return user.User{}, ErrForbidden
	}

	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}

	if input.Role != nil {
		if !actor.IsAdmin {
			return user.User{}, ErrForbidden
		}
		usr.Role = *input.Role
	}
	if input.FlatNumber != nil {
		usr.FlatNumber = *input.FlatNumber
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}
	if input.ProfilePicture != nil {
		usr.ProfilePicture = input.ProfilePicture
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
