package service

import (
	"database/sql"
	"errors"
	"log"

	"github.com/PelusheLD/Pepito-s-House/server/internal/auth"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type UserService struct {
	repository UserRepository
	tokens     *auth.JWTManager
}

func NewUserService(repository UserRepository, tokens *auth.JWTManager) *UserService {
	return &UserService{repository: repository, tokens: tokens}
}

// Login verifies credentials and returns a signed token plus the user.
// Password hashes never leave this layer: callers get the domain.User whose
// password field is excluded from serialization.
func (s *UserService) Login(username, password string) (domain.User, string, error) {
	user, err := s.repository.GetByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) List() ([]domain.User, error) {
	return s.repository.List()
}

func (s *UserService) Get(id int) (domain.User, error) {
	user, err := s.repository.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

func (s *UserService) Create(input domain.CredentialsInput) (domain.User, error) {
	if err := checkStruct(input); err != nil {
		return domain.User{}, err
	}

	if _, err := s.repository.GetByUsername(input.Username); err == nil {
		return domain.User{}, ErrDuplicateUsername
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username:     input.Username,
		Password:     hashed,
		IsFirstLogin: true,
		Role:         "admin",
	}
	if err := s.repository.Insert(&user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// ChangePassword verifies the current password before replacing it and
// clears the first-login flag.
func (s *UserService) ChangePassword(userID int, input domain.ChangePasswordInput) error {
	if err := checkStruct(input); err != nil {
		return err
	}

	user, err := s.Get(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, input.CurrentPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return s.repository.UpdatePassword(userID, hashed, false)
}

// ResetPassword sets a new password for another user and flags the account
// for a forced password change on next login.
func (s *UserService) ResetPassword(userID int, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}

	if _, err := s.Get(userID); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repository.UpdatePassword(userID, hashed, true)
}

func (s *UserService) Delete(id int) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.Username == "admin" {
		return ErrProtectedUser
	}
	return s.repository.Delete(id)
}

// EnsureDefaultAdmin seeds the initial admin account so a fresh deployment
// is reachable. Existing accounts are left alone.
func (s *UserService) EnsureDefaultAdmin(username, password string) error {
	if _, err := s.repository.GetByUsername(username); err == nil {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := domain.User{
		Username:     username,
		Password:     hashed,
		IsFirstLogin: true,
		Role:         "admin",
	}
	if err := s.repository.Insert(&user); err != nil {
		return err
	}

	log.Printf("[server] created default admin user %q", username)
	return nil
}
