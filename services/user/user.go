package user

import (
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Login upserts the user and returns a signed access token carrying the
// email claim.
func (s *DefaultUserService) Login(u models.User) (string, error) {
	if err := s.Repo.Upsert(&u); err != nil {
		return "", fmt.Errorf("failed to upsert user: %w", err)
	}
	token, err := utils.GenerateToken(u.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// GrantAdmin elevates an existing user to the admin role.
func (s *DefaultUserService) GrantAdmin(email string) error {
	return s.Repo.SetRole(email, models.RoleAdmin)
}

// IsAdmin reports whether the stored user carries the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// ListUsers retrieves all users.
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
