package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrInvalidRole    = errors.New("invalid role")
)

// UserService covers admin-side user management. Authentication lives in the
// auth package; this service never issues tokens.
type UserService struct {
	userRepo  *repository.UserRepository
	majorRepo *repository.MajorRepository
}

func NewUserService(userRepo *repository.UserRepository, majorRepo *repository.MajorRepository) *UserService {
	return &UserService{userRepo: userRepo, majorRepo: majorRepo}
}

// Create creates a user account with a bcrypt-hashed password
func (s *UserService) Create(req *models.CreateUserRequest) (*models.User, error) {
	exists, err := s.userRepo.CheckUsernameExists(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameExists
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	switch role {
	case models.RoleStudent, models.RoleTeacher, models.RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}

	if req.MajorID != nil {
		if _, err := s.majorRepo.GetByID(*req.MajorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMajorNotFound
			}
			return nil, fmt.Errorf("failed to load major: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         role,
		Faculty:      req.Faculty,
		MajorID:      req.MajorID,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.Infof("User %s created with role %s", user.Username, user.Role)
	return user, nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List returns users with optional role filter, search and pagination
func (s *UserService) List(page, pageSize int, search, role string) ([]models.UserResponse, int64, error) {
	users, total, err := s.userRepo.GetAllUsers(page, pageSize, search, role)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, total, nil
}

// Update modifies a user's profile fields
func (s *UserService) Update(id string, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		switch req.Role {
		case models.RoleStudent, models.RoleTeacher, models.RoleAdmin:
			user.Role = req.Role
		default:
			return nil, ErrInvalidRole
		}
	}
	if req.Faculty != "" {
		user.Faculty = req.Faculty
	}
	if req.MajorID != nil {
		if _, err := s.majorRepo.GetByID(*req.MajorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMajorNotFound
			}
			return nil, fmt.Errorf("failed to load major: %w", err)
		}
		user.MajorID = req.MajorID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// SetActive enables or disables a user account. Disabling bumps the token
// version so outstanding access tokens stop validating.
func (s *UserService) SetActive(id string, isActive bool) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.IsActive = isActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !isActive {
		if err := s.userRepo.IncrementTokenVersion(id); err != nil {
			logrus.Errorf("Failed to increment token version for user %s: %v", id, err)
		}
	}
	return user, nil
}

// ResetPassword sets a new password for a user and invalidates existing tokens
func (s *UserService) ResetPassword(id, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.userRepo.IncrementTokenVersion(id); err != nil {
		logrus.Errorf("Failed to increment token version for user %s: %v", id, err)
	}
	return nil
}

// Delete removes a user account
func (s *UserService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
