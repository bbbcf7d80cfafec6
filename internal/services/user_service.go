package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a new account. The plaintext password is hashed and
// discarded; the stored email is always lowercased.
func (s *UserService) Create(req *dto.SignupRequest) (*models.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: string(hash),
		IsActive: true,
		Role:     "user",
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		slog.Error("failed to create user", "action", "user_create", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *UserService) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update merges the provided profile fields. Password and id never change
// through this path; an email change is re-validated for uniqueness.
func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			var existing models.User
			if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		slog.Error("failed to update user", "action", "user_update", "user_id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func validateSignup(req *dto.SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(req.Password) < 5 {
		return fmt.Errorf("%w: password must be at least 5 characters", ErrInvalidInput)
	}
	var hasUpper, hasSymbol bool
	for _, r := range req.Password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune("!@#$%^&*", r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrInvalidInput)
	}
	if !hasSymbol {
		return fmt.Errorf("%w: password must contain at least one symbol (!@#$%%^&*)", ErrInvalidInput)
	}
	return nil
}
