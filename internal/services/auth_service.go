package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mertcakir/gameshelf-backend/internal/config"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users *UserService
	cfg   *config.Config
}

func NewAuthService(users *UserService, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Login verifies the credentials and returns a signed token. Unknown email,
// wrong password and an inactive account are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil || !user.IsActive {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
