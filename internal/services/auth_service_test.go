package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mertcakir/gameshelf-backend/internal/config"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService, *config.Config) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserService(db)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: 2 * time.Hour}
	return NewAuthService(users, cfg), users, cfg
}

func signupActiveUser(t *testing.T, users *UserService) *models.User {
	t.Helper()
	user, err := users.Create(&dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "Secret!1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return user
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	auth, users, cfg := newAuthFixture(t)
	user := signupActiveUser(t, users)

	tokenString, err := auth.Login("ada@example.com", "Secret!1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["email"] != "ada@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["role"] != "user" {
		t.Errorf("role = %v", claims["role"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < time.Hour || ttl > 2*time.Hour+time.Minute {
		t.Errorf("token ttl = %v, want about 2h", ttl)
	}
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	signupActiveUser(t, users)

	if _, err := auth.Login("ADA@Example.com", "Secret!1"); err != nil {
		t.Errorf("login with uppercase email: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	user := signupActiveUser(t, users)

	// Deactivated account for the third case.
	inactive, err := users.Create(&dto.SignupRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "Secret!1",
	})
	if err != nil {
		t.Fatalf("signup inactive: %v", err)
	}
	if err := users.db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", user.Email, "Wrong!1x"},
		{"unknown email", "ghost@example.com", "Secret!1"},
		{"inactive account", "bob@example.com", "Secret!1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Login(tc.email, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
