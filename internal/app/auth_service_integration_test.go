//go:build integration

package app

import (
	"errors"
	"testing"
	"time"

	"github.com/ZivNavon/customer-management-tool/internal/repository"
	"github.com/ZivNavon/customer-management-tool/internal/testutil"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestIntegrationAuthService_RegisterLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(RegisterInput{
		Email:       "Ziv@Example.com",
		DisplayName: "Ziv",
		Password:    "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.User.Email != "ziv@example.com" {
		t.Errorf("email should be lowercased, got %q", registered.User.Email)
	}
	if registered.User.Locale != "en" || registered.User.Timezone != "Asia/Jerusalem" {
		t.Errorf("defaults not applied: locale=%q tz=%q", registered.User.Locale, registered.User.Timezone)
	}
	if registered.Token == "" {
		t.Error("register should issue a token")
	}

	logged, err := svc.Login(LoginInput{Email: "ziv@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.User.ID != registered.User.ID {
		t.Error("login should resolve the registered user")
	}
}

func TestIntegrationAuthService_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "password456"})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestIntegrationAuthService_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(RegisterInput{Email: "who@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, err := svc.Login(LoginInput{Email: "who@example.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("err = %v, want ErrInvalidCredential", err)
	}
}
