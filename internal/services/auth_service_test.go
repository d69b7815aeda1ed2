package services

import (
	"errors"
	"testing"
	"time"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestLogin(t *testing.T) {
	utils.InitJWT("test-secret", time.Hour)

	repo := newFakeUserRepo(&models.User{
		ID:           1,
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: mustHash(t, "s3cret99"),
		Role:         models.RoleStaff,
	})
	svc := NewAuthService(repo, nil)

	resp, err := svc.Login(LoginRequest{Email: "Asha@Example.com", Password: "s3cret99"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a signed access token")
	}
	claims, err := utils.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 1 || claims.Role != models.RoleStaff {
		t.Errorf("claims = %+v, want user 1 with staff role", claims)
	}

	if _, err := svc.Login(LoginRequest{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(LoginRequest{Email: "nobody@example.com", Password: "s3cret99"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterCustomerForcesCustomerRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	user, err := svc.RegisterCustomer(RegisterCustomerRequest{Name: "Ravi", Email: "Ravi@Example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("Role = %q, want customer", user.Role)
	}
	if user.Email != "ravi@example.com" {
		t.Errorf("Email = %q, want lower-cased", user.Email)
	}

	if _, err := svc.RegisterCustomer(RegisterCustomerRequest{Name: "Ravi", Email: "ravi@example.com", Password: "hunter22"}); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email: err = %v, want ErrEmailExists", err)
	}
}

func TestCreateUserRejectsCustomerRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	_, err := svc.CreateUser(CreateUserRequest{Name: "X", Email: "x@example.com", Password: "secret1", Role: models.RoleCustomer})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("customer via admin endpoint: err = %v, want ErrInvalidRole", err)
	}

	user, err := svc.CreateUser(CreateUserRequest{Name: "Staff", Email: "staff@example.com", Password: "secret1", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != models.RoleStaff {
		t.Errorf("Role = %q, want staff", user.Role)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	if err := svc.EnsureAdmin("Boss", "boss@example.com", "changeme1"); err != nil {
		t.Fatalf("EnsureAdmin (fresh): %v", err)
	}
	created := repo.byEmail["boss@example.com"]
	if created == nil || created.Role != models.RoleAdmin {
		t.Fatalf("bootstrap account = %+v, want admin", created)
	}

	if err := svc.EnsureAdmin("Boss", "boss@example.com", "changeme1"); err != nil {
		t.Fatalf("EnsureAdmin (existing): %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("user count = %d, want 1", len(repo.byID))
	}
}
