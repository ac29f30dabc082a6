package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	pkgAuth "github.com/soleshop/soleshop/internal/pkg/auth"
	testhelpers "github.com/soleshop/soleshop/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, role string) (string, error) {
			return fmt.Sprintf("token-%d-%s", userID, role), nil
		},
		ParseFn: func(token string) (int64, string, error) {
			var id int64
			var role string
			if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &role); err != nil {
				return 0, "", pkgAuth.ErrInvalidToken
			}
			return id, role, nil
		},
	}
}

func newAuthUseCaseForTest(repo *testhelpers.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), decimal.NewFromInt(1000))
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(repo)

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice", "alice@example.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
	if !user.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected welcome credit, got %s", user.Balance)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Role != model.RoleUser {
		t.Fatalf("expected customer role, got %s", stored.Role)
	}
}

func TestAuthUseCaseRegisterNormalizesEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(repo)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Bob", "  Bob@Example.COM ", "secret1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "bob@example.com"); err != nil {
		t.Fatalf("expected lowercased email key: %v", err)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(repo)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "secret1"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "Bobby", "bob@example.com", "secret2"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := newAuthUseCaseForTest(testhelpers.NewUserRepositoryStub())
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"", "alice@example.com", "password"},
		{"Alice", "", "password"},
		{"Alice", "not-an-email", "password"},
		{"Alice", "alice@example.com", "short"},
	}
	for _, tc := range cases {
		if _, _, err := uc.Register(context.Background(), tc.name, tc.email, tc.password); err != domainErrors.ErrInvalidCredentials {
			t.Fatalf("expected invalid credentials for %q/%q, got %v", tc.name, tc.email, err)
		}
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub(), decimal.Zero)

	if _, _, err := uc.Register(context.Background(), "Alice", "alice@example.com", "password"); err == nil {
		t.Fatalf("expected hasher error to propagate")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(repo)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Carol", "carol@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@example.com", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := newAuthUseCaseForTest(testhelpers.NewUserRepositoryStub())

	identity, err := uc.ParseToken("token-42-admin")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if identity.UserID != 42 || identity.Role != model.RoleAdmin {
		t.Fatalf("unexpected identity %+v", identity)
	}

	if _, err := uc.ParseToken("token-7-superuser"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token for unknown role, got %v", err)
	}
	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseUpdateProfile(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCaseForTest(repo)

	ctx := context.Background()
	user, _, err := uc.Register(ctx, "Dave", "dave@example.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	renamed, err := uc.UpdateProfile(ctx, user.ID, "David")
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if renamed.Name != "David" {
		t.Fatalf("expected renamed profile, got %q", renamed.Name)
	}

	// Blank name keeps the current profile.
	same, err := uc.UpdateProfile(ctx, user.ID, "   ")
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if same.Name != "David" {
		t.Fatalf("expected unchanged name, got %q", same.Name)
	}
}
