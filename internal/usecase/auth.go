package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
	pkgAuth "github.com/soleshop/soleshop/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users         repository.UserRepository
	hasher        pkgAuth.PasswordHasher
	tokens        pkgAuth.Strategy
	welcomeCredit decimal.Decimal
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, welcomeCredit decimal.Decimal) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, welcomeCredit: welcomeCredit}
}

// Register creates a new customer account with the welcome credit and
// returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") || len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash, model.RoleUser, u.welcomeCredit)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, string(usr.Role))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, string(usr.Role))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the caller identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	userID, role, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Identity{}, err
	}
	switch model.Role(role) {
	case model.RoleUser, model.RoleAdmin:
	default:
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return model.Identity{UserID: userID, Role: model.Role(role)}, nil
}

// Profile fetches user by identifier.
func (u *AuthUseCase) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// UpdateProfile renames the user. An empty name leaves the profile unchanged,
// matching the storefront's partial-update form.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return u.users.GetByID(ctx, userID)
	}
	return u.users.UpdateName(ctx, userID, name)
}
