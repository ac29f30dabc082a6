package usecase

import (
	"go.uber.org/fx"

	"github.com/soleshop/soleshop/internal/config"
	"github.com/soleshop/soleshop/internal/domain/repository"
	pkgAuth "github.com/soleshop/soleshop/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
	NewWalletUseCase,
	NewAdminUseCase,
)

type authParams struct {
	fx.In

	Users  repository.UserRepository
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
	Config *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Tokens, p.Config.WelcomeCredit)
}
