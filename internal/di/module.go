package di

import (
	"go.uber.org/fx"

	"github.com/soleshop/soleshop/internal/app"
	"github.com/soleshop/soleshop/internal/config"
	"github.com/soleshop/soleshop/internal/logger"
	"github.com/soleshop/soleshop/internal/pkg/auth"
	"github.com/soleshop/soleshop/internal/server/http/handlers"
	"github.com/soleshop/soleshop/internal/server/http/router"
	"github.com/soleshop/soleshop/internal/storage/postgres"
	"github.com/soleshop/soleshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
