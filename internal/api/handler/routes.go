package handler

import (
	"net/http"

	"github.com/vfg2006/yield-manager-api/internal/api/handler/router"
	"github.com/vfg2006/yield-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Strategies(service yielding.YieldManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/strategies",
			Method:      http.MethodGet,
			Handler:     ListStrategies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/strategies",
			Method:      http.MethodPost,
			Handler:     CreateStrategy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StrategyWriters()},
		},
		{
			Path:        "/v1/strategies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateStrategy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StrategyWriters()},
		},
		{
			Path:        "/v1/strategies/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteStrategy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StrategyWriters()},
		},
	}
}

func Yield(service yielding.YieldManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/properties/:id/yield/dashboard",
			Method:      http.MethodGet,
			Handler:     GetYieldDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/properties/:id/yield/optimization",
			Method:      http.MethodGet,
			Handler:     GetRevenueOptimization(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/properties/:id/yield/overbooking",
			Method:      http.MethodGet,
			Handler:     GetOverbooking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/properties/:id/yield/pace",
			Method:      http.MethodGet,
			Handler:     GetBookingPace(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/properties/:id/yield/cache",
			Method:      http.MethodDelete,
			Handler:     ClearYieldCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StrategyWriters()},
		},
		{
			Path:        "/v1/properties/:id/yield/history",
			Method:      http.MethodGet,
			Handler:     GetOptimizationHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
