// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	CityHandler         *handler.CityHandler
	DistrictHandler     *handler.DistrictHandler
	BranchHandler       *handler.BranchHandler
	CurrencyHandler     *handler.CurrencyHandler
	ProductHandler      *handler.ProductHandler
	OrderDetailsHandler *handler.OrderDetailsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	// Account routes are public: registration, confirmation and password
	// recovery all happen before a token exists.
	accountGroup := api.Group("/account")
	{
		accountGroup.POST("/register-merchant", r.params.AccountHandler.RegisterMerchant)
		accountGroup.POST("/register-end-user", r.params.AccountHandler.RegisterEndUser)
		accountGroup.POST("/login", r.params.AccountHandler.Login)
		accountGroup.GET("/confirm-email", r.params.AccountHandler.ConfirmEmail)
		accountGroup.POST("/confirm-email", r.params.AccountHandler.ConfirmEmail)
		accountGroup.POST("/resend-confirmation", r.params.AccountHandler.ResendConfirmation)
		accountGroup.POST("/forgot-password", r.params.AccountHandler.ForgotPassword)
		accountGroup.POST("/reset-password", r.params.AccountHandler.ResetPassword)
	}

	// Reference data is store configuration: a valid access token is not
	// enough, the caller must hold the merchant role.
	registerResource(api, "/city", r.params.AuthMiddleware, r.params.CityHandler)
	registerResource(api, "/district", r.params.AuthMiddleware, r.params.DistrictHandler)
	registerResource(api, "/branch", r.params.AuthMiddleware, r.params.BranchHandler)
	registerResource(api, "/currency", r.params.AuthMiddleware, r.params.CurrencyHandler)
	registerResource(api, "/product", r.params.AuthMiddleware, r.params.ProductHandler)

	// Order details share the resource surface but creation is the composite
	// order+lines operation, and the aggregate read comes along with it.
	orderGroup := api.Group("/order-details")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		orderGroup.POST("/create", r.params.OrderDetailsHandler.Create)
		orderGroup.GET("/get-order", r.params.OrderDetailsHandler.GetOrder)
		orderGroup.GET("/get-by-id", r.params.OrderDetailsHandler.GetByID)
		orderGroup.GET("/get-all", r.params.OrderDetailsHandler.GetAll)
		orderGroup.PUT("/:id", r.params.OrderDetailsHandler.Update)
		orderGroup.DELETE("/:id", r.params.OrderDetailsHandler.Delete)
	}
}

// resourceEndpoints is the endpoint set shared by every reference-data resource.
type resourceEndpoints interface {
	Create(echo.Context) error
	GetByID(echo.Context) error
	GetAll(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func registerResource(api *echo.Group, prefix string, auth *middleware.AuthMiddleware, h resourceEndpoints) {
	group := api.Group(prefix)
	group.Use(auth.Authenticate, auth.RequireRole(entity.RoleMerchant))
	{
		group.POST("/create", h.Create)
		group.GET("/get-by-id", h.GetByID)
		group.GET("/get-all", h.GetAll)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
