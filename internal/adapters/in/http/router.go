package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Echo builds the HTTP application: middleware, the contract validator and
// every route of the API.
func (s *Server) Echo(ctx context.Context) (*echo.Echo, error) {
	doc, err := LoadContract(ctx)
	if err != nil {
		return nil, err
	}
	contract, err := newContractRouter(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}).Handler))
	e.Use(contractValidator(contract))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, success(nil))
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.routes(e.Group("/api/v1"))
	return e, nil
}

func (s *Server) routes(g *echo.Group) {
	g.POST("/accounts", s.CreateAccount, s.authorize("createAccount"))
	g.POST("/accounts/verify", s.VerifyEmail, s.authorize("verifyEmail"))
	g.POST("/login", s.Login, s.authorize("login"))
	g.GET("/me", s.Me, s.authorize("me"))
	g.PATCH("/me", s.EditProfile, s.authorize("editProfile"))
	g.DELETE("/me", s.DeleteAccount, s.authorize("deleteAccount"))
	g.GET("/users/:userId", s.UserProfile, s.authorize("userProfile"))

	g.GET("/restaurants", s.Restaurants, s.authorize("restaurants"))
	g.POST("/restaurants", s.CreateRestaurant, s.authorize("createRestaurant"))
	g.GET("/restaurants/search", s.SearchRestaurants, s.authorize("searchRestaurants"))
	g.GET("/restaurants/:restaurantId", s.Restaurant, s.authorize("restaurant"))
	g.PATCH("/restaurants/:restaurantId", s.EditRestaurant, s.authorize("editRestaurant"))
	g.DELETE("/restaurants/:restaurantId", s.DeleteRestaurant, s.authorize("deleteRestaurant"))
	g.GET("/restaurants/:restaurantId/qrcode", s.RestaurantQRCode, s.authorize("restaurantQRCode"))
	g.POST("/restaurants/:restaurantId/dishes", s.CreateDish, s.authorize("createDish"))
	g.PATCH("/dishes/:dishId", s.EditDish, s.authorize("editDish"))
	g.DELETE("/dishes/:dishId", s.DeleteDish, s.authorize("deleteDish"))
	g.GET("/categories", s.Categories, s.authorize("categories"))
	g.GET("/categories/:slug", s.Category, s.authorize("category"))

	g.POST("/payments", s.CreatePayment, s.authorize("createPayment"))
	g.GET("/payments", s.GetPayments, s.authorize("getPayments"))

	g.POST("/orders", s.CreateOrder, s.authorize("createOrder"))
	g.GET("/orders", s.GetOrders, s.authorize("getOrders"))
	g.GET("/orders/:orderId", s.GetOrder, s.authorize("getOrder"))
	g.PATCH("/orders/:orderId", s.EditOrder, s.authorize("editOrder"))
	g.POST("/orders/:orderId/take", s.TakeOrder, s.authorize("takeOrder"))

	g.GET("/subscriptions/pending-orders", s.PendingOrders, s.authorize("pendingOrders"))
	g.GET("/subscriptions/cooked-orders", s.CookedOrders, s.authorize("cookedOrders"))
	g.GET("/subscriptions/order-updates", s.OrderUpdates, s.authorize("orderUpdates"))

	g.POST("/uploads", s.Upload, s.authorize("upload"))
}
