package http

import (
	"log/slog"
	"time"

	"eats/internal/core/application/notifications"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
)

// Handlers groups the application use cases the API exposes.
type Handlers struct {
	CreateAccount commands.CreateAccountCommandHandler
	Login         commands.LoginCommandHandler
	VerifyEmail   commands.VerifyEmailCommandHandler
	EditProfile   commands.EditProfileCommandHandler
	DeleteAccount commands.DeleteAccountCommandHandler
	UserProfile   queries.GetUserProfileQueryHandler

	CreateRestaurant  commands.CreateRestaurantCommandHandler
	EditRestaurant    commands.EditRestaurantCommandHandler
	DeleteRestaurant  commands.DeleteRestaurantCommandHandler
	CreateDish        commands.CreateDishCommandHandler
	EditDish          commands.EditDishCommandHandler
	DeleteDish        commands.DeleteDishCommandHandler
	Restaurant        queries.GetRestaurantQueryHandler
	Restaurants       queries.ListRestaurantsQueryHandler
	SearchRestaurants queries.SearchRestaurantsQueryHandler
	Categories        queries.ListCategoriesQueryHandler
	Category          queries.GetCategoryQueryHandler

	CreatePayment commands.CreatePaymentCommandHandler
	Payments      queries.GetPaymentsQueryHandler

	CreateOrder commands.CreateOrderCommandHandler
	EditOrder   commands.EditOrderCommandHandler
	TakeOrder   commands.TakeOrderCommandHandler
	Order       queries.GetOrderQueryHandler
	Orders      queries.GetOrdersQueryHandler
}

// QREncoder renders content as a PNG QR code.
type QREncoder interface {
	PNG(content string) ([]byte, error)
}

// Options configures the optional parts of the API.
type Options struct {
	// Storage enables POST /uploads when set.
	Storage ports.ObjectStorage
	QR      QREncoder
	// PublicBaseURL is the address menu QR codes point at.
	PublicBaseURL string
	// Heartbeat is the interval of keep-alive comments on event streams.
	Heartbeat      time.Duration
	AllowedOrigins []string
	MaxUploadSize  int64
}

// Server holds the HTTP handlers of the order API. Every operation is guarded
// by the access table in operationPolicies.
type Server struct {
	h             Handlers
	tokens        ports.TokenService
	subscriptions *notifications.Subscriptions
	opts          Options
	logger        *slog.Logger
}

func NewServer(
	h Handlers,
	tokens ports.TokenService,
	subscriptions *notifications.Subscriptions,
	opts Options,
	logger *slog.Logger,
) *Server {
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = 15 * time.Second
	}
	if opts.MaxUploadSize <= 0 {
		opts.MaxUploadSize = 5 << 20
	}
	return &Server{
		h:             h,
		tokens:        tokens,
		subscriptions: subscriptions,
		opts:          opts,
		logger:        logger.With("component", "http"),
	}
}
