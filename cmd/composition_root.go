package cmd

import (
	"log/slog"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/identity"
	"eats/internal/adapters/out/mail"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/core/application/notifications"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
	"eats/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg           Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	notifier      *notifications.Notifier
	subscriptions *notifications.Subscriptions
	tokens        ports.TokenService
	hasher        ports.PasswordHasher
	mailer        ports.Mailer
	logger        *slog.Logger
}

// NewCompositionRoot wires the application around an open database and bus.
// journal may be nil. The notifier is created stopped; see Notifier.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	bus ports.EventBus,
	journal ports.EventJournal,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	tokens, err := identity.NewJWTTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:           cfg,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:      notifications.NewNotifier(bus, journal, logger),
		subscriptions: notifications.NewSubscriptions(bus, logger),
		tokens:        tokens,
		hasher:        identity.NewBcryptHasher(cfg.BcryptCost),
		mailer:        mail.NewLogMailer(logger),
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) Notifier() *notifications.Notifier {
	return c.notifier
}

func (c *CompositionRoot) Tokens() ports.TokenService {
	return c.tokens
}

func (c *CompositionRoot) orderUoWs() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWs() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWs() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWs() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWs(), c.notifier)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWs(), c.notifier)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWs(), c.notifier)
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWs(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWs(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	return commands.NewVerifyEmailCommandHandler(c.accountUoWs())
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	return commands.NewEditProfileCommandHandler(c.accountUoWs(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	return commands.NewDeleteAccountCommandHandler(c.accountUoWs())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateEditRestaurantCommandHandler() commands.EditRestaurantCommandHandler {
	return commands.NewEditRestaurantCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateEditDishCommandHandler() commands.EditDishCommandHandler {
	return commands.NewEditDishCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWs())
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	return commands.NewExpirePromotionsCommandHandler(c.paymentUoWs())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

// Handlers builds every use case exposed over HTTP.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateAccount: c.CreateCreateAccountCommandHandler(),
		Login:         c.CreateLoginCommandHandler(),
		VerifyEmail:   c.CreateVerifyEmailCommandHandler(),
		EditProfile:   c.CreateEditProfileCommandHandler(),
		DeleteAccount: c.CreateDeleteAccountCommandHandler(),
		UserProfile:   queries.NewGetUserProfileQueryHandler(c.gormDB),

		CreateRestaurant:  c.CreateCreateRestaurantCommandHandler(),
		EditRestaurant:    c.CreateEditRestaurantCommandHandler(),
		DeleteRestaurant:  c.CreateDeleteRestaurantCommandHandler(),
		CreateDish:        c.CreateCreateDishCommandHandler(),
		EditDish:          c.CreateEditDishCommandHandler(),
		DeleteDish:        c.CreateDeleteDishCommandHandler(),
		Restaurant:        queries.NewGetRestaurantQueryHandler(c.gormDB),
		Restaurants:       queries.NewListRestaurantsQueryHandler(c.gormDB),
		SearchRestaurants: queries.NewSearchRestaurantsQueryHandler(c.gormDB),
		Categories:        queries.NewListCategoriesQueryHandler(c.gormDB),
		Category:          queries.NewGetCategoryQueryHandler(c.gormDB),

		CreatePayment: c.CreateCreatePaymentCommandHandler(),
		Payments:      queries.NewGetPaymentsQueryHandler(c.gormDB),

		CreateOrder: c.CreateCreateOrderCommandHandler(),
		EditOrder:   c.CreateEditOrderCommandHandler(),
		TakeOrder:   c.CreateTakeOrderCommandHandler(),
		Order:       c.CreateGetOrderQueryHandler(),
		Orders:      c.CreateGetOrdersQueryHandler(),
	}
}

// Server builds the HTTP server; storage may be nil to disable uploads.
func (c *CompositionRoot) Server(storage ports.ObjectStorage, qr httpin.QREncoder) *httpin.Server {
	return httpin.NewServer(c.Handlers(), c.tokens, c.subscriptions, httpin.Options{
		Storage:        storage,
		QR:             qr,
		PublicBaseURL:  c.cfg.PublicBaseURL,
		Heartbeat:      c.cfg.SSEHeartbeat,
		AllowedOrigins: c.cfg.CORSAllowedOrigins,
	}, c.logger)
}

func (c *CompositionRoot) Jobs() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewPromotionExpiryJob(c.CreateExpirePromotionsCommandHandler(), c.cfg.PromotionExpirySchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
