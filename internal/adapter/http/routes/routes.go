package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "rebobinagem/docs"
	"rebobinagem/internal/adapter/http/handlers"
	"rebobinagem/internal/adapter/http/middleware"
	"rebobinagem/internal/adapter/persistence/cache"
	"rebobinagem/internal/adapter/persistence/repository"
	"rebobinagem/internal/config"
	"rebobinagem/internal/documents"
	"rebobinagem/internal/domain/budgeting"
	redisclient "rebobinagem/internal/infrastructure/cache"
	"rebobinagem/internal/infrastructure/database"
	"rebobinagem/internal/infrastructure/payments"
	"rebobinagem/internal/usecase"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Budgets   *handlers.BudgetHandler
	Clients   *handlers.ClientHandler
	Parts     *handlers.PartHandler
	Payments  *handlers.BillingPaymentHandler
	Documents *handlers.DocumentHandler
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	router := NewRouter(h, cfg.JWTSecret)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the middlewares, swagger and the /v1 routes. Everything but ping
// requires a bearer token.
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("", middleware.JWTAuth(jwtSecret))
	addBudgetRoutes(private, h.Budgets, h.Documents)
	addCatalogRoutes(private, h.Clients, h.Parts)
	addBillingRoutes(private, h.Payments)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, fmt.Errorf("connect dynamodb: %w", err)
	}

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.BudgetsTable)
	itemRepo := repository.NewBudgetItemDynamoRepository(ddb, cfg.BudgetItemsTable)
	motorRepo := repository.NewMotorDynamoRepository(ddb, cfg.MotorsTable)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.ClientsTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var partRepo interfaces.IPartRepository = repository.NewPartDynamoRepository(ddb, cfg.PartsTable)
	if cfg.RedisURL != "" {
		rdb, err := redisclient.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, parts cache disabled")
		} else {
			partRepo = cache.NewPartCache(partRepo, rdb, cfg.PartsCacheTTL())
		}
	}

	engine := budgeting.NewEngine(budgeting.NewDiscountPolicy(cfg.DiscountCaps()))

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, itemRepo, motorRepo, clientRepo, partRepo, engine)
	clientUseCase := usecase.NewClientUseCase(clientRepo, budgetRepo)
	partUseCase := usecase.NewPartUseCase(partRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentMockEnabled())
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, budgetUseCase, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.PaymentMockEnabled(),
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoPayerEmail,
		TestPayerUserID: cfg.MercadoPagoPayerUserID,
	})

	shop := documents.Shop{Name: cfg.ShopName, Phone: cfg.ShopPhone, Address: cfg.ShopAddress}

	return Handlers{
		Budgets:   handlers.NewBudgetHandler(budgetUseCase),
		Clients:   handlers.NewClientHandler(clientUseCase),
		Parts:     handlers.NewPartHandler(partUseCase),
		Payments:  handlers.NewBillingPaymentHandler(paymentUseCase),
		Documents: handlers.NewDocumentHandler(budgetUseCase, clientUseCase, shop),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}
