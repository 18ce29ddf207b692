package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/pkg/jwt"
	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/pkg/metrics"
	"github.com/calinovidiu96/vending-machine/internal/vending/application"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	httpwrap "github.com/calinovidiu96/vending-machine/internal/vending/infrastructure/http"
	"github.com/calinovidiu96/vending-machine/internal/vending/infrastructure/postgres"
	"github.com/calinovidiu96/vending-machine/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
	txBackoffBase   = 10 * time.Millisecond
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run migrates the database and serves the API on lis until ctx is cancelled
// or the server fails.
func (a *VendingApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetURL()

	if err := database.MigrateDatabase(ctx, dbURL, migrations.FS, "."); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(
		dbpool,
		database.WithIsoLevel(pgx.Serializable),
		database.WithRetries(cfg.PurchaseMaxRetries, txBackoffBase),
		database.WithLogger(logger),
	)

	usersRepository := postgres.NewUsersRepository(dbpool)
	productsRepository := postgres.NewProductsRepository(dbpool)
	sessionsRepository := postgres.NewSessionsRepository(dbpool)

	registry := metrics.NewRegistry()
	secret := []byte(cfg.JwtSecret)

	authenticator := application.NewAuthenticator(
		usersRepository,
		sessionsRepository,
		domain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(secret, cfg.JwtTTL),
	)
	depositCase := application.NewDepositCase(usersRepository, txManager)
	productsCase := application.NewProductsCase(usersRepository, productsRepository, txManager)
	purchaseCase := application.NewPurchaseCase(usersRepository, productsRepository, txManager, registry)

	guard := httpwrap.NewAuthGuard(jwt.NewJWTTokenParser(secret), sessionsRepository, cfg.SessionEnforcement, logger)

	router := gin.New()
	httpwrap.RegisterRoutes(router, httpwrap.RouterDeps{
		Users:       httpwrap.NewUserHandler(authenticator, depositCase, logger),
		Products:    httpwrap.NewProductHandler(productsCase, purchaseCase, logger),
		Guard:       guard,
		Middlewares: []gin.HandlerFunc{gin.Logger(), gin.Recovery(), registry.Middleware()},
		Metrics:     registry.Handler(),
	})

	a.server = &http.Server{
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", lis.Addr().String())
		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *VendingApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}
}
