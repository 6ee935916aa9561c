package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-warehouse-service/config"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	authH "github.com/fekuna/omnipos-warehouse-service/internal/auth/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	notifyH "github.com/fekuna/omnipos-warehouse-service/internal/notify/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/seed"
	"github.com/fekuna/omnipos-warehouse-service/internal/server"
	"github.com/fekuna/omnipos-warehouse-service/internal/session"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"

	dashH "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/handler"
	dashRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/repository"
	dashUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/usecase"

	expH "github.com/fekuna/omnipos-warehouse-service/internal/expense/handler"
	expRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/expense/repository"
	expUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/expense/usecase"

	orderH "github.com/fekuna/omnipos-warehouse-service/internal/order/handler"
	orderListenerPkg "github.com/fekuna/omnipos-warehouse-service/internal/order/listener"
	orderRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/order/usecase"

	payH "github.com/fekuna/omnipos-warehouse-service/internal/payment/handler"
	payRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/payment/repository"
	payUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/payment/usecase"

	prodH "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"

	userH "github.com/fekuna/omnipos-warehouse-service/internal/user/handler"
	userRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/user/repository"
	userUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/user/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Notification sinks
	feed := notify.NewFeed(50)
	sinks := []notify.Notifier{notify.NewLogNotifier(appLogger), feed}

	var kafkaNotifier *notify.KafkaNotifier
	if cfg.Kafka.Enabled {
		kafkaNotifier = notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic, appLogger)
		defer kafkaNotifier.Close()
		sinks = append(sinks, kafkaNotifier)
		appLogger.Info("Publishing notifications to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.NotificationTopic),
		)
	}
	notifier := notify.Multi(sinks...)

	// 4. Seed the store
	snap, err := seed.Load(cfg.Seed.Path, cfg.Seed.BcryptCost)
	if err != nil {
		appLogger.Fatal("Could not load seed data", zap.Error(err))
	}

	st := store.New(appLogger, store.WithNotifier(notifier))
	st.Load(snap)
	appLogger.Info("Store seeded",
		zap.Int("users", len(snap.Users)),
		zap.Int("products", len(snap.Products)),
		zap.Int("orders", len(snap.Orders)),
	)

	// 5. Session persistence
	var sessions session.Store = session.NewMemoryStore()
	if cfg.Session.Backend == config.SessionBackendRedis {
		redisStore, err := session.NewRedisStore(ctx, &session.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		sessions = redisStore
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 6. Auth
	authService := auth.NewService(st, sessions, notifier, auth.Config{
		SecretKey:  []byte(cfg.JWT.SecretKey),
		TokenTTL:   cfg.JWT.TTL,
		LoginDelay: cfg.Auth.LoginDelay,
	}, appLogger)

	authorizer, err := authz.New()
	if err != nil {
		appLogger.Fatal("Could not load authorization policy", zap.Error(err))
	}
	mw := middleware.NewMiddleware(authService, authorizer, appLogger)

	// 7. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepoPkg.NewMemoryRepository(st), appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepoPkg.NewMemoryRepository(st), appLogger)
	payUC := payUCPkg.NewPaymentUseCase(payRepoPkg.NewMemoryRepository(st), appLogger)
	expUC := expUCPkg.NewExpenseUseCase(expRepoPkg.NewMemoryRepository(st), appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepoPkg.NewMemoryRepository(st), appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepoPkg.NewMemoryRepository(st), appLogger)

	// 8. Initialize Handlers
	srv := server.NewServer(server.Config{
		HTTPAddr:        cfg.Server.HTTPPort,
		GRPCAddr:        cfg.Server.GRPCPort,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, mw, authH.NewAuthHandler(authService, appLogger), []server.RouteRegistrar{
		prodH.NewProductHandler(prodUC, appLogger),
		orderH.NewOrderHandler(orderUC, appLogger),
		payH.NewPaymentHandler(payUC, appLogger),
		expH.NewExpenseHandler(expUC, appLogger),
		userH.NewUserHandler(userUC, appLogger),
		dashH.NewDashboardHandler(dashUC, appLogger),
		notifyH.NewNotificationHandler(feed),
	}, appLogger)

	// 9. Order intake listener
	if cfg.Kafka.Enabled {
		reader := orderListenerPkg.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic, cfg.Kafka.GroupID)
		orderListener := orderListenerPkg.NewOrderListener(reader, orderUC, appLogger)
		srv.Go(orderListener.Start)
		appLogger.Info("Consuming order requests from Kafka", zap.String("topic", cfg.Kafka.OrderTopic))
	}

	if err := srv.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server stopped")
}
