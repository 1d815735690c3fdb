package server

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/apps/api/handlers"
	"github.com/chessclub/club-events-api/libs/go/client/auth"
	awsclient "github.com/chessclub/club-events-api/libs/go/client/aws"
	httpClient "github.com/chessclub/club-events-api/libs/go/client/http"
	"github.com/chessclub/club-events-api/libs/go/client/payments"
	"github.com/chessclub/club-events-api/libs/go/client/ratings"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/metrics"
	"github.com/chessclub/club-events-api/libs/go/middleware"
	"github.com/chessclub/club-events-api/libs/go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler      *handlers.HealthHandler
	bookingHandler     *handlers.BookingHandler
	eventHandler       *handlers.EventHandler
	discountHandler    *handlers.DiscountHandler
	participantHandler *handlers.ParticipantHandler
	emailHandler       *handlers.EmailHandler
	playerHandler      *handlers.PlayerHandler
	rateLimitHandler   *handlers.RateLimitHandler

	// Clients
	authClient *auth.AuthClient

	// Rate limiting
	defaultLimiter *middleware.RateLimiter
	strictLimiter  *middleware.RateLimiter

	collector *metrics.Collector
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage, defaulted, err := helpers.StageFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if defaulted {
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database ---
	var dsn string
	if helpers.IsDeployedStage(stage) {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dsn, err = secretsClient.GetDatabaseURL(ctx, "RDS_SECRET_ARN", "", os.Getenv("DB_SSLMODE"))
	} else {
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}
	if err != nil || dsn == "" {
		logger.Fatal("Failed to resolve database connection string", zap.Error(err))
	}

	dbpool, err := helpers.NewPool(ctx, dsn, helpers.APIPoolSettings)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	queries := db.New(dbpool)
	txRunner := helpers.NewPoolTxRunner(dbpool)

	collector = metrics.New()

	// --- Auth ---
	jwtSecret, err := secretsClient.GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET")
	if err != nil {
		logger.Warn("Failed to get Supabase JWT secret", zap.Error(err))
	}
	authConfig := auth.ConfigFromEnv(jwtSecret)
	if authConfig.JWTSecret == "" && authConfig.JWKSURL == "" {
		logger.Fatal("Either SUPABASE_JWT_SECRET or SUPABASE_JWKS_URL is required")
	}
	authClient = auth.NewAuthClient(authConfig, queries)

	// --- Email ---
	var mailer interfaces.EmailSender
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Warn("Failed to get Resend API Key. Email functionality will be disabled.", zap.Error(err))
	} else {
		mailer = services.NewEmailService(resendAPIKey,
			getEnvWithDefault("EMAIL_FROM_ADDRESS", "events@chessclub.org"),
			getEnvWithDefault("EMAIL_FROM_NAME", "Chess Club Events"),
			logger.L())
	}

	var queue interfaces.QueueClient
	if queueURL := os.Getenv("EMAIL_QUEUE_URL"); queueURL != "" {
		sqsQueue, err := awsclient.NewSQSQueue(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create email queue client", zap.Error(err))
		}
		queue = sqsQueue
	} else {
		logger.Info("EMAIL_QUEUE_URL not set, emails will be sent synchronously")
	}

	// --- Payments ---
	var gateway interfaces.RefundGateway
	stripeKey, err := secretsClient.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY")
	if err != nil || stripeKey == "" {
		logger.Warn("Failed to get Stripe secret key. Refund approval will be unavailable.", zap.Error(err))
	} else {
		stripeRefunds, err := payments.NewStripeRefunds(stripeKey)
		if err != nil {
			logger.Fatal("Unable to create Stripe client", zap.Error(err))
		}
		gateway = stripeRefunds
	}

	// --- Ratings ---
	var ratingsClient interfaces.RatingsClient
	if ratingsURL := os.Getenv("RATINGS_API_URL"); ratingsURL != "" {
		ratingsKey, _ := secretsClient.GetSecretString(ctx, "RATINGS_API_KEY_ARN", "RATINGS_API_KEY")
		ratingsClient = ratings.NewClient(ratingsURL, ratingsKey, httpClient.WithMetricsCollector(collector))
	}

	// --- Rate limiting ---
	defaultStore, strictStore := newLimitStores(ctx)
	defaultLimiter = middleware.NewRateLimiter("default", defaultStore, collector)
	strictLimiter = middleware.NewRateLimiter("strict", strictStore, collector)

	contexts := services.NewEmailContextService(queries)
	factory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		BookingService:       services.NewBookingService(queries),
		RefundService:        services.NewRefundService(queries, txRunner, gateway, mailer, collector),
		EventService:         services.NewEventService(queries),
		DiscountService:      services.NewDiscountService(queries, txRunner, collector),
		ParticipantService:   services.NewParticipantService(queries, txRunner),
		EmailContextService:  contexts,
		EmailCampaignService: services.NewEmailCampaignService(queries, contexts, mailer, queue, collector),
		PlayerService:        services.NewPlayerService(ratingsClient),
		DB:                   dbpool,
		RateLimiters:         []*middleware.RateLimiter{defaultLimiter, strictLimiter},
	})

	healthHandler = factory.NewHealthHandler()
	bookingHandler = factory.NewBookingHandler()
	eventHandler = factory.NewEventHandler()
	discountHandler = factory.NewDiscountHandler()
	participantHandler = factory.NewParticipantHandler()
	emailHandler = factory.NewEmailHandler()
	playerHandler = factory.NewPlayerHandler()
	rateLimitHandler = factory.NewRateLimitHandler()
}

// newLimitStores returns Redis-backed stores when REDIS_URL is set so limits
// hold across Lambda instances, and in-process token buckets otherwise.
func newLimitStores(ctx context.Context) (middleware.LimitStore, middleware.LimitStore) {
	defaultRPS := getEnvFloat("RATE_LIMIT_DEFAULT_RPS", 10)
	defaultBurst := getEnvInt("RATE_LIMIT_DEFAULT_BURST", 20)
	strictRPS := getEnvFloat("RATE_LIMIT_STRICT_RPS", 1)
	strictBurst := getEnvInt("RATE_LIMIT_STRICT_BURST", 5)

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := middleware.NewRedisClient(ctx, redisURL)
		if err == nil {
			logger.Info("Using Redis rate limit store")
			return middleware.NewRedisStore(rdb, defaultBurst, window(defaultRPS, defaultBurst)),
				middleware.NewRedisStore(rdb, strictBurst, window(strictRPS, strictBurst))
		}
		logger.Warn("Redis unavailable, falling back to in-memory rate limiting", zap.Error(err))
	}
	return middleware.NewMemoryStore(defaultRPS, defaultBurst), middleware.NewMemoryStore(strictRPS, strictBurst)
}

// window is the fixed window over which burst requests are allowed at rps
func window(rps float64, burst int) time.Duration {
	if rps <= 0 {
		return time.Minute
	}
	w := time.Duration(float64(burst) / rps * float64(time.Second))
	if w < time.Second {
		w = time.Second
	}
	return w
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	router.Use(middleware.RequestLoggingMiddleware(collector))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(defaultLimiter.Middleware())
	{
		v1.GET("/health", healthHandler.Health)

		protected := v1.Group("/")
		protected.Use(authClient.EnsureValidToken())
		{
			protected.GET("/rate-limit/status", rateLimitHandler.GetStatus)
			protected.GET("/players/:player_id", playerHandler.GetPlayer)

			bookings := protected.Group("/bookings")
			{
				bookings.GET("", middleware.ValidateQueryParams(middleware.ListQueryValidation), bookingHandler.ListBookings)
				bookings.GET("/:booking_id", bookingHandler.GetBooking)
				bookings.GET("/:booking_id/refund-quote", bookingHandler.GetRefundQuote)
				bookings.GET("/:booking_id/ticket", bookingHandler.GetTicket)
				bookings.POST("/:booking_id/refund", strictLimiter.Middleware(), bookingHandler.RequestRefund)
			}

			events := protected.Group("/events/:event_id")
			{
				events.POST("/discounts/evaluate",
					middleware.ValidateInput(middleware.EvaluateDiscountValidation),
					discountHandler.EvaluateDiscount)
				events.POST("/participants/transfer",
					authClient.RequireRoles(constants.OrganizerRole, constants.AdminRole),
					middleware.ValidateInput(middleware.TransferValidation),
					participantHandler.TransferParticipants)
			}

			organizer := protected.Group("/organizer")
			organizer.Use(authClient.RequireRoles(constants.OrganizerRole, constants.AdminRole))
			{
				organizer.POST("/send-email", strictLimiter.Middleware(), emailHandler.SendEmail)
				organizer.POST("/email-context", emailHandler.ResolveEmailContext)
				organizer.GET("/email-campaigns", emailHandler.ListCampaigns)

				organizer.POST("/bookings/:booking_id/refund/approve", bookingHandler.ApproveRefund)
				organizer.POST("/bookings/:booking_id/refund/deny", bookingHandler.DenyRefund)

				organizer.GET("/events", middleware.ValidateQueryParams(middleware.ListQueryValidation), eventHandler.ListEvents)
				organizer.POST("/events", middleware.ValidateInput(middleware.CreateEventValidation), eventHandler.CreateEvent)

				event := organizer.Group("/events/:event_id")
				event.Use(middleware.ValidateUUIDParams("event_id"))
				{
					event.GET("", eventHandler.GetEvent)
					event.PUT("", middleware.ValidateInput(middleware.UpdateEventValidation), eventHandler.UpdateEvent)
					event.DELETE("", eventHandler.DeleteEvent)

					event.GET("/refund-timeline", eventHandler.GetRefundTimeline)
					event.PUT("/refund-timeline", middleware.ValidateInput(middleware.RefundTimelineValidation), eventHandler.UpdateRefundTimeline)

					event.GET("/pricing", eventHandler.ListPricing)
					event.POST("/pricing", middleware.ValidateInput(middleware.PricingValidation), eventHandler.CreatePricing)
					event.PUT("/pricing/:pricing_id", middleware.ValidateInput(middleware.PricingValidation), eventHandler.UpdatePricing)
					event.DELETE("/pricing/:pricing_id", eventHandler.DeletePricing)

					event.GET("/sections", eventHandler.ListSections)
					event.POST("/sections", middleware.ValidateInput(middleware.SectionValidation), eventHandler.CreateSection)
					event.PUT("/sections/:section_id", middleware.ValidateInput(middleware.SectionValidation), eventHandler.UpdateSection)
					event.DELETE("/sections/:section_id", eventHandler.DeleteSection)

					event.GET("/discounts", discountHandler.ListDiscounts)
					event.POST("/discounts", middleware.ValidateInput(middleware.DiscountValidation), discountHandler.CreateDiscount)
					event.PUT("/discounts/:discount_id", middleware.ValidateInput(middleware.DiscountValidation), discountHandler.UpdateDiscount)
					event.DELETE("/discounts/:discount_id", discountHandler.DeleteDiscount)

					event.GET("/participants", middleware.ValidateQueryParams(middleware.ListQueryValidation), participantHandler.ListParticipants)
					event.GET("/bookings", middleware.ValidateQueryParams(middleware.ListQueryValidation), bookingHandler.ListEventBookings)
				}
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnv("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = splitEnv("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitEnv(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func getEnvWithDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
