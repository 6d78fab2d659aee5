package bootstrap

import (
	"context"
	"log"

	"happycust-be/internal/config"
	"happycust-be/internal/controller"
	"happycust-be/internal/handler"
	"happycust-be/internal/pkg/logger"
	"happycust-be/internal/pkg/mailer"
	"happycust-be/internal/repository/unitofwork"
	"happycust-be/internal/service"
	"happycust-be/internal/websocket"
	pktNats "happycust-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	WidgetController   controller.IWidgetController
	PublicController   controller.IPublicController
	ProjectController  controller.IProjectController
	FeedbackController controller.IFeedbackController
	ReviewController   controller.IReviewController
	IssueController    controller.IIssueController
	FeatureController  controller.IFeatureController
	StatsController    controller.IStatsController

	// Background services (run from main)
	ConsumerService service.IConsumerService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Shared system logger, reused by the HTTP error handler
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.SenderEmail,
	)

	// In-process event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// External event stream, best effort
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}

	// Redis: api key cache + websocket relay. The service degrades to
	// DB-only lookups and single-instance fan-out without it.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub for live dashboard notifications
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Services
	publisherService := service.NewPublisherService(cfg.Events.SubmissionTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.SubmissionTopic,
		uowFactory,
		wsHub,
		emailService,
	)

	authService := service.NewAuthService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory)
	widgetService := service.NewWidgetService(uowFactory, rdb, publisherService, natsPub, sysLogger)
	projectService := service.NewProjectService(uowFactory)
	feedbackService := service.NewFeedbackService(uowFactory)
	reviewService := service.NewReviewService(uowFactory)
	issueService := service.NewIssueService(uowFactory)
	featureService := service.NewFeatureService(uowFactory)
	statsService := service.NewStatsService(uowFactory)

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		OAuthController:    controller.NewOAuthController(oauthService),
		WidgetController:   controller.NewWidgetController(widgetService),
		PublicController:   controller.NewPublicController(widgetService),
		ProjectController:  controller.NewProjectController(projectService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		ReviewController:   controller.NewReviewController(reviewService),
		IssueController:    controller.NewIssueController(issueService),
		FeatureController:  controller.NewFeatureController(featureService),
		StatsController:    controller.NewStatsController(statsService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
