package bootstrap

import (
	"context"
	"log"
	"strings"

	"abhi-advisor-be/internal/config"
	"abhi-advisor-be/internal/controller"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/pkg/serverutils"
	"abhi-advisor-be/internal/repository/memory"
	"abhi-advisor-be/internal/repository/redisstore"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/internal/service"
	"abhi-advisor-be/pkg/llm/factory"
	pktNats "abhi-advisor-be/pkg/nats"
	"abhi-advisor-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	CustomerController controller.ICustomerController
	PolicyController   controller.IPolicyController
	ChatController     controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	transcriptLogger := logger.NewIsolatedLogger(cfg.App.TranscriptLogPath)
	uowFactory := unitofwork.NewRepositoryFactory(db, sysLogger)

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	var mirror service.EventMirror
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			mirror = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	tokens := newTokenStore(cfg, c)

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider == nil {
		log.Printf("[INFO] No LLM provider configured, answers come from the rule-based responder")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", llmProvider.Name(), cfg.LLM.Model)
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.InteractionTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.App.InteractionTopic,
		transcriptLogger,
		mirror,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, tokens, cfg.App.JwtSecret, sysLogger)
	userService := service.NewUserService(uowFactory)
	customerService := service.NewCustomerService(uowFactory, sysLogger)
	policyService := service.NewPolicyService(uowFactory)
	recommendationService := service.NewRecommendationService(llmProvider, cfg.LLM.Timeout, sysLogger)
	chatService := service.NewChatService(uowFactory, recommendationService, publisherService, sysLogger)

	// 5. Controllers
	jwt := serverutils.NewJwtMiddleware(cfg.App.JwtSecret, tokens)
	optionalJwt := serverutils.NewOptionalJwtMiddleware(cfg.App.JwtSecret, tokens)

	c.HealthController = controller.NewHealthController(db)
	c.AuthController = controller.NewAuthController(authService, jwt)
	c.UserController = controller.NewUserController(userService)
	c.CustomerController = controller.NewCustomerController(customerService)
	c.PolicyController = controller.NewPolicyController(policyService)
	c.ChatController = controller.NewChatController(chatService, recommendationService, optionalJwt)

	return c
}

// Close releases the event bus and broker connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newTokenStore(cfg *config.Config, c *Container) store.TokenStore {
	if !strings.EqualFold(cfg.App.TokenStore, "redis") {
		return memory.NewSessionRepository()
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory token store", err)
		_ = rdb.Close()
		return memory.NewSessionRepository()
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return redisstore.NewSessionRepository(rdb)
}
