package bootstrap

import (
	"context"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/mongodb"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/rabbitmq"
	redisadapter "github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/redis"
	securityadapter "github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/services/command"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/services/query"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mopentelemetry"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mzap"
)

// Service wires every ambient and domain dependency into the command/query
// use cases, ready to be driven by a transport (HTTP handler, CLI, tests).
type Service struct {
	Config    *Config
	Command   *command.UseCase
	Query     *query.UseCase
	Telemetry *mopentelemetry.Telemetry
	logger    mlog.Logger
}

// Logger returns the service's structured logger.
func (s *Service) Logger() mlog.Logger {
	return s.logger
}

// NewService connects to every backing store, wires the repository
// implementations, and assembles the command/query use cases.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	logger := mzap.InitializeLogger()

	telemetry := (&mopentelemetry.Telemetry{
		ServiceName:               cfg.OtelServiceName,
		ServiceVersion:            cfg.OtelServiceVersion,
		DeploymentEnv:             cfg.EnvName,
		CollectorExporterEndpoint: cfg.OtelCollectorURL,
	}).InitializeTelemetry()

	mongoConn := &mmongo.MongoConnection{
		ConnectionStringSource: cfg.MongoURI,
		Database:               cfg.MongoDatabase,
		Logger:                 logger,
	}

	if err := mongoConn.Connect(ctx); err != nil {
		return nil, err
	}

	if err := mmongo.EnsureIndexes(ctx, mongoConn); err != nil {
		return nil, err
	}

	redisConn := &redisadapter.Connection{
		ConnectionStringSource: cfg.RedisURI,
		Logger:                 logger,
	}

	if err := redisConn.Connect(ctx); err != nil {
		logger.Warnf("redis unavailable, metrics will use local counters: %v", err)
	}

	rabbitConn := &mrabbitmq.RabbitMQConnection{
		ConnectionStringSource: cfg.RabbitMQURI,
		Queue:                  cfg.RabbitMQQueue,
		Logger:                 logger,
	}

	if err := rabbitConn.Connect(ctx); err != nil {
		logger.Warnf("rabbitmq unavailable, security events will not be published: %v", err)
	}

	metrics := mmetrics.NewRecorder(redisConn.Client, logger)

	bankRepo := mmongo.NewBankRepository(mongoConn)
	taxonomyRepo := mmongo.NewTaxonomyRepository(mongoConn)
	questionRepo := mmongo.NewQuestionRepository(mongoConn)
	relationshipRepo := mmongo.NewRelationshipRepository(mongoConn)
	securityStore := mmongo.NewSecurityEventRepository(mongoConn, logger)
	producer := mrabbitmq.NewProducer(rabbitConn)
	securityRepo := securityadapter.NewRepository(securityStore, producer, logger)

	commandUseCase := &command.UseCase{
		BankRepo:         bankRepo,
		TaxonomyRepo:     taxonomyRepo,
		QuestionRepo:     questionRepo,
		RelationshipRepo: relationshipRepo,
		SecurityRepo:     securityRepo,
		Mongo:            mongoConn,
		Metrics:          metrics,
		RetryBudget:      cfg.RetryBudget,
	}

	queryUseCase := &query.UseCase{
		QuestionRepo:     questionRepo,
		RelationshipRepo: relationshipRepo,
		TaxonomyRepo:     taxonomyRepo,
		Metrics:          metrics,
		RetryBudget:      cfg.RetryBudget,
	}

	return &Service{
		Config:    cfg,
		Command:   commandUseCase,
		Query:     queryUseCase,
		Telemetry: telemetry,
		logger:    logger,
	}, nil
}

// Shutdown flushes telemetry before the process exits.
func (s *Service) Shutdown() {
	s.Telemetry.ShutdownTelemetry()
}
