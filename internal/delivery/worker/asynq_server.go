package worker

import (
	"context"
	"fmt"
	"log/slog"

	"foodbridge/config"
	"foodbridge/internal/delivery"
	"foodbridge/internal/delivery/worker/handler"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/pubsub"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

// defaultQueue matches asynq's own default, which the publisher uses when no queue is configured.
const defaultQueue = "default"

type asynqServer struct {
	logger *slog.Logger
	server *asynq.Server
	mux    *asynq.ServeMux
}

type AsynqServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	TaskHandler *handler.TaskHandler
}

// NewAsynqServer consumes notification:dispatch tasks from Redis.
func NewAsynqServer(params AsynqServerParams) (delivery.Delivery, error) {
	if params.Cfg.Asynq == nil || params.Cfg.Asynq.RedisAddr == "" {
		return nil, errors.New("asynq.redisAddr is required for the asynq worker")
	}
	cfg := params.Cfg.Asynq

	queue := cfg.Queue
	if queue == "" {
		queue = defaultQueue
	}

	server := asynq.NewServer(pubsub.RedisOpt(cfg), asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      map[string]int{queue: 1},
		Logger:      newAsynqLogger(params.Logger),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			params.Logger.Warn("[Worker] Task failed",
				slog.String("type", task.Type()),
				slog.Int("retried", retried),
				slog.Int("max_retry", maxRetry),
				slog.Any("error", err),
			)
		}),
	})

	mux := asynq.NewServeMux()
	mux.Handle(constants.TaskNotificationDispatch, params.TaskHandler)

	srv := &asynqServer{
		logger: params.Logger,
		server: server,
		mux:    mux,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the processors and returns; asynq runs them in its own goroutines until stop.
func (s *asynqServer) Serve(_ context.Context) error {
	s.logger.Info("Starting asynq worker")
	if err := s.server.Start(s.mux); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *asynqServer) stop(_ context.Context) error {
	s.logger.Info("Shutting down asynq worker")
	s.server.Shutdown()

	return nil
}

// asynqLogger routes asynq's internal logging through slog.
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With(slog.String("component", "asynq"))}
}

func (l *asynqLogger) Debug(args ...any) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...any)  { l.logger.Info(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...any)  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...any) { l.logger.Error(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...any) { l.logger.Error(fmt.Sprint(args...)) }
