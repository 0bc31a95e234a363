package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const defaultAsynqMaxRetry = 5

// asynqPublisher enqueues notification events as asynq tasks on Redis.
type asynqPublisher struct {
	client   *asynq.Client
	queue    string
	maxRetry int
	logger   *slog.Logger
}

// RedisOpt converts the asynq config section into a redis connection option.
func RedisOpt(cfg *config.AsynqConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// NewAsynqPublisher creates a publisher bound to cfg.Queue (asynq's "default" queue when empty).
func NewAsynqPublisher(cfg *config.AsynqConfig, logger *slog.Logger) service.EventPublisher {
	maxRetry := cfg.MaxRetry
	if maxRetry <= 0 {
		maxRetry = defaultAsynqMaxRetry
	}

	return &asynqPublisher{
		client:   asynq.NewClient(RedisOpt(cfg)),
		queue:    cfg.Queue,
		maxRetry: maxRetry,
		logger:   logger,
	}
}

// NewNotificationTask builds the asynq task for an event.
func NewNotificationTask(event *service.NotificationEvent) (*asynq.Task, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return asynq.NewTask(constants.TaskNotificationDispatch, data), nil
}

func (p *asynqPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	task, err := NewNotificationTask(event)
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.MaxRetry(p.maxRetry)}
	if p.queue != "" {
		opts = append(opts, asynq.Queue(p.queue))
	}

	info, err := p.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return errors.Wrapf(err, "enqueue %s event", event.Kind)
	}

	p.logger.Info("[Asynq] Event enqueued",
		slog.String("kind", string(event.Kind)),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue),
	)

	return nil
}

func (p *asynqPublisher) Close() error {
	return errors.WithStack(p.client.Close())
}
