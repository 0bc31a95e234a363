package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

// TaskHandler processes notification:dispatch tasks from the asynq queue.
type TaskHandler struct {
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
}

type TaskHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}
}

// ProcessTask implements asynq.Handler. Dropped events and malformed payloads skip retry.
func (h *TaskHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var event service.NotificationEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification task", slog.Any("error", err))

		return errors.Join(errors.WithStack(err), asynq.SkipRetry)
	}

	requestID := extractRequestID(ctx, nil, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	if taskID, ok := asynq.GetTaskID(ctx); ok {
		reqLogger = reqLogger.With(slog.String("task_id", taskID))
	}
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := dispatch(ctx, reqLogger, h.dispatchUC, &event); err != nil {
		if errors.Is(err, usecase.ErrEventDropped) {
			return errors.Join(err, asynq.SkipRetry)
		}

		return err
	}

	return nil
}
