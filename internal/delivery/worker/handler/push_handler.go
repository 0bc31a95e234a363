// Package handler contains the notification worker's entry points: the Pub/Sub push endpoint and the asynq task handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/pubsub"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// requestIDAttribute is the Pub/Sub message attribute carrying the originating request ID.
const requestIDAttribute = "request_id"

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives Pub/Sub push deliveries and runs them through the dispatcher.
type PushHandler struct {
	logger        *slog.Logger
	dispatchUC    usecase.DispatchUsecase
	pushAudience  string
	validateToken tokenValidator
}

type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		logger:        params.Logger,
		dispatchUC:    params.DispatchUC,
		pushAudience:  audience,
		validateToken: idtoken.Validate,
	}
}

// HandlePush acknowledges with 200 unless the event should be redelivered, in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.pushAudience != "" {
		if err := h.verifyPushToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("kind", string(event.Kind)),
	)

	if err := dispatch(ctx, reqLogger, h.dispatchUC, &event); err != nil {
		if errors.Is(err, usecase.ErrEventDropped) {
			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPushToken checks the OIDC token Google attaches to authenticated push subscriptions.
func (h *PushHandler) verifyPushToken(ctx context.Context, req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validateToken(ctx, token, h.pushAudience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// extractRequestID prefers the message attribute, then the event payload, then the inbound request.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.NotificationEvent) string {
	if requestID := attributes[requestIDAttribute]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// dispatch runs one event and logs the outcome. Callers decide whether the returned error is retried.
func dispatch(ctx context.Context, logger *slog.Logger, dispatchUC usecase.DispatchUsecase, event *service.NotificationEvent) error {
	result, err := dispatchUC.Dispatch(ctx, event)
	if err != nil {
		dropped := errors.Is(err, usecase.ErrEventDropped)
		logger.Error("[Worker] Failed to dispatch notification event",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
			slog.Bool("retryable", !dropped),
		)

		return err
	}

	logger.Info("[Worker] Notification event dispatched",
		slog.String("kind", string(event.Kind)),
		slog.Int("emails_sent", result.EmailsSent),
		slog.Int("emails_failed", result.EmailsFailed),
		slog.Int("push_sent", result.PushSent),
		slog.Int("push_failed", result.PushFailed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return nil
}
