package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.NotificationEvent{
		RequestID:  "req-1",
		Kind:       service.EventProductsAvailable,
		ProductIDs: []string{"p1", "p2"},
	}

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "products_available", received.Message.Attributes["kind"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{Kind: service.EventProductClaimed})
	assert.Error(t, err)
}

func TestNewNotificationTask(t *testing.T) {
	event := &service.NotificationEvent{Kind: service.EventApprovalDecision, NonprofitID: "np-1"}

	task, err := NewNotificationTask(event)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskNotificationDispatch, task.Type())

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, *event, decoded)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "unset falls back to noop", cfg: &config.Config{}},
		{name: "explicit noop", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}}},
		{name: "local", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}}},
		{name: "local without endpoint", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}, wantErr: true},
		{name: "google without project", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}, wantErr: true},
		{name: "asynq without redis", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderAsynq}}, wantErr: true},
		{name: "unknown", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
