// Package push delivers FCM push notifications through the Firebase Admin SDK.
package push

import (
	"context"

	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a sender from a service-account credentials file.
// An empty projectID lets the SDK read it from the credentials.
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (service.PushSender, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

// SendBatchNotification sends one multicast of at most 500 tokens.
// Tokens FCM reports as unregistered or malformed are returned in invalidTokens.
func (s *firebaseSender) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > constants.FirebaseBatchSize {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.FirebaseBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return response.SuccessCount, response.FailureCount, collectInvalidTokens(tokens, response.Responses), nil
}

func collectInvalidTokens(tokens []string, responses []*messaging.SendResponse) []string {
	invalid := make([]string, 0)
	for idx, sendResponse := range responses {
		if sendResponse == nil || sendResponse.Error == nil || idx >= len(tokens) {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalid = append(invalid, tokens[idx])
		}
	}

	return invalid
}
