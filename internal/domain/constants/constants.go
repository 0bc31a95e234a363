// Package constants holds identifiers shared between the API and the notification worker.
package constants

// Notification queue providers selectable via pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAsynq  = "asynq"
)

// TaskNotificationDispatch is the asynq task type carrying a NotificationEvent.
const TaskNotificationDispatch = "notification:dispatch"

// Batch limits for outbound notifications.
const (
	EmailBatchSize    = 100
	FirebaseBatchSize = 500
)
