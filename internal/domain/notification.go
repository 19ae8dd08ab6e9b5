package domain

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification is a transient, human-readable message shown by the frontend.
// Errors are never fatal; every notification is scoped to one operation.
type Notification struct {
	ID      string            `json:"id"`
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}
