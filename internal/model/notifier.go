package model

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Send(subject, body string) error
}
