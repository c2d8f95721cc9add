package service

import "context"

// PushNotification is one message delivered to a set of device tokens.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// SendResult reports the outcome of a multicast send.
type SendResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device tokens.
type NotificationService interface {
	SendToTokens(ctx context.Context, tokens []string, notification *PushNotification) (*SendResult, error)
}
