package usecase

import "context"

// RegisterDeviceInput registers an FCM token for the user's device.
type RegisterDeviceInput struct {
	UserID   string
	FCMToken string
	Platform string
}

// UnregisterDeviceInput removes a previously registered token.
type UnregisterDeviceInput struct {
	UserID   string
	FCMToken string
}

// DeviceUsecase manages push notification registrations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) error
	UnregisterDevice(ctx context.Context, input UnregisterDeviceInput) error
}
