package notification

import (
	"context"
	"fmt"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToTokens sends the notification to every token, batching the
// multicast calls to stay under Firebase's per-request token limit.
func (s *firebaseService) SendToTokens(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.SendResult, error) {
	result := &service.SendResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	for start := 0; start < len(tokens); start += constants.MaxFCMBatchSize {
		end := min(start+constants.MaxFCMBatchSize, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Body,
			},
			Data: notification.Data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return result, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			// Invalid and unregistered tokens are reported back so the
			// caller can purge them from the device registry.
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, batch[idx])
			}
		}
	}

	return result, nil
}
