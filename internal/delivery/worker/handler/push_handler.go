package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying SOS alert events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes carry a verifiable OIDC token, and
	// local development skips verification entirely
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)

	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("sender_id", event.SenderID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	if err := h.processAlert(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops the message so a
		// permanently broken event cannot retry forever
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert processed successfully",
		slog.String("alert_id", event.AlertID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processAlert fans one alert event out to every recipient device
func (h *PushHandler) processAlert(ctx context.Context, event *service.AlertEvent) error {
	if event.AlertID == "" {
		return errors.New("alert event missing alert_id")
	}

	if len(event.RecipientIDs) == 0 {
		h.logger.Info("[Worker] No recipients to notify",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	devices, err := h.deviceRepo.ListByUserIDs(ctx, event.RecipientIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No devices registered for recipients",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	notification := buildAlertNotification(event)
	tokens := collectTokens(devices)

	result, err := h.notificationSvc.SendToTokens(ctx, tokens, notification)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	h.cleanupInvalidTokens(ctx, result.InvalidTokens)

	h.logger.Info("[Worker] Alert fan-out completed",
		slog.String("alert_id", event.AlertID),
		slog.Int("total_sent", result.SuccessCount),
		slog.Int("total_failed", result.FailureCount),
		slog.Int("invalid_tokens", len(result.InvalidTokens)),
	)

	return nil
}

// collectTokens extracts FCM tokens from devices
func collectTokens(devices []entity.Device) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// buildAlertNotification creates the push payload for an alert event
func buildAlertNotification(event *service.AlertEvent) *service.PushNotification {
	title := "SOS Alert"
	if event.EmergencyType != "" {
		title = fmt.Sprintf("SOS Alert: %s", event.EmergencyType)
	}
	body := fmt.Sprintf("%s needs help", event.SenderName)
	if event.Message != "" {
		body = fmt.Sprintf("%s: %s", body, event.Message)
	}

	data := map[string]string{
		"alert_id":   event.AlertID,
		"sender_id":  event.SenderID,
		"created_at": event.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if event.EmergencyType != "" {
		data["emergency_type"] = event.EmergencyType
	}
	if event.Address != "" {
		data["address"] = event.Address
	}
	if len(event.CircleIDs) > 0 {
		data["circle_ids"] = strings.Join(event.CircleIDs, ",")
	}
	if event.Latitude != nil && event.Longitude != nil {
		data["latitude"] = strconv.FormatFloat(*event.Latitude, 'f', -1, 64)
		data["longitude"] = strconv.FormatFloat(*event.Longitude, 'f', -1, 64)
	}
	if event.BatteryStatus != nil {
		data["battery_status"] = strconv.Itoa(*event.BatteryStatus)
	}

	return &service.PushNotification{
		Title: title,
		Body:  body,
		Data:  data,
	}
}

// cleanupInvalidTokens removes registrations FCM reported as dead
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	deleted, err := h.deviceRepo.DeleteByTokens(ctx, invalidTokens)
	if err != nil {
		h.logger.Warn("[Worker] Failed to delete invalid devices",
			slog.Int("token_count", len(invalidTokens)),
			slog.Any("error", err),
		)

		return
	}

	h.logger.Info("[Worker] Purged invalid device tokens",
		slog.Int64("deleted", deleted),
	)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
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
