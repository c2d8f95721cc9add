package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo      repository.AlertRepository
	userRepo       repository.UserRepository
	circleRepo     repository.CircleRepository
	eventPublisher service.EventPublisher
	ackWindow      time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewAlertService(
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	circleRepo repository.CircleRepository,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo:      alertRepo,
		userRepo:       userRepo,
		circleRepo:     circleRepo,
		eventPublisher: eventPublisher,
		ackWindow:      cfg.AckWindow(),
		now:            time.Now,
		logger:         logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RaiseAlert fans an alert out to the members of the targeted circles.
// The recipient set is frozen at creation; later membership changes never
// touch it.
func (srv *alertService) RaiseAlert(ctx context.Context, input usecase.RaiseAlertInput) (*usecase.RaiseAlertOutput, error) {
	sender, err := srv.requireSender(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}

	if len(input.CircleIDs) == 0 {
		return nil, domainerrors.NewInvalidInputError("at least one circle is required")
	}

	// Every targeted circle must exist and have the sender as a member;
	// the candidate list is the union of their member rosters.
	seenCircles := make(map[string]struct{}, len(input.CircleIDs))
	candidateIDs := make([]string, 0)
	for _, circleID := range input.CircleIDs {
		if _, dup := seenCircles[circleID]; dup {
			continue
		}
		seenCircles[circleID] = struct{}{}

		circle, err := srv.circleRepo.FindByID(ctx, circleID)
		if err != nil {
			if errors.Is(err, repository.ErrCircleNotFound) {
				return nil, domainerrors.NewUnknownCircleError()
			}

			return nil, domainerrors.NewDatabaseExecuteError(err.Error())
		}

		if _, err := srv.circleRepo.FindMember(ctx, circle.ID, sender.ID); err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return nil, domainerrors.NewNotCircleMemberError()
			}

			return nil, domainerrors.NewDatabaseExecuteError(err.Error())
		}

		memberIDs, err := srv.circleRepo.ListMemberIDs(ctx, circle.ID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err.Error())
		}
		candidateIDs = append(candidateIDs, memberIDs...)
	}

	return srv.createAlert(ctx, sender, alertDetails{
		CircleIDs:     input.CircleIDs,
		EmergencyType: input.EmergencyType,
		Message:       input.Message,
		Address:       input.Address,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		BatteryStatus: input.BatteryStatus,
	}, candidateIDs)
}

// RaiseAlertToAll fans an alert out to every contact the sender shares a
// circle with.
func (srv *alertService) RaiseAlertToAll(ctx context.Context, input usecase.RaiseAlertToAllInput) (*usecase.RaiseAlertOutput, error) {
	sender, err := srv.requireSender(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}

	contactIDs, err := srv.circleRepo.ListContactIDs(ctx, sender.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return srv.createAlert(ctx, sender, alertDetails{
		EmergencyType: input.EmergencyType,
		Message:       input.Message,
		Address:       input.Address,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		BatteryStatus: input.BatteryStatus,
	}, contactIDs)
}

// alertDetails carries the validated payload shared by both intake paths.
type alertDetails struct {
	CircleIDs     []string
	EmergencyType string
	Message       string
	Address       string
	Latitude      *float64
	Longitude     *float64
	BatteryStatus *int
}

func (srv *alertService) createAlert(
	ctx context.Context,
	sender *entity.User,
	details alertDetails,
	candidateIDs []string,
) (*usecase.RaiseAlertOutput, error) {
	details.Message = strings.TrimSpace(details.Message)
	if details.Message == "" {
		return nil, domainerrors.NewInvalidInputError("alert message is required")
	}
	details.Address = strings.TrimSpace(details.Address)
	if details.Address == "" {
		return nil, domainerrors.NewInvalidInputError("location address is required")
	}
	if (details.Latitude == nil) != (details.Longitude == nil) {
		return nil, domainerrors.NewInvalidInputError("latitude and longitude must be provided together")
	}
	if details.BatteryStatus != nil && (*details.BatteryStatus < 0 || *details.BatteryStatus > 100) {
		return nil, domainerrors.NewInvalidInputError("battery status must be between 0 and 100")
	}

	// Deduplicate and drop the sender: a user never receives their own alert.
	// Display names are captured here so the snapshot holds what the contact
	// was called when the alert went out.
	seen := make(map[string]struct{}, len(candidateIDs))
	names := newNameCache(srv.userRepo)
	recipients := make([]entity.AlertRecipient, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if id == sender.ID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, entity.AlertRecipient{
			ContactID: id,
			Name:      names.lookup(ctx, id),
		})
	}

	alert := &entity.Alert{
		SenderID:      sender.ID,
		EmergencyType: details.EmergencyType,
		Message:       details.Message,
		Address:       details.Address,
		Latitude:      details.Latitude,
		Longitude:     details.Longitude,
		BatteryStatus: details.BatteryStatus,
		CircleIDs:     details.CircleIDs,
		CreatedAt:     srv.now(),
		Recipients:    recipients,
	}

	if err := srv.alertRepo.Create(ctx, alert); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("alert raised",
		slog.String("alert_id", alert.ID),
		slog.String("sender_id", sender.ID),
		slog.Int("recipient_count", len(recipients)),
	)

	srv.publishAlertEvent(ctx, sender, alert)

	return &usecase.RaiseAlertOutput{
		AlertID:        alert.ID,
		RecipientCount: len(recipients),
		CreatedAt:      alert.CreatedAt,
	}, nil
}

// publishAlertEvent hands the fan-out to the push worker. Publishing is
// best effort; the alert is already persisted and a delivery failure must
// not fail the request.
func (srv *alertService) publishAlertEvent(ctx context.Context, sender *entity.User, alert *entity.Alert) {
	recipientIDs := make([]string, 0, len(alert.Recipients))
	for i := range alert.Recipients {
		recipientIDs = append(recipientIDs, alert.Recipients[i].ContactID)
	}

	event := &service.AlertEvent{
		AlertID:       alert.ID,
		SenderID:      sender.ID,
		SenderName:    sender.Name,
		CircleIDs:     alert.CircleIDs,
		EmergencyType: alert.EmergencyType,
		Message:       alert.Message,
		Address:       alert.Address,
		Latitude:      alert.Latitude,
		Longitude:     alert.Longitude,
		BatteryStatus: alert.BatteryStatus,
		RecipientIDs:  recipientIDs,
		CreatedAt:     alert.CreatedAt,
	}

	if err := srv.eventPublisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Error("failed to publish alert event",
			slog.String("alert_id", alert.ID),
			slog.String("error", err.Error()),
		)
	}
}

// Acknowledge records that a recipient has seen the alert. Preconditions
// are checked in a fixed order so callers always get the most specific
// error: existence, membership, window, then prior acknowledgment.
func (srv *alertService) Acknowledge(ctx context.Context, input usecase.AcknowledgeInput) (*usecase.AcknowledgeOutput, error) {
	alert, err := srv.alertRepo.FindByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.NewAlertNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	recipient := alert.RecipientFor(input.UserID)
	if recipient == nil {
		return nil, domainerrors.NewNotRecipientError()
	}

	now := srv.now()
	if !alert.IsWithinWindow(now, srv.ackWindow) {
		return nil, domainerrors.NewAlertExpiredError()
	}

	if recipient.Acknowledged {
		return nil, domainerrors.NewAlreadyAcknowledgedError()
	}

	// The conditional update is the linearization point: of any number of
	// concurrent acknowledgments, exactly one flips the row.
	affected, err := srv.alertRepo.Acknowledge(ctx, input.AlertID, input.UserID, now)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}
	if affected == 0 {
		// Lost the race to another request for the same recipient.
		return nil, domainerrors.NewAlreadyAcknowledgedError()
	}

	srv.log(ctx).Info("alert acknowledged",
		slog.String("alert_id", input.AlertID),
		slog.String("user_id", input.UserID),
	)

	return &usecase.AcknowledgeOutput{
		AlertID:        input.AlertID,
		ContactID:      input.UserID,
		Acknowledged:   true,
		AcknowledgedAt: now,
	}, nil
}

// ListReceived returns the user's inbox, newest first. Recent and
// Acknowledgeable derive from the same window against the same clock
// reading, so the two flags can never disagree within one response.
func (srv *alertService) ListReceived(ctx context.Context, userID string) ([]usecase.ReceivedAlertView, error) {
	alerts, err := srv.alertRepo.ListForRecipient(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	now := srv.now()
	names := newNameCache(srv.userRepo)

	views := make([]usecase.ReceivedAlertView, 0, len(alerts))
	for i := range alerts {
		alert := &alerts[i]
		recipient := alert.RecipientFor(userID)
		if recipient == nil {
			continue
		}

		withinWindow := alert.IsWithinWindow(now, srv.ackWindow)
		view := usecase.ReceivedAlertView{
			AlertID:         alert.ID,
			SenderID:        alert.SenderID,
			SenderName:      names.lookup(ctx, alert.SenderID),
			EmergencyType:   alert.EmergencyType,
			Message:         alert.Message,
			Address:         alert.Address,
			Latitude:        alert.Latitude,
			Longitude:       alert.Longitude,
			BatteryStatus:   alert.BatteryStatus,
			CreatedAt:       alert.CreatedAt,
			Recent:          withinWindow,
			Acknowledgeable: withinWindow && !recipient.Acknowledged,
			Acknowledged:    recipient.Acknowledged,
			AcknowledgedAt:  recipient.AcknowledgedAt,
		}
		views = append(views, view)
	}

	return views, nil
}

// ListSent returns the user's raised alerts with per-recipient status.
func (srv *alertService) ListSent(ctx context.Context, userID string) ([]usecase.SentAlertView, error) {
	alerts, err := srv.alertRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	now := srv.now()

	views := make([]usecase.SentAlertView, 0, len(alerts))
	for i := range alerts {
		alert := &alerts[i]

		recipients := make([]usecase.RecipientStatus, 0, len(alert.Recipients))
		for j := range alert.Recipients {
			recipient := &alert.Recipients[j]
			recipients = append(recipients, usecase.RecipientStatus{
				ContactID:      recipient.ContactID,
				Name:           recipient.Name,
				Acknowledged:   recipient.Acknowledged,
				AcknowledgedAt: recipient.AcknowledgedAt,
			})
		}

		views = append(views, usecase.SentAlertView{
			AlertID:       alert.ID,
			EmergencyType: alert.EmergencyType,
			Message:       alert.Message,
			Address:       alert.Address,
			Latitude:      alert.Latitude,
			Longitude:     alert.Longitude,
			BatteryStatus: alert.BatteryStatus,
			CreatedAt:     alert.CreatedAt,
			Recent:        alert.IsWithinWindow(now, srv.ackWindow),
			Recipients:    recipients,
		})
	}

	return views, nil
}

// DeleteAlert removes an alert the user raised. Non-owners get the same
// not-found answer as a missing alert, revealing nothing.
func (srv *alertService) DeleteAlert(ctx context.Context, alertID, senderID string) error {
	if err := srv.alertRepo.DeleteBySender(ctx, alertID, senderID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.NewAlertNotFoundError()
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("alert deleted",
		slog.String("alert_id", alertID),
		slog.String("sender_id", senderID),
	)

	return nil
}

func (srv *alertService) requireSender(ctx context.Context, senderID string) (*entity.User, error) {
	sender, err := srv.userRepo.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUnknownSenderError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return sender, nil
}

// nameCache memoizes user name lookups within one request.
type nameCache struct {
	userRepo repository.UserRepository
	names    map[string]string
}

func newNameCache(userRepo repository.UserRepository) *nameCache {
	return &nameCache{
		userRepo: userRepo,
		names:    make(map[string]string),
	}
}

func (c *nameCache) lookup(ctx context.Context, userID string) string {
	if name, ok := c.names[userID]; ok {
		return name
	}

	name := ""
	if user, err := c.userRepo.FindByID(ctx, userID); err == nil {
		name = user.Name
	}
	c.names[userID] = name

	return name
}
