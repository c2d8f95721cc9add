package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service        *alertService
	alertRepo      *mockRepo.MockAlertRepository
	userRepo       *mockRepo.MockUserRepository
	circleRepo     *mockRepo.MockCircleRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	circleRepo := mockRepo.NewMockCircleRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAlertService(
		alertRepo,
		userRepo,
		circleRepo,
		eventPublisher,
		newTestConfig(),
		newDiscardLogger(),
	).(*alertService)

	return alertServiceFixtures{
		service:        svc,
		alertRepo:      alertRepo,
		userRepo:       userRepo,
		circleRepo:     circleRepo,
		eventPublisher: eventPublisher,
	}
}

func testSender() *entity.User {
	return &entity.User{
		ID:    "sender-1",
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func TestAlertService_RaiseAlert_Success(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", Name: "Family", Code: "ABC234", AdminID: sender.ID}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{CircleID: circle.ID, UserID: sender.ID, Role: "admin"}, nil)
	// The member list contains the sender and a duplicate entry; both must
	// be filtered out of the frozen recipient set.
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).
		Return([]string{sender.ID, "user-2", "user-3", "user-2"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-2").
		Return(&entity.User{ID: "user-2", Name: "Bob"}, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, "user-3").
		Return(&entity.User{ID: "user-3", Name: "Carol"}, nil).Once()

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = "alert-1"
			require.Len(t, alert.Recipients, 2)
			assert.Equal(t, "Bob", alert.Recipients[0].Name)
			assert.Equal(t, "Carol", alert.Recipients[1].Name)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(ctx context.Context, event *service.AlertEvent) {
			assert.Equal(t, "alert-1", event.AlertID)
			assert.Equal(t, sender.ID, event.SenderID)
			assert.Equal(t, "Alice", event.SenderName)
			assert.Equal(t, []string{circle.ID}, event.CircleIDs)
			assert.Equal(t, "medical", event.EmergencyType)
			assert.Equal(t, "221B Baker Street", event.Address)
			assert.ElementsMatch(t, []string{"user-2", "user-3"}, event.RecipientIDs)
		}).
		Return(nil)

	output, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:      sender.ID,
		CircleIDs:     []string{circle.ID},
		EmergencyType: "medical",
		Message:       "help me",
		Address:       "221B Baker Street",
	})

	require.NoError(t, err)
	assert.Equal(t, "alert-1", output.AlertID)
	assert.Equal(t, 2, output.RecipientCount)
}

func TestAlertService_RaiseAlert_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: sender.ID}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{CircleID: circle.ID, UserID: sender.ID}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).Return([]string{sender.ID, "user-2"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-2").
		Return(&entity.User{ID: "user-2", Name: "Bob"}, nil).Once()

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = "alert-1"
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{circle.ID},
		Message:   "help",
		Address:   "somewhere",
	})

	// The alert is persisted; delivery failure is logged, not surfaced.
	require.NoError(t, err)
	assert.Equal(t, "alert-1", output.AlertID)
}

func TestAlertService_RaiseAlert_UnknownSender(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  "ghost",
		CircleIDs: []string{"circle-1"},
		Message:   "help",
		Address:   "somewhere",
	})

	assertErrorCode(t, err, "UNKNOWN_SENDER")
}

func TestAlertService_RaiseAlert_UnknownCircle(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrCircleNotFound)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{"nope"},
		Message:   "help",
		Address:   "somewhere",
	})

	assertErrorCode(t, err, "UNKNOWN_CIRCLE")
}

func TestAlertService_RaiseAlert_NotCircleMember(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: "someone-else"}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(nil, repository.ErrMemberNotFound)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{circle.ID},
		Message:   "help",
		Address:   "somewhere",
	})

	assertErrorCode(t, err, "NOT_CIRCLE_MEMBER")
}

func TestAlertService_RaiseAlert_EmptyMessage(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: sender.ID}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).Return([]string{"user-2"}, nil)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{circle.ID},
		Message:   "   ",
		Address:   "somewhere",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestAlertService_RaiseAlert_NoCircles(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID: sender.ID,
		Message:  "help",
		Address:  "somewhere",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestAlertService_RaiseAlert_EmptyAddress(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: sender.ID}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).Return([]string{"user-2"}, nil)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{circle.ID},
		Message:   "help",
		Address:   "   ",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestAlertService_RaiseAlert_BatteryOutOfRange(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: sender.ID}
	battery := 120

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).Return([]string{"user-2"}, nil)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:      sender.ID,
		CircleIDs:     []string{circle.ID},
		Message:       "help",
		Address:       "somewhere",
		BatteryStatus: &battery,
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestAlertService_RaiseAlert_MultiCircleUnion(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	c1 := &entity.Circle{ID: "circle-1", AdminID: sender.ID}
	c2 := &entity.Circle{ID: "circle-2", AdminID: sender.ID}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, c1.ID).Return(c1, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, c2.ID).Return(c2, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, c1.ID, sender.ID).Return(&entity.CircleMember{}, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, c2.ID, sender.ID).Return(&entity.CircleMember{}, nil)
	// user-b belongs to both circles and must appear once in the snapshot.
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, c1.ID).Return([]string{"user-a", "user-b"}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, c2.ID).Return([]string{"user-b", "user-d"}, nil)
	for _, contact := range []string{"user-a", "user-b", "user-d"} {
		fx.userRepo.EXPECT().FindByID(ctx, contact).
			Return(&entity.User{ID: contact, Name: contact}, nil).Once()
	}

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = "alert-1"
			ids := make([]string, 0, len(alert.Recipients))
			for _, r := range alert.Recipients {
				ids = append(ids, r.ContactID)
			}
			assert.ElementsMatch(t, []string{"user-a", "user-b", "user-d"}, ids)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	output, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{c1.ID, c2.ID},
		Message:   "help",
		Address:   "somewhere",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, output.RecipientCount)
}

func TestAlertService_RaiseAlert_LatitudeWithoutLongitude(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	circle := &entity.Circle{ID: "circle-1", AdminID: sender.ID}
	lat := 25.03

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().FindByID(ctx, circle.ID).Return(circle, nil)
	fx.circleRepo.EXPECT().FindMember(ctx, circle.ID, sender.ID).
		Return(&entity.CircleMember{}, nil)
	fx.circleRepo.EXPECT().ListMemberIDs(ctx, circle.ID).Return([]string{"user-2"}, nil)

	_, err := fx.service.RaiseAlert(ctx, usecase.RaiseAlertInput{
		SenderID:  sender.ID,
		CircleIDs: []string{circle.ID},
		Message:   "help",
		Address:   "somewhere",
		Latitude:  &lat,
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestAlertService_RaiseAlertToAll_Success(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().ListContactIDs(ctx, sender.ID).
		Return([]string{"user-2", "user-3", "user-4"}, nil)
	for _, contact := range []string{"user-2", "user-3", "user-4"} {
		fx.userRepo.EXPECT().FindByID(ctx, contact).
			Return(&entity.User{ID: contact, Name: "Contact " + contact}, nil).Once()
	}

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = "alert-1"
			assert.Empty(t, alert.CircleIDs)
			assert.Len(t, alert.Recipients, 3)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(ctx context.Context, event *service.AlertEvent) {
			assert.Empty(t, event.CircleIDs)
		}).
		Return(nil)

	output, err := fx.service.RaiseAlertToAll(ctx, usecase.RaiseAlertToAllInput{
		SenderID: sender.ID,
		Message:  "help everyone",
		Address:  "somewhere",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, output.RecipientCount)
}

func TestAlertService_RaiseAlertToAll_ZeroRecipients(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	sender := testSender()

	// A sender with no contacts still gets an alert; it just reaches nobody.
	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.circleRepo.EXPECT().ListContactIDs(ctx, sender.ID).Return([]string{}, nil)

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = "alert-1"
			assert.Empty(t, alert.Recipients)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(ctx context.Context, event *service.AlertEvent) {
			assert.Empty(t, event.RecipientIDs)
		}).
		Return(nil)

	output, err := fx.service.RaiseAlertToAll(ctx, usecase.RaiseAlertToAllInput{
		SenderID: sender.ID,
		Message:  "help everyone",
		Address:  "somewhere",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, output.RecipientCount)
}

func TestAlertService_Acknowledge_Success(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-1 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2", Acknowledged: false},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)
	fx.alertRepo.EXPECT().Acknowledge(ctx, "alert-1", "user-2", now).Return(1, nil)

	output, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	require.NoError(t, err)
	assert.Equal(t, "alert-1", output.AlertID)
	assert.Equal(t, "user-2", output.ContactID)
	assert.True(t, output.Acknowledged)
	assert.Equal(t, now, output.AcknowledgedAt)
}

func TestAlertService_Acknowledge_NotFound(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrAlertNotFound)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "missing", UserID: "user-2"})

	assertErrorCode(t, err, "ALERT_NOT_FOUND")
}

func TestAlertService_Acknowledge_NotRecipient(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	// Expired AND the caller is not a recipient: membership is checked
	// before the window, so the answer is NOT_RECIPIENT.
	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-48 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2"},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "stranger"})

	assertErrorCode(t, err, "NOT_RECIPIENT")
}

func TestAlertService_Acknowledge_Expired(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	// Expired AND already acknowledged: the window is checked first.
	ackedAt := now.Add(-30 * time.Hour)
	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-48 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2", Acknowledged: true, AcknowledgedAt: &ackedAt},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	assertErrorCode(t, err, "ALERT_EXPIRED")
}

func TestAlertService_Acknowledge_ExactlyAtWindowBoundary(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	// An alert created exactly 24h ago is still acknowledgeable; the
	// window includes its boundary. One second older and it has expired.
	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-24 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2"},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)
	fx.alertRepo.EXPECT().Acknowledge(ctx, "alert-1", "user-2", now).Return(1, nil)

	output, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	require.NoError(t, err)
	assert.True(t, output.Acknowledged)
}

func TestAlertService_Acknowledge_JustPastWindowBoundary(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-24*time.Hour - time.Second),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2"},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	assertErrorCode(t, err, "ALERT_EXPIRED")
}

func TestAlertService_Acknowledge_AlreadyAcknowledged(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	ackedAt := now.Add(-10 * time.Minute)
	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-1 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2", Acknowledged: true, AcknowledgedAt: &ackedAt},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	assertErrorCode(t, err, "ALREADY_ACKNOWLEDGED")
}

func TestAlertService_Acknowledge_LostRace(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	// The snapshot says unacknowledged, but a concurrent request flips the
	// row first: zero affected rows maps to ALREADY_ACKNOWLEDGED.
	alert := &entity.Alert{
		ID:        "alert-1",
		SenderID:  "sender-1",
		CreatedAt: now.Add(-1 * time.Hour),
		Recipients: []entity.AlertRecipient{
			{ContactID: "user-2", Acknowledged: false},
		},
	}

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(alert, nil)
	fx.alertRepo.EXPECT().Acknowledge(ctx, "alert-1", "user-2", now).Return(0, nil)

	_, err := fx.service.Acknowledge(ctx, usecase.AcknowledgeInput{AlertID: "alert-1", UserID: "user-2"})

	assertErrorCode(t, err, "ALREADY_ACKNOWLEDGED")
}

func TestAlertService_ListReceived_FlagCoherence(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	ackedAt := now.Add(-30 * time.Minute)
	alerts := []entity.Alert{
		{
			ID:        "fresh-unacked",
			SenderID:  "sender-1",
			Message:   "help",
			CreatedAt: now.Add(-1 * time.Hour),
			Recipients: []entity.AlertRecipient{
				{ContactID: "user-2", Acknowledged: false},
			},
		},
		{
			ID:        "fresh-acked",
			SenderID:  "sender-1",
			Message:   "help",
			CreatedAt: now.Add(-2 * time.Hour),
			Recipients: []entity.AlertRecipient{
				{ContactID: "user-2", Acknowledged: true, AcknowledgedAt: &ackedAt},
			},
		},
		{
			ID:        "stale",
			SenderID:  "sender-1",
			Message:   "old",
			CreatedAt: now.Add(-48 * time.Hour),
			Recipients: []entity.AlertRecipient{
				{ContactID: "user-2", Acknowledged: false},
			},
		},
	}

	fx.alertRepo.EXPECT().ListForRecipient(ctx, "user-2").Return(alerts, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "sender-1").Return(testSender(), nil).Once()

	views, err := fx.service.ListReceived(ctx, "user-2")

	require.NoError(t, err)
	require.Len(t, views, 3)

	fresh := views[0]
	assert.True(t, fresh.Recent)
	assert.True(t, fresh.Acknowledgeable)
	assert.False(t, fresh.Acknowledged)

	acked := views[1]
	assert.True(t, acked.Recent)
	assert.False(t, acked.Acknowledgeable)
	assert.True(t, acked.Acknowledged)
	assert.Equal(t, &ackedAt, acked.AcknowledgedAt)

	stale := views[2]
	assert.False(t, stale.Recent)
	assert.False(t, stale.Acknowledgeable)

	// The sender name is resolved once and memoized for the request.
	for _, v := range views {
		assert.Equal(t, "Alice", v.SenderName)
	}
}

func TestAlertService_ListSent_RecipientStatuses(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	now := time.Now()
	fx.service.now = func() time.Time { return now }

	ackedAt := now.Add(-10 * time.Minute)
	alerts := []entity.Alert{
		{
			ID:        "alert-1",
			SenderID:  "sender-1",
			Message:   "help",
			CreatedAt: now.Add(-1 * time.Hour),
			Recipients: []entity.AlertRecipient{
				{ContactID: "user-2", Name: "Bob", Acknowledged: true, AcknowledgedAt: &ackedAt},
				{ContactID: "user-3", Name: "Carol", Acknowledged: false},
			},
		},
	}

	// Names come from the frozen snapshot, not from live user lookups.
	fx.alertRepo.EXPECT().ListBySender(ctx, "sender-1").Return(alerts, nil)

	views, err := fx.service.ListSent(ctx, "sender-1")

	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.True(t, view.Recent)
	require.Len(t, view.Recipients, 2)
	assert.Equal(t, "Bob", view.Recipients[0].Name)
	assert.True(t, view.Recipients[0].Acknowledged)
	assert.Equal(t, "Carol", view.Recipients[1].Name)
	assert.False(t, view.Recipients[1].Acknowledged)
}

func TestAlertService_DeleteAlert_Success(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().DeleteBySender(ctx, "alert-1", "sender-1").Return(nil)

	err := fx.service.DeleteAlert(ctx, "alert-1", "sender-1")

	require.NoError(t, err)
}

func TestAlertService_DeleteAlert_NotOwnerLooksLikeMissing(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	// The repository scopes the delete by sender, so a non-owner gets the
	// same not-found error as a missing alert.
	fx.alertRepo.EXPECT().DeleteBySender(ctx, "alert-1", "intruder").
		Return(repository.ErrAlertNotFound)

	err := fx.service.DeleteAlert(ctx, "alert-1", "intruder")

	assertErrorCode(t, err, "ALERT_NOT_FOUND")
}
