package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// circleServiceFixtures holds all test dependencies for circle service tests.
type circleServiceFixtures struct {
	service    usecase.CircleUsecase
	txManager  *mockRepo.MockTransactionManager
	circleRepo *mockRepo.MockCircleRepository
}

func createTestCircleService(t *testing.T) circleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	circleRepo := mockRepo.NewMockCircleRepository(t)

	service := NewCircleService(
		txManager,
		circleRepo,
		newTestConfig(),
		newDiscardLogger(),
	)

	return circleServiceFixtures{
		service:    service,
		txManager:  txManager,
		circleRepo: circleRepo,
	}
}

func TestCircleService_CreateCircle_Success(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCircleRepo := mockRepo.NewMockCircleRepository(t)

			mockFactory.EXPECT().NewCircleRepository().Return(mockCircleRepo)

			mockCircleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Circle")).
				Run(func(ctx context.Context, circle *entity.Circle) {
					circle.ID = "circle-1"
					assert.Equal(t, "Family", circle.Name)
					assert.Len(t, circle.Code, 6)
					for _, r := range circle.Code {
						assert.Contains(t, constants.CircleCodeAlphabet, string(r))
					}
				}).
				Return(nil)

			mockCircleRepo.EXPECT().
				AddMember(ctx, mock.AnythingOfType("*entity.CircleMember")).
				Run(func(ctx context.Context, member *entity.CircleMember) {
					assert.Equal(t, "circle-1", member.CircleID)
					assert.Equal(t, "admin-1", member.UserID)
					assert.Equal(t, constants.RoleAdmin, member.Role)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	circle, err := fx.service.CreateCircle(ctx, usecase.CreateCircleInput{
		AdminID: "admin-1",
		Name:    " Family ",
	})

	require.NoError(t, err)
	assert.Equal(t, "circle-1", circle.ID)
	assert.Equal(t, "Family", circle.Name)
}

func TestCircleService_CreateCircle_RetriesOnCodeCollision(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	calls := 0
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			calls++
			if calls == 1 {
				return repository.ErrDuplicateCircleCode
			}

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCircleRepo := mockRepo.NewMockCircleRepository(t)
			mockFactory.EXPECT().NewCircleRepository().Return(mockCircleRepo)
			mockCircleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Circle")).
				Run(func(ctx context.Context, circle *entity.Circle) {
					circle.ID = "circle-1"
				}).
				Return(nil)
			mockCircleRepo.EXPECT().
				AddMember(ctx, mock.AnythingOfType("*entity.CircleMember")).
				Return(nil)

			return fn(mockFactory)
		}).
		Times(2)

	circle, err := fx.service.CreateCircle(ctx, usecase.CreateCircleInput{
		AdminID: "admin-1",
		Name:    "Family",
	})

	require.NoError(t, err)
	assert.Equal(t, "circle-1", circle.ID)
	assert.Equal(t, 2, calls)
}

func TestCircleService_CreateCircle_EmptyName(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	_, err := fx.service.CreateCircle(ctx, usecase.CreateCircleInput{
		AdminID: "admin-1",
		Name:    "  ",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestCircleService_JoinCircle_Success(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", Name: "Family", Code: "ABC234"}

	// The code is normalized to upper case before lookup.
	fx.circleRepo.EXPECT().FindByCode(ctx, "ABC234").Return(circle, nil)
	fx.circleRepo.EXPECT().
		AddMember(ctx, mock.AnythingOfType("*entity.CircleMember")).
		Run(func(ctx context.Context, member *entity.CircleMember) {
			assert.Equal(t, constants.RoleMember, member.Role)
		}).
		Return(nil)

	joined, err := fx.service.JoinCircle(ctx, usecase.JoinCircleInput{
		UserID: "user-2",
		Code:   " abc234 ",
	})

	require.NoError(t, err)
	assert.Equal(t, circle.ID, joined.ID)
}

func TestCircleService_JoinCircle_InvalidCode(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	fx.circleRepo.EXPECT().FindByCode(ctx, "NOPE99").Return(nil, repository.ErrCircleNotFound)

	_, err := fx.service.JoinCircle(ctx, usecase.JoinCircleInput{
		UserID: "user-2",
		Code:   "NOPE99",
	})

	assertErrorCode(t, err, "INVALID_CIRCLE_CODE")
}

func TestCircleService_JoinCircle_AlreadyMember(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", Code: "ABC234"}

	fx.circleRepo.EXPECT().FindByCode(ctx, "ABC234").Return(circle, nil)
	fx.circleRepo.EXPECT().
		AddMember(ctx, mock.AnythingOfType("*entity.CircleMember")).
		Return(repository.ErrDuplicateMember)

	_, err := fx.service.JoinCircle(ctx, usecase.JoinCircleInput{
		UserID: "user-2",
		Code:   "ABC234",
	})

	assertErrorCode(t, err, "ALREADY_MEMBER")
}

func TestCircleService_JoinCircle_Full(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	svc := fx.service.(*circleService)
	svc.maxMembers = 2

	circle := &entity.Circle{ID: "circle-1", Code: "ABC234"}

	fx.circleRepo.EXPECT().FindByCode(ctx, "ABC234").Return(circle, nil)
	fx.circleRepo.EXPECT().CountMembers(ctx, "circle-1").Return(2, nil)

	_, err := fx.service.JoinCircle(ctx, usecase.JoinCircleInput{
		UserID: "user-3",
		Code:   "ABC234",
	})

	assertErrorCode(t, err, "CIRCLE_FULL")
}

func TestCircleService_ListMembers_RequiresMembership(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	fx.circleRepo.EXPECT().FindMember(ctx, "circle-1", "outsider").
		Return(nil, repository.ErrMemberNotFound)

	_, err := fx.service.ListMembers(ctx, "circle-1", "outsider")

	assertErrorCode(t, err, "NOT_CIRCLE_MEMBER")
}

func TestCircleService_ListMembers_Success(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	lat, lng, battery := 25.03, 121.56, 80
	members := []entity.MemberPresence{
		{UserID: "user-1", Name: "Alice", Role: constants.RoleAdmin, Latitude: &lat, Longitude: &lng, BatteryLevel: &battery},
		{UserID: "user-2", Name: "Bob", Role: constants.RoleMember},
	}

	fx.circleRepo.EXPECT().FindMember(ctx, "circle-1", "user-1").
		Return(&entity.CircleMember{CircleID: "circle-1", UserID: "user-1"}, nil)
	fx.circleRepo.EXPECT().ListMembers(ctx, "circle-1").Return(members, nil)

	got, err := fx.service.ListMembers(ctx, "circle-1", "user-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.NotNil(t, got[0].Latitude)
	assert.Nil(t, got[1].Latitude)
}

func TestCircleService_RemoveMember_AdminOnly(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", AdminID: "admin-1"}

	fx.circleRepo.EXPECT().FindByID(ctx, "circle-1").Return(circle, nil)

	err := fx.service.RemoveMember(ctx, usecase.RemoveMemberInput{
		CircleID: "circle-1",
		AdminID:  "user-2",
		MemberID: "user-3",
	})

	assertErrorCode(t, err, "NOT_CIRCLE_ADMIN")
}

func TestCircleService_RemoveMember_AdminCannotRemoveSelf(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", AdminID: "admin-1"}

	fx.circleRepo.EXPECT().FindByID(ctx, "circle-1").Return(circle, nil)

	err := fx.service.RemoveMember(ctx, usecase.RemoveMemberInput{
		CircleID: "circle-1",
		AdminID:  "admin-1",
		MemberID: "admin-1",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestCircleService_RemoveMember_Success(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", AdminID: "admin-1"}

	fx.circleRepo.EXPECT().FindByID(ctx, "circle-1").Return(circle, nil)
	fx.circleRepo.EXPECT().RemoveMember(ctx, "circle-1", "user-2").Return(nil)

	err := fx.service.RemoveMember(ctx, usecase.RemoveMemberInput{
		CircleID: "circle-1",
		AdminID:  "admin-1",
		MemberID: "user-2",
	})

	require.NoError(t, err)
}

func TestCircleService_DeleteCircle_AdminOnly(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", AdminID: "admin-1"}

	fx.circleRepo.EXPECT().FindByID(ctx, "circle-1").Return(circle, nil)

	err := fx.service.DeleteCircle(ctx, "circle-1", "user-2")

	assertErrorCode(t, err, "NOT_CIRCLE_ADMIN")
}

func TestCircleService_DeleteCircle_Success(t *testing.T) {
	fx := createTestCircleService(t)
	ctx := context.Background()

	circle := &entity.Circle{ID: "circle-1", AdminID: "admin-1"}

	fx.circleRepo.EXPECT().FindByID(ctx, "circle-1").Return(circle, nil)
	fx.circleRepo.EXPECT().Delete(ctx, "circle-1").Return(nil)

	err := fx.service.DeleteCircle(ctx, "circle-1", "admin-1")

	require.NoError(t, err)
}

func TestGenerateCircleCode_UsesAlphabet(t *testing.T) {
	code, err := generateCircleCode(6)

	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.Contains(t, constants.CircleCodeAlphabet, string(r))
	}
}
