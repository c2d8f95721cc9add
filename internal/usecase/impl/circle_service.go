package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

const maxCodeGenerationAttempts = 5

// circleService implements the CircleUsecase interface.
type circleService struct {
	txManager  repository.TransactionManager
	circleRepo repository.CircleRepository
	codeLength int
	maxMembers int
	logger     *slog.Logger
}

func NewCircleService(
	txManager repository.TransactionManager,
	circleRepo repository.CircleRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CircleUsecase {
	codeLength := constants.CircleCodeLength
	maxMembers := 0
	if cfg != nil && cfg.Circle != nil {
		if cfg.Circle.InviteCodeLength > 0 {
			codeLength = cfg.Circle.InviteCodeLength
		}
		maxMembers = cfg.Circle.MaxMembers
	}

	return &circleService{
		txManager:  txManager,
		circleRepo: circleRepo,
		codeLength: codeLength,
		maxMembers: maxMembers,
		logger:     logger,
	}
}

func (srv *circleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCircle creates the circle and enrolls the creator as admin in one
// transaction. Invite code collisions are retried with a fresh code.
func (srv *circleService) CreateCircle(ctx context.Context, input usecase.CreateCircleInput) (*entity.Circle, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewInvalidInputError("circle name is required")
	}

	var created *entity.Circle
	for attempt := 0; attempt < maxCodeGenerationAttempts; attempt++ {
		code, err := generateCircleCode(srv.codeLength)
		if err != nil {
			return nil, errors.Wrap(err, "generate circle code")
		}

		circle := &entity.Circle{
			Name:    name,
			Code:    code,
			AdminID: input.AdminID,
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			circles := repoFactory.NewCircleRepository()
			if err := circles.Create(ctx, circle); err != nil {
				return err
			}

			member := &entity.CircleMember{
				CircleID: circle.ID,
				UserID:   input.AdminID,
				Role:     constants.RoleAdmin,
			}

			return circles.AddMember(ctx, member)
		})
		if err == nil {
			created = circle

			break
		}
		if errors.Is(err, repository.ErrDuplicateCircleCode) {
			continue
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if created == nil {
		return nil, domainerrors.NewDatabaseExecuteError("could not generate a unique circle code")
	}

	srv.log(ctx).Info("circle created",
		slog.String("circle_id", created.ID),
		slog.String("admin_id", input.AdminID),
	)

	return created, nil
}

// JoinCircle adds the user to the circle matching the invite code.
func (srv *circleService) JoinCircle(ctx context.Context, input usecase.JoinCircleInput) (*entity.Circle, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerrors.NewInvalidInputError("circle code is required")
	}

	circle, err := srv.circleRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCircleNotFound) {
			return nil, domainerrors.NewInvalidCircleCodeError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if srv.maxMembers > 0 {
		count, err := srv.circleRepo.CountMembers(ctx, circle.ID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err.Error())
		}
		if count >= int64(srv.maxMembers) {
			return nil, domainerrors.NewCircleFullError()
		}
	}

	member := &entity.CircleMember{
		CircleID: circle.ID,
		UserID:   input.UserID,
		Role:     constants.RoleMember,
	}
	if err := srv.circleRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return nil, domainerrors.NewAlreadyMemberError()
		}
		if errors.Is(err, repository.ErrCircleNotFound) {
			return nil, domainerrors.NewUnknownCircleError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("user joined circle",
		slog.String("circle_id", circle.ID),
		slog.String("user_id", input.UserID),
	)

	return circle, nil
}

func (srv *circleService) ListCircles(ctx context.Context, userID string) (*usecase.CircleListOutput, error) {
	created, err := srv.circleRepo.ListCreatedBy(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	joined, err := srv.circleRepo.ListJoinedBy(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return &usecase.CircleListOutput{
		Created: created,
		Joined:  joined,
	}, nil
}

// ListMembers returns members with presence. Only members can see the list.
func (srv *circleService) ListMembers(ctx context.Context, circleID, requesterID string) ([]entity.MemberPresence, error) {
	if _, err := srv.requireMember(ctx, circleID, requesterID); err != nil {
		return nil, err
	}

	members, err := srv.circleRepo.ListMembers(ctx, circleID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return members, nil
}

// RemoveMember removes a member, admin only. The admin cannot remove
// themselves; they delete the circle instead.
func (srv *circleService) RemoveMember(ctx context.Context, input usecase.RemoveMemberInput) error {
	circle, err := srv.findCircle(ctx, input.CircleID)
	if err != nil {
		return err
	}
	if circle.AdminID != input.AdminID {
		return domainerrors.NewNotCircleAdminError()
	}
	if input.MemberID == input.AdminID {
		return domainerrors.NewInvalidInputError("admin cannot remove themselves; delete the circle instead")
	}

	if err := srv.circleRepo.RemoveMember(ctx, input.CircleID, input.MemberID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.NewNotCircleMemberError()
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return nil
}

// DeleteCircle removes the circle and all memberships, admin only.
func (srv *circleService) DeleteCircle(ctx context.Context, circleID, requesterID string) error {
	circle, err := srv.findCircle(ctx, circleID)
	if err != nil {
		return err
	}
	if circle.AdminID != requesterID {
		return domainerrors.NewNotCircleAdminError()
	}

	if err := srv.circleRepo.Delete(ctx, circleID); err != nil {
		if errors.Is(err, repository.ErrCircleNotFound) {
			return domainerrors.NewCircleNotFoundError()
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("circle deleted",
		slog.String("circle_id", circleID),
	)

	return nil
}

func (srv *circleService) findCircle(ctx context.Context, circleID string) (*entity.Circle, error) {
	circle, err := srv.circleRepo.FindByID(ctx, circleID)
	if err != nil {
		if errors.Is(err, repository.ErrCircleNotFound) {
			return nil, domainerrors.NewCircleNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return circle, nil
}

func (srv *circleService) requireMember(ctx context.Context, circleID, userID string) (*entity.CircleMember, error) {
	member, err := srv.circleRepo.FindMember(ctx, circleID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.NewNotCircleMemberError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return member, nil
}

func generateCircleCode(length int) (string, error) {
	alphabet := constants.CircleCodeAlphabet
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
