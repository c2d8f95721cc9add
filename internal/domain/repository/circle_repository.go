package repository

import (
	"context"

	"lifeline/internal/domain/entity"
)

// CircleRepository persists circles and their membership.
type CircleRepository interface {
	Create(ctx context.Context, circle *entity.Circle) error
	FindByID(ctx context.Context, id string) (*entity.Circle, error)
	FindByCode(ctx context.Context, code string) (*entity.Circle, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, member *entity.CircleMember) error
	RemoveMember(ctx context.Context, circleID, userID string) error
	FindMember(ctx context.Context, circleID, userID string) (*entity.CircleMember, error)
	CountMembers(ctx context.Context, circleID string) (int64, error)

	// ListMembers returns members joined with their presence snapshots.
	ListMembers(ctx context.Context, circleID string) ([]entity.MemberPresence, error)

	// ListCreatedBy returns circles where the user is admin.
	ListCreatedBy(ctx context.Context, userID string) ([]entity.Circle, error)

	// ListJoinedBy returns circles the user is a member of but not admin.
	ListJoinedBy(ctx context.Context, userID string) ([]entity.Circle, error)

	// ListMemberIDs returns the user IDs of all members of the circle.
	ListMemberIDs(ctx context.Context, circleID string) ([]string, error)

	// ListContactIDs returns the distinct user IDs sharing any circle with
	// the user, excluding the user themselves.
	ListContactIDs(ctx context.Context, userID string) ([]string, error)
}
