package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// CreateCircleInput defines the data required to create a circle.
type CreateCircleInput struct {
	AdminID string
	Name    string
}

// JoinCircleInput joins the user to the circle matching the invite code.
type JoinCircleInput struct {
	UserID string
	Code   string
}

// RemoveMemberInput removes a member from a circle, admin only.
type RemoveMemberInput struct {
	CircleID string
	AdminID  string
	MemberID string
}

// CircleListOutput groups the circles a user administers and has joined.
type CircleListOutput struct {
	Created []entity.Circle
	Joined  []entity.Circle
}

// CircleUsecase defines circle management operations.
type CircleUsecase interface {
	CreateCircle(ctx context.Context, input CreateCircleInput) (*entity.Circle, error)
	JoinCircle(ctx context.Context, input JoinCircleInput) (*entity.Circle, error)
	ListCircles(ctx context.Context, userID string) (*CircleListOutput, error)
	ListMembers(ctx context.Context, circleID, requesterID string) ([]entity.MemberPresence, error)
	RemoveMember(ctx context.Context, input RemoveMemberInput) error
	DeleteCircle(ctx context.Context, circleID, requesterID string) error
}
