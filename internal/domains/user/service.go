package user

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type UserService interface {
	Login(ctx context.Context, req *LoginReq) (*LoginResp, error)
	Create(ctx context.Context, actor access.Actor, req *CreateUserReq) (*User, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*User, error)
	GetAll(ctx context.Context, actor access.Actor, filter *UserFilter) (*UserListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateUserReq) (*User, error)
	UpdateRole(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateRoleReq) (*User, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
