package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/user"
	"ralhum-backend/pkg/jwt"
	"ralhum-backend/pkg/logger"
)

type userServiceImpl struct {
	repository user.UserRepository
	tokens     *jwt.Manager
}

func NewUserService(repo user.UserRepository, tokens *jwt.Manager) user.UserService {
	return &userServiceImpl{repository: repo, tokens: tokens}
}

// Login is the one unauthenticated operation on this service. A wrong email
// and a wrong password report the same error.
func (s *userServiceImpl) Login(ctx context.Context, req *user.LoginReq) (*user.LoginResp, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	entity, err := s.repository.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(entity.ID.String(), entity.Email, string(entity.Role))
	if err != nil {
		logger.Error("token generation failed", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.repository.UpdateLastLogin(ctx, entity.ID); err != nil {
		// login still succeeds, the stamp is advisory
		logger.Warn("last login stamp failed", map[string]interface{}{"user_id": entity.ID.String()})
	} else {
		now := time.Now().UTC()
		entity.LastLogin = &now
	}

	return &user.LoginResp{Token: token, User: entity}, nil
}

func (s *userServiceImpl) Create(ctx context.Context, actor access.Actor, req *user.CreateUserReq) (*user.User, error) {
	if err := access.Authorize(access.EntityUser, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	entity := &user.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("user create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*user.User, error) {
	if err := access.Authorize(access.EntityUser, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if err := s.checkRowScope(actor, id); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *userServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *user.UserFilter) (*user.UserListResp, error) {
	if err := access.Authorize(access.EntityUser, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &user.UserFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	scope := access.ReadScope(access.EntityUser, actor)
	if scope.DenyAll {
		return &user.UserListResp{Users: []user.User{}, Total: 0}, nil
	}
	if scope.OwnerID != nil {
		// non-admin staff see a single-row list: their own account
		entity, err := s.repository.GetByID(ctx, *scope.OwnerID)
		if err != nil {
			return nil, err
		}
		return &user.UserListResp{Users: []user.User{*entity}, Total: 1}, nil
	}

	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &user.UserListResp{Users: items, Total: total}, nil
}

func (s *userServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *user.UpdateUserReq) (*user.User, error) {
	if err := access.Authorize(access.EntityUser, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := s.checkRowScope(actor, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		entity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		entity.LastName = *req.LastName
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		entity.PasswordHash = string(hash)
	}
	entity.UpdatedAt = time.Now().UTC()

	return s.repository.Update(ctx, entity)
}

// UpdateRole changes an account's role. Only admins get here, and an admin
// cannot demote themselves out of the admin role.
func (s *userServiceImpl) UpdateRole(ctx context.Context, actor access.Actor, id uuid.UUID, req *user.UpdateRoleReq) (*user.User, error) {
	if !actor.HasRole(access.RoleAdmin) {
		return nil, access.Deny("role changes require the admin role").Err()
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if actor.ID == id && req.Role != access.RoleAdmin {
		return nil, access.Deny("cannot remove your own admin role").Err()
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entity.Role = req.Role
	entity.UpdatedAt = time.Now().UTC()
	return s.repository.Update(ctx, entity)
}

func (s *userServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityUser, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	if actor.ID == id {
		return access.Deny("cannot delete your own account").Err()
	}
	return s.repository.Delete(ctx, id)
}

// checkRowScope enforces the own-row restriction for non-admin staff. A
// scoped-out row reads as not found.
func (s *userServiceImpl) checkRowScope(actor access.Actor, id uuid.UUID) error {
	scope := access.ReadScope(access.EntityUser, actor)
	if scope.DenyAll {
		return user.ErrUserNotFound
	}
	if scope.OwnerID != nil && *scope.OwnerID != id {
		return user.ErrUserNotFound
	}
	return nil
}
