package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/user"
	"ralhum-backend/pkg/jwt"
)

type fakeUserRepo struct {
	items map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[uuid.UUID]*user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range f.items {
		if existing.Email == u.Email {
			return nil, user.ErrDuplicateEmail
		}
	}
	cp := *u
	f.items[u.ID] = &cp
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context, _ *user.UserFilter) ([]user.User, int64, error) {
	var out []user.User
	for _, u := range f.items {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.items[u.ID]; !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	f.items[u.ID] = &cp
	return &cp, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	u, ok := f.items[id]
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now().UTC()
	u.LastLogin = &now
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.items, id)
	return nil
}

func newService(t *testing.T) (user.UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewManager("test-secret", 2*time.Hour)), repo
}

func adminActor() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
}

func createReq(email string) *user.CreateUserReq {
	return &user.CreateUserReq{
		Email:     email,
		Password:  "correct-horse-battery",
		Role:      access.RoleProductManager,
		FirstName: "Sanjay",
		LastName:  "Perera",
	}
}

func TestUserCreate_AdminOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	pm := access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
	_, err := svc.Create(ctx, pm, createReq("pm@ralhum.lk"))
	assert.ErrorIs(t, err, access.ErrForbidden)

	created, err := svc.Create(ctx, adminActor(), createReq("pm@ralhum.lk"))
	require.NoError(t, err)
	assert.Equal(t, "pm@ralhum.lk", created.Email)
	assert.NotEqual(t, "correct-horse-battery", created.PasswordHash)
}

func TestUserLogin_SuccessStampsLastLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor(), createReq("staff@ralhum.lk"))
	require.NoError(t, err)
	require.Nil(t, created.LastLogin)

	resp, err := svc.Login(ctx, &user.LoginReq{Email: "Staff@Ralhum.lk", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotNil(t, resp.User.LastLogin)
	assert.Equal(t, created.ID, resp.User.ID)
}

func TestUserLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor(), createReq("staff@ralhum.lk"))
	require.NoError(t, err)

	_, errWrongPass := svc.Login(ctx, &user.LoginReq{Email: "staff@ralhum.lk", Password: "wrong-password-x"})
	_, errNoUser := svc.Login(ctx, &user.LoginReq{Email: "ghost@ralhum.lk", Password: "wrong-password-x"})

	assert.ErrorIs(t, errWrongPass, user.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, user.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestUserLogin_TokenCarriesRole(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor(), createReq("staff@ralhum.lk"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &user.LoginReq{Email: "staff@ralhum.lk", Password: "correct-horse-battery"})
	require.NoError(t, err)

	claims, err := jwt.NewManager("test-secret", 2*time.Hour).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, string(access.RoleProductManager), claims.Role)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
}

func TestUserRead_OwnRowOnlyForNonAdmins(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	admin := adminActor()

	first, err := svc.Create(ctx, admin, createReq("one@ralhum.lk"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, admin, createReq("two@ralhum.lk"))
	require.NoError(t, err)

	firstActor := access.Actor{ID: first.ID, Role: first.Role}

	own, err := svc.GetByID(ctx, firstActor, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, own.ID)

	// another staff account's row reads as not found, not forbidden
	_, err = svc.GetByID(ctx, firstActor, second.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	list, err := svc.GetAll(ctx, firstActor, nil)
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, first.ID, list.Users[0].ID)

	adminList, err := svc.GetAll(ctx, admin, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), adminList.Total)
}

func TestUserUpdateRole_SelfDemotionBlocked(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	adminUser := &user.User{
		ID:    uuid.New(),
		Email: "boss@ralhum.lk",
		Role:  access.RoleAdmin,
	}
	repo.items[adminUser.ID] = adminUser
	self := access.Actor{ID: adminUser.ID, Role: access.RoleAdmin}

	_, err := svc.UpdateRole(ctx, self, adminUser.ID, &user.UpdateRoleReq{Role: access.RoleProductManager})
	assert.ErrorIs(t, err, access.ErrForbidden)

	other, err := svc.Create(ctx, self, createReq("other@ralhum.lk"))
	require.NoError(t, err)
	promoted, err := svc.UpdateRole(ctx, self, other.ID, &user.UpdateRoleReq{Role: access.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, access.RoleAdmin, promoted.Role)
}

func TestUserDelete_SelfDeletionBlocked(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	adminUser := &user.User{ID: uuid.New(), Email: "boss@ralhum.lk", Role: access.RoleAdmin}
	repo.items[adminUser.ID] = adminUser
	self := access.Actor{ID: adminUser.ID, Role: access.RoleAdmin}

	err := svc.Delete(ctx, self, adminUser.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	other, err := svc.Create(ctx, self, createReq("other@ralhum.lk"))
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, self, other.ID))
}

func TestUserJSON_NeverExposesPasswordHash(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor(), createReq("staff@ralhum.lk"))
	require.NoError(t, err)

	data, err := json.Marshal(created)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, created.PasswordHash)
}
