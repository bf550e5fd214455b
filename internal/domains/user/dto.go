package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"ralhum-backend/internal/access"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResp struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type CreateUserReq struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      access.Role `json:"role"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

func (r CreateUserReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Role, validation.Required, validation.In(access.RoleAdmin, access.RoleProductManager)),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateUserReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
}

func (r UpdateUserReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(8, 72)),
	)
}

type UpdateRoleReq struct {
	Role access.Role `json:"role"`
}

func (r UpdateRoleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(access.RoleAdmin, access.RoleProductManager)),
	)
}

type UserFilter struct {
	Role   *access.Role
	Search string
	Limit  int
	Offset int
}

type UserListResp struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}
