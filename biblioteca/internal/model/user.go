package model

import "github.com/Astemirdum/biblioteca-service/pkg/auth"

type Role string

const (
	RoleLibrarian Role = auth.RoleLibrarian
	RoleReader    Role = auth.RoleReader
)

func (r Role) Valid() bool {
	return r == RoleLibrarian || r == RoleReader
}

type User struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"nombre" db:"name"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password"`
	Role         Role    `json:"rol" db:"role"`
	Avatar       *string `json:"-" db:"avatar"`
}

func (u User) Profile() auth.Profile {
	return auth.Profile{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	}
}

type ListUsers struct {
	Paging `json:",inline"`
	Items  []User `json:"items"`
}

type UserFilter struct {
	Name string
}

type CreateUser struct {
	Name     string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Role     Role   `json:"rol" validate:"omitempty,oneof=BIBLIOTECARIO LECTOR"`
}

type UpdateUser struct {
	Name     *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,maxbytes=72"`
	Role     *Role   `json:"rol" validate:"omitempty,oneof=BIBLIOTECARIO LECTOR"`
}
