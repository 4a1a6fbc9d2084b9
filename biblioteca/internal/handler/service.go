package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	ListAuthors(ctx context.Context, filter model.AuthorFilter, page model.PageRequest) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, req model.CreateAuthor) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthor) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	ListBooks(ctx context.Context, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.BookDetail, error)
	CreateBook(ctx context.Context, req model.CreateBook) (model.BookDetail, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBook) (model.BookDetail, error)
	DeleteBook(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, filter model.UserFilter, page model.PageRequest) (model.ListUsers, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	Me(ctx context.Context) (model.User, error)
	CreateUser(ctx context.Context, req model.CreateUser) (model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUser) (model.User, error)
	ChangeRole(ctx context.Context, id int64, role model.Role) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UploadAvatar(ctx context.Context, userID int64, r io.Reader) error
	GetAvatar(ctx context.Context, userID int64) (model.Avatar, error)

	ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.ListLoans, error)
	GetLoan(ctx context.Context, id int64) (model.LoanView, error)
	CreateLoan(ctx context.Context, req model.CreateLoan) (model.LoanView, error)
	RenewLoan(ctx context.Context, id int64, extraDays int) (model.LoanView, error)
	ReturnLoan(ctx context.Context, id int64) (model.LoanView, error)
	UpdateLoan(ctx context.Context, id int64, req model.UpdateLoan) (model.LoanView, error)
	DeleteLoan(ctx context.Context, id int64) error

	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Logout(ctx context.Context) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

var _ LibraryService = (*service.Service)(nil)
