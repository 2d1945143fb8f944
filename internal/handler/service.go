package handler

import (
	"context"

	"library-catalog/internal/engine"
	"library-catalog/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddBook(ctx context.Context, book model.Book) error
	GetBook(ctx context.Context, isbn string) (model.Book, error)
	EditBook(ctx context.Context, isbn, field string, values []string) error
	RemoveBook(ctx context.Context, isbn string) error

	AddUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, username string) (model.User, error)
	EditUser(ctx context.Context, username, field, value string) error
	RemoveUser(ctx context.Context, username string) error

	CheckOut(ctx context.Context, isbn, username string) error
	ReturnBook(ctx context.Context, isbn, username string) error
	BookStats(ctx context.Context, isbn string) ([]model.BookBorrower, error)
	UserStats(ctx context.Context, username string) ([]model.BorrowedBook, error)

	Rate(ctx context.Context, username, isbn string, score int) error
	Recommend(ctx context.Context, username string) ([]model.Book, error)

	FindBooks(ctx context.Context, field string, values []string) ([]model.BookAuthor, error)
	FindUsers(ctx context.Context, field, value string) ([]model.User, error)
	SortBooksBy(ctx context.Context, field string) ([]model.BookAuthor, error)
	SortUsersBy(ctx context.Context, field string) ([]model.User, error)
}

var _ CatalogService = (*engine.Engine)(nil)
