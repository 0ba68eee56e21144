package http

import "github.com/avolkov/booklist/internal/entities"

// This file consolidates the store interface definitions used by the
// HTTP controllers. Reads used for validation go through the finder
// interfaces in internal/schemas instead; controllers never reach
// storage except through these contracts.

// AuthorStore defines the database operations the authors controller
// needs.
type AuthorStore interface {
	ListAuthors() ([]entities.Author, error)
	GetAuthorByID(id uint) (*entities.Author, error)
	CreateAuthor(author *entities.Author) error
	UpdateAuthorByID(author *entities.Author) (int64, error)
	DeleteAuthorByID(id uint) error
}

// BookStore defines the database operations the books controller needs.
type BookStore interface {
	ListBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	CreateBook(book *entities.Book) error
	UpdateBookByID(book *entities.Book) (int64, error)
	DeleteBookByID(id uint) error
}
