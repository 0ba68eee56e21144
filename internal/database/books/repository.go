// Package books provides database operations for book rows.
//
// This package implements the BookStore interface defined in
// internal/http/stores.go and the schemas.BookFinder interface used by
// the validation pipelines.
package books

import (
	"gorm.io/gorm"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks retrieves all books with their authors joined in.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book with its author joined in. A missing row
// surfaces as gorm.ErrRecordNotFound.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookByTitle retrieves the raw book row with an exact title match,
// without the joined author.
func (r *Repository) GetBookByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("title = ?", title).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a transient book and assigns its id. The caller must
// have resolved AuthorID to an existing author; a violation comes back as
// database.ErrForeignKeyViolation instead of silently succeeding.
func (r *Repository) CreateBook(book *entities.Book) error {
	return database.TranslateError(r.db.Create(book).Error)
}

// UpdateBookByID overwrites the title and author columns of the row
// matching the book's id and reports how many rows were touched. Zero
// rows is not an error; existence checks are the caller's job.
func (r *Repository) UpdateBookByID(book *entities.Book) (int64, error) {
	result := r.db.Model(&entities.Book{}).Where("id = ?", book.ID).Updates(map[string]any{
		"title":  book.Title,
		"author": book.AuthorID,
	})
	return result.RowsAffected, database.TranslateError(result.Error)
}

// DeleteBookByID removes a book row.
func (r *Repository) DeleteBookByID(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
