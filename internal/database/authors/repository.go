// Package authors provides database operations for author rows.
//
// This package implements the AuthorStore interface defined in
// internal/http/stores.go and the schemas.AuthorFinder interface used by
// the validation pipelines.
package authors

import (
	"gorm.io/gorm"

	"github.com/avolkov/booklist/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAuthors retrieves all authors.
func (r *Repository) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

// GetAuthorByID retrieves an author by id. A missing row surfaces as
// gorm.ErrRecordNotFound.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAuthorByName retrieves an author by exact first and last name.
func (r *Repository) GetAuthorByName(firstName, lastName string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("first_name = ? AND last_name = ?", firstName, lastName).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// CreateAuthor inserts a transient author and assigns its id.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

// UpdateAuthorByID overwrites the name fields of the row matching the
// author's id and reports how many rows were touched. Zero rows is not an
// error; existence checks are the caller's job.
func (r *Repository) UpdateAuthorByID(author *entities.Author) (int64, error) {
	result := r.db.Model(&entities.Author{}).Where("id = ?", author.ID).Updates(map[string]any{
		"first_name":  author.FirstName,
		"last_name":   author.LastName,
		"middle_name": author.MiddleName,
	})
	return result.RowsAffected, result.Error
}

// DeleteAuthorByID removes an author row. Books referencing it are
// removed by the ON DELETE CASCADE constraint.
func (r *Repository) DeleteAuthorByID(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}
