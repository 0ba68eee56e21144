package schemas

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/entities"
)

// AuthorFinder is the read-only author access the pipelines need for
// existence and duplicate checks.
type AuthorFinder interface {
	GetAuthorByID(id uint) (*entities.Author, error)
	GetAuthorByName(firstName, lastName string) (*entities.Author, error)
}

// AuthorPayload is the author request body before validation.
type AuthorPayload struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
}

func (p AuthorPayload) fieldErrors() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required.Error(msgFirstNameEmpty)),
		validation.Field(&p.LastName, validation.Required.Error(msgLastNameEmpty)),
	)
}

// AuthorValidator validates author payloads and constructs transient
// Author entities.
type AuthorValidator struct {
	authors AuthorFinder
}

func NewAuthorValidator(authors AuthorFinder) *AuthorValidator {
	return &AuthorValidator{authors: authors}
}

// Load runs the author pipeline: field validation, duplicate pre-check,
// construction. Validation failures come back as a validation.Errors map
// of field name to message; storage failures propagate unchanged.
func (v *AuthorValidator) Load(payload AuthorPayload) (*entities.Author, error) {
	return v.load(payload, 0)
}

// LoadForUpdate behaves like Load but accepts a duplicate-name match
// against the row with the given id, so an update may re-submit the
// author's own unchanged name.
func (v *AuthorValidator) LoadForUpdate(payload AuthorPayload, id uint) (*entities.Author, error) {
	return v.load(payload, id)
}

func (v *AuthorValidator) load(payload AuthorPayload, selfID uint) (*entities.Author, error) {
	if err := payload.fieldErrors(); err != nil {
		return nil, err
	}

	existing, err := v.authors.GetAuthorByName(payload.FirstName, payload.LastName)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("author duplicate check: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return nil, validation.Errors{"author": errors.New(msgDuplicateAuthor)}
	}

	return &entities.Author{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		MiddleName: payload.MiddleName,
	}, nil
}
