package schemas

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/entities"
)

// BookFinder is the read-only book access the book pipeline needs for
// the duplicate-title check.
type BookFinder interface {
	GetBookByTitle(title string) (*entities.Book, error)
}

// BookPayload is the book request body before validation.
type BookPayload struct {
	Title  string    `json:"title"`
	Author AuthorRef `json:"author"`
}

// BookValidator validates book payloads, resolves the author reference
// to the id of a registered author and constructs transient Book
// entities. It never auto-creates an author.
type BookValidator struct {
	authors AuthorFinder
	books   BookFinder
}

func NewBookValidator(authors AuthorFinder, books BookFinder) *BookValidator {
	return &BookValidator{authors: authors, books: books}
}

// Load runs the book pipeline: author-reference resolution, title
// validation, construction. Validation failures come back as a
// validation.Errors map of field name to message; storage failures
// propagate unchanged.
func (v *BookValidator) Load(payload BookPayload) (*entities.Book, error) {
	return v.load(payload, 0)
}

// LoadForUpdate behaves like Load but accepts a duplicate-title match
// against the row with the given id, so an update may re-submit the
// book's own unchanged title.
func (v *BookValidator) LoadForUpdate(payload BookPayload, id uint) (*entities.Book, error) {
	return v.load(payload, id)
}

func (v *BookValidator) load(payload BookPayload, selfID uint) (*entities.Book, error) {
	verrs := validation.Errors{}

	authorID, fieldMsg, err := v.resolveAuthorRef(payload.Author)
	if err != nil {
		return nil, fmt.Errorf("author reference check: %w", err)
	}
	if fieldMsg != "" {
		verrs["author"] = errors.New(fieldMsg)
	}

	if payload.Title == "" {
		verrs["title"] = errors.New(msgTitleEmpty)
	} else {
		existing, err := v.books.GetBookByTitle(payload.Title)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("title duplicate check: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			verrs["title"] = errors.New(msgDuplicateTitle)
		}
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	return &entities.Book{
		Title:    payload.Title,
		AuthorID: authorID,
	}, nil
}

// resolveAuthorRef turns the int-or-object author reference into the id
// of a registered author. It reports user errors as a field message and
// returns an error only for storage failures.
func (v *BookValidator) resolveAuthorRef(ref AuthorRef) (uint, string, error) {
	switch {
	case !ref.present:
		return 0, msgAuthorRequired, nil
	case ref.invalid:
		return 0, msgInvalidAuthorType, nil
	case ref.id != nil:
		author, err := v.authors.GetAuthorByID(*ref.id)
		if errors.Is(err, database.ErrNotFound) {
			return 0, fmt.Sprintf("author with id=%d does not exist", *ref.id), nil
		}
		if err != nil {
			return 0, "", err
		}
		return author.ID, "", nil
	default:
		if ref.name.FirstName == "" || ref.name.LastName == "" {
			return 0, msgMissingAuthorFields, nil
		}
		author, err := v.authors.GetAuthorByName(ref.name.FirstName, ref.name.LastName)
		if errors.Is(err, database.ErrNotFound) {
			return 0, msgAuthorNotRegistered, nil
		}
		if err != nil {
			return 0, "", err
		}
		return author.ID, "", nil
	}
}
