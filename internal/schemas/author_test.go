package schemas

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/entities"
)

type stubAuthorFinder struct {
	authors []entities.Author
}

func (s *stubAuthorFinder) GetAuthorByID(id uint) (*entities.Author, error) {
	for i := range s.authors {
		if s.authors[i].ID == id {
			return &s.authors[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *stubAuthorFinder) GetAuthorByName(firstName, lastName string) (*entities.Author, error) {
	for i := range s.authors {
		if s.authors[i].FirstName == firstName && s.authors[i].LastName == lastName {
			return &s.authors[i], nil
		}
	}
	return nil, database.ErrNotFound
}

type failingAuthorFinder struct{}

func (failingAuthorFinder) GetAuthorByID(uint) (*entities.Author, error) {
	return nil, errors.New("disk I/O error")
}

func (failingAuthorFinder) GetAuthorByName(string, string) (*entities.Author, error) {
	return nil, errors.New("disk I/O error")
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs), "expected field errors, got %v", err)
	return verrs
}

func TestAuthorValidator_Load(t *testing.T) {
	v := NewAuthorValidator(&stubAuthorFinder{})

	author, err := v.Load(AuthorPayload{FirstName: "Лев", LastName: "Толстой", MiddleName: "Николаевич"})

	require.NoError(t, err)
	assert.Zero(t, author.ID)
	assert.Equal(t, "Лев", author.FirstName)
	assert.Equal(t, "Толстой", author.LastName)
	assert.Equal(t, "Николаевич", author.MiddleName)
}

func TestAuthorValidator_Load_MiddleNameDefaultsToEmpty(t *testing.T) {
	v := NewAuthorValidator(&stubAuthorFinder{})

	author, err := v.Load(AuthorPayload{FirstName: "Михаил", LastName: "Булгаков"})

	require.NoError(t, err)
	assert.Equal(t, "", author.MiddleName)
}

func TestAuthorValidator_Load_EmptyNamesAccumulate(t *testing.T) {
	v := NewAuthorValidator(&stubAuthorFinder{})

	_, err := v.Load(AuthorPayload{MiddleName: "Николаевич"})

	verrs := fieldErrors(t, err)
	assert.Len(t, verrs, 2)
	assert.Contains(t, verrs, "first_name")
	assert.Contains(t, verrs, "last_name")
}

func TestAuthorValidator_Load_Duplicate(t *testing.T) {
	finder := &stubAuthorFinder{authors: []entities.Author{
		{ID: 1, FirstName: "Лев", LastName: "Толстой", MiddleName: "Николаевич"},
	}}
	v := NewAuthorValidator(finder)

	// Same name pair is a duplicate regardless of middle_name.
	_, err := v.Load(AuthorPayload{FirstName: "Лев", LastName: "Толстой", MiddleName: "Иванович"})

	verrs := fieldErrors(t, err)
	assert.Contains(t, verrs, "author")
}

func TestAuthorValidator_LoadForUpdate_OwnNameIsNotDuplicate(t *testing.T) {
	finder := &stubAuthorFinder{authors: []entities.Author{
		{ID: 1, FirstName: "Лев", LastName: "Толстой"},
		{ID: 2, FirstName: "Михаил", LastName: "Булгаков"},
	}}
	v := NewAuthorValidator(finder)

	// Re-submitting the author's own name passes.
	author, err := v.LoadForUpdate(AuthorPayload{FirstName: "Лев", LastName: "Толстой"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Толстой", author.LastName)

	// Renaming onto another registered author does not.
	_, err = v.LoadForUpdate(AuthorPayload{FirstName: "Михаил", LastName: "Булгаков"}, 1)
	verrs := fieldErrors(t, err)
	assert.Contains(t, verrs, "author")
}

func TestAuthorValidator_Load_StorageFailureIsNotFieldError(t *testing.T) {
	v := NewAuthorValidator(failingAuthorFinder{})

	_, err := v.Load(AuthorPayload{FirstName: "Лев", LastName: "Толстой"})

	require.Error(t, err)
	var verrs validation.Errors
	assert.False(t, errors.As(err, &verrs))
}
