package books

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func createAuthor(t *testing.T, db *gorm.DB, firstName, lastName string) *entities.Author {
	author := &entities.Author{FirstName: firstName, LastName: lastName}
	require.NoError(t, db.Create(author).Error)
	return author
}

func TestRepository_CreateBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := createAuthor(t, db, "Лев", "Толстой")

	book := &entities.Book{Title: "Война и мир", AuthorID: author.ID}
	require.NoError(t, repo.CreateBook(book))
	assert.NotZero(t, book.ID)

	fetched, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Война и мир", fetched.Title)
	require.NotNil(t, fetched.Author)
	assert.Equal(t, author.ID, fetched.Author.ID)
	assert.Equal(t, "Толстой", fetched.Author.LastName)
}

func TestRepository_CreateBook_UnknownAuthorViolatesForeignKey(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Безымянная", AuthorID: 99}
	err := repo.CreateBook(book)

	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrForeignKeyViolation))
}

func TestRepository_GetBookByID_Missing(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetBookByID(42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepository_GetBookByTitle(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := createAuthor(t, db, "Михаил", "Булгаков")
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Собачье сердце", AuthorID: author.ID}))

	book, err := repo.GetBookByTitle("Собачье сердце")
	require.NoError(t, err)
	assert.Equal(t, author.ID, book.AuthorID)

	_, err = repo.GetBookByTitle("Мастер и Маргарита")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepository_ListBooks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := createAuthor(t, db, "Михаил", "Булгаков")
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Мастер и Маргарита", AuthorID: author.ID}))
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Собачье сердце", AuthorID: author.ID}))

	books, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, book := range books {
		require.NotNil(t, book.Author)
		assert.Equal(t, "Булгаков", book.Author.LastName)
	}
}

func TestRepository_UpdateBookByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tolstoy := createAuthor(t, db, "Лев", "Толстой")
	bulgakov := createAuthor(t, db, "Михаил", "Булгаков")

	book := &entities.Book{Title: "Война и мир", AuthorID: tolstoy.ID}
	require.NoError(t, repo.CreateBook(book))

	book.Title = "Анна Каренина"
	book.AuthorID = bulgakov.ID
	rows, err := repo.UpdateBookByID(book)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	fetched, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Анна Каренина", fetched.Title)
	assert.Equal(t, bulgakov.ID, fetched.Author.ID)
}

func TestRepository_UpdateBookByID_MissingIsNoop(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := createAuthor(t, db, "Лев", "Толстой")

	rows, err := repo.UpdateBookByID(&entities.Book{ID: 42, Title: "Нет такой", AuthorID: author.ID})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestRepository_DeleteBookByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := createAuthor(t, db, "Лев", "Толстой")
	book := &entities.Book{Title: "Война и мир", AuthorID: author.ID}
	require.NoError(t, repo.CreateBook(book))

	require.NoError(t, repo.DeleteBookByID(book.ID))

	_, err := repo.GetBookByID(book.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepository_DeletingAuthorCascadesToBooks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	bulgakov := createAuthor(t, db, "Михаил", "Булгаков")
	lermontov := createAuthor(t, db, "Михаил", "Лермонтов")
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Мастер и Маргарита", AuthorID: bulgakov.ID}))
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Собачье сердце", AuthorID: bulgakov.ID}))
	require.NoError(t, repo.CreateBook(&entities.Book{Title: "Герой нашего времени", AuthorID: lermontov.ID}))

	require.NoError(t, db.Delete(&entities.Author{}, bulgakov.ID).Error)

	books, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Герой нашего времени", books[0].Title)
}
