package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/schemas"
)

type BooksController struct {
	store     BookStore
	validator *schemas.BookValidator
}

func NewBooksController(store BookStore, validator *schemas.BookValidator) *BooksController {
	return &BooksController{store: store, validator: validator}
}

// ListBooks returns all books with their authors joined in.
// GET /api/books
func (controller *BooksController) ListBooks(c *gin.Context) {
	books, err := controller.store.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book with its author joined in.
// GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook validates the payload, resolves the author reference and
// inserts the book. The created row is re-read so the response carries
// the nested author.
// POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var payload schemas.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	book, err := controller.validator.Load(payload)
	if err != nil {
		respondPipelineError(c, err, "validate book")
		return
	}

	if err := controller.store.CreateBook(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	created, err := controller.store.GetBookByID(book.ID)
	if err != nil {
		respondInternalError(c, err, "get created book")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBook overwrites the title and author of an existing book.
// PUT /api/books/:id
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetBookByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	var payload schemas.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	book, err := controller.validator.LoadForUpdate(payload, id)
	if err != nil {
		respondPipelineError(c, err, "validate book")
		return
	}

	book.ID = id
	if _, err := controller.store.UpdateBookByID(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	updated, err := controller.store.GetBookByID(id)
	if err != nil {
		respondInternalError(c, err, "get updated book")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBook removes a book row.
// DELETE /api/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetBookByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	if err := controller.store.DeleteBookByID(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "book deleted"})
}
