package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/schemas"
)

type AuthorsController struct {
	store     AuthorStore
	validator *schemas.AuthorValidator
}

func NewAuthorsController(store AuthorStore, validator *schemas.AuthorValidator) *AuthorsController {
	return &AuthorsController{store: store, validator: validator}
}

// ListAuthors returns all registered authors.
// GET /api/authors
func (controller *AuthorsController) ListAuthors(c *gin.Context) {
	authors, err := controller.store.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// GetAuthor returns a single author by id.
// GET /api/authors/:id
func (controller *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := controller.store.GetAuthorByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "author")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// CreateAuthor validates the payload and registers a new author.
// POST /api/authors
func (controller *AuthorsController) CreateAuthor(c *gin.Context) {
	var payload schemas.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	author, err := controller.validator.Load(payload)
	if err != nil {
		respondPipelineError(c, err, "validate author")
		return
	}

	if err := controller.store.CreateAuthor(author); err != nil {
		respondInternalError(c, err, "create author")
		return
	}
	c.JSON(http.StatusCreated, author)
}

// UpdateAuthor overwrites the name fields of an existing author.
// PUT /api/authors/:id
func (controller *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetAuthorByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}

	var payload schemas.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	author, err := controller.validator.LoadForUpdate(payload, id)
	if err != nil {
		respondPipelineError(c, err, "validate author")
		return
	}

	author.ID = id
	if _, err := controller.store.UpdateAuthorByID(author); err != nil {
		respondInternalError(c, err, "update author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// DeleteAuthor removes an author; the storage-level cascade removes the
// author's books with it.
// DELETE /api/authors/:id
func (controller *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetAuthorByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}

	if err := controller.store.DeleteAuthorByID(id); err != nil {
		respondInternalError(c, err, "delete author")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "author deleted"})
}
