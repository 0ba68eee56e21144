package http

import (
	"github.com/gin-gonic/gin"

	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/schemas"
)

// RouterConfig carries all controller dependencies. Using a config
// struct keeps NewRouter's signature stable and lets tests swap stores
// for mocks.
type RouterConfig struct {
	Database        *database.Database
	Authors         AuthorStore
	Books           BookStore
	AuthorValidator *schemas.AuthorValidator
	BookValidator   *schemas.BookValidator
	Version         string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Authors, cfg.AuthorValidator)
	booksController := NewBooksController(cfg.Books, cfg.BookValidator)

	router.GET("/healthz", health.Status)
	router.GET("/openapi.json", OpenAPIDocument)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)

		api.GET("/authors", authorsController.ListAuthors)
		api.POST("/authors", authorsController.CreateAuthor)
		api.GET("/authors/:id", authorsController.GetAuthor)
		api.PUT("/authors/:id", authorsController.UpdateAuthor)
		api.DELETE("/authors/:id", authorsController.DeleteAuthor)
	}

	return router
}
