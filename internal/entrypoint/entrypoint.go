package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/booklist/internal/config"
	"github.com/avolkov/booklist/internal/database"
	"github.com/avolkov/booklist/internal/database/authors"
	"github.com/avolkov/booklist/internal/database/books"
	http_controllers "github.com/avolkov/booklist/internal/http"
	"github.com/avolkov/booklist/internal/schemas"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM with the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BooksList v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.SeedDemoData)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	authorsRepo := authors.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)

	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		Authors:         authorsRepo,
		Books:           booksRepo,
		AuthorValidator: schemas.NewAuthorValidator(authorsRepo),
		BookValidator:   schemas.NewBookValidator(authorsRepo, booksRepo),
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
