// Package database owns the SQLite store: schema creation, seed data and
// the error taxonomy shared by the per-entity repositories.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avolkov/booklist/internal/entities"
)

var demoAuthors = []entities.Author{
	{FirstName: "Лев", LastName: "Толстой", MiddleName: "Николаевич"},
	{FirstName: "Михаил", LastName: "Булгаков"},
	{FirstName: "Михаил", LastName: "Лермонтов", MiddleName: "Юрьевич"},
}

// Titles indexed against demoAuthors, resolved to real ids at seed time.
var demoBooks = []struct {
	Title  string
	Author int
}{
	{Title: "Война и мир", Author: 0},
	{Title: "Мастер и Маргарита", Author: 1},
	{Title: "Собачье сердце", Author: 1},
	{Title: "Герой нашего времени", Author: 2},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (creating if absent) the SQLite file at dbPath,
// ensures the authors and books tables exist and optionally inserts the
// demo rows. Safe to call on every process start: migration is a no-op
// for existing tables and seeding only runs against an empty store.
// Foreign keys are switched on per connection so author deletes cascade
// to books.
func NewDatabase(dbPath string, seedDemoData bool) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if seedDemoData {
		if err := database.seedDemoData(); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedDemoData() error {
	var count int64
	if err := d.DB.Model(&entities.Author{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	authors := make([]entities.Author, len(demoAuthors))
	copy(authors, demoAuthors)
	if err := d.DB.Create(&authors).Error; err != nil {
		return fmt.Errorf("failed to seed authors: %w", err)
	}

	books := make([]entities.Book, 0, len(demoBooks))
	for _, b := range demoBooks {
		books = append(books, entities.Book{
			Title:    b.Title,
			AuthorID: authors[b.Author].ID,
		})
	}
	if err := d.DB.Create(&books).Error; err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}

	log.Printf("Seeded %d authors and %d books", len(authors), len(books))
	return nil
}
