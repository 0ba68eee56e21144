package config

// DefaultDatabasePath is where the SQLite file is created when
// DATABASE_PATH is not set.
const DefaultDatabasePath = "./table_books.db"
