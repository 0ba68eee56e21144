package database

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNotFound marks a row that does not exist. It aliases the GORM
// sentinel so callers can check with errors.Is without importing gorm.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrForeignKeyViolation marks a book write whose author column does not
// reference an existing author row. The validation layer is the only gate
// for author references, so hitting this means a caller bypassed it.
var ErrForeignKeyViolation = errors.New("foreign key violation")

// TranslateError maps SQLite constraint failures onto the package
// sentinels and leaves every other error untouched.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}
	return err
}
