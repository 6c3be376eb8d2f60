package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKeyErr reports whether err is a unique-constraint violation.
// gorm's TranslateError covers builder-API writes; the message checks catch
// raw Exec paths the translation does not see.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value violates unique constraint"):
		// postgres, SQLSTATE 23505
		return true
	case strings.Contains(msg, "Error 1062"):
		// mysql ER_DUP_ENTRY
		return true
	case strings.Contains(msg, "UNIQUE constraint failed"):
		// sqlite
		return true
	}
	return false
}
