package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// touching the given constraint/table hint. PostgreSQL surfaces SQLSTATE
// 23505 with the constraint name; SQLite only gives the message text, so a
// substring match is the best both backends support. An empty hint matches
// any unique violation.
func IsUniqueViolation(err error, hint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return false
		}
		return hint == "" || strings.Contains(pgErr.ConstraintName, hint)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") && !strings.Contains(msg, "duplicate") {
		return false
	}
	return hint == "" || strings.Contains(msg, strings.ToLower(hint))
}
