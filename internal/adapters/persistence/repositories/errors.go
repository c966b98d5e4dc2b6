package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry   = 1062
	postgresUniqueViolate = "23505"
)

// IsUniqueViolation reports whether err came from a unique index rejecting a write.
// GORM translates most dialects to gorm.ErrDuplicatedKey when TranslateError is set;
// the driver checks cover connections opened without it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolate
	}

	// SQLite reports "UNIQUE constraint failed: table.column"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
