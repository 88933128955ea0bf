package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type ErrorClass int

const (
	ErrorClassOther ErrorClass = iota
	ErrorClassForeignKey
	ErrorClassUnique
	ErrorClassNotNull
)

func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassOther
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return ErrorClassForeignKey
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return ErrorClassUnique
		case sqlite3.ErrConstraintNotNull:
			return ErrorClassNotNull
		}
		if liteErr.Code == sqlite3.ErrConstraint && strings.Contains(liteErr.Error(), "FOREIGN KEY") {
			return ErrorClassForeignKey
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return ErrorClassForeignKey
		case "23505":
			return ErrorClassUnique
		case "23502":
			return ErrorClassNotNull
		}
	}

	return ErrorClassOther
}

// Translate maps constraint failures onto the package sentinels so callers
// can use errors.Is without knowing the driver.
func Translate(err error) error {
	switch ClassifyError(err) {
	case ErrorClassForeignKey:
		return errors.Join(ErrForeignKeyViolation, err)
	case ErrorClassUnique:
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}

var (
	ErrDataDirNotFound     = errors.New("data directory not found")
	ErrDatabaseNotFound    = errors.New("database not found")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrOrderNotFound       = errors.New("order not found")
)
