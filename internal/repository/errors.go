// Package repository defines the data access layer over MySQL. Each entity
// kind has its own repo with typed access patterns; composed reads (a rule
// book with its chapters and pages, a chapter with its pages and rule book)
// are explicit methods rather than a generic populate.
//
// Repositories return the sentinel errors below, wrapped with context, so
// handlers can distinguish failure scenarios with errors.Is.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique column already holds the value.
var ErrDuplicate = errors.New("duplicate")

// ErrInvalidReference is returned when a foreign key points nowhere.
var ErrInvalidReference = errors.New("invalid reference")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

const (
	mysqlDuplicateEntry = 1062
	mysqlNoReferenced   = 1452
)

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

func isMissingReference(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlNoReferenced
}
