// Package repository defines data access for the association's records.
// Sentinel errors let handlers map storage failures onto HTTP status codes
// without inspecting driver errors themselves.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, such as issuing a ticket number that already exists in its
// lot. Handlers should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate entry")

// ErrConflict is returned when a delete cannot proceed because dependent
// records still reference the row, e.g. deleting a lot that still has
// tickets. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrBadReference is returned when a write names a parent row that does
// not exist, such as assigning a ticket to an unknown member. Handlers
// should translate this into an HTTP 400 response.
var ErrBadReference = errors.New("referenced record does not exist")

// translateMySQL maps well-known MySQL error numbers onto the package
// sentinels. Unrecognized errors pass through unchanged.
func translateMySQL(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case 1062:
		return ErrDuplicate
	case 1451:
		return ErrConflict
	case 1452:
		return ErrBadReference
	}
	return err
}
