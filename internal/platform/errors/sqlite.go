package errors

// SQLite helpers: classify go-sqlite3 errors the way pg.go does for SQLSTATEs

import (
	stderrs "errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ExtractSQLiteError returns the sqlite3.Error at the root of err, if any
func ExtractSQLiteError(err error) (sqlite3.Error, bool) {
	var se sqlite3.Error
	if stderrs.As(err, &se) {
		return se, true
	}
	return sqlite3.Error{}, false
}

// SQLiteErrorCode maps a sqlite3.Error to an ErrorCode; !ok when err is not one
func SQLiteErrorCode(err error) (ErrorCode, bool) {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrorCodeDuplicateKey, true
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return ErrorCodeValidation, true
	case sqlite3.ErrConstraintForeignKey:
		return ErrorCodeInvalidArgument, true
	}
	switch se.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ErrorCodeDB, true
	case sqlite3.ErrReadonly, sqlite3.ErrCantOpen, sqlite3.ErrFull, sqlite3.ErrIoErr:
		return ErrorCodeUnavailable, true
	case sqlite3.ErrConstraint:
		return ErrorCodeValidation, true
	}
	return ErrorCodeDB, true
}

// FromSQLite wraps a sqlite error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromSQLite(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := SQLiteErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	e := &Error{code: code, msg: msg, orig: err}
	if code == ErrorCodeValidation || code == ErrorCodeDuplicateKey {
		e.field = sqliteColumn(err)
	}
	return e
}

// IsSQLiteBusy reports whether err is SQLITE_BUSY or SQLITE_LOCKED
func IsSQLiteBusy(err error) bool {
	se, ok := ExtractSQLiteError(err)
	return ok && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked)
}

// sqliteColumn pulls the column out of "NOT NULL constraint failed: table.column"
func sqliteColumn(err error) string {
	s := err.Error()
	i := strings.LastIndex(s, "failed: ")
	if i < 0 {
		return ""
	}
	ref := strings.TrimSpace(s[i+len("failed: "):])
	if j := strings.IndexByte(ref, ','); j >= 0 {
		ref = ref[:j]
	}
	if j := strings.LastIndexByte(ref, '.'); j >= 0 {
		ref = ref[j+1:]
	}
	return ref
}
