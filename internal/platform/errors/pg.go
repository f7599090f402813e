package errors

// Postgres helpers: classify pgx errors by SQLSTATE, mirroring sqlite.go

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type pgClass struct {
	code      ErrorCode
	retryable bool
}

// pgStates covers the SQLSTATEs a single-table insert/select/delete can hit
var pgStates = map[string]pgClass{
	"23505": {code: ErrorCodeDuplicateKey},        // unique_violation
	"23502": {code: ErrorCodeValidation},          // not_null_violation
	"23514": {code: ErrorCodeValidation},          // check_violation
	"22001": {code: ErrorCodeValidation},          // string_data_right_truncation
	"23503": {code: ErrorCodeInvalidArgument},     // foreign_key_violation
	"22P02": {code: ErrorCodeInvalidArgument},     // invalid_text_representation
	"40001": {code: ErrorCodeDB, retryable: true}, // serialization_failure
	"40P01": {code: ErrorCodeDB, retryable: true}, // deadlock_detected
	"55P03": {code: ErrorCodeDB, retryable: true}, // lock_not_available
	"25006": {code: ErrorCodeUnavailable},         // read_only_sql_transaction
	"57P03": {code: ErrorCodeUnavailable},         // cannot_connect_now
}

// pgRetryText matches driver messages that carry no SQLSTATE (commit/abort paths)
var pgRetryText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"canceling statement due to lock timeout",
	"terminating connection due to administrator command",
}

// ExtractPgError returns the *pgconn.PgError at the root of err, if any
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// PgErrorCode maps a PgError to an ErrorCode; !ok when err is not one
func PgErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, found := pgStates[pgErr.Code]; found {
		return c.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := PgErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresWithField is FromPostgres plus the offending column, when pg reports one
func FromPostgresWithField(err error, msg string) error {
	wrapped := FromPostgres(err, msg)
	if pgErr, ok := ExtractPgError(err); ok {
		if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
			return WithField(wrapped, col)
		}
	}
	return wrapped
}

// IsPgRetryable reports transient contention: serialization, deadlock, lock wait.
// Local cancellation is never retryable
func IsPgRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		return pgStates[pgErr.Code].retryable
	}
	s := strings.ToLower(Root(err).Error())
	for _, frag := range pgRetryText {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
