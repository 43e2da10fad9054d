package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores care about
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrNotNullViolation    = "23502"
	pgErrCheckViolation      = "23514"
	pgErrStringTruncation    = "22001"
	pgErrInvalidText         = "22P02"
	pgErrSerialization       = "40001"
	pgErrDeadlock            = "40P01"
	pgErrLockNotAvailable    = "55P03"
	pgErrReadOnlyTx          = "25006"
	pgErrCannotConnectNow    = "57P03"
)

// PgError returns the *pgconn.PgError in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique violation
func IsDuplicateKey(err error) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == pgErrUniqueViolation
}

// IsForeignKeyViolation reports a foreign key violation
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == pgErrForeignKeyViolation
}

// DBErrorCode maps a Postgres error to a project code, ok is false for non pg errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgErrForeignKeyViolation, pgErrStringTruncation, pgErrInvalidText:
		return ErrorCodeInvalidArgument, true
	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeValidation, true
	case pgErrReadOnlyTx, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	if code == ErrorCodeInvalidArgument || code == ErrorCodeValidation {
		if pgErr, ok := PgError(err); ok && strings.TrimSpace(pgErr.ColumnName) != "" {
			return WithField(Wrap(err, code, msg), pgErr.ColumnName)
		}
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports contention errors worth one more attempt
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case pgErrSerialization, pgErrDeadlock, pgErrLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "could not serialize access") ||
		strings.Contains(s, "commit unexpectedly resulted in rollback")
}
