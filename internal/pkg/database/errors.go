package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	uniqueViolationCode      = "23505"
)

// ErrTransactionConflict is returned by WithinTransaction when a transaction kept
// losing to concurrent writers until the retry budget ran out, or hit its deadline.
var ErrTransactionConflict = errors.New("transaction conflict")

func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
