package database

import (
	"errors"
	"strings"

	"gamereviews/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the API reports as client errors.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// TranslateError maps a store failure onto the client-facing error taxonomy.
// Errors that are already AppErrors, and failures it does not recognize, are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := models.AsAppError(err); ok {
		return err
	}

	var translated *models.AppError
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		translated = models.NewConflictError()
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		translated = models.NewBadRequestError()
	case errors.As(err, &pgErr):
		translated = translatePgCode(pgErr.Code)
	default:
		translated = translateSQLiteMessage(err.Error())
	}

	if translated == nil {
		return err
	}
	translated.Err = err
	return translated
}

func translatePgCode(code string) *models.AppError {
	switch code {
	case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		return models.NewInvalidInputError()
	case pgNotNullViolation, pgForeignKeyViolation:
		return models.NewBadRequestError()
	case pgUniqueViolation:
		return models.NewConflictError()
	default:
		return nil
	}
}

// translateSQLiteMessage covers constraint failures the sqlite translator leaves untyped.
func translateSQLiteMessage(msg string) *models.AppError {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return models.NewConflictError()
	case strings.Contains(msg, "NOT NULL constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return models.NewBadRequestError()
	case strings.Contains(msg, "datatype mismatch"):
		return models.NewInvalidInputError()
	default:
		return nil
	}
}

// IsClientError reports whether err is a store failure caused by client input.
func IsClientError(err error) bool {
	appErr, ok := models.AsAppError(TranslateError(err))
	return ok && appErr.Kind != models.KindInternal
}
