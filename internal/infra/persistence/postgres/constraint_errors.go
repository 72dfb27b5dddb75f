package postgres

import (
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL constraint-error checking. GORM translates
// driver errors when TranslateError is enabled; the SQLSTATE fallbacks cover
// connections opened without it.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// translateWriteError converts storage-level constraint failures into domain
// errors; anything unrecognized becomes a generic database error.
func translateWriteError(err error, message string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrDuplicateRecord.WrapMessage(message)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WrapMessage(message)
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(message)
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}
