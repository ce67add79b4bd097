package repository

import (
	"net/http"

	"gamereviews/internal/models"
)

// CheckRows is the single "did the lookup find anything" decision. When count
// is zero it rejects with message at status (404 unless given); otherwise it
// returns payload unchanged.
func CheckRows[T any](count int64, payload T, message string, status ...int) (T, error) {
	if count > 0 {
		return payload, nil
	}

	code := http.StatusNotFound
	if len(status) > 0 {
		code = status[0]
	}

	var zero T
	if code == http.StatusNotFound {
		return zero, models.NewNotFoundError(message)
	}
	return zero, models.NewStatusError(code, message)
}
