package v1

import (
	"errors"
	"net/http"

	"github.com/orbita-crm/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no resource for the ID you specified"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost = errors.New("you must send a file to this endpoint")
)
