package server

import (
	"net/http"

	"github.com/vkinnnnn/givemejobs-match/internal/engine"
)

// HTTPStatus returns the appropriate HTTP status code for an engine error.
func HTTPStatus(err error) int {
	switch {
	case engine.IsNotFound(err):
		return http.StatusNotFound
	case engine.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
