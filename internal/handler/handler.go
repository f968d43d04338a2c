// Package handler exposes the HTTP surface: bind, validate, call the store,
// translate store errors to status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// errorStatus maps a store error to the HTTP status it should surface as.
// Not-found is 404, lifecycle and double-booking conflicts are 409, anything
// else is a plain 500 with the wrapped store message.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrRoomOccupied),
		errors.Is(err, store.ErrOccupationNotActive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
