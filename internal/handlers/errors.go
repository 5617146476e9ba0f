package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// statusForError maps a service error to an HTTP status.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the text shown to the client for err. Causes of 5xx errors are
// never exposed.
func clientMessage(err error, status int) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if status < http.StatusInternalServerError {
		return err.Error()
	}
	return "Internal server error"
}

// bindingMessage turns a gin binding error into a short client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "currency":
			msgs = append(msgs, fmt.Sprintf("%s must be a currency symbol", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
