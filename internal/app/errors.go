package app

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
	appvalidator "github.com/metinatakli/cinema-booking-api/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The %s method is not supported for this resource"
	ErrFailedValidation    = "One or more fields have invalid values"
	ErrUnauthorizedAccess  = "You must be authenticated to access this resource"
	ErrForbidden           = "Your user account doesn't have the necessary permissions to access this resource"
	ErrInvalidCredentials  = "invalid authentication credentials"
	ErrAlreadyLoggedIn     = "You are already logged in"
	ErrInvalidRegistration = "invalid input data"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// paramErrorResponse answers 400 for path and query parameters that could not
// be bound to their declared types.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) && formatErr.ParamName == "id" {
		err = fmt.Errorf("%w: %q", errInvalidId, chi.URLParam(r, "id"))
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

// failedValidationResponse answers 422 for struct tag violations, tickets
// that do not fit their hall and empty orders. Any other error is treated as
// a server error.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErrors validator.ValidationErrors
		ticketErr        *domain.TicketValidationError
		issues           []api.ValidationError
	)

	switch {
	case errors.As(err, &validationErrors):
		for _, fieldErr := range validationErrors {
			issues = append(issues, api.ValidationError{
				Field: fieldPath(fieldErr),
				Issue: appvalidator.ValidationMessage(fieldErr),
			})
		}

		slices.SortStableFunc(issues, func(a, b api.ValidationError) int {
			return strings.Compare(a.Field, b.Field)
		})
	case errors.As(err, &ticketErr):
		issues = append(issues, api.ValidationError{
			Field: fmt.Sprintf("tickets[%d].%s", ticketErr.Index, ticketErr.Field),
			Issue: ticketErr.Message,
		})
	case errors.Is(err, domain.ErrEmptyOrder):
		issues = append(issues, api.ValidationError{
			Field: "tickets",
			Issue: fmt.Sprintf(appvalidator.ErrMinItems, "1"),
		})
	default:
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: issues,
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// fieldPath strips the top level struct name from the namespace, so nested
// fields read like tickets[0].movieSession.
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()

	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return err.Field()
}
