package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// requireStaff must run after requireAuthentication. The staff flag is read
// from the user record on every request, so promotions and demotions apply
// to sessions that are already logged in.
func (app *Application) requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := app.userRepo.GetById(r.Context(), app.contextGetUserId(r))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unauthorizedAccessResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if !user.IsStaff {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authorize enforces the security requirement of the matched operation. The
// generated router marks the request context with the scopes of the
// requirement; operations without one are public.
func (app *Application) authorize(next http.Handler) http.Handler {
	authenticated := app.requireAuthentication(next)
	staffOnly := app.requireAuthentication(app.requireStaff(next))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Context().Value(api.StaffAuthScopes) != nil:
			staffOnly.ServeHTTP(w, r)
		case r.Context().Value(api.CookieAuthScopes) != nil:
			authenticated.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
