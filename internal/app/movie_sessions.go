package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) GetMovieSessions(w http.ResponseWriter, r *http.Request, params api.GetMovieSessionsParams) {
	filters, err := toMovieSessionFilters(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessions, err := app.movieSessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieSessionListItem, len(sessions))
	for i, session := range sessions {
		resp[i] = api.MovieSessionListItem{
			Id:                 session.ID,
			ShowTime:           session.ShowTime,
			MovieTitle:         session.Movie.Title,
			CinemaHallName:     session.CinemaHall.Name,
			CinemaHallCapacity: session.CinemaHall.Capacity(),
			TicketsAvailable:   session.TicketsAvailable,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieSessionById(w http.ResponseWriter, r *http.Request, sessionId int) {
	session, err := app.movieSessionRepo.GetById(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieSessionDetail(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieSession(w http.ResponseWriter, r *http.Request) {
	session, ok := app.readMovieSession(w, r)
	if !ok {
		return
	}

	err := app.movieSessionRepo.Create(r.Context(), session)
	if err != nil {
		app.movieSessionWriteError(w, r, err)
		return
	}

	app.respondWithMovieSession(w, r, http.StatusCreated, session.ID)
}

func (app *Application) UpdateMovieSession(w http.ResponseWriter, r *http.Request, sessionId int) {
	session, ok := app.readMovieSession(w, r)
	if !ok {
		return
	}

	session.ID = sessionId

	err := app.movieSessionRepo.Update(r.Context(), session)
	if err != nil {
		app.movieSessionWriteError(w, r, err)
		return
	}

	app.respondWithMovieSession(w, r, http.StatusOK, session.ID)
}

func (app *Application) DeleteMovieSession(w http.ResponseWriter, r *http.Request, sessionId int) {
	err := app.movieSessionRepo.Delete(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) respondWithMovieSession(w http.ResponseWriter, r *http.Request, status, sessionId int) {
	session, err := app.movieSessionRepo.GetById(r.Context(), sessionId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, status, toMovieSessionDetail(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readMovieSession(w http.ResponseWriter, r *http.Request) (*domain.MovieSession, bool) {
	var input api.MovieSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	return &domain.MovieSession{
		ShowTime:   input.ShowTime,
		Movie:      domain.Movie{ID: input.Movie},
		CinemaHall: domain.CinemaHall{ID: input.CinemaHall},
	}, true
}

func (app *Application) movieSessionWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSessionFilters(params api.GetMovieSessionsParams) (domain.MovieSessionFilters, error) {
	var filters domain.MovieSessionFilters

	if params.Date != nil {
		date := time.Date(params.Date.Year(), params.Date.Month(), params.Date.Day(), 0, 0, 0, 0, time.UTC)
		filters.Date = &date
	}

	if params.Movie != nil {
		ids, err := parseIds(*params.Movie)
		if err != nil {
			return filters, err
		}

		filters.MovieIDs = ids
	}

	return filters, nil
}

func toMovieSessionDetail(session *domain.MovieSession) api.MovieSessionDetail {
	detail := api.MovieSessionDetail{
		Id:               session.ID,
		ShowTime:         session.ShowTime,
		Movie:            toMovieListItem(&session.Movie),
		CinemaHall:       toApiCinemaHall(session.CinemaHall),
		TicketsAvailable: session.TicketsAvailable,
		TakenPlaces:      make([]api.Place, len(session.TakenPlaces)),
	}

	for i, place := range session.TakenPlaces {
		detail.TakenPlaces[i] = api.Place{Row: place.Row, Seat: place.Seat}
	}

	return detail
}
