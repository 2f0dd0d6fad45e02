package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenres(genres), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenreById(w http.ResponseWriter, r *http.Request, genreId int) {
	genre, err := app.genreRepo.GetById(r.Context(), genreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenre(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	genre, ok := app.readGenre(w, r)
	if !ok {
		return
	}

	err := app.genreRepo.Create(r.Context(), genre)
	if err != nil {
		app.genreWriteError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiGenre(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateGenre(w http.ResponseWriter, r *http.Request, genreId int) {
	genre, ok := app.readGenre(w, r)
	if !ok {
		return
	}

	genre.ID = genreId

	err := app.genreRepo.Update(r.Context(), genre)
	if err != nil {
		app.genreWriteError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenre(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteGenre(w http.ResponseWriter, r *http.Request, genreId int) {
	err := app.genreRepo.Delete(r.Context(), genreId)
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

func (app *Application) readGenre(w http.ResponseWriter, r *http.Request) (*domain.Genre, bool) {
	var input api.GenreRequest

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

	return &domain.Genre{Name: strings.TrimSpace(input.Name)}, true
}

func (app *Application) genreWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		app.conflictResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toApiGenre(genre domain.Genre) api.Genre {
	return api.Genre{
		Id:   genre.ID,
		Name: genre.Name,
	}
}

func toApiGenres(genres []domain.Genre) []api.Genre {
	resp := make([]api.Genre, len(genres))
	for i, genre := range genres {
		resp[i] = toApiGenre(genre)
	}

	return resp
}
