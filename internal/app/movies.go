package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters, err := toMovieFilters(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieListItem, len(movies))
	for i, movie := range movies {
		resp[i] = toMovieListItem(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	movie, ok := app.readMovie(w, r)
	if !ok {
		return
	}

	err := app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.movieWriteError(w, r, err)
		return
	}

	app.respondWithMovie(w, r, http.StatusCreated, movie.ID)
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, ok := app.readMovie(w, r)
	if !ok {
		return
	}

	movie.ID = movieId

	err := app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.movieWriteError(w, r, err)
		return
	}

	app.respondWithMovie(w, r, http.StatusOK, movie.ID)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	err := app.movieRepo.Delete(r.Context(), movieId)
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

// respondWithMovie reloads the movie so that genres and actors are rendered
// in full rather than as the ids the client sent.
func (app *Application) respondWithMovie(w http.ResponseWriter, r *http.Request, status, movieId int) {
	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, status, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readMovie(w http.ResponseWriter, r *http.Request) (*domain.Movie, bool) {
	var input api.MovieRequest

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

	movie := &domain.Movie{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Duration:    input.Duration,
		Genres:      make([]domain.Genre, len(input.Genres)),
		Actors:      make([]domain.Actor, len(input.Actors)),
	}

	for i, id := range input.Genres {
		movie.Genres[i] = domain.Genre{ID: id}
	}

	for i, id := range input.Actors {
		movie.Actors[i] = domain.Actor{ID: id}
	}

	return movie, true
}

func (app *Application) movieWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieFilters(params api.GetMoviesParams) (domain.MovieFilters, error) {
	var filters domain.MovieFilters

	if params.Title != nil {
		filters.Title = strings.TrimSpace(*params.Title)
	}

	if params.Genres != nil {
		ids, err := parseIds(*params.Genres)
		if err != nil {
			return filters, err
		}

		filters.GenreIDs = ids
	}

	if params.Actors != nil {
		ids, err := parseIds(*params.Actors)
		if err != nil {
			return filters, err
		}

		filters.ActorIDs = ids
	}

	return filters, nil
}

func toMovieListItem(movie *domain.Movie) api.MovieListItem {
	if movie == nil {
		return api.MovieListItem{}
	}

	item := api.MovieListItem{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      make([]string, len(movie.Genres)),
		Actors:      make([]string, len(movie.Actors)),
	}

	for i, genre := range movie.Genres {
		item.Genres[i] = genre.Name
	}

	for i, actor := range movie.Actors {
		item.Actors[i] = actor.FullName()
	}

	return item
}

func toMovieDetail(movie *domain.Movie) api.MovieDetail {
	detail := api.MovieDetail{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      toApiGenres(movie.Genres),
		Actors:      make([]api.Actor, len(movie.Actors)),
	}

	for i, actor := range movie.Actors {
		detail.Actors[i] = toApiActor(actor)
	}

	return detail
}
