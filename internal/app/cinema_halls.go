package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.cinemaHallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CinemaHall, len(halls))
	for i, hall := range halls {
		resp[i] = toApiCinemaHall(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaHallById(w http.ResponseWriter, r *http.Request, hallId int) {
	hall, err := app.cinemaHallRepo.GetById(r.Context(), hallId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	hall, ok := app.readCinemaHall(w, r)
	if !ok {
		return
	}

	err := app.cinemaHallRepo.Create(r.Context(), hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiCinemaHall(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCinemaHall(w http.ResponseWriter, r *http.Request, hallId int) {
	hall, ok := app.readCinemaHall(w, r)
	if !ok {
		return
	}

	hall.ID = hallId

	err := app.cinemaHallRepo.Update(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCinemaHall(w http.ResponseWriter, r *http.Request, hallId int) {
	err := app.cinemaHallRepo.Delete(r.Context(), hallId)
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

func (app *Application) readCinemaHall(w http.ResponseWriter, r *http.Request) (*domain.CinemaHall, bool) {
	var input api.CinemaHallRequest

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

	return &domain.CinemaHall{
		Name:       strings.TrimSpace(input.Name),
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}, true
}

func toApiCinemaHall(hall domain.CinemaHall) api.CinemaHall {
	return api.CinemaHall{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
