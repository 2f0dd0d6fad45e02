package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.actorRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Actor, len(actors))
	for i, actor := range actors {
		resp[i] = toApiActor(actor)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActorById(w http.ResponseWriter, r *http.Request, actorId int) {
	actor, err := app.actorRepo.GetById(r.Context(), actorId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	actor, ok := app.readActor(w, r)
	if !ok {
		return
	}

	err := app.actorRepo.Create(r.Context(), actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiActor(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateActor(w http.ResponseWriter, r *http.Request, actorId int) {
	actor, ok := app.readActor(w, r)
	if !ok {
		return
	}

	actor.ID = actorId

	err := app.actorRepo.Update(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteActor(w http.ResponseWriter, r *http.Request, actorId int) {
	err := app.actorRepo.Delete(r.Context(), actorId)
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

func (app *Application) readActor(w http.ResponseWriter, r *http.Request) (*domain.Actor, bool) {
	var input api.ActorRequest

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

	return &domain.Actor{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}, true
}

func toApiActor(actor domain.Actor) api.Actor {
	return api.Actor{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}
