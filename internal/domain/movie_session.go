package domain

import (
	"context"
	"time"
)

type MovieSession struct {
	ID         int
	ShowTime   time.Time
	Movie      Movie
	CinemaHall CinemaHall

	// TicketsAvailable is computed at read time from the hall capacity and
	// the number of tickets sold for the session.
	TicketsAvailable int
	TakenPlaces      []Place
}

type Place struct {
	Row  int
	Seat int
}

type MovieSessionFilters struct {
	Date     *time.Time
	MovieIDs []int
}

type MovieSessionRepository interface {
	GetAll(ctx context.Context, filters MovieSessionFilters) ([]*MovieSession, error)
	GetById(ctx context.Context, id int) (*MovieSession, error)
	Create(ctx context.Context, session *MovieSession) error
	Update(ctx context.Context, session *MovieSession) error
	Delete(ctx context.Context, id int) error
}
