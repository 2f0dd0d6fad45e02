package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Order struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID           int
	Row          int
	Seat         int
	MovieSession MovieSession
}

// TicketValidationError reports a ticket that cannot be placed in the hall
// of its movie session.
type TicketValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *TicketValidationError) Error() string {
	return fmt.Sprintf("ticket %d: %s: %s", e.Index, e.Field, e.Message)
}

// ValidateTicket checks that row and seat fall inside the hall, row first.
func ValidateTicket(row, seat int, hall CinemaHall) error {
	checks := []struct {
		value int
		field string
		bound string
		max   int
	}{
		{row, "row", "rows", hall.Rows},
		{seat, "seat", "seatsInRow", hall.SeatsInRow},
	}

	for _, c := range checks {
		if c.value < 1 || c.value > c.max {
			return &TicketValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("%s number must be in available range: (1, %s): (1, %d)", c.field, c.bound, c.max),
			}
		}
	}

	return nil
}

// ValidateTickets runs ValidateTicket for every ticket of the order. halls
// maps a movie session id to the hall the session takes place in.
func (o *Order) ValidateTickets(halls map[int]CinemaHall) error {
	if len(o.Tickets) == 0 {
		return ErrEmptyOrder
	}

	for i, ticket := range o.Tickets {
		hall, ok := halls[ticket.MovieSession.ID]
		if !ok {
			return &TicketValidationError{
				Index:   i,
				Field:   "movieSession",
				Message: "invalid movie session id",
			}
		}

		err := ValidateTicket(ticket.Row, ticket.Seat, hall)
		if err != nil {
			var tErr *TicketValidationError
			if errors.As(err, &tErr) {
				tErr.Index = i
			}

			return err
		}
	}

	return nil
}

// MovieSessionIDs returns the distinct session ids referenced by the tickets.
func (o *Order) MovieSessionIDs() []int {
	seen := make(map[int]struct{}, len(o.Tickets))
	ids := make([]int, 0, len(o.Tickets))

	for _, ticket := range o.Tickets {
		if _, ok := seen[ticket.MovieSession.ID]; ok {
			continue
		}

		seen[ticket.MovieSession.ID] = struct{}{}
		ids = append(ids, ticket.MovieSession.ID)
	}

	return ids
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]*Order, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userId int) (*Order, error)
}
