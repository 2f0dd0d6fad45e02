package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking-api/api"
	"github.com/metinatakli/cinema-booking-api/internal/domain"
)

const DefaultOrdersPageSize = 3

func (app *Application) GetOrders(w http.ResponseWriter, r *http.Request, params api.GetOrdersParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     1,
		PageSize: app.config.OrdersPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}

	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	orders, metadata, err := app.orderRepo.GetAllByUserId(r.Context(), app.contextGetUserId(r), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.OrderListResponse{
		Orders: make([]api.Order, len(orders)),
	}

	for i, order := range orders {
		resp.Orders[i] = toApiOrder(order)
	}

	if metadata != nil {
		resp.Metadata = api.Metadata{
			CurrentPage:  metadata.CurrentPage,
			FirstPage:    metadata.FirstPage,
			LastPage:     metadata.LastPage,
			PageSize:     metadata.PageSize,
			TotalRecords: metadata.TotalRecords,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrderById(w http.ResponseWriter, r *http.Request, orderId int) {
	order, err := app.orderRepo.GetByIdAndUserId(r.Context(), orderId, app.contextGetUserId(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiOrder(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateOrder stores the order and all of its tickets in a single
// transaction. Nothing is stored when any ticket is rejected.
func (app *Application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateOrderRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.metrics.orderRejected(r.Context(), "validation")
		app.failedValidationResponse(w, r, err)
		return
	}

	order := &domain.Order{
		UserID:  app.contextGetUserId(r),
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}

	for i, ticket := range input.Tickets {
		order.Tickets[i] = domain.Ticket{
			Row:          ticket.Row,
			Seat:         ticket.Seat,
			MovieSession: domain.MovieSession{ID: ticket.MovieSession},
		}
	}

	err = app.orderRepo.Create(r.Context(), order)
	if err != nil {
		var ticketErr *domain.TicketValidationError

		switch {
		case errors.As(err, &ticketErr), errors.Is(err, domain.ErrEmptyOrder):
			app.metrics.orderRejected(r.Context(), "validation")
			app.failedValidationResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			app.metrics.orderRejected(r.Context(), "seat_taken")
			app.conflictResponse(w, r, err)
		default:
			logger.Error("failed to create order", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.orderCreated(r.Context(), len(order.Tickets))
	logger.Info("order created", "order_id", order.ID, "tickets", len(order.Tickets))

	go app.sendOrderConfirmation(context.WithoutCancel(r.Context()), r, order)

	err = app.writeJSON(w, http.StatusCreated, toApiOrder(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type confirmationTicket struct {
	MovieTitle     string
	ShowTime       string
	CinemaHallName string
	Row            int
	Seat           int
}

func (app *Application) sendOrderConfirmation(ctx context.Context, r *http.Request, order *domain.Order) {
	logger := app.contextGetLogger(r.WithContext(ctx))

	defer func() {
		if err := recover(); err != nil {
			logger.Error("panic occurred during sending order confirmation", "panic", err)
		}
	}()

	user, err := app.userRepo.GetById(ctx, order.UserID)
	if err != nil {
		logger.Error("failed to load user for order confirmation", "error", err)
		return
	}

	tickets := make([]confirmationTicket, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = confirmationTicket{
			MovieTitle:     ticket.MovieSession.Movie.Title,
			ShowTime:       ticket.MovieSession.ShowTime.Format(time.DateTime),
			CinemaHallName: ticket.MovieSession.CinemaHall.Name,
			Row:            ticket.Row,
			Seat:           ticket.Seat,
		}
	}

	data := map[string]any{
		"firstName": user.FirstName,
		"orderID":   order.ID,
		"tickets":   tickets,
	}

	err = app.mailer.Send(user.Email, "order_confirmation.tmpl", data)
	if err != nil {
		logger.Error("failed to send order confirmation", "error", err)
	} else {
		logger.Info("order confirmation sent", "order_id", order.ID)
	}
}

func toApiOrder(order *domain.Order) api.Order {
	resp := api.Order{
		Id:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]api.Ticket, len(order.Tickets)),
	}

	for i, ticket := range order.Tickets {
		session := ticket.MovieSession

		resp.Tickets[i] = api.Ticket{
			Id:   ticket.ID,
			Row:  ticket.Row,
			Seat: ticket.Seat,
			MovieSession: api.MovieSessionSummary{
				Id:                 session.ID,
				ShowTime:           session.ShowTime,
				MovieTitle:         session.Movie.Title,
				CinemaHallName:     session.CinemaHall.Name,
				CinemaHallCapacity: session.CinemaHall.Capacity(),
			},
		}
	}

	return resp
}
