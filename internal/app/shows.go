package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetShowsByTheatre(w http.ResponseWriter, r *http.Request, theatreId int) {
	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	_, shows, err := app.fetchTheatreShows(r.Context(), theatreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.ShowListResponse{
		Shows: make([]api.Show, len(shows)),
	}

	for i, show := range shows {
		resp.Shows[i] = toApiShow(show)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request, theatreId int) {
	logger := app.contextGetLogger(r)

	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	var input api.CreateShowRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show := &domain.Show{
		Name:        input.Name,
		TheatreID:   theatreId,
		Movie:       &domain.Movie{ID: input.MovieId},
		Date:        input.Date.Time,
		Time:        input.Time,
		TicketPrice: input.TicketPrice,
		TotalSeats:  input.TotalSeats,
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrMovieNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Info("show created", "show_id", show.ID, "theatre_id", theatreId, "movie_id", input.MovieId)

	err = app.writeJSON(w, http.StatusCreated, toApiShow(*show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShow(w http.ResponseWriter, r *http.Request, showId int) {
	logger := app.contextGetLogger(r)

	if showId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("show ID must be greater than zero"))
		return
	}

	err := app.showRepo.Delete(r.Context(), showId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowHasBookings):
			logger.Warn("show deletion rejected: seats already booked", "show_id", showId)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiShow(show domain.Show) api.Show {
	bookedSeats := show.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	apiShow := api.Show{
		Id:             show.ID,
		Name:           show.Name,
		Date:           types.Date{Time: show.Date},
		Time:           show.Time,
		TicketPrice:    show.TicketPrice,
		TotalSeats:     show.TotalSeats,
		BookedSeats:    bookedSeats,
		AvailableSeats: show.AvailableSeats(),
		Deletable:      show.Deletable(),
	}

	if show.Movie != nil {
		apiShow.Movie = &api.ShowMovie{
			Id:    show.Movie.ID,
			Title: show.Movie.Title,
		}
	}

	return apiShow
}
