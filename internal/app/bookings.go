package app

import (
	"net/http"
	"time"

	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	app.requireAuthentication(http.HandlerFunc(app.getBookingsOfUser)).ServeHTTP(w, r)
}

func (app *Application) getBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookings, err := app.bookingRepo.GetAllByUser(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		All:    toApiBookings(bookings),
		Recent: toApiBookings(domain.RecentBookings(bookings, time.Now())),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBookings(bookings []domain.Booking) []api.Booking {
	result := make([]api.Booking, len(bookings))

	for i, b := range bookings {
		result[i] = api.Booking{
			Id:             b.ID,
			Reference:      b.Reference,
			CreatedAt:      b.CreatedAt,
			Seats:          b.Seats,
			Amount:         b.Amount(),
			ShowDate:       types.Date{Time: b.Show.Date},
			ShowTime:       b.Show.Time,
			TheatreName:    b.Theatre.Name,
			TheatreAddress: b.Theatre.Address,
		}

		if b.Show.Movie != nil {
			result[i].MovieTitle = b.Show.Movie.Title
			result[i].MovieLanguage = b.Show.Movie.Language
			result[i].MoviePosterUrl = b.Show.Movie.PosterUrl
		}

		if result[i].Seats == nil {
			result[i].Seats = []string{}
		}
	}

	return result
}
