package integration_test

import "time"

const (
	TestUserId = 1

	TestTheatreName    = "Cinema City"
	TestTheatreAddress = "Main Street 1"
	TestTheatrePhone   = "+905551112233"
	TestTheatreEmail   = "info@cinemacity.com"

	fixtureUsers    = "users.sql"
	fixtureMovies   = "movies.sql"
	fixtureTheatres = "theatres.sql"
	fixtureShows    = "shows.sql"
	fixtureBookings = "bookings.sql"

	fixtureSeatlessBooking = "seatless_booking.sql"
)

var (
	// shows.sql schedules shows 1 and 2 two days ahead.
	upcomingShowDate = plusDays(2)
	futureShowDate   = plusDays(7)
	pastShowDate     = plusDays(-2)
)

func plusDays(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}
