// Package analytics folds the shows of a theatre into the figures shown on the
// theatre dashboard. Every function here is pure: inputs are never mutated and
// the same input always yields the same output.
package analytics

import (
	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures of a theatre. AverageTicketPrice is
// revenue per ticket sold and AverageSeatsPerShow is seat capacity per show.
type Summary struct {
	TotalTickets        int
	TotalRevenue        decimal.Decimal
	AverageTicketPrice  decimal.Decimal
	AverageSeatsPerShow decimal.Decimal
	ShowCount           int
}

// MovieRevenue is the revenue of one movie across a set of shows. MovieID is
// zero and GroupedByTitle is set when the shows carried no movie identifier
// and the title was used as the grouping key instead.
type MovieRevenue struct {
	MovieID        int
	Title          string
	Revenue        decimal.Decimal
	GroupedByTitle bool
}

// Summarize computes the theatre summary in a single pass over shows.
// Averages over an empty denominator are zero.
func Summarize(shows []domain.Show) Summary {
	summary := Summary{
		TotalRevenue:        decimal.Zero,
		AverageTicketPrice:  decimal.Zero,
		AverageSeatsPerShow: decimal.Zero,
		ShowCount:           len(shows),
	}

	var totalSeats int64

	for _, show := range shows {
		summary.TotalTickets += show.TicketsSold()
		summary.TotalRevenue = summary.TotalRevenue.Add(show.Revenue())
		totalSeats += int64(show.TotalSeats)
	}

	if summary.TotalTickets > 0 {
		summary.AverageTicketPrice = summary.TotalRevenue.Div(decimal.NewFromInt(int64(summary.TotalTickets)))
	}

	if summary.ShowCount > 0 {
		summary.AverageSeatsPerShow = decimal.NewFromInt(totalSeats).Div(decimal.NewFromInt(int64(summary.ShowCount)))
	}

	return summary
}

type groupKey struct {
	id    int
	title string
}

// ByMovieRevenue groups the revenue of shows by movie, in the order each movie
// is first seen. Shows without a resolvable movie are skipped. Two movies with
// different IDs but the same title produce two entries.
func ByMovieRevenue(shows []domain.Show) []MovieRevenue {
	index := make(map[groupKey]int)
	result := make([]MovieRevenue, 0)

	for _, show := range shows {
		key, ok := movieKey(show.Movie)
		if !ok {
			continue
		}

		i, seen := index[key]
		if !seen {
			i = len(result)
			index[key] = i

			result = append(result, MovieRevenue{
				MovieID:        key.id,
				Title:          show.Movie.Title,
				Revenue:        decimal.Zero,
				GroupedByTitle: key.id == 0,
			})
		}

		result[i].Revenue = result[i].Revenue.Add(show.Revenue())
	}

	return result
}

func movieKey(movie *domain.Movie) (groupKey, bool) {
	switch {
	case movie == nil:
		return groupKey{}, false
	case movie.ID != 0:
		return groupKey{id: movie.ID}, true
	case movie.Title != "":
		return groupKey{title: movie.Title}, true
	default:
		return groupKey{}, false
	}
}
