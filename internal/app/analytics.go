package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/analytics"
	"github.com/metinatakli/cinex-admin/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

func (app *Application) GetTheatreAnalytics(w http.ResponseWriter, r *http.Request, theatreId int) {
	logger := app.contextGetLogger(r)

	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	theatre, shows, err := app.fetchTheatreShows(r.Context(), theatreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	summary := analytics.Summarize(shows)
	movieRevenue := analytics.ByMovieRevenue(shows)

	app.metrics.showsAggregated.Record(r.Context(), int64(summary.ShowCount),
		metric.WithAttributes(attribute.Int("theatre.id", theatreId)))

	logger.Debug("theatre analytics computed", "theatre_id", theatreId, "shows", summary.ShowCount)

	resp := api.TheatreAnalyticsResponse{
		TheatreId:    theatre.ID,
		TheatreName:  theatre.Name,
		Summary:      toApiTheatreSummary(summary),
		Series:       toApiSeries(summary.Series()),
		MovieRevenue: toApiMovieRevenue(movieRevenue),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// fetchTheatreShows loads a theatre and its shows in parallel. A missing
// theatre yields domain.ErrRecordNotFound.
func (app *Application) fetchTheatreShows(ctx context.Context, theatreId int) (*domain.Theatre, []domain.Show, error) {
	var (
		theatre *domain.Theatre
		shows   []domain.Show
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		theatre, err = app.theatreRepo.GetById(ctx, theatreId)
		return err
	})

	g.Go(func() error {
		var err error
		shows, err = app.showRepo.GetAllByTheatre(ctx, theatreId)
		return err
	})

	err := g.Wait()
	if err != nil {
		return nil, nil, err
	}

	return theatre, shows, nil
}

func toApiTheatreSummary(summary analytics.Summary) api.TheatreSummary {
	return api.TheatreSummary{
		TotalTickets:        summary.TotalTickets,
		TotalRevenue:        summary.TotalRevenue,
		AverageTicketPrice:  summary.AverageTicketPrice,
		AverageSeatsPerShow: summary.AverageSeatsPerShow,
		ShowCount:           summary.ShowCount,
	}
}

func toApiSeries(points []analytics.Point) []api.ChartPoint {
	series := make([]api.ChartPoint, len(points))

	for i, p := range points {
		series[i] = api.ChartPoint{
			Name:  p.Name,
			Value: p.Value,
		}
	}

	return series
}

func toApiMovieRevenue(revenue []analytics.MovieRevenue) []api.MovieRevenue {
	result := make([]api.MovieRevenue, len(revenue))

	for i, mr := range revenue {
		result[i] = api.MovieRevenue{
			Title:          mr.Title,
			Revenue:        mr.Revenue,
			GroupedByTitle: mr.GroupedByTitle,
		}

		if !mr.GroupedByTitle {
			movieID := mr.MovieID
			result[i].MovieId = &movieID
		}
	}

	return result
}
