package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/oapi-codegen/runtime/types"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	resp, ok := app.cachedMovies(r.Context(), r, filters)
	if !ok {
		movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp = &api.MovieListResponse{
			Movies:   toMovieSummaries(movies),
			Metadata: toApiMetadata(metadata),
		}

		app.cacheMovies(r.Context(), r, filters, resp)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) movieCacheEnabled() bool {
	return app.redis != nil && app.config.Cache.MovieTTL > 0
}

// cachedMovies looks up a cached listing. Cache failures are logged and
// treated as a miss.
func (app *Application) cachedMovies(ctx context.Context, r *http.Request, filters domain.MovieFilters) (*api.MovieListResponse, bool) {
	if !app.movieCacheEnabled() {
		return nil, false
	}

	logger := app.contextGetLogger(r)

	data, err := app.redis.Get(ctx, movieCacheKey(filters)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("failed to read movie listing from cache", "error", err)
		}
		return nil, false
	}

	var resp api.MovieListResponse

	err = json.Unmarshal(data, &resp)
	if err != nil {
		logger.Warn("discarding malformed movie listing cache entry", "error", err)
		return nil, false
	}

	return &resp, true
}

func (app *Application) cacheMovies(ctx context.Context, r *http.Request, filters domain.MovieFilters, resp *api.MovieListResponse) {
	if !app.movieCacheEnabled() {
		return
	}

	logger := app.contextGetLogger(r)

	data, err := json.Marshal(resp)
	if err != nil {
		logger.Warn("failed to encode movie listing for cache", "error", err)
		return
	}

	err = app.redis.Set(ctx, movieCacheKey(filters), data, app.config.Cache.MovieTTL).Err()
	if err != nil {
		logger.Warn("failed to write movie listing to cache", "error", err)
	}
}

func movieCacheKey(filters domain.MovieFilters) string {
	return fmt.Sprintf("movies:%s:%s:%s:%d:%d",
		strings.ToLower(filters.LocationFilter()),
		strings.ToLower(strings.TrimSpace(filters.Term)),
		filters.Sort,
		filters.Page,
		filters.PageSize,
	)
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Pagination: domain.Pagination{
			Page:         DefaultPage,
			PageSize:     DefaultPageSize,
			Sort:         DefaultSort,
			SortSafelist: domain.MovieSortSafelist,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Location != nil {
		filters.Location = *params.Location
	}

	return filters
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, 0, len(movies))

	for _, movie := range movies {
		if movie == nil {
			continue
		}

		summaries = append(summaries, api.MovieSummary{
			Id:          movie.ID,
			Title:       movie.Title,
			Description: movie.Description,
			Genre:       movie.Genre,
			Language:    movie.Language,
			Location:    movie.Location,
			PosterUrl:   movie.PosterUrl,
			ReleaseDate: types.Date{Time: movie.ReleaseDate},
		})
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
