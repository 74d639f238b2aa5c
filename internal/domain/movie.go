package domain

import (
	"context"
	"strings"
	"time"
)

// AllLocations is the location value that disables location filtering.
const AllLocations = "All Locations"

type Movie struct {
	ID          int
	Title       string
	Description string
	Language    string
	Genre       string
	Location    string
	PosterUrl   string
	ReleaseDate time.Time
	Duration    int
}

// MovieSortSafelist lists the sort keys the movie listing accepts.
var MovieSortSafelist = map[string]string{
	"id":           "id",
	"title":        "title",
	"release_date": "release_date",
}

type MovieFilters struct {
	Pagination
	// Term is a case-insensitive substring of the title.
	Term     string
	Location string
}

// LocationFilter returns the location to filter by, or an empty string when
// every location should be listed.
func (f MovieFilters) LocationFilter() string {
	location := strings.TrimSpace(f.Location)
	if strings.EqualFold(location, AllLocations) {
		return ""
	}

	return location
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
}
