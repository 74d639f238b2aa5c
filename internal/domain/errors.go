package domain

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrEditConflict    = errors.New("edit conflict")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrShowHasBookings = errors.New("show has booked seats and cannot be deleted")
	ErrTheatreHasShows = errors.New("theatre has scheduled shows and cannot be deleted")
)
