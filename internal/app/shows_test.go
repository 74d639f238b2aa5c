package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/metinatakli/cinex-admin/internal/mocks"
	"github.com/metinatakli/cinex-admin/internal/validator"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShowsTestSuite struct {
	suite.Suite
	app         *Application
	showRepo    *mocks.MockShowRepo
	theatreRepo *mocks.MockTheatreRepo
}

func (s *ShowsTestSuite) SetupTest() {
	s.showRepo = new(mocks.MockShowRepo)
	s.theatreRepo = new(mocks.MockTheatreRepo)
	s.app = newTestApplication(func(a *Application) {
		a.showRepo = s.showRepo
		a.theatreRepo = s.theatreRepo
	})
}

func TestShowsSuite(t *testing.T) {
	suite.Run(t, new(ShowsTestSuite))
}

func (s *ShowsTestSuite) TestGetShowsByTheatre() {
	showDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	theatre := testTheatre()

	tests := []struct {
		name           string
		theatreId      int
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ShowListResponse
	}{
		{
			name:           "invalid theatre id",
			theatreId:      -1,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "theatre ID must be greater than zero",
		},
		{
			name:      "theatre not found",
			theatreId: 99,
			setupMock: func() {
				s.theatreRepo.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)
				s.showRepo.On("GetAllByTheatre", mock.Anything, 99).Return([]domain.Show{}, nil).Maybe()
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:      "database error",
			theatreId: 1,
			setupMock: func() {
				s.theatreRepo.On("GetById", mock.Anything, 1).Return(&theatre, nil).Maybe()
				s.showRepo.On("GetAllByTheatre", mock.Anything, 1).Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:      "rows expose seat availability",
			theatreId: 1,
			setupMock: func() {
				s.theatreRepo.On("GetById", mock.Anything, 1).Return(&theatre, nil)
				s.showRepo.On("GetAllByTheatre", mock.Anything, 1).Return([]domain.Show{
					{
						ID:          10,
						Name:        "Matinee",
						TheatreID:   1,
						Movie:       &domain.Movie{ID: 3, Title: "Dune"},
						Date:        showDate,
						Time:        "14:00",
						TicketPrice: decimal.RequireFromString("9.50"),
						TotalSeats:  100,
						BookedSeats: []string{"A1", "A2"},
					},
					{
						ID:          11,
						Name:        "Late",
						TheatreID:   1,
						Date:        showDate,
						Time:        "23:15",
						TicketPrice: decimal.RequireFromString("7"),
						TotalSeats:  50,
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowListResponse{
				Shows: []api.Show{
					{
						Id:             10,
						Name:           "Matinee",
						Movie:          &api.ShowMovie{Id: 3, Title: "Dune"},
						Date:           types.Date{Time: showDate},
						Time:           "14:00",
						TicketPrice:    decimal.RequireFromString("9.50"),
						TotalSeats:     100,
						BookedSeats:    []string{"A1", "A2"},
						AvailableSeats: 98,
						Deletable:      false,
					},
					{
						Id:             11,
						Name:           "Late",
						Date:           types.Date{Time: showDate},
						Time:           "23:15",
						TicketPrice:    decimal.RequireFromString("7"),
						TotalSeats:     50,
						BookedSeats:    []string{},
						AvailableSeats: 50,
						Deletable:      true,
					},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.showRepo.AssertExpectations(s.T())
			defer s.theatreRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, fmt.Sprintf("/theatres/%d/shows", tt.theatreId), nil)
			s.app.GetShowsByTheatre(w, r, tt.theatreId)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.ShowListResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ShowsTestSuite) TestCreateShow() {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	showDate := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	validInput := func() api.CreateShowRequest {
		return api.CreateShowRequest{
			Name:        "Evening",
			MovieId:     3,
			Date:        types.Date{Time: showDate},
			Time:        "19:30",
			TicketPrice: decimal.RequireFromString("12.50"),
			TotalSeats:  120,
		}
	}

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.Show
	}{
		{
			name: "date in the past",
			body: func() api.CreateShowRequest {
				in := validInput()
				in.Date = types.Date{Time: showDate.AddDate(0, 0, -3)}
				return in
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrPastDate,
		},
		{
			name: "invalid time",
			body: func() api.CreateShowRequest {
				in := validInput()
				in.Time = "7pm"
				return in
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrShowTime,
		},
		{
			name: "negative price",
			body: func() api.CreateShowRequest {
				in := validInput()
				in.TicketPrice = decimal.RequireFromString("-1")
				return in
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrPositivePrice,
		},
		{
			name: "movie not found",
			body: validInput(),
			setupMock: func() {
				s.showRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Show")).Return(domain.ErrMovieNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrMovieNotFound.Error(),
		},
		{
			name: "theatre not found",
			body: validInput(),
			setupMock: func() {
				s.showRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Show")).Return(domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "successful creation",
			body: validInput(),
			setupMock: func() {
				s.showRepo.On("Create", mock.Anything, mock.MatchedBy(func(show *domain.Show) bool {
					return show.TheatreID == 1 &&
						show.Movie != nil && show.Movie.ID == 3 &&
						show.TicketPrice.Equal(decimal.RequireFromString("12.5")) &&
						show.Time == "19:30" &&
						show.Date.Equal(showDate)
				})).Run(func(args mock.Arguments) {
					show := args.Get(1).(*domain.Show)
					show.ID = 77
					show.Movie.Title = "Dune"
					show.BookedSeats = []string{}
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.Show{
				Id:             77,
				Name:           "Evening",
				Movie:          &api.ShowMovie{Id: 3, Title: "Dune"},
				Date:           types.Date{Time: showDate},
				Time:           "19:30",
				TicketPrice:    decimal.RequireFromString("12.50"),
				TotalSeats:     120,
				BookedSeats:    []string{},
				AvailableSeats: 120,
				Deletable:      true,
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.showRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/theatres/1/shows", tt.body)
			s.app.CreateShow(w, r, 1)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.Show
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ShowsTestSuite) TestDeleteShow() {
	tests := []struct {
		name           string
		showId         int
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "invalid id",
			showId:         0,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "show ID must be greater than zero",
		},
		{
			name:   "not found",
			showId: 5,
			setupMock: func() {
				s.showRepo.On("Delete", mock.Anything, 5).Return(domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:   "has bookings",
			showId: 5,
			setupMock: func() {
				s.showRepo.On("Delete", mock.Anything, 5).Return(domain.ErrShowHasBookings)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrShowHasBookings.Error(),
		},
		{
			name:   "deleted",
			showId: 5,
			setupMock: func() {
				s.showRepo.On("Delete", mock.Anything, 5).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.showRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodDelete, fmt.Sprintf("/shows/%d", tt.showId), nil)
			s.app.DeleteShow(w, r, tt.showId)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
