package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinex-admin/api"
	"github.com/metinatakli/cinex-admin/internal/domain"
)

func (app *Application) GetTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := app.theatreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreListResponse{
		Theatres: make([]api.Theatre, len(theatres)),
	}

	for i, theatre := range theatres {
		resp.Theatres[i] = toApiTheatre(theatre)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheatre(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateTheatreRequest

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

	theatre := &domain.Theatre{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   string(input.Email),
	}

	err = app.theatreRepo.Create(r.Context(), theatre)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("theatre created", "theatre_id", theatre.ID)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/theatres/%d", theatre.ID))

	err = app.writeJSON(w, http.StatusCreated, toApiTheatre(*theatre), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatreById(w http.ResponseWriter, r *http.Request, theatreId int) {
	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	theatre, err := app.theatreRepo.GetById(r.Context(), theatreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTheatre(*theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTheatre(w http.ResponseWriter, r *http.Request, theatreId int) {
	logger := app.contextGetLogger(r)

	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	var input api.UpdateTheatreRequest

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

	theatre, err := app.theatreRepo.GetById(r.Context(), theatreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if theatre.Version != input.Version {
		logger.Warn("theatre update rejected: stale version", "theatre_id", theatreId,
			"current_version", theatre.Version, "given_version", input.Version)
		app.editConflictResponse(w, r)
		return
	}

	applyTheatreUpdate(theatre, input)

	err = app.theatreRepo.Update(r.Context(), theatre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTheatre(*theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func applyTheatreUpdate(theatre *domain.Theatre, input api.UpdateTheatreRequest) {
	if input.Name != nil {
		theatre.Name = *input.Name
	}
	if input.Address != nil {
		theatre.Address = *input.Address
	}
	if input.Phone != nil {
		theatre.Phone = *input.Phone
	}
	if input.Email != nil {
		theatre.Email = string(*input.Email)
	}
	if input.IsActive != nil {
		theatre.IsActive = *input.IsActive
	}
}

func (app *Application) DeleteTheatre(w http.ResponseWriter, r *http.Request, theatreId int) {
	if theatreId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theatre ID must be greater than zero"))
		return
	}

	err := app.theatreRepo.Delete(r.Context(), theatreId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTheatreHasShows):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiTheatre(theatre domain.Theatre) api.Theatre {
	return api.Theatre{
		Id:       theatre.ID,
		Name:     theatre.Name,
		Address:  theatre.Address,
		Phone:    theatre.Phone,
		Email:    theatre.Email,
		IsActive: theatre.IsActive,
		Version:  theatre.Version,
	}
}
