package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/pixology/backend/internal/buildinfo"
	"github.com/pixology/backend/internal/user/usecase"
)

// invalidCredentialsMsg is the single body for every login failure,
// so responses cannot be used to probe which emails are registered.
const invalidCredentialsMsg = "Invalid credentials"

type handler struct {
	uc usecase.AccountUseCase
	bi buildinfo.BuildInfo
}

func newHandler(uc usecase.AccountUseCase, bi buildinfo.BuildInfo) handler {
	return handler{uc: uc, bi: bi}
}

type registerRequest struct {
	// blank fields skip the format checks here and fall through to the
	// usecase, which reports the required fields in order
	Username string `json:"username" validate:"omitempty,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,max=128"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validate.Struct(req); err != nil {
		renderError(w, r, http.StatusBadRequest, validatorErrorText(err))
		return
	}

	account, err := h.uc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var vErr usecase.ValidationError
		if errors.As(err, &vErr) {
			renderError(w, r, http.StatusBadRequest, vErr.Error())
			return
		}
		var cErr usecase.ConflictError
		if errors.As(err, &cErr) {
			renderError(w, r, http.StatusConflict, cErr.Error())
			return
		}
		renderError(w, r, http.StatusInternalServerError, "failed to register")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, account.Public())
}

func (h handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	account, err := h.uc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			renderError(w, r, http.StatusUnauthorized, invalidCredentialsMsg)
			return
		}
		renderError(w, r, http.StatusInternalServerError, "failed to login")
		return
	}

	render.JSON(w, r, account.Public())
}

func (h handler) buildInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.bi)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}
