package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/sessions"
)

type SessionHandler struct {
	service  *sessions.Service
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewSessionHandler(service *sessions.Service, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create schedules a session. Admin-only route; the roster is seeded with
// students whose enrollment for the subject and month is already approved.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req sessions.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Subject, date, and topic are required")
		return
	}

	created, err := h.service.Create(r.Context(), actor.ID, req)
	if err != nil {
		if errors.Is(err, sessions.ErrUnknownSubject) {
			writeError(w, http.StatusBadRequest, "Unknown subject")
			return
		}
		h.logger.Error().Err(err).Msg("session creation failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List returns every scheduled session, soonest first.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("session listing failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if list == nil {
		list = []models.Session{}
	}
	writeJSON(w, http.StatusOK, list)
}
