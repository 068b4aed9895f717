package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/enrollment"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/uploads"
)

const maxUploadBytes = 10 << 20

type EnrollmentHandler struct {
	service  *enrollment.Service
	uploads  *uploads.Storage
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewEnrollmentHandler(service *enrollment.Service, uploads *uploads.Storage, logger zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:  service,
		uploads:  uploads,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create handles the multipart enrollment request: message, subject, month,
// year, and the proof-of-payment image are all required.
func (h *EnrollmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	month, err := strconv.Atoi(r.FormValue("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Month must be a number")
		return
	}
	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Year must be a number")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Payment proof image is required")
		return
	}
	defer file.Close()

	imagePath, err := h.uploads.Save(file, header)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to store uploaded image")
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded image")
		return
	}

	req := enrollment.CreateRequest{
		Message:   r.FormValue("message"),
		Subject:   r.FormValue("subject"),
		Month:     month,
		Year:      year,
		ImagePath: imagePath,
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Message, subject, month, year, and image are required")
		return
	}

	created, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Enrollment request submitted",
		"enrollment": created,
	})
}

// List returns all enrollments with student and reviewer identity, newest
// first. Admin-only.
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	details, err := h.service.List(r.Context(), actor)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if details == nil {
		details = []models.EnrollmentDetail{}
	}
	writeJSON(w, http.StatusOK, details)
}

// UpdateStatus applies an admin approve/reject decision.
func (h *EnrollmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["enrollmentId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid enrollment ID")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := h.service.Decide(r.Context(), actor, id, models.EnrollmentStatus(body.Status))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Enrollment " + string(updated.Status),
		"enrollment": updated,
	})
}

// Update applies an admin edit of subject/month/year/message.
func (h *EnrollmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["enrollmentId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid enrollment ID")
		return
	}

	var req enrollment.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid enrollment fields")
		return
	}

	updated, err := h.service.Update(r.Context(), actor, id, req)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Enrollment updated",
		"enrollment": updated,
	})
}

// Delete hard-deletes an enrollment.
func (h *EnrollmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["enrollmentId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid enrollment ID")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Enrollment deleted"})
}

// PendingCount reports how many enrollments await a decision.
func (h *EnrollmentHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.PendingCount(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// ClearNotifications acknowledges a client-side notification clear. There
// is no persisted state behind it.
func (h *EnrollmentHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// serviceError maps service errors onto the response taxonomy. Unexpected
// failures are logged with their cause and answered with a generic message.
func (h *EnrollmentHandler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enrollment.ErrForbidden):
		writeError(w, http.StatusForbidden, "Admin privileges required")
	case errors.Is(err, enrollment.ErrNotFound):
		writeError(w, http.StatusNotFound, "Enrollment not found")
	case errors.Is(err, enrollment.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Status must be approved or rejected")
	case errors.Is(err, enrollment.ErrUnknownSubject):
		writeError(w, http.StatusBadRequest, "Unknown subject")
	case errors.Is(err, enrollment.ErrPastMonth):
		writeError(w, http.StatusBadRequest, "Cannot enroll for past months")
	default:
		h.logger.Error().Err(err).Msg("enrollment operation failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
