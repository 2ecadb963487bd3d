package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/service/registration"
)

// registrationService defines the minimal interface needed by
// RegistrationHandler.
type registrationService interface {
	Register(ctx context.Context, input registration.RegisterInput) error
	Unregister(ctx context.Context, input registration.UnregisterInput) error
	GetStatus(ctx context.Context, eventID uuid.UUID) (registration.Status, error)
	GetCapacity(ctx context.Context, eventID uuid.UUID) (registration.CapacityInfo, error)
	SubmitFeedback(ctx context.Context, input registration.SubmitFeedbackInput) error
	SetAttendance(ctx context.Context, input registration.SetAttendanceInput) error
}

// RegistrationHandler serves registration REST endpoints.
type RegistrationHandler struct {
	svc registrationService
	log *slog.Logger
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(svc registrationService, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, log: logger.With("handler", "registration")}
}

// Register handles POST /events/{eventID}/registrations.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := h.svc.Register(r.Context(), registration.RegisterInput{EventID: eventID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Unregister handles DELETE /events/{eventID}/registrations.
// Withdrawing when not registered still returns 204.
func (h *RegistrationHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := h.svc.Unregister(r.Context(), registration.UnregisterInput{EventID: eventID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type statusResponse struct {
	EventID      string     `json:"eventId"`
	Registered   bool       `json:"registered"`
	RegisteredAt *time.Time `json:"registeredAt,omitempty"`
	Attended     bool       `json:"attended,omitempty"`
}

// Status handles GET /events/{eventID}/registrations/me.
func (h *RegistrationHandler) Status(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	st, err := h.svc.GetStatus(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := statusResponse{
		EventID:    st.EventID.String(),
		Registered: st.Registered,
	}
	if st.Registration != nil {
		resp.RegisteredAt = &st.Registration.RegisteredAt
		resp.Attended = st.Registration.Attended
	}

	writeJSON(w, http.StatusOK, resp)
}

type capacityResponse struct {
	EventID    string `json:"eventId"`
	Capacity   int    `json:"capacity"`
	Registered int    `json:"registered"`
	Available  int    `json:"available"`
	Percentage int    `json:"percentage"`
}

// Capacity handles GET /events/{eventID}/capacity.
func (h *RegistrationHandler) Capacity(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	info, err := h.svc.GetCapacity(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, capacityResponse{
		EventID:    info.EventID.String(),
		Capacity:   info.Capacity,
		Registered: info.Registered,
		Available:  info.Available,
		Percentage: info.Percentage,
	})
}

type feedbackRequest struct {
	Rating   int     `json:"rating"`
	Feedback *string `json:"feedback,omitempty"`
}

// SubmitFeedback handles POST /events/{eventID}/feedback.
func (h *RegistrationHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.SubmitFeedback(r.Context(), registration.SubmitFeedbackInput{
		EventID:  eventID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type attendanceRequest struct {
	UserID   string `json:"userId"`
	Attended bool   `json:"attended"`
}

// SetAttendance handles PUT /events/{eventID}/attendance.
// Owner-only; marks one registrant's attendance.
func (h *RegistrationHandler) SetAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	err = h.svc.SetAttendance(r.Context(), registration.SetAttendanceInput{
		EventID:  eventID,
		UserID:   userID,
		Attended: req.Attended,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
