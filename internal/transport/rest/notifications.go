package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/service/notification"
)

// notificationService defines the minimal interface needed by
// NotificationHandler.
type notificationService interface {
	Broadcast(ctx context.Context, in notification.BroadcastInput) (int, error)
	List(ctx context.Context, limit, offset int) (notification.Inbox, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationHandler serves notification REST endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type broadcastRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Broadcast handles POST /events/{eventID}/broadcast.
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sent, err := h.svc.Broadcast(r.Context(), notification.BroadcastInput{
		EventID: eventID,
		Title:   req.Title,
		Body:    req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"recipients": sent})
}

type notificationResponse struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	EventID *string   `json:"eventId,omitempty"`
	SentAt  time.Time `json:"sentAt"`
	Read    bool      `json:"read"`
}

// List handles GET /notifications?limit=N&offset=M.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	inbox, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]notificationResponse, 0, len(inbox.Notifications))
	for _, n := range inbox.Notifications {
		resp := notificationResponse{
			ID:     n.ID.String(),
			Title:  n.Title,
			Body:   n.Body,
			SentAt: n.SentAt,
			Read:   n.Read,
		}
		if n.EventID != nil {
			s := n.EventID.String()
			resp.EventID = &s
		}
		out = append(out, resp)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": out,
		"unread":        inbox.Unread,
	})
}

// MarkRead handles POST /notifications/{notificationID}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathUUID(w, r, "notificationID")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(r.Context(), notificationID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
