package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/internal/service/event"
)

// dateLayout is the wire format for event dates.
const dateLayout = "2006-01-02"

// eventService defines the minimal interface needed by EventHandler.
type eventService interface {
	Create(ctx context.Context, in event.CreateEventInput) (domain.Event, error)
	Update(ctx context.Context, in event.UpdateEventInput) (domain.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	Get(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	List(ctx context.Context, in event.ListEventsInput) ([]domain.Event, error)
}

// EventHandler serves event lifecycle REST endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Venue       string `json:"venue"`
	Society     string `json:"society"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	Venue       string    `json:"venue"`
	Society     string    `json:"society"`
	Category    string    `json:"category"`
	Capacity    int       `json:"capacity"`
	Registered  int       `json:"registered"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
		StartTime:   e.StartTime,
		Venue:       e.Venue,
		Society:     e.Society.String(),
		Category:    e.Category.String(),
		Capacity:    e.Capacity,
		Registered:  len(e.Roster),
		OwnerID:     e.OwnerID.String(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	created, err := h.svc.Create(r.Context(), event.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		Venue:       req.Venue,
		Society:     domain.Society(req.Society),
		Category:    domain.Category(req.Category),
		Capacity:    req.Capacity,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(created))
}

// Update handles PUT /events/{eventID}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	updated, err := h.svc.Update(r.Context(), event.UpdateEventInput{
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		Venue:       req.Venue,
		Society:     domain.Society(req.Society),
		Category:    domain.Category(req.Category),
		Capacity:    req.Capacity,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

// Delete handles DELETE /events/{eventID}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), eventID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /events/{eventID}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// List handles GET /events with optional query filters:
// society, category, owner, search, from, to, sortBy, sortOrder,
// limit, offset.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := event.ListEventsInput{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}

	if v := q.Get("society"); v != "" {
		s := domain.Society(v)
		in.Society = &s
	}
	if v := q.Get("category"); v != "" {
		c := domain.Category(v)
		in.Category = &c
	}
	if v := q.Get("owner"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner")
			return
		}
		in.OwnerID = &id
	}
	if v := q.Get("search"); v != "" {
		in.Search = &v
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		in.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		in.To = &t
	}

	events, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": toEventResponses(events)})
}
