package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/service/scoring"
)

// scoringService defines the minimal interface needed by ScoringHandler.
type scoringService interface {
	Recommend(ctx context.Context, limit int) ([]scoring.Recommendation, error)
	FeedbackSentiment(ctx context.Context, eventID uuid.UUID) (scoring.FeedbackSummary, error)
	RegistrationTrend(ctx context.Context, eventID uuid.UUID) (scoring.TrendInfo, error)
}

// ScoringHandler serves recommendation and analytics REST endpoints.
type ScoringHandler struct {
	svc scoringService
	log *slog.Logger
}

// NewScoringHandler creates a ScoringHandler.
func NewScoringHandler(svc scoringService, logger *slog.Logger) *ScoringHandler {
	return &ScoringHandler{svc: svc, log: logger.With("handler", "scoring")}
}

type recommendationResponse struct {
	Event  eventResponse `json:"event"`
	Score  float64       `json:"score"`
	Reason string        `json:"reason"`
}

// Recommendations handles GET /recommendations?limit=N.
func (h *ScoringHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)

	recs, err := h.svc.Recommend(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]recommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recommendationResponse{
			Event:  toEventResponse(rec.Event),
			Score:  rec.Score,
			Reason: rec.Reason,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendations": out})
}

type feedbackSummaryResponse struct {
	EventID       string   `json:"eventId"`
	RatingCount   int      `json:"ratingCount"`
	AverageRating float64  `json:"averageRating"`
	Sentiment     string   `json:"sentiment"`
	KeyTopics     []string `json:"keyTopics"`
	Summary       string   `json:"summary"`
	Suggestions   []string `json:"suggestions"`
}

// FeedbackSummary handles GET /events/{eventID}/feedback-summary.
func (h *ScoringHandler) FeedbackSummary(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	summary, err := h.svc.FeedbackSentiment(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackSummaryResponse{
		EventID:       summary.EventID.String(),
		RatingCount:   summary.RatingCount,
		AverageRating: summary.AverageRating,
		Sentiment:     summary.Sentiment.String(),
		KeyTopics:     summary.KeyTopics,
		Summary:       summary.Summary,
		Suggestions:   summary.Suggestions,
	})
}

type trendResponse struct {
	EventID   string `json:"eventId"`
	Direction string `json:"direction"`
	Series    []int  `json:"series"`
}

// Trend handles GET /events/{eventID}/trend.
func (h *ScoringHandler) Trend(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	info, err := h.svc.RegistrationTrend(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, trendResponse{
		EventID:   info.EventID.String(),
		Direction: info.Direction.String(),
		Series:    info.Series,
	})
}
