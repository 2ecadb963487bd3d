package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Recommendation is one scored candidate event.
type Recommendation struct {
	Event  domain.Event
	Score  float64
	Reason string
}

// Recommend scores upcoming events against the current user's
// registration history. Events the user already joined, past events
// and candidates scoring at or below the floor are dropped; survivors
// come back sorted by score descending, truncated to limit.
func (s *Service) Recommend(ctx context.Context, limit int) ([]Recommendation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	history, err := s.registrations.EventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	now := s.now()
	candidates, err := s.events.ListUpcoming(ctx, truncateDay(now))
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	joined := make(map[uuid.UUID]struct{}, len(history))
	for _, e := range history {
		joined[e.ID] = struct{}{}
	}

	catAff := categoryAffinity(history)
	socAff := societyAffinity(history)

	recs := []Recommendation{}
	for _, e := range candidates {
		if _, ok := joined[e.ID]; ok {
			continue
		}
		if e.HasMember(userID) || e.IsPast(now) {
			continue
		}

		score, reason := scoreEvent(s.cfg, e, catAff, socAff)
		if score <= s.cfg.MinScore {
			continue
		}
		recs = append(recs, Recommendation{Event: e, Score: round2(score), Reason: reason})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}
