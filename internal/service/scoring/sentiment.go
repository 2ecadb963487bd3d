package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// FeedbackSummary aggregates the ratings and comments left on one
// event's registrations.
type FeedbackSummary struct {
	EventID       uuid.UUID
	RatingCount   int
	AverageRating float64 // one decimal place
	Sentiment     domain.Sentiment
	KeyTopics     []string
	Summary       string
	Suggestions   []string
}

// FeedbackSentiment summarizes all ratings and free-text feedback for
// an event. With no ratings it returns a neutral default with empty
// topic and suggestion lists.
func (s *Service) FeedbackSentiment(ctx context.Context, eventID uuid.UUID) (FeedbackSummary, error) {
	if eventID == uuid.Nil {
		return FeedbackSummary{}, domain.NewValidationError("event_id", "required")
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return FeedbackSummary{}, fmt.Errorf("load event: %w", err)
	}

	regs, err := s.registrations.ListByEvent(ctx, eventID)
	if err != nil {
		return FeedbackSummary{}, fmt.Errorf("load registrations: %w", err)
	}

	var (
		sum      int
		count    int
		comments []string
	)
	for _, reg := range regs {
		if !reg.HasRating() {
			continue
		}
		sum += *reg.Rating
		count++
		if reg.Feedback != nil {
			comments = append(comments, *reg.Feedback)
		}
	}

	if count == 0 {
		return FeedbackSummary{
			EventID:     eventID,
			Sentiment:   domain.SentimentNeutral,
			KeyTopics:   []string{},
			Summary:     "no feedback yet",
			Suggestions: []string{},
		}, nil
	}

	avg := round1(float64(sum) / float64(count))
	sentiment := classifySentiment(float64(sum) / float64(count))
	topics, suggestions := matchVocabulary(comments, sentiment)

	return FeedbackSummary{
		EventID:       eventID,
		RatingCount:   count,
		AverageRating: avg,
		Sentiment:     sentiment,
		KeyTopics:     topics,
		Summary:       fmt.Sprintf("%d ratings, average %.1f (%s)", count, avg, sentiment),
		Suggestions:   suggestions,
	}, nil
}

// classifySentiment buckets the raw (unrounded) mean rating.
func classifySentiment(mean float64) domain.Sentiment {
	switch {
	case mean >= 4:
		return domain.SentimentPositive
	case mean >= 3:
		return domain.SentimentNeutral
	default:
		return domain.SentimentNegative
	}
}

// matchVocabulary scans the concatenated comments for vocabulary terms
// and derives key topics plus suggestions. Suggestions are only raised
// when sentiment is not positive, so praise-heavy feedback does not
// generate busywork.
func matchVocabulary(comments []string, sentiment domain.Sentiment) ([]string, []string) {
	text := strings.ToLower(strings.Join(comments, " "))

	topics := []string{}
	suggestions := []string{}
	seenSuggestion := map[string]struct{}{}

	for _, term := range vocabulary {
		if !strings.Contains(text, term.word) {
			continue
		}
		if len(topics) < maxKeyTopics {
			topics = append(topics, term.word)
		}
		if term.suggestion == "" || sentiment == domain.SentimentPositive {
			continue
		}
		if _, dup := seenSuggestion[term.suggestion]; dup {
			continue
		}
		seenSuggestion[term.suggestion] = struct{}{}
		suggestions = append(suggestions, term.suggestion)
	}

	return topics, suggestions
}
