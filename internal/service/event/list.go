package event

import (
	"context"
	"fmt"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// List returns events matching the filter. Defaults and clamping for
// sort and pagination are applied by the storage layer.
func (s *Service) List(ctx context.Context, in ListEventsInput) ([]domain.Event, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx, domain.EventFilter{
		Society:   in.Society,
		Category:  in.Category,
		OwnerID:   in.OwnerID,
		Search:    in.Search,
		From:      in.From,
		To:        in.To,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
		Limit:     in.Limit,
		Offset:    in.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}
