package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Inbox is one page of a user's notifications plus the total unread
// count across all pages.
type Inbox struct {
	Notifications []domain.Notification
	Unread        int
}

// List returns a page of the current user's notifications, newest
// first, with the unread total.
func (s *Service) List(ctx context.Context, limit, offset int) (Inbox, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Inbox{}, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	ns, err := s.notifications.ListByRecipient(ctx, userID, limit, offset)
	if err != nil {
		return Inbox{}, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return Inbox{}, fmt.Errorf("count unread: %w", err)
	}

	return Inbox{Notifications: ns, Unread: unread}, nil
}

// MarkRead marks one of the current user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}

	if err := s.notifications.MarkRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}
