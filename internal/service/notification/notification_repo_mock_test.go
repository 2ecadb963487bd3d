package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateBatchFunc     func(ctx context.Context, ns []domain.Notification) error
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error)
	MarkReadFunc        func(ctx context.Context, recipientID, notificationID uuid.UUID) error
	UnreadCountFunc     func(ctx context.Context, recipientID uuid.UUID) (int, error)

	calls struct {
		CreateBatch []struct {
			Ns []domain.Notification
		}
		ListByRecipient []struct {
			RecipientID uuid.UUID
			Limit       int
			Offset      int
		}
		MarkRead []struct {
			RecipientID    uuid.UUID
			NotificationID uuid.UUID
		}
		UnreadCount []struct {
			RecipientID uuid.UUID
		}
	}
	lockCreateBatch     sync.RWMutex
	lockListByRecipient sync.RWMutex
	lockMarkRead        sync.RWMutex
	lockUnreadCount     sync.RWMutex
}

func (mock *notificationRepoMock) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if mock.CreateBatchFunc == nil {
		panic("notificationRepoMock.CreateBatchFunc: method is nil but notificationRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ns []domain.Notification
	}{Ns: ns}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, ns)
}

func (mock *notificationRepoMock) CreateBatchCalls() []struct {
	Ns []domain.Notification
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	if mock.ListByRecipientFunc == nil {
		panic("notificationRepoMock.ListByRecipientFunc: method is nil but notificationRepo.ListByRecipient was just called")
	}
	callInfo := struct {
		RecipientID uuid.UUID
		Limit       int
		Offset      int
	}{RecipientID: recipientID, Limit: limit, Offset: offset}
	mock.lockListByRecipient.Lock()
	mock.calls.ListByRecipient = append(mock.calls.ListByRecipient, callInfo)
	mock.lockListByRecipient.Unlock()
	return mock.ListByRecipientFunc(ctx, recipientID, limit, offset)
}

func (mock *notificationRepoMock) ListByRecipientCalls() []struct {
	RecipientID uuid.UUID
	Limit       int
	Offset      int
} {
	mock.lockListByRecipient.RLock()
	calls := mock.calls.ListByRecipient
	mock.lockListByRecipient.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		RecipientID    uuid.UUID
		NotificationID uuid.UUID
	}{RecipientID: recipientID, NotificationID: notificationID}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, recipientID, notificationID)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	RecipientID    uuid.UUID
	NotificationID uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationRepoMock.UnreadCountFunc: method is nil but notificationRepo.UnreadCount was just called")
	}
	callInfo := struct {
		RecipientID uuid.UUID
	}{RecipientID: recipientID}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx, recipientID)
}

func (mock *notificationRepoMock) UnreadCountCalls() []struct {
	RecipientID uuid.UUID
} {
	mock.lockUnreadCount.RLock()
	calls := mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}
