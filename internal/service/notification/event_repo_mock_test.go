package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)

	calls struct {
		GetByID []struct {
			EventID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *eventRepoMock) GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
	}{EventID: eventID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, eventID)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	EventID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
