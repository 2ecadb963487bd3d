package scoring

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc      func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	ListUpcomingFunc func(ctx context.Context, from time.Time) ([]domain.Event, error)

	calls struct {
		GetByID []struct {
			EventID uuid.UUID
		}
		ListUpcoming []struct {
			From time.Time
		}
	}
	lockGetByID      sync.RWMutex
	lockListUpcoming sync.RWMutex
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

func (mock *eventRepoMock) ListUpcoming(ctx context.Context, from time.Time) ([]domain.Event, error) {
	if mock.ListUpcomingFunc == nil {
		panic("eventRepoMock.ListUpcomingFunc: method is nil but eventRepo.ListUpcoming was just called")
	}
	callInfo := struct {
		From time.Time
	}{From: from}
	mock.lockListUpcoming.Lock()
	mock.calls.ListUpcoming = append(mock.calls.ListUpcoming, callInfo)
	mock.lockListUpcoming.Unlock()
	return mock.ListUpcomingFunc(ctx, from)
}

func (mock *eventRepoMock) ListUpcomingCalls() []struct {
	From time.Time
} {
	mock.lockListUpcoming.RLock()
	calls := mock.calls.ListUpcoming
	mock.lockListUpcoming.RUnlock()
	return calls
}
