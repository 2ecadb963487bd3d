package registration

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc          func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	AppendToRosterFunc   func(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	RemoveFromRosterFunc func(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			EventID uuid.UUID
		}
		AppendToRoster []struct {
			EventID uuid.UUID
			UserID  uuid.UUID
		}
		RemoveFromRoster []struct {
			EventID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockAppendToRoster   sync.RWMutex
	lockRemoveFromRoster sync.RWMutex
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

func (mock *eventRepoMock) AppendToRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	if mock.AppendToRosterFunc == nil {
		panic("eventRepoMock.AppendToRosterFunc: method is nil but eventRepo.AppendToRoster was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
		UserID  uuid.UUID
	}{EventID: eventID, UserID: userID}
	mock.lockAppendToRoster.Lock()
	mock.calls.AppendToRoster = append(mock.calls.AppendToRoster, callInfo)
	mock.lockAppendToRoster.Unlock()
	return mock.AppendToRosterFunc(ctx, eventID, userID)
}

func (mock *eventRepoMock) AppendToRosterCalls() []struct {
	EventID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockAppendToRoster.RLock()
	calls := mock.calls.AppendToRoster
	mock.lockAppendToRoster.RUnlock()
	return calls
}

func (mock *eventRepoMock) RemoveFromRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	if mock.RemoveFromRosterFunc == nil {
		panic("eventRepoMock.RemoveFromRosterFunc: method is nil but eventRepo.RemoveFromRoster was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
		UserID  uuid.UUID
	}{EventID: eventID, UserID: userID}
	mock.lockRemoveFromRoster.Lock()
	mock.calls.RemoveFromRoster = append(mock.calls.RemoveFromRoster, callInfo)
	mock.lockRemoveFromRoster.Unlock()
	return mock.RemoveFromRosterFunc(ctx, eventID, userID)
}

func (mock *eventRepoMock) RemoveFromRosterCalls() []struct {
	EventID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockRemoveFromRoster.RLock()
	calls := mock.calls.RemoveFromRoster
	mock.lockRemoveFromRoster.RUnlock()
	return calls
}
