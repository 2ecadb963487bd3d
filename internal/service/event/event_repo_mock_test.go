package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	CreateFunc  func(ctx context.Context, e domain.Event) error
	UpdateFunc  func(ctx context.Context, e domain.Event) error
	DeleteFunc  func(ctx context.Context, eventID uuid.UUID) error
	ListFunc    func(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)

	calls struct {
		GetByID []struct {
			EventID uuid.UUID
		}
		Create []struct {
			E domain.Event
		}
		Update []struct {
			E domain.Event
		}
		Delete []struct {
			EventID uuid.UUID
		}
		List []struct {
			F domain.EventFilter
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
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

func (mock *eventRepoMock) Create(ctx context.Context, e domain.Event) error {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		E domain.Event
	}{E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	E domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, e domain.Event) error {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		E domain.Event
	}{E: e}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	E domain.Event
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
	}{EventID: eventID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	EventID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		F domain.EventFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *eventRepoMock) ListCalls() []struct {
	F domain.EventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
