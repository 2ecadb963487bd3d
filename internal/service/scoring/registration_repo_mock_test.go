package scoring

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ registrationRepo = &registrationRepoMock{}

type registrationRepoMock struct {
	EventsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Event, error)
	ListByEventFunc  func(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error)
	DailyCountsFunc  func(ctx context.Context, eventID uuid.UUID, since time.Time) ([]domain.DayCount, error)

	calls struct {
		EventsByUser []struct {
			UserID uuid.UUID
		}
		ListByEvent []struct {
			EventID uuid.UUID
		}
		DailyCounts []struct {
			EventID uuid.UUID
			Since   time.Time
		}
	}
	lockEventsByUser sync.RWMutex
	lockListByEvent  sync.RWMutex
	lockDailyCounts  sync.RWMutex
}

func (mock *registrationRepoMock) EventsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	if mock.EventsByUserFunc == nil {
		panic("registrationRepoMock.EventsByUserFunc: method is nil but registrationRepo.EventsByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockEventsByUser.Lock()
	mock.calls.EventsByUser = append(mock.calls.EventsByUser, callInfo)
	mock.lockEventsByUser.Unlock()
	return mock.EventsByUserFunc(ctx, userID)
}

func (mock *registrationRepoMock) EventsByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockEventsByUser.RLock()
	calls := mock.calls.EventsByUser
	mock.lockEventsByUser.RUnlock()
	return calls
}

func (mock *registrationRepoMock) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	if mock.ListByEventFunc == nil {
		panic("registrationRepoMock.ListByEventFunc: method is nil but registrationRepo.ListByEvent was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
	}{EventID: eventID}
	mock.lockListByEvent.Lock()
	mock.calls.ListByEvent = append(mock.calls.ListByEvent, callInfo)
	mock.lockListByEvent.Unlock()
	return mock.ListByEventFunc(ctx, eventID)
}

func (mock *registrationRepoMock) ListByEventCalls() []struct {
	EventID uuid.UUID
} {
	mock.lockListByEvent.RLock()
	calls := mock.calls.ListByEvent
	mock.lockListByEvent.RUnlock()
	return calls
}

func (mock *registrationRepoMock) DailyCounts(ctx context.Context, eventID uuid.UUID, since time.Time) ([]domain.DayCount, error) {
	if mock.DailyCountsFunc == nil {
		panic("registrationRepoMock.DailyCountsFunc: method is nil but registrationRepo.DailyCounts was just called")
	}
	callInfo := struct {
		EventID uuid.UUID
		Since   time.Time
	}{EventID: eventID, Since: since}
	mock.lockDailyCounts.Lock()
	mock.calls.DailyCounts = append(mock.calls.DailyCounts, callInfo)
	mock.lockDailyCounts.Unlock()
	return mock.DailyCountsFunc(ctx, eventID, since)
}

func (mock *registrationRepoMock) DailyCountsCalls() []struct {
	EventID uuid.UUID
	Since   time.Time
} {
	mock.lockDailyCounts.RLock()
	calls := mock.calls.DailyCounts
	mock.lockDailyCounts.RUnlock()
	return calls
}
