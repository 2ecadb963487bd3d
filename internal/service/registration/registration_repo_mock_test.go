package registration

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

var _ registrationRepo = &registrationRepoMock{}

type registrationRepoMock struct {
	CreateFunc            func(ctx context.Context, reg domain.Registration) error
	DeleteFunc            func(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	ExistsFunc            func(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	GetByUserAndEventFunc func(ctx context.Context, userID, eventID uuid.UUID) (domain.Registration, error)
	ListSlotsByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleSlot, error)
	SetFeedbackFunc       func(ctx context.Context, userID, eventID uuid.UUID, rating int, feedback *string, at time.Time) error
	SetAttendedFunc       func(ctx context.Context, userID, eventID uuid.UUID, attended bool) error

	calls struct {
		Create []struct {
			Reg domain.Registration
		}
		Delete []struct {
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		Exists []struct {
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		GetByUserAndEvent []struct {
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		ListSlotsByUser []struct {
			UserID uuid.UUID
		}
		SetFeedback []struct {
			UserID   uuid.UUID
			EventID  uuid.UUID
			Rating   int
			Feedback *string
			At       time.Time
		}
		SetAttended []struct {
			UserID   uuid.UUID
			EventID  uuid.UUID
			Attended bool
		}
	}
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockExists            sync.RWMutex
	lockGetByUserAndEvent sync.RWMutex
	lockListSlotsByUser   sync.RWMutex
	lockSetFeedback       sync.RWMutex
	lockSetAttended       sync.RWMutex
}

func (mock *registrationRepoMock) Create(ctx context.Context, reg domain.Registration) error {
	if mock.CreateFunc == nil {
		panic("registrationRepoMock.CreateFunc: method is nil but registrationRepo.Create was just called")
	}
	callInfo := struct {
		Reg domain.Registration
	}{Reg: reg}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, reg)
}

func (mock *registrationRepoMock) CreateCalls() []struct {
	Reg domain.Registration
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *registrationRepoMock) Delete(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("registrationRepoMock.DeleteFunc: method is nil but registrationRepo.Delete was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		EventID uuid.UUID
	}{UserID: userID, EventID: eventID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, eventID)
}

func (mock *registrationRepoMock) DeleteCalls() []struct {
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *registrationRepoMock) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("registrationRepoMock.ExistsFunc: method is nil but registrationRepo.Exists was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		EventID uuid.UUID
	}{UserID: userID, EventID: eventID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, eventID)
}

func (mock *registrationRepoMock) ExistsCalls() []struct {
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *registrationRepoMock) GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (domain.Registration, error) {
	if mock.GetByUserAndEventFunc == nil {
		panic("registrationRepoMock.GetByUserAndEventFunc: method is nil but registrationRepo.GetByUserAndEvent was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		EventID uuid.UUID
	}{UserID: userID, EventID: eventID}
	mock.lockGetByUserAndEvent.Lock()
	mock.calls.GetByUserAndEvent = append(mock.calls.GetByUserAndEvent, callInfo)
	mock.lockGetByUserAndEvent.Unlock()
	return mock.GetByUserAndEventFunc(ctx, userID, eventID)
}

func (mock *registrationRepoMock) GetByUserAndEventCalls() []struct {
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockGetByUserAndEvent.RLock()
	calls := mock.calls.GetByUserAndEvent
	mock.lockGetByUserAndEvent.RUnlock()
	return calls
}

func (mock *registrationRepoMock) ListSlotsByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleSlot, error) {
	if mock.ListSlotsByUserFunc == nil {
		panic("registrationRepoMock.ListSlotsByUserFunc: method is nil but registrationRepo.ListSlotsByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListSlotsByUser.Lock()
	mock.calls.ListSlotsByUser = append(mock.calls.ListSlotsByUser, callInfo)
	mock.lockListSlotsByUser.Unlock()
	return mock.ListSlotsByUserFunc(ctx, userID)
}

func (mock *registrationRepoMock) ListSlotsByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListSlotsByUser.RLock()
	calls := mock.calls.ListSlotsByUser
	mock.lockListSlotsByUser.RUnlock()
	return calls
}

func (mock *registrationRepoMock) SetFeedback(ctx context.Context, userID, eventID uuid.UUID, rating int, feedback *string, at time.Time) error {
	if mock.SetFeedbackFunc == nil {
		panic("registrationRepoMock.SetFeedbackFunc: method is nil but registrationRepo.SetFeedback was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		EventID  uuid.UUID
		Rating   int
		Feedback *string
		At       time.Time
	}{UserID: userID, EventID: eventID, Rating: rating, Feedback: feedback, At: at}
	mock.lockSetFeedback.Lock()
	mock.calls.SetFeedback = append(mock.calls.SetFeedback, callInfo)
	mock.lockSetFeedback.Unlock()
	return mock.SetFeedbackFunc(ctx, userID, eventID, rating, feedback, at)
}

func (mock *registrationRepoMock) SetFeedbackCalls() []struct {
	UserID   uuid.UUID
	EventID  uuid.UUID
	Rating   int
	Feedback *string
	At       time.Time
} {
	mock.lockSetFeedback.RLock()
	calls := mock.calls.SetFeedback
	mock.lockSetFeedback.RUnlock()
	return calls
}

func (mock *registrationRepoMock) SetAttended(ctx context.Context, userID, eventID uuid.UUID, attended bool) error {
	if mock.SetAttendedFunc == nil {
		panic("registrationRepoMock.SetAttendedFunc: method is nil but registrationRepo.SetAttended was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		EventID  uuid.UUID
		Attended bool
	}{UserID: userID, EventID: eventID, Attended: attended}
	mock.lockSetAttended.Lock()
	mock.calls.SetAttended = append(mock.calls.SetAttended, callInfo)
	mock.lockSetAttended.Unlock()
	return mock.SetAttendedFunc(ctx, userID, eventID, attended)
}

func (mock *registrationRepoMock) SetAttendedCalls() []struct {
	UserID   uuid.UUID
	EventID  uuid.UUID
	Attended bool
} {
	mock.lockSetAttended.RLock()
	calls := mock.calls.SetAttended
	mock.lockSetAttended.RUnlock()
	return calls
}
