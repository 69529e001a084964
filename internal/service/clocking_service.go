package service

import (
	"errors"
	"fmt"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClockedIn = errors.New("an open clocking session already exists")
	ErrNoOpenClocking   = errors.New("no open clocking session to stop")
	ErrClockingNotFound = errors.New("clocking session not found")
	ErrClockingNotYours = errors.New("clocking session belongs to another employee")
	ErrClockingFinished = errors.New("clocking session is already stopped")
)

type ClockingService interface {
	GetStatus(employeeID string) (*ClockingStatus, error)
	GetHistory(employeeID string) ([]model.Clocking, error)
	Start(employeeID string) (*model.Clocking, error)
	Stop(employeeID string, clockID *string) (*model.Clocking, error)
}

// ClockingStatus mirrors what the clock widget needs: the latest session and
// whether the employee is currently stopped.
type ClockingStatus struct {
	Data      *model.Clocking `json:"data"`
	IsStopped bool            `json:"is_stopped"`
}

type clockingService struct {
	clockingRepo repository.ClockingRepository
	wsHub        *ws.Hub
}

func NewClockingService(cRepo repository.ClockingRepository, hub *ws.Hub) ClockingService {
	return &clockingService{clockingRepo: cRepo, wsHub: hub}
}

func (s *clockingService) GetStatus(employeeID string) (*ClockingStatus, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	latest, err := s.clockingRepo.FindLatestByUser(userID)
	if err != nil {
		// No sessions yet counts as stopped.
		return &ClockingStatus{Data: nil, IsStopped: true}, nil
	}

	return &ClockingStatus{Data: latest, IsStopped: !latest.IsOpen()}, nil
}

func (s *clockingService) GetHistory(employeeID string) ([]model.Clocking, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}
	return s.clockingRepo.FindByUser(userID)
}

// Start opens a new session. Timestamps are taken server-side; the client
// sends nothing.
func (s *clockingService) Start(employeeID string) (*model.Clocking, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	if open, err := s.clockingRepo.FindOpenByUser(userID); err == nil && open != nil {
		return nil, ErrAlreadyClockedIn
	}

	now := time.Now()
	clocking := &model.Clocking{
		UserID:  userID,
		Date:    now,
		StartAt: now,
	}
	if err := s.clockingRepo.Create(clocking); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(ws.Event{
		Type:    "clock_event",
		Message: fmt.Sprintf("Employee %s clocked in", employeeID),
		Data:    map[string]interface{}{"user_id": employeeID, "action": "clock_in"},
	})

	return clocking, nil
}

// Stop closes the open session (or the one named by clockID) and derives the
// elapsed duration from the stored timestamps rather than trusting a
// client-counted figure.
func (s *clockingService) Stop(employeeID string, clockID *string) (*model.Clocking, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	var clocking *model.Clocking
	if clockID != nil && *clockID != "" {
		id, err := uuid.Parse(*clockID)
		if err != nil {
			return nil, ErrClockingNotFound
		}
		clocking, err = s.clockingRepo.FindByID(id)
		if err != nil {
			return nil, ErrClockingNotFound
		}
		if clocking.UserID != userID {
			return nil, ErrClockingNotYours
		}
		if !clocking.IsOpen() {
			return nil, ErrClockingFinished
		}
	} else {
		clocking, err = s.clockingRepo.FindOpenByUser(userID)
		if err != nil {
			return nil, ErrNoOpenClocking
		}
	}

	now := time.Now()
	elapsed := int(now.Sub(clocking.StartAt).Seconds())
	clocking.EndAt = &now
	clocking.TotalHour = &elapsed

	if err := s.clockingRepo.Update(clocking); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(ws.Event{
		Type:    "clock_event",
		Message: fmt.Sprintf("Employee %s clocked out", employeeID),
		Data:    map[string]interface{}{"user_id": employeeID, "action": "clock_out", "total_seconds": elapsed},
	})

	return clocking, nil
}
