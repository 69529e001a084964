package service

import (
	"testing"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newClockingFixture() (*fakeClockingRepo, ClockingService) {
	repo := &fakeClockingRepo{}
	hub := ws.NewHub()
	go hub.Run()
	return repo, NewClockingService(repo, hub)
}

func Test_Clocking_StartOpensSingleSession(t *testing.T) {
	repo, svc := newClockingFixture()
	userID := uuid.New()

	clocking, err := svc.Start(userID.String())
	assert.NoError(t, err)
	assert.Nil(t, clocking.EndAt)
	assert.Nil(t, clocking.TotalHour)
	assert.False(t, clocking.StartAt.IsZero())
	assert.Equal(t, 1, repo.openCount(userID))

	// a second clock-in while one is open is refused
	_, err = svc.Start(userID.String())
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	assert.Equal(t, 1, repo.openCount(userID))
}

func Test_Clocking_StopDerivesDurationServerSide(t *testing.T) {
	repo, svc := newClockingFixture()
	userID := uuid.New()

	started := time.Now().Add(-90 * time.Second)
	repo.clockings = []model.Clocking{{
		BaseModel: model.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Date:      started,
		StartAt:   started,
	}}

	stopped, err := svc.Stop(userID.String(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, stopped.EndAt)
	assert.NotNil(t, stopped.TotalHour)
	assert.GreaterOrEqual(t, *stopped.TotalHour, 90)
	assert.Less(t, *stopped.TotalHour, 120)
	assert.Equal(t, 0, repo.openCount(userID))
}

func Test_Clocking_StopWithoutOpenSession(t *testing.T) {
	_, svc := newClockingFixture()

	_, err := svc.Stop(uuid.NewString(), nil)
	assert.ErrorIs(t, err, ErrNoOpenClocking)
}

func Test_Clocking_StopByID(t *testing.T) {
	repo, svc := newClockingFixture()
	owner := uuid.New()
	intruder := uuid.New()

	started := time.Now().Add(-time.Minute)
	open := model.Clocking{
		BaseModel: model.BaseModel{ID: uuid.New()},
		UserID:    owner,
		Date:      started,
		StartAt:   started,
	}
	end := started.Add(30 * time.Second)
	total := 30
	closed := model.Clocking{
		BaseModel: model.BaseModel{ID: uuid.New()},
		UserID:    owner,
		Date:      started,
		StartAt:   started,
		EndAt:     &end,
		TotalHour: &total,
	}
	repo.clockings = []model.Clocking{open, closed}

	openID := open.ID.String()
	closedID := closed.ID.String()
	unknownID := uuid.NewString()

	t.Run("another employee cannot stop it", func(t *testing.T) {
		_, err := svc.Stop(intruder.String(), &openID)
		assert.ErrorIs(t, err, ErrClockingNotYours)
	})

	t.Run("an already stopped session is refused", func(t *testing.T) {
		_, err := svc.Stop(owner.String(), &closedID)
		assert.ErrorIs(t, err, ErrClockingFinished)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Stop(owner.String(), &unknownID)
		assert.ErrorIs(t, err, ErrClockingNotFound)
	})

	t.Run("the owner stops the named session", func(t *testing.T) {
		stopped, err := svc.Stop(owner.String(), &openID)
		assert.NoError(t, err)
		assert.Equal(t, open.ID, stopped.ID)
		assert.NotNil(t, stopped.EndAt)
		assert.Equal(t, 0, repo.openCount(owner))
	})
}

func Test_Clocking_Status(t *testing.T) {
	_, svc := newClockingFixture()
	userID := uuid.New()

	t.Run("no sessions yet counts as stopped", func(t *testing.T) {
		status, err := svc.GetStatus(userID.String())
		assert.NoError(t, err)
		assert.True(t, status.IsStopped)
		assert.Nil(t, status.Data)
	})

	t.Run("open session reports not stopped", func(t *testing.T) {
		_, err := svc.Start(userID.String())
		assert.NoError(t, err)

		status, err := svc.GetStatus(userID.String())
		assert.NoError(t, err)
		assert.False(t, status.IsStopped)
		assert.NotNil(t, status.Data)
	})

	t.Run("stopped again after clock-out", func(t *testing.T) {
		_, err := svc.Stop(userID.String(), nil)
		assert.NoError(t, err)

		status, err := svc.GetStatus(userID.String())
		assert.NoError(t, err)
		assert.True(t, status.IsStopped)
	})
}
