//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/infra"
	"snoozetax/internal/scheduling"
	"snoozetax/internal/usecase"
	"snoozetax/tests/common/builder"
	usecasemock "snoozetax/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AlarmUseCaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *usecasemock.MockAlarmRepository
	mockScheduler *usecasemock.MockAlarmScheduler
	uc            usecase.AlarmUseCase
}

func (s *AlarmUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockAlarmRepository(s.mockCtrl)
	s.mockScheduler = usecasemock.NewMockAlarmScheduler(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = usecase.NewAlarmUseCase(s.mockRepo, s.mockScheduler, nil, logger)
}

func (s *AlarmUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAlarmUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AlarmUseCaseTestSuite))
}

func (s *AlarmUseCaseTestSuite) TestCreateAlarm() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("persists then arms the burst", func() {
		input := builder.NewAlarmBuilder().BuildInput()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{Armed: 50}, nil)

		rm, status, err := s.uc.CreateAlarm(ctx, input, userID)
		s.NoError(err)
		s.Equal(usecase.SchedulingOK, status)
		s.Equal(userID, rm.UserID)
		s.Equal(7, rm.Hour)
		s.True(rm.IsActive)
	})

	s.Run("invalid input never reaches the repository", func() {
		input := builder.NewAlarmBuilder().WithTime(24, 0).BuildInput()

		rm, _, err := s.uc.CreateAlarm(ctx, input, userID)
		s.Nil(rm)
		s.ErrorIs(err, usecase.ErrInvalidAlarmInput)
	})

	s.Run("scheduling failure does not fail the write", func() {
		input := builder.NewAlarmBuilder().BuildInput()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{}, scheduling.ErrAllArmsFailed)

		rm, status, err := s.uc.CreateAlarm(ctx, input, userID)
		s.NoError(err)
		s.NotNil(rm)
		s.Equal(usecase.SchedulingFailed, status)
	})

	s.Run("partial burst is reported as degraded", func() {
		input := builder.NewAlarmBuilder().BuildInput()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{Armed: 40, Failed: 10}, nil)

		_, status, err := s.uc.CreateAlarm(ctx, input, userID)
		s.NoError(err)
		s.Equal(usecase.SchedulingDegraded, status)
	})

	s.Run("repository failure aborts", func() {
		input := builder.NewAlarmBuilder().BuildInput()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindDBFailure, "insert failed", nil))

		rm, _, err := s.uc.CreateAlarm(ctx, input, userID)
		s.Nil(rm)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

func (s *AlarmUseCaseTestSuite) TestUpdateAlarm() {
	ctx := context.Background()

	s.Run("ownership is enforced", func() {
		existing := builder.NewAlarmBuilder().MustBuildDomain()
		stranger := uuid.New()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		rm, _, err := s.uc.UpdateAlarm(ctx, existing.ID(), builder.NewAlarmBuilder().BuildInput(), stranger)
		s.Nil(rm)
		s.ErrorIs(err, usecase.ErrAlarmNotOwned)
	})

	s.Run("missing alarm maps to not found", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "alarm not found", nil))

		rm, _, err := s.uc.UpdateAlarm(ctx, id, builder.NewAlarmBuilder().BuildInput(), uuid.New())
		s.Nil(rm)
		s.ErrorIs(err, usecase.ErrAlarmNotFound)
	})

	s.Run("update persists then re-arms", func() {
		existing := builder.NewAlarmBuilder().MustBuildDomain()
		input := builder.NewAlarmBuilder().BuildInput()
		input.Hour = 8

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{Armed: 50}, nil)

		rm, status, err := s.uc.UpdateAlarm(ctx, existing.ID(), input, existing.UserID())
		s.NoError(err)
		s.Equal(usecase.SchedulingOK, status)
		s.Equal(8, rm.Hour)
		s.Nil(rm.SnoozedUntil)
	})

	s.Run("update persists the cleared snooze override", func() {
		existing := builder.NewAlarmBuilder().
			WithSnoozedUntil(time.Now().Add(5 * time.Minute)).
			MustBuildDomain()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ infra.DBTX, a *alarm.Alarm) error {
				// The write must carry the cleared marker, not just the
				// response; otherwise the override resurfaces on re-read.
				s.Nil(a.SnoozedUntil())
				return nil
			})
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{Armed: 50}, nil)

		rm, _, err := s.uc.UpdateAlarm(ctx, existing.ID(), builder.NewAlarmBuilder().BuildInput(), existing.UserID())
		s.NoError(err)
		s.Nil(rm.SnoozedUntil)
	})
}

func (s *AlarmUseCaseTestSuite) TestToggleActive() {
	ctx := context.Background()

	s.Run("activation re-arms", func() {
		existing := builder.NewAlarmBuilder().WithActive(false).MustBuildDomain()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().SetActive(gomock.Any(), gomock.Any(), existing.ID(), true).Return(nil)
		s.mockScheduler.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
			Return(scheduling.Result{Armed: 50}, nil)

		status, err := s.uc.ToggleActive(ctx, existing.ID(), true, existing.UserID())
		s.NoError(err)
		s.Equal(usecase.SchedulingOK, status)
	})

	s.Run("deactivation cancels without scheduling", func() {
		existing := builder.NewAlarmBuilder().MustBuildDomain()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().SetActive(gomock.Any(), gomock.Any(), existing.ID(), false).Return(nil)
		s.mockScheduler.EXPECT().Cancel(gomock.Any(), existing.ID())

		status, err := s.uc.ToggleActive(ctx, existing.ID(), false, existing.UserID())
		s.NoError(err)
		s.Equal(usecase.SchedulingSkipped, status)
	})
}

func (s *AlarmUseCaseTestSuite) TestDeleteAlarm() {
	ctx := context.Background()

	s.Run("delete cancels the burst after the row is gone", func() {
		existing := builder.NewAlarmBuilder().MustBuildDomain()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), existing.ID()).Return(nil)
		s.mockScheduler.EXPECT().Cancel(gomock.Any(), existing.ID())

		s.NoError(s.uc.DeleteAlarm(ctx, existing.ID(), existing.UserID()))
	})

	s.Run("delete of someone else's alarm is rejected before any write", func() {
		existing := builder.NewAlarmBuilder().MustBuildDomain()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		err := s.uc.DeleteAlarm(ctx, existing.ID(), uuid.New())
		s.ErrorIs(err, usecase.ErrAlarmNotOwned)
	})
}

func (s *AlarmUseCaseTestSuite) TestListAlarms() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("maps entities to read models", func() {
		a1 := builder.NewAlarmBuilder().WithUserID(userID).WithTime(6, 30).MustBuildDomain()
		a2 := builder.NewAlarmBuilder().WithUserID(userID).WithTime(7, 0).MustBuildDomain()

		s.mockRepo.EXPECT().FindByUserID(gomock.Any(), userID).
			Return([]*alarm.Alarm{a1, a2}, nil)

		rms, err := s.uc.ListAlarms(ctx, userID)
		s.NoError(err)
		s.Len(rms, 2)
		s.Equal(6, rms[0].Hour)
		s.Equal(7, rms[1].Hour)
	})
}
