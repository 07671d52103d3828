//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"snoozetax/internal/domain/user"
	"snoozetax/internal/handler/api"
	"snoozetax/internal/usecase"
	"snoozetax/internal/usecase/readmodel"
	usecasemock "snoozetax/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AlarmHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockAlarmUC  *usecasemock.MockAlarmUseCase
	mockSnoozeUC *usecasemock.MockSnoozeUseCase
	router       *gin.Engine
	authedUserID uuid.UUID
}

func statsAfterOneSnooze() user.Stats {
	return user.InitialStats().AfterSnooze(500)
}

func validAlarmBody() map[string]any {
	return map[string]any{
		"hour":          7,
		"minute":        0,
		"repeat_days":   []int{1, 2, 3, 4, 5},
		"penalty_cents": 500,
		"sound":         "Classic",
		"label":         "Morning run",
	}
}

func (s *AlarmHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAlarmUC = usecasemock.NewMockAlarmUseCase(s.mockCtrl)
	s.mockSnoozeUC = usecasemock.NewMockSnoozeUseCase(s.mockCtrl)
	s.authedUserID = uuid.New()

	h := api.NewAlarmHandler(s.mockAlarmUC, s.mockSnoozeUC)

	s.router = gin.New()
	authed := s.router.Group("/api", func(c *gin.Context) {
		c.Set("user_id", s.authedUserID)
	})
	authed.POST("/alarms", h.CreateAlarm)
	authed.GET("/alarms", h.ListAlarms)
	authed.GET("/alarms/:id", h.GetAlarm)
	authed.PUT("/alarms/:id", h.UpdateAlarm)
	authed.PATCH("/alarms/:id/toggle", h.ToggleAlarm)
	authed.DELETE("/alarms/:id", h.DeleteAlarm)
	authed.POST("/alarms/:id/snooze", h.SnoozeAlarm)
	authed.POST("/alarms/:id/dismiss", h.DismissAlarm)

	// Same handlers without the auth shim, for the unauthenticated cases.
	s.router.POST("/bare/alarms", h.CreateAlarm)
}

func (s *AlarmHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAlarmHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlarmHandlerTestSuite))
}

func (s *AlarmHandlerTestSuite) serve(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AlarmHandlerTestSuite) sampleRM(id uuid.UUID) *readmodel.AlarmRM {
	now := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	return &readmodel.AlarmRM{
		ID:           id,
		UserID:       s.authedUserID,
		Hour:         7,
		Minute:       0,
		RepeatDays:   []int{1, 2, 3, 4, 5},
		IsActive:     true,
		PenaltyCents: 500,
		Sound:        "Classic",
		Label:        "Morning run",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *AlarmHandlerTestSuite) TestCreateAlarm() {
	s.Run("created alarm echoes the scheduling status", func() {
		id := uuid.New()
		s.mockAlarmUC.EXPECT().
			CreateAlarm(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(s.sampleRM(id), usecase.SchedulingOK, nil)

		rec := s.serve(http.MethodPost, "/api/alarms", validAlarmBody())
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(id.String(), body["id"])
		s.Equal("ok", body["scheduling"])
		s.Equal(float64(7), body["hour"])
	})

	s.Run("invalid body is rejected before the use case", func() {
		rec := s.serve(http.MethodPost, "/api/alarms", map[string]any{"hour": "seven"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing auth context yields 401", func() {
		rec := s.serve(http.MethodPost, "/bare/alarms", validAlarmBody())
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AlarmHandlerTestSuite) TestGetAlarm() {
	s.Run("unknown alarm maps to 404", func() {
		id := uuid.New()
		s.mockAlarmUC.EXPECT().
			GetAlarm(gomock.Any(), id, s.authedUserID).
			Return(nil, usecase.ErrAlarmNotFound)

		rec := s.serve(http.MethodGet, "/api/alarms/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("foreign alarm is indistinguishable from a missing one", func() {
		id := uuid.New()
		s.mockAlarmUC.EXPECT().
			GetAlarm(gomock.Any(), id, s.authedUserID).
			Return(nil, usecase.ErrAlarmNotOwned)

		rec := s.serve(http.MethodGet, "/api/alarms/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Alarm not found")
	})

	s.Run("malformed id is a bad request", func() {
		rec := s.serve(http.MethodGet, "/api/alarms/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AlarmHandlerTestSuite) TestToggleAlarm() {
	s.Run("deactivation reports the skipped scheduling", func() {
		id := uuid.New()
		s.mockAlarmUC.EXPECT().
			ToggleActive(gomock.Any(), id, false, s.authedUserID).
			Return(usecase.SchedulingSkipped, nil)

		rec := s.serve(http.MethodPatch, "/api/alarms/"+id.String()+"/toggle", map[string]any{"is_active": false})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "skipped")
	})

	s.Run("missing is_active flag is rejected", func() {
		id := uuid.New()
		rec := s.serve(http.MethodPatch, "/api/alarms/"+id.String()+"/toggle", map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AlarmHandlerTestSuite) TestDeleteAlarm() {
	id := uuid.New()
	s.mockAlarmUC.EXPECT().
		DeleteAlarm(gomock.Any(), id, s.authedUserID).
		Return(nil)

	rec := s.serve(http.MethodDelete, "/api/alarms/"+id.String(), nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AlarmHandlerTestSuite) TestSnoozeAlarm() {
	s.Run("snooze with an empty body uses the user default", func() {
		id := uuid.New()
		until := time.Date(2026, 9, 1, 7, 11, 0, 0, time.UTC)
		s.mockSnoozeUC.EXPECT().
			Snooze(gomock.Any(), usecase.SnoozeInput{AlarmID: id, UserID: s.authedUserID}).
			Return(&usecase.SnoozeOutcome{
				SnoozedUntil: until,
				PenaltyCents: 500,
				Stats:        statsAfterOneSnooze(),
				Scheduling:   usecase.SchedulingOK,
			}, nil)

		rec := s.serve(http.MethodPost, "/api/alarms/"+id.String()+"/snooze", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(float64(500), body["penalty_cents"])
		s.Equal(float64(1), body["total_snoozes"])
		s.Equal(float64(95), body["discipline_score"])
		s.Equal("ok", body["scheduling"])
	})

	s.Run("explicit offset is forwarded", func() {
		id := uuid.New()
		s.mockSnoozeUC.EXPECT().
			Snooze(gomock.Any(), usecase.SnoozeInput{AlarmID: id, UserID: s.authedUserID, OffsetMinutes: 5}).
			Return(&usecase.SnoozeOutcome{
				SnoozedUntil: time.Now().Add(5 * time.Minute),
				Stats:        statsAfterOneSnooze(),
				Scheduling:   usecase.SchedulingOK,
			}, nil)

		rec := s.serve(http.MethodPost, "/api/alarms/"+id.String()+"/snooze", map[string]any{"offset_minutes": 5})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("snoozing an unknown alarm maps to 404", func() {
		id := uuid.New()
		s.mockSnoozeUC.EXPECT().
			Snooze(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAlarmNotFound)

		rec := s.serve(http.MethodPost, "/api/alarms/"+id.String()+"/snooze", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AlarmHandlerTestSuite) TestDismissAlarm() {
	id := uuid.New()
	s.mockSnoozeUC.EXPECT().
		Dismiss(gomock.Any(), id, s.authedUserID).
		Return(&usecase.DismissOutcome{
			Deactivated: true,
			Stats:       statsAfterOneSnooze(),
			Scheduling:  usecase.SchedulingSkipped,
		}, nil)

	rec := s.serve(http.MethodPost, "/api/alarms/"+id.String()+"/dismiss", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(true, body["deactivated"])
	s.Equal("skipped", body["scheduling"])
}
