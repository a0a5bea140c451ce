//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/handler/api"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/tests/common/builder"
	"campus-reserve/tests/common/httptest"
	"campus-reserve/tests/common/testutil"
	commandsmock "campus-reserve/tests/mock/commands"
	queriesmock "campus-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockScan     *commandsmock.MockScanCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockScan = commandsmock.NewMockScanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockScan, s.mockQueries)
	s.userID = uuid.New()

	// Stand-in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
	})

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.ListMine)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.POST("/reservations/:id/return-request", s.handler.RequestReturn)
	s.router.GET("/reservations/:id/qr", s.handler.QRToken)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) buildView(status string) *queries.ReservationView {
	b := builder.NewReservationBuilder()
	return &queries.ReservationView{
		ID:           uuid.New(),
		UserID:       s.userID,
		UserEmail:    b.UserEmail,
		Code:         b.Code,
		ReservedDate: b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Purpose:      b.Purpose,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func createBody() map[string]any {
	return map[string]any{
		"date":       "2026-03-12",
		"start_time": "09:00",
		"end_time":   "12:00",
		"purpose":    "Physics laboratory session",
		"items": []map[string]any{
			{"equipment_id": uuid.New().String(), "quantity": 1},
		},
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("created", func() {
		view := s.buildView("pending")
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal(view.Code, body.Code)
		s.Equal("pending", body.Status)
	})

	s.Run("slot conflict", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrQuantityConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("domain validation", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDomainValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("missing items rejected by binding", func() {
		body := testutil.DtoMap(s.T(), createBody(), testutil.Field("items", nil))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		view := s.buildView("approved")
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, user.RoleStudent, id).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("approved", body.Status)
	})

	s.Run("not found hides other users' reservations", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, user.RoleStudent, id).
			Return(nil, queries.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("bad id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success", func() {
		view := s.buildView("cancelled")
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id, s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("window passed", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id, s.userID).
			Return(nil, reservation.ErrCancelWindowPassed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already passed")
	})

	s.Run("illegal transition", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id, s.userID).
			Return(nil, reservation.ErrIllegalTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "does not allow")
	})
}

func (s *ReservationHandlerTestSuite) TestQRToken() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/qr"

	s.Run("success", func() {
		payload := []byte(`{"code":"RES-7K2M9QXZ","sig":"abc"}`)
		s.mockScan.EXPECT().
			MintToken(gomock.Any(), s.userID, user.RoleStudent, id).
			Return(payload, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body struct {
			Data string `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(string(payload), body.Data)
	})

	s.Run("terminal reservation", func() {
		s.mockScan.EXPECT().
			MintToken(gomock.Any(), s.userID, user.RoleStudent, id).
			Return(nil, commands.ErrTokenUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "does not allow")
	})
}
