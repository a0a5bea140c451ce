//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/handler/api"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/tests/common/httptest"
	commandsmock "campus-reserve/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScannerHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockScan *commandsmock.MockScanCommands
	staffID  uuid.UUID
}

func (s *ScannerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScan = commandsmock.NewMockScanCommands(s.mockCtrl)
	s.staffID = uuid.New()

	handler := api.NewScannerHandler(s.mockScan)

	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.staffID)
		c.Set("user_role", user.RoleStaff)
	})
	s.router.POST("/staff/scanner/scan", handler.Scan)
}

func (s *ScannerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScannerHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScannerHandlerTestSuite))
}

func (s *ScannerHandlerTestSuite) TestScan() {
	url := "/staff/scanner/scan"
	reqBody := map[string]any{"data": `{"code":"RES-7K2M9QXZ","sig":"abc"}`}

	s.Run("issues approved reservation", func() {
		result := &commands.ScanResult{
			Action:      commands.ScanActionIssued,
			Reservation: &queries.ReservationView{ID: uuid.New(), Status: "issued"},
		}
		s.mockScan.EXPECT().
			Scan(gomock.Any(), gomock.Any(), s.staffID).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(commands.ScanActionIssued, body.Action)
	})

	s.Run("already completed reports without mutation", func() {
		result := &commands.ScanResult{
			Action:      commands.ScanActionAlreadyCompleted,
			Reservation: &queries.ReservationView{ID: uuid.New(), Status: "completed"},
		}
		s.mockScan.EXPECT().
			Scan(gomock.Any(), gomock.Any(), s.staffID).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(commands.ScanActionAlreadyCompleted, body.Action)
	})

	s.Run("tampered payload", func() {
		s.mockScan.EXPECT().
			Scan(gomock.Any(), gomock.Any(), s.staffID).
			Return(nil, commands.ErrInvalidQRToken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid QR payload")
	})

	s.Run("rejected reservation is not actionable", func() {
		s.mockScan.EXPECT().
			Scan(gomock.Any(), gomock.Any(), s.staffID).
			Return(nil, commands.ErrScanNotActionable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "does not allow")
	})

	s.Run("missing data rejected by binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
