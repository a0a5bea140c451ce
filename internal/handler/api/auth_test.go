//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campus-reserve/internal/handler/api"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/pkg/cookie"
	"campus-reserve/internal/pkg/jwt"
	"campus-reserve/internal/usecase/commands"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockUsers    *queriesmock.MockUserReadStore
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.userID = uuid.New()

	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockUsers, config.NewTestConfig().Cookie, jwtService)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{User: returnUser, AccessToken: expectedToken}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(expectedToken, body.AccessToken)
		s.Equal(returnUser.Email, body.User.Email)

		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal(expectedToken, c.Value)
	})

	s.Run("invalid credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("inactive account", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserInactive)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "inactive")
	})

	s.Run("malformed email rejected by binding", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := testutil.DtoMap(s.T(), builder.NewAuthBuilder().BuildDTO(), testutil.Field("name", "Test Student"))
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(returnUser, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal(returnUser.Email, body.Email)
	})

	s.Run("email taken", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, w.Code)
	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockUsers.EXPECT().
			FindByID(gomock.Any(), s.userID).
			Return(returnUser, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(returnUser.Email, body.Email)
	})

	s.Run("no auth context", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})
}
