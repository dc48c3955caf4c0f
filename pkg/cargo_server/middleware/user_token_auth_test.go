package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/middleware"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	mock_auth "github.com/amvarmar/cargotrack/test/mock/cargo_server/auth"
)

type UserTokenAuthTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	userMgr *mock_auth.MockUserManager
}

func TestUserTokenAuth(t *testing.T) {
	suite.Run(t, new(UserTokenAuthTestSuite))
}

func (s *UserTokenAuthTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userMgr = mock_auth.NewMockUserManager(s.ctrl)
}

func (s *UserTokenAuthTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserTokenAuthTestSuite) TestAuthenticate() {
	user := auth.User{ID: "acme", Role: auth.RoleClient, Status: auth.UserStatusActive}
	s.userMgr.EXPECT().TokenAuthorization(gomock.Any(), gomock.Any(), "token-1").Return(user, nil)

	var gotUser auth.User
	handler := middleware.NewUserTokenAuth(s.userMgr).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, _ = r.Context().Value(middleware.USER).(auth.User)
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/receipt", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal("acme", gotUser.ID)
}

func (s *UserTokenAuthTestSuite) TestAuthenticateMissingToken() {
	handler := middleware.NewUserTokenAuth(s.userMgr).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.FailNow("handler must not be reached")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/receipt", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *UserTokenAuthTestSuite) TestAuthenticateExpiredToken() {
	s.userMgr.EXPECT().TokenAuthorization(gomock.Any(), gomock.Any(), "token-1").
		Return(auth.User{}, model.ErrUserTokenExpired)

	handler := middleware.NewUserTokenAuth(s.userMgr).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.FailNow("handler must not be reached")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/receipt", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *UserTokenAuthTestSuite) TestRequireRole() {
	staffOnly := middleware.RequireRole(auth.RoleStaff)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	s.userMgr.EXPECT().TokenAuthorization(gomock.Any(), gomock.Any(), "token-1").
		Return(auth.User{ID: "acme", Role: auth.RoleClient}, nil).Times(2)
	tokenAuth := middleware.NewUserTokenAuth(s.userMgr)

	// client hitting a staff route
	req := httptest.NewRequest(http.MethodGet, "/receipt", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	tokenAuth.Authenticate(staffOnly).ServeHTTP(rec, req)
	s.Assert().Equal(http.StatusForbidden, rec.Code)

	// client hitting a client route
	clientOnly := middleware.RequireRole(auth.RoleClient)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
	req = httptest.NewRequest(http.MethodGet, "/client/receipt", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec = httptest.NewRecorder()
	tokenAuth.Authenticate(clientOnly).ServeHTTP(rec, req)
	s.Assert().Equal(http.StatusOK, rec.Code)

	// unauthenticated request never reaches the role guard with a user
	rec = httptest.NewRecorder()
	staffOnly.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/receipt", nil))
	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
}
