package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	mock_auth "github.com/amvarmar/cargotrack/test/mock/cargo_server/auth"
	mock_storage "github.com/amvarmar/cargotrack/test/mock/cargo_server/storage"
)

type UserManagerTestSuite struct {
	suite.Suite

	ctx     context.Context
	ctrl    *gomock.Controller
	storage *mock_auth.MockUserStorage
	tx      *mock_storage.MockTx
	userMgr auth.UserManager
}

func TestUserManager(t *testing.T) {
	suite.Run(t, new(UserManagerTestSuite))
}

func (s *UserManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_auth.NewMockUserStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.userMgr = auth.NewUserManager(s.storage)
}

func (s *UserManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserManagerTestSuite) TestCreateUser() {
	ts := int64(1709613600)
	req := auth.CreateUserRequest{
		RequestUser: "staff-1",
		UserID:      "acme",
		Password:    "secret-password",
		Role:        auth.RoleClient,
		Name:        "Acme Imports",
		Email:       "ops@acme.test",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, auth.ListUserRequest{
			Limit: 1,
			IDs:   []string{"acme"},
		}).Return(auth.ListUserResult{}, nil),
		s.storage.EXPECT().StoreUser(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, user auth.User) error {
				s.Assert().Equal("acme", user.ID)
				s.Assert().Equal(auth.UserStatusActive, user.Status)
				s.Assert().Equal(auth.RoleClient, user.Role)
				s.Assert().NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	user, err := s.userMgr.CreateUser(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Empty(user.Password)
}

func (s *UserManagerTestSuite) TestCreateUserAlreadyExists() {
	req := auth.CreateUserRequest{
		RequestUser: "staff-1",
		UserID:      "acme",
		Password:    "secret-password",
		Role:        auth.RoleClient,
		Name:        "Acme Imports",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{{ID: "acme"}}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.userMgr.CreateUser(s.ctx, 1709613600, req)
	s.Require().ErrorIs(err, model.ErrUserAlreadyExists)
}

func (s *UserManagerTestSuite) TestQuickCreateClient() {
	ts := int64(1709613600)
	req := auth.QuickCreateClientRequest{
		RequestUser: "staff-1",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@acme.test",
	}

	var storedUser auth.User
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).Return(auth.ListUserResult{}, nil),
		s.storage.EXPECT().StoreUser(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, user auth.User) error {
				storedUser = user
				s.Assert().Equal(auth.RoleClient, user.Role)
				s.Assert().Equal("Jane Doe", user.Name)
				return nil
			},
		),
		s.storage.EXPECT().AddNotification(gomock.Any(), s.tx, ts, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, n *model.Notification) error {
				s.Assert().Equal(model.TemplateClientCredentials, n.Template)
				s.Assert().Equal("jane@acme.test", n.Recipient)
				s.Assert().Equal(storedUser.ID, n.Fields["username"])
				s.Assert().NotEmpty(n.Fields["password"])
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.userMgr.QuickCreateClient(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(storedUser.ID, result.User.ID)
	s.Assert().Len(string(result.TemporaryPassword), 14)
	s.Assert().NoError(bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(result.TemporaryPassword)))
}

func (s *UserManagerTestSuite) TestAuthenticate() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)
	user := auth.User{
		ID:       "acme",
		Status:   auth.UserStatusActive,
		Password: auth.HashedPassword(hashed),
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{user}}, nil),
		s.storage.EXPECT().StoreUserToken(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, token auth.UserToken) error {
				s.Assert().Equal("acme", token.UserID)
				s.Assert().Equal(token.CreatedAt+86400, token.ExpiredAt)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	token, err := s.userMgr.Authenticate(s.ctx, 1709613600, auth.AuthenticateUserRequest{
		UserID:   "acme",
		Password: "right-password",
	})
	s.Require().NoError(err)
	s.Assert().NotEmpty(token.Token)
}

func (s *UserManagerTestSuite) TestAuthenticateWrongPassword() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)
	user := auth.User{
		ID:       "acme",
		Status:   auth.UserStatusActive,
		Password: auth.HashedPassword(hashed),
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{user}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err = s.userMgr.Authenticate(s.ctx, 1709613600, auth.AuthenticateUserRequest{
		UserID:   "acme",
		Password: "wrong-password",
	})
	s.Require().ErrorIs(err, model.ErrUserAuthenticationFail)
}

func (s *UserManagerTestSuite) TestAuthenticateInactiveUser() {
	user := auth.User{
		ID:     "acme",
		Status: auth.UserStatusInactive,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{user}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.userMgr.Authenticate(s.ctx, 1709613600, auth.AuthenticateUserRequest{
		UserID:   "acme",
		Password: "whatever",
	})
	s.Require().ErrorIs(err, model.ErrUserInactive)
}

func (s *UserManagerTestSuite) TestTokenAuthorization() {
	user := auth.User{
		ID:       "acme",
		Status:   auth.UserStatusActive,
		Role:     auth.RoleClient,
		Password: "hashed",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetUserToken(gomock.Any(), s.tx, "token-1").Return(auth.UserToken{
			Token:     "token-1",
			UserID:    "acme",
			CreatedAt: 1709613600,
			ExpiredAt: 1709700000,
		}, nil),
		s.storage.EXPECT().ListUsers(gomock.Any(), s.tx, gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{user}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	authedUser, err := s.userMgr.TokenAuthorization(s.ctx, 1709650000, "token-1")
	s.Require().NoError(err)
	s.Assert().Equal("acme", authedUser.ID)
	s.Assert().Empty(authedUser.Password)
}

func (s *UserManagerTestSuite) TestTokenAuthorizationExpired() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetUserToken(gomock.Any(), s.tx, "token-1").Return(auth.UserToken{
			Token:     "token-1",
			UserID:    "acme",
			ExpiredAt: 1709613600,
		}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.userMgr.TokenAuthorization(s.ctx, 1709700000, "token-1")
	s.Require().ErrorIs(err, model.ErrUserTokenExpired)
}

func (s *UserManagerTestSuite) TestTokenAuthorizationInvalidToken() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetUserToken(gomock.Any(), s.tx, "no-such-token").Return(auth.UserToken{}, sql.ErrNoRows),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.userMgr.TokenAuthorization(s.ctx, 1709700000, "no-such-token")
	s.Require().ErrorIs(err, model.ErrUserTokenInvalid)
}
