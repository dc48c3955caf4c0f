package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage/postgres"
)

type NotificationOutboxTestSuite struct {
	BaseTestSuite
	storage storage.NotificationStorage
}

func TestNotificationOutbox(t *testing.T) {
	suite.Run(t, new(NotificationOutboxTestSuite))
}

func (s *NotificationOutboxTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *NotificationOutboxTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *NotificationOutboxTestSuite) TestNotificationOutbox() {
	notification := &model.Notification{
		Template:  model.TemplateReceiptCreated,
		Recipient: "ops@acme.test",
		Fields:    map[string]string{"name": "Acme Imports", "wr_number": "WR-1001"},
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	// Add notification to outbox. ID and CreatedAt are filled in.
	s.Require().NoError(s.storage.AddNotification(ctx, tx, 1709613600, notification))
	s.Assert().NotEmpty(notification.ID)
	s.Assert().EqualValues(1709613600, notification.CreatedAt)

	// Get notification from outbox.
	messages, err := s.storage.GetNotificationOutbox(ctx, tx, 10)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)

	stored := model.Notification{}
	s.Require().NoError(json.Unmarshal(messages[0].Msg, &stored))
	s.Assert().Equal(*notification, stored)

	// Delete notification from outbox.
	s.Require().NoError(s.storage.DeleteNotificationOutbox(ctx, tx, messages[0].RecID))

	// No more notifications in outbox.
	messages, err = s.storage.GetNotificationOutbox(ctx, tx, 10)
	s.Require().NoError(err)
	s.Require().Empty(messages)
}
