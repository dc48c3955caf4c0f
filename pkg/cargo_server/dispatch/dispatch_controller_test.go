package dispatch_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/dispatch"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	mock_auth "github.com/amvarmar/cargotrack/test/mock/cargo_server/auth"
	mock_notification "github.com/amvarmar/cargotrack/test/mock/cargo_server/notification"
	mock_storage "github.com/amvarmar/cargotrack/test/mock/cargo_server/storage"
)

type DispatchControllerTestSuite struct {
	suite.Suite

	ctx          context.Context
	ctrl         *gomock.Controller
	storage      *mock_storage.MockDispatchStorage
	userMgr      *mock_auth.MockUserManager
	notifier     *mock_notification.MockNotifier
	tx           *mock_storage.MockTx
	dispatchCtrl dispatch.DispatchController
}

func TestDispatchController(t *testing.T) {
	suite.Run(t, new(DispatchControllerTestSuite))
}

func (s *DispatchControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockDispatchStorage(s.ctrl)
	s.userMgr = mock_auth.NewMockUserManager(s.ctrl)
	s.notifier = mock_notification.NewMockNotifier(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.dispatchCtrl = dispatch.NewDispatchController(s.storage, s.userMgr, s.notifier, "ops@warehouse.test")
}

func (s *DispatchControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatchControllerTestSuite) TestCreateDispatch() {
	ts := int64(1709613600)
	invoice1 := &model.File{Name: "invoice-1.pdf", Content: []byte("one")}
	invoice2 := &model.File{Name: "invoice-2.pdf", Content: []byte("two")}
	req := dispatch.CreateDispatchRequest{
		Requester: "acme",
		ClientID:  "acme",
		Method:    model.DispatchMethodMaritime,
		Selections: []dispatch.DispatchSelection{
			{WRNumber: "WR-1001", Invoice: invoice1},
			{WRNumber: "WR-1002", Invoice: invoice2},
		},
	}
	client := auth.User{ID: "acme", Role: auth.RoleClient, Name: "Acme Imports", Email: "ops@acme.test"}
	eligible := storage.ListReceiptsResult{
		Total: 2,
		Records: []model.WarehouseReceipt{
			{WRNumber: "WR-1001", ClientID: "acme", Version: 1, Status: model.ReceiptStatusReady},
			{WRNumber: "WR-1002", ClientID: "acme", Version: 2, Status: model.ReceiptStatusReady},
		},
	}
	statusTx := mock_storage.NewMockTx(s.ctrl)

	dispatchIDs := make([]string, 0, 2)
	gomock.InOrder(
		s.userMgr.EXPECT().ListUsers(gomock.Any(), auth.ListUserRequest{Limit: 1, IDs: []string{"acme"}}).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{client}}, nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListReceipts(gomock.Any(), s.tx, storage.ListReceiptsRequest{
			ClientID:            "acme",
			EligibleForDispatch: true,
		}).Return(eligible, nil),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, d model.DispatchRequest) error {
				s.Assert().Equal(model.DispatchStatusPending, d.Status)
				s.Assert().Equal(invoice1, d.Invoice)
				dispatchIDs = append(dispatchIDs, d.ID)
				return nil
			},
		),
		s.storage.EXPECT().AddDispatchItem(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, item model.DispatchItem) error {
				s.Assert().Equal("WR-1001", item.WRNumber)
				return nil
			},
		),
		s.storage.EXPECT().AddNotification(gomock.Any(), s.tx, ts, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, n *model.Notification) error {
				s.Assert().Equal(model.TemplateDispatchRequestedOps, n.Template)
				s.Assert().Equal("ops@warehouse.test", n.Recipient)
				s.Assert().Equal(invoice1, n.Attachment)
				return nil
			},
		),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, d model.DispatchRequest) error {
				s.Assert().Equal(invoice2, d.Invoice)
				dispatchIDs = append(dispatchIDs, d.ID)
				return nil
			},
		),
		s.storage.EXPECT().AddDispatchItem(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, item model.DispatchItem) error {
				s.Assert().Equal("WR-1002", item.WRNumber)
				return nil
			},
		),
		s.storage.EXPECT().AddNotification(gomock.Any(), s.tx, ts, gomock.Any()).Return(nil),
		s.storage.EXPECT().AddNotification(gomock.Any(), s.tx, ts, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, ts int64, n *model.Notification) error {
				s.Assert().Equal(model.TemplateDispatchReceivedClient, n.Template)
				s.Assert().Equal("ops@acme.test", n.Recipient)
				s.Assert().Equal("WR-1001, WR-1002", n.Fields["wr_numbers"])
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(statusTx, s.ctx, nil),
		s.storage.EXPECT().StoreReceipt(gomock.Any(), statusTx, gomock.Any()).Times(2).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, receipt model.WarehouseReceipt) error {
				s.Assert().Equal(model.ReceiptStatusInDispatch, receipt.Status)
				return nil
			},
		),
		statusTx.EXPECT().Commit(gomock.Any()).Return(nil),
		statusTx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.CreateDispatch(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Require().Len(result.Dispatches, 2)
	s.Assert().NotEqual(dispatchIDs[0], dispatchIDs[1])
}

func (s *DispatchControllerTestSuite) TestCreateDispatchMissingInvoice() {
	req := dispatch.CreateDispatchRequest{
		Requester: "acme",
		ClientID:  "acme",
		Method:    model.DispatchMethodAir,
		Selections: []dispatch.DispatchSelection{
			{WRNumber: "WR-1001", Invoice: &model.File{Name: "invoice.pdf", Content: []byte("ok")}},
			{WRNumber: "WR-1002"},
			{WRNumber: "WR-1003", Invoice: &model.File{Name: "empty.pdf"}},
		},
	}

	_, err := s.dispatchCtrl.CreateDispatch(s.ctx, 1709613600, req)
	missingErr := &model.MissingInvoiceError{}
	s.Require().ErrorAs(err, &missingErr)
	s.Assert().Equal([]string{"WR-1002", "WR-1003"}, missingErr.WRNumbers)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *DispatchControllerTestSuite) TestCreateDispatchDuplicateSelection() {
	invoice := &model.File{Name: "invoice.pdf", Content: []byte("ok")}
	req := dispatch.CreateDispatchRequest{
		Requester: "acme",
		ClientID:  "acme",
		Method:    model.DispatchMethodMaritime,
		Selections: []dispatch.DispatchSelection{
			{WRNumber: "WR-1001", Invoice: invoice},
			{WRNumber: "WR-1002", Invoice: invoice},
			{WRNumber: "WR-1001", Invoice: invoice},
		},
	}

	// Picking the same receipt twice in one submission would open two dispatch
	// requests for it; the submission is rejected before anything is stored.
	_, err := s.dispatchCtrl.CreateDispatch(s.ctx, 1709613600, req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
	s.Assert().ErrorContains(err, "WR-1001")
}

func (s *DispatchControllerTestSuite) TestCreateDispatchNotEligible() {
	req := dispatch.CreateDispatchRequest{
		Requester: "acme",
		ClientID:  "acme",
		Method:    model.DispatchMethodGround,
		Selections: []dispatch.DispatchSelection{
			{WRNumber: "WR-1001", Invoice: &model.File{Name: "invoice.pdf", Content: []byte("ok")}},
		},
	}

	gomock.InOrder(
		s.userMgr.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{{ID: "acme"}}}, nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListReceipts(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListReceiptsResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.CreateDispatch(s.ctx, 1709613600, req)
	s.Require().ErrorIs(err, model.ErrReceiptNotEligible)
}

func (s *DispatchControllerTestSuite) TestAttachBOLAndApprove() {
	ts := int64(1709700000)
	bol := &model.File{Name: "bol.pdf", Content: []byte("bol")}
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:       "dispatch-1",
			Version:  1,
			ClientID: "acme",
			Method:   model.DispatchMethodMaritime,
			Status:   model.DispatchStatusPending,
			Invoice:  &model.File{Name: "invoice.pdf", Content: []byte("inv")},
		},
		WRNumbers: []string{"WR-1001"},
	}
	client := auth.User{ID: "acme", Name: "Acme Imports", Email: "ops@acme.test"}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, storage.ListDispatchesRequest{
			Limit: 1,
			IDs:   []string{"dispatch-1"},
		}).Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, d model.DispatchRequest) error {
				s.Assert().Equal(model.DispatchStatusApproved, d.Status)
				s.Assert().Equal(bol, d.BillOfLading)
				s.Require().NotNil(d.BOLUploadedAt)
				s.Assert().Equal(int64(2), d.Version)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.userMgr.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{client}}, nil),
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, n model.Notification) error {
				s.Assert().Equal(model.TemplateBOLApproved, n.Template)
				s.Assert().Equal("ops@acme.test", n.Recipient)
				s.Assert().Equal(bol, n.Attachment)
				return nil
			},
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.AttachBOLAndApprove(s.ctx, ts, dispatch.AttachBOLRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
		Document:   bol,
	})
	s.Require().NoError(err)
	s.Assert().Equal(model.DispatchStatusApproved, result.Status)
}

func (s *DispatchControllerTestSuite) TestAttachBOLNotifyFailureKeepsApproval() {
	bol := &model.File{Name: "bol.pdf", Content: []byte("bol")}
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:       "dispatch-1",
			Version:  1,
			ClientID: "acme",
			Status:   model.DispatchStatusPending,
		},
		WRNumbers: []string{"WR-1001"},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.userMgr.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{{ID: "acme", Email: "ops@acme.test"}}}, nil),
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(model.ErrNotificationFailed),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.AttachBOLAndApprove(s.ctx, 1709700000, dispatch.AttachBOLRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
		Document:   bol,
	})
	s.Require().NoError(err)
	s.Assert().Equal(model.DispatchStatusApproved, result.Status)
}

func (s *DispatchControllerTestSuite) TestAttachBOLWithoutDocument() {
	_, err := s.dispatchCtrl.AttachBOLAndApprove(s.ctx, 1709700000, dispatch.AttachBOLRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().ErrorIs(err, model.ErrMissingBillOfLading)
}

func (s *DispatchControllerTestSuite) TestAttachBOLOnCompletedDispatch() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:           "dispatch-1",
			ClientID:     "acme",
			Status:       model.DispatchStatusCompleted,
			BillOfLading: &model.File{Name: "bol.pdf", Content: []byte("bol")},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.AttachBOLAndApprove(s.ctx, 1709700000, dispatch.AttachBOLRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
		Document:   &model.File{Name: "bol.pdf", Content: []byte("bol")},
	})
	s.Require().ErrorIs(err, model.ErrDispatchCompleted)
}

func (s *DispatchControllerTestSuite) TestSendAndComplete() {
	ts := int64(1709800000)
	bol := &model.File{Name: "bol.pdf", Content: []byte("bol")}
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:           "dispatch-1",
			Version:      2,
			ClientID:     "acme",
			Status:       model.DispatchStatusApproved,
			BillOfLading: bol,
		},
		WRNumbers: []string{"WR-1001"},
	}
	client := auth.User{ID: "acme", Name: "Acme Imports", Email: "ops@acme.test"}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.userMgr.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{client}}, nil),
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, n model.Notification) error {
				s.Assert().Equal(model.TemplateBOLDelivery, n.Template)
				s.Assert().Equal("ops@acme.test", n.Recipient)
				s.Assert().Equal(bol, n.Attachment)
				return nil
			},
		),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, d model.DispatchRequest) error {
				s.Assert().Equal(model.DispatchStatusCompleted, d.Status)
				s.Assert().Equal(int64(3), d.Version)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.SendAndComplete(s.ctx, ts, dispatch.SendAndCompleteRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(model.DispatchStatusCompleted, result.Status)
}

func (s *DispatchControllerTestSuite) TestSendAndCompleteDeliveryFailureKeepsStatus() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:           "dispatch-1",
			ClientID:     "acme",
			Status:       model.DispatchStatusApproved,
			BillOfLading: &model.File{Name: "bol.pdf", Content: []byte("bol")},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.userMgr.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
			Return(auth.ListUserResult{Total: 1, Users: []auth.User{{ID: "acme", Email: "ops@acme.test"}}}, nil),
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(model.ErrNotificationFailed),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.SendAndComplete(s.ctx, 1709800000, dispatch.SendAndCompleteRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().ErrorIs(err, model.ErrNotificationFailed)
}

func (s *DispatchControllerTestSuite) TestSendAndCompleteWithoutBOL() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:       "dispatch-1",
			ClientID: "acme",
			Status:   model.DispatchStatusPending,
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.SendAndComplete(s.ctx, 1709800000, dispatch.SendAndCompleteRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().ErrorIs(err, model.ErrMissingBillOfLading)
}

func (s *DispatchControllerTestSuite) TestReject() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:       "dispatch-1",
			Version:  1,
			ClientID: "acme",
			Status:   model.DispatchStatusPending,
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.storage.EXPECT().StoreDispatch(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, d model.DispatchRequest) error {
				s.Assert().Equal(model.DispatchStatusRejected, d.Status)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.Reject(s.ctx, 1709800000, dispatch.RejectDispatchRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(model.DispatchStatusRejected, result.Status)
}

func (s *DispatchControllerTestSuite) TestRejectNonPending() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:           "dispatch-1",
			ClientID:     "acme",
			Status:       model.DispatchStatusApproved,
			BillOfLading: &model.File{Name: "bol.pdf", Content: []byte("bol")},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.Reject(s.ctx, 1709800000, dispatch.RejectDispatchRequest{
		Requester:  "staff-1",
		DispatchID: "dispatch-1",
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *DispatchControllerTestSuite) TestListForClientRequiresBOL() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, storage.ListDispatchesRequest{
			Offset:      0,
			Limit:       20,
			ClientID:    "acme",
			WithBOLOnly: true,
		}).Return(storage.ListDispatchesResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.ListForClient(s.ctx, dispatch.ListClientDispatchesRequest{
		Limit:    20,
		ClientID: "acme",
	})
	s.Require().NoError(err)
}

func (s *DispatchControllerTestSuite) TestGetForClient() {
	record := storage.ListDispatchesRecord{
		Dispatch: model.DispatchRequest{
			ID:           "dispatch-1",
			Version:      2,
			ClientID:     "acme",
			Status:       model.DispatchStatusApproved,
			BillOfLading: &model.File{Name: "bol.pdf", Content: []byte("bol")},
		},
		WRNumbers: []string{"WR-1001"},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, storage.ListDispatchesRequest{
			Limit:       1,
			IDs:         []string{"dispatch-1"},
			ClientID:    "acme",
			WithBOLOnly: true,
		}).Return(storage.ListDispatchesResult{Total: 1, Records: []storage.ListDispatchesRecord{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.dispatchCtrl.GetForClient(s.ctx, "acme", "dispatch-1")
	s.Require().NoError(err)
	s.Assert().Equal(record, result)
}

func (s *DispatchControllerTestSuite) TestGetForClientHidesPending() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, storage.ListDispatchesRequest{
			Limit:       1,
			IDs:         []string{"dispatch-1"},
			ClientID:    "acme",
			WithBOLOnly: true,
		}).Return(storage.ListDispatchesResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.GetForClient(s.ctx, "acme", "dispatch-1")
	s.Require().ErrorIs(err, model.ErrDispatchNotFound)
}

func (s *DispatchControllerTestSuite) TestGetClientBOLNotVisible() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDispatches(gomock.Any(), s.tx, storage.ListDispatchesRequest{
			Limit:       1,
			IDs:         []string{"dispatch-1"},
			ClientID:    "acme",
			WithBOLOnly: true,
		}).Return(storage.ListDispatchesResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.dispatchCtrl.GetClientBOL(s.ctx, "acme", "dispatch-1")
	s.Require().ErrorIs(err, model.ErrDispatchNotFound)
}
