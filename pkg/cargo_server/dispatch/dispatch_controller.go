package dispatch

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/notification"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
	"github.com/amvarmar/cargotrack/pkg/util"
)

type DispatchController interface {
	// ListEligibleReceipts returns the client's receipts that can still be
	// selected for a new dispatch request.
	ListEligibleReceipts(ctx context.Context, clientID string) (storage.ListReceiptsResult, error)

	// CreateDispatch turns one client submission into independent dispatch
	// requests, one per selected receipt, atomically.
	CreateDispatch(ctx context.Context, ts int64, req CreateDispatchRequest) (CreateDispatchResult, error)

	Get(ctx context.Context, id string) (storage.ListDispatchesRecord, error)
	List(ctx context.Context, req storage.ListDispatchesRequest) (storage.ListDispatchesResult, error)
	ListForClient(ctx context.Context, req ListClientDispatchesRequest) (storage.ListDispatchesResult, error)

	// GetForClient returns one of the client's own dispatch requests. Requests
	// without a bill of lading are not visible to clients.
	GetForClient(ctx context.Context, clientID, id string) (storage.ListDispatchesRecord, error)

	AttachBOLAndApprove(ctx context.Context, ts int64, req AttachBOLRequest) (model.DispatchRequest, error)
	SendAndComplete(ctx context.Context, ts int64, req SendAndCompleteRequest) (model.DispatchRequest, error)
	Reject(ctx context.Context, ts int64, req RejectDispatchRequest) (model.DispatchRequest, error)

	// GetClientBOL returns the bill of lading of a client's own dispatch.
	GetClientBOL(ctx context.Context, clientID, id string) (*model.File, error)
}

// DispatchSelection is one receipt picked in a dispatch submission together
// with its commercial invoice.
type DispatchSelection struct {
	WRNumber string      `json:"wr_number"`
	Invoice  *model.File `json:"invoice"`
}

type CreateDispatchRequest struct {
	Requester  string               `json:"requester"`
	ClientID   string               `json:"client_id"`
	Method     model.DispatchMethod `json:"method"`
	Selections []DispatchSelection  `json:"selections"`
}

type CreateDispatchResult struct {
	Dispatches []model.DispatchRequest `json:"dispatches"`
}

type ListClientDispatchesRequest struct {
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	ClientID string `json:"client_id"`
}

type AttachBOLRequest struct {
	Requester  string      `json:"requester"`
	DispatchID string      `json:"dispatch_id"`
	Document   *model.File `json:"document"`
}

type SendAndCompleteRequest struct {
	Requester  string `json:"requester"`
	DispatchID string `json:"dispatch_id"`
}

type RejectDispatchRequest struct {
	Requester  string `json:"requester"`
	DispatchID string `json:"dispatch_id"`
}

type _DispatchController struct {
	storage    storage.DispatchStorage
	userMgr    auth.UserManager
	notifier   notification.Notifier
	opsAddress string
}

func NewDispatchController(s storage.DispatchStorage, userMgr auth.UserManager, notifier notification.Notifier, opsAddress string) DispatchController {
	return &_DispatchController{
		storage:    s,
		userMgr:    userMgr,
		notifier:   notifier,
		opsAddress: opsAddress,
	}
}

func (c *_DispatchController) ListEligibleReceipts(ctx context.Context, clientID string) (storage.ListReceiptsResult, error) {
	if clientID == "" {
		return storage.ListReceiptsResult{}, fmt.Errorf("client_id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListReceiptsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		ClientID:            clientID,
		EligibleForDispatch: true,
	})
}

func (c *_DispatchController) CreateDispatch(ctx context.Context, ts int64, req CreateDispatchRequest) (CreateDispatchResult, error) {
	if err := ValidateCreateDispatchRequest(req); err != nil {
		return CreateDispatchResult{}, err
	}

	missing := lo.FilterMap(req.Selections, func(s DispatchSelection, _ int) (string, bool) {
		return s.WRNumber, s.Invoice == nil || len(s.Invoice.Content) == 0
	})
	if len(missing) > 0 {
		return CreateDispatchResult{}, &model.MissingInvoiceError{WRNumbers: missing}
	}

	client, err := c._GetClient(ctx, req.ClientID)
	if err != nil {
		return CreateDispatchResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return CreateDispatchResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	eligible, err := c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		ClientID:            req.ClientID,
		EligibleForDispatch: true,
	})
	if err != nil {
		return CreateDispatchResult{}, err
	}
	eligibleByWR := lo.KeyBy(eligible.Records, func(r model.WarehouseReceipt) string { return r.WRNumber })

	result := CreateDispatchResult{
		Dispatches: make([]model.DispatchRequest, 0, len(req.Selections)),
	}
	for _, selection := range req.Selections {
		if _, ok := eligibleByWR[selection.WRNumber]; !ok {
			return CreateDispatchResult{}, fmt.Errorf("warehouse receipt %s: %w", selection.WRNumber, model.ErrReceiptNotEligible)
		}

		dispatch := model.DispatchRequest{
			ID:        util.NewUUID(),
			Version:   1,
			ClientID:  req.ClientID,
			Method:    req.Method,
			Status:    model.DispatchStatusPending,
			Invoice:   selection.Invoice,
			CreatedAt: ts,
			CreatedBy: req.Requester,
			UpdatedAt: ts,
			UpdatedBy: req.Requester,
		}
		if err := c.storage.StoreDispatch(ctx, tx, dispatch); err != nil {
			return CreateDispatchResult{}, err
		}
		if err := c.storage.AddDispatchItem(ctx, tx, model.DispatchItem{
			DispatchID: dispatch.ID,
			WRNumber:   selection.WRNumber,
		}); err != nil {
			return CreateDispatchResult{}, err
		}

		if c.opsAddress != "" {
			opsNotification := &model.Notification{
				Template:  model.TemplateDispatchRequestedOps,
				Recipient: c.opsAddress,
				Fields: map[string]string{
					"client":      client.Name,
					"method":      string(req.Method),
					"wr_number":   selection.WRNumber,
					"dispatch_id": dispatch.ID,
				},
				Attachment: selection.Invoice,
				CreatedAt:  ts,
			}
			if err := c.storage.AddNotification(ctx, tx, ts, opsNotification); err != nil {
				return CreateDispatchResult{}, err
			}
		}

		result.Dispatches = append(result.Dispatches, dispatch)
	}

	if client.Email != "" {
		wrNumbers := lo.Map(req.Selections, func(s DispatchSelection, _ int) string { return s.WRNumber })
		ack := &model.Notification{
			Template:  model.TemplateDispatchReceivedClient,
			Recipient: client.Email,
			Fields: map[string]string{
				"name":       client.Name,
				"wr_numbers": strings.Join(wrNumbers, ", "),
			},
			CreatedAt: ts,
		}
		if err := c.storage.AddNotification(ctx, tx, ts, ack); err != nil {
			return CreateDispatchResult{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return CreateDispatchResult{}, err
	}

	// Receipt status is display state only; eligibility is computed from
	// dispatch items. A failed flip is logged, never raised.
	c._MarkReceiptsInDispatch(ctx, ts, req.Requester, eligibleByWR, req.Selections)

	return result, nil
}

func (c *_DispatchController) _MarkReceiptsInDispatch(ctx context.Context, ts int64, requester string, receipts map[string]model.WarehouseReceipt, selections []DispatchSelection) {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		logrus.Warnf("CreateDispatch failed to open tx for receipt status update: %v", err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, selection := range selections {
		receipt, ok := receipts[selection.WRNumber]
		if !ok {
			continue
		}
		receipt.Status = model.ReceiptStatusInDispatch
		receipt.Version += 1
		receipt.UpdatedAt = ts
		receipt.UpdatedBy = requester
		if err := c.storage.StoreReceipt(ctx, tx, receipt); err != nil {
			logrus.Warnf("CreateDispatch failed to mark receipt %s IN_DISPATCH: %v", receipt.WRNumber, err)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logrus.Warnf("CreateDispatch failed to commit receipt status update: %v", err)
	}
}

func (c *_DispatchController) Get(ctx context.Context, id string) (storage.ListDispatchesRecord, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListDispatchesRecord{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c._GetDispatch(ctx, tx, id)
}

func (c *_DispatchController) List(ctx context.Context, req storage.ListDispatchesRequest) (storage.ListDispatchesResult, error) {
	if err := ValidateListDispatchesRequest(req); err != nil {
		return storage.ListDispatchesResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListDispatchesResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListDispatches(ctx, tx, req)
}

// ListForClient hides requests without a bill of lading, so a client never
// sees a dispatch before operations approved it.
func (c *_DispatchController) ListForClient(ctx context.Context, req ListClientDispatchesRequest) (storage.ListDispatchesResult, error) {
	if req.ClientID == "" {
		return storage.ListDispatchesResult{}, fmt.Errorf("client_id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListDispatchesResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListDispatches(ctx, tx, storage.ListDispatchesRequest{
		Offset:      req.Offset,
		Limit:       req.Limit,
		ClientID:    req.ClientID,
		WithBOLOnly: true,
	})
}

func (c *_DispatchController) AttachBOLAndApprove(ctx context.Context, ts int64, req AttachBOLRequest) (model.DispatchRequest, error) {
	if err := ValidateAttachBOLRequest(req); err != nil {
		return model.DispatchRequest{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.DispatchRequest{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, err := c._GetDispatch(ctx, tx, req.DispatchID)
	if err != nil {
		return model.DispatchRequest{}, err
	}

	dispatch := record.Dispatch
	switch dispatch.Status {
	case model.DispatchStatusPending, model.DispatchStatusApproved:
	case model.DispatchStatusCompleted:
		return model.DispatchRequest{}, model.ErrDispatchCompleted
	default:
		return model.DispatchRequest{}, fmt.Errorf("dispatch request is %s%w", dispatch.Status, model.ErrInvalidParameter)
	}

	dispatch.BillOfLading = req.Document
	dispatch.BOLUploadedAt = util.Ptr(model.NewDateTimeFromUnix(ts))
	dispatch.Status = model.DispatchStatusApproved
	dispatch.Version += 1
	dispatch.UpdatedAt = ts
	dispatch.UpdatedBy = req.Requester

	if err := dispatch.CheckBOLInvariant(); err != nil {
		return model.DispatchRequest{}, err
	}
	if err := c.storage.StoreDispatch(ctx, tx, dispatch); err != nil {
		return model.DispatchRequest{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.DispatchRequest{}, err
	}

	// The approval notification is best effort; the transition stands even
	// when delivery fails.
	client, err := c._GetClient(ctx, dispatch.ClientID)
	if err != nil {
		logrus.Warnf("AttachBOLAndApprove failed to resolve client %s: %v", dispatch.ClientID, err)
		return dispatch, nil
	}
	if client.Email != "" {
		err := c.notifier.Notify(ctx, model.Notification{
			Template:  model.TemplateBOLApproved,
			Recipient: client.Email,
			Fields: map[string]string{
				"name":      client.Name,
				"wr_number": strings.Join(record.WRNumbers, ", "),
			},
			Attachment: req.Document,
			CreatedAt:  ts,
		})
		if err != nil {
			logrus.Warnf("AttachBOLAndApprove failed to notify client %s: %v", dispatch.ClientID, err)
		}
	}

	return dispatch, nil
}

// SendAndComplete delivers the bill of lading to the client and marks the
// request COMPLETED. Delivery is the gate: when it fails, the status does not
// change.
func (c *_DispatchController) SendAndComplete(ctx context.Context, ts int64, req SendAndCompleteRequest) (model.DispatchRequest, error) {
	if err := ValidateSendAndCompleteRequest(req); err != nil {
		return model.DispatchRequest{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.DispatchRequest{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, err := c._GetDispatch(ctx, tx, req.DispatchID)
	if err != nil {
		return model.DispatchRequest{}, err
	}

	dispatch := record.Dispatch
	if dispatch.Status == model.DispatchStatusCompleted {
		return model.DispatchRequest{}, model.ErrDispatchCompleted
	}
	if dispatch.BillOfLading == nil {
		return model.DispatchRequest{}, model.ErrMissingBillOfLading
	}

	client, err := c._GetClient(ctx, dispatch.ClientID)
	if err != nil {
		return model.DispatchRequest{}, err
	}
	if client.Email == "" {
		return model.DispatchRequest{}, fmt.Errorf("client %s has no email address: %w", client.ID, model.ErrNotificationFailed)
	}

	err = c.notifier.Notify(ctx, model.Notification{
		Template:  model.TemplateBOLDelivery,
		Recipient: client.Email,
		Fields: map[string]string{
			"name":        client.Name,
			"dispatch_id": dispatch.ID,
		},
		Attachment: dispatch.BillOfLading,
		CreatedAt:  ts,
	})
	if err != nil {
		return model.DispatchRequest{}, fmt.Errorf("send bill of lading: %w", err)
	}

	dispatch.Status = model.DispatchStatusCompleted
	dispatch.Version += 1
	dispatch.UpdatedAt = ts
	dispatch.UpdatedBy = req.Requester

	if err := dispatch.CheckBOLInvariant(); err != nil {
		return model.DispatchRequest{}, err
	}
	if err := c.storage.StoreDispatch(ctx, tx, dispatch); err != nil {
		return model.DispatchRequest{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.DispatchRequest{}, err
	}

	return dispatch, nil
}

func (c *_DispatchController) Reject(ctx context.Context, ts int64, req RejectDispatchRequest) (model.DispatchRequest, error) {
	if err := ValidateRejectDispatchRequest(req); err != nil {
		return model.DispatchRequest{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.DispatchRequest{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, err := c._GetDispatch(ctx, tx, req.DispatchID)
	if err != nil {
		return model.DispatchRequest{}, err
	}

	dispatch := record.Dispatch
	if dispatch.Status != model.DispatchStatusPending {
		return model.DispatchRequest{}, fmt.Errorf("only a PENDING dispatch request can be rejected%w", model.ErrInvalidParameter)
	}

	dispatch.Status = model.DispatchStatusRejected
	dispatch.Version += 1
	dispatch.UpdatedAt = ts
	dispatch.UpdatedBy = req.Requester

	if err := c.storage.StoreDispatch(ctx, tx, dispatch); err != nil {
		return model.DispatchRequest{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.DispatchRequest{}, err
	}

	return dispatch, nil
}

func (c *_DispatchController) GetForClient(ctx context.Context, clientID, id string) (storage.ListDispatchesRecord, error) {
	if clientID == "" {
		return storage.ListDispatchesRecord{}, fmt.Errorf("client_id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListDispatchesRecord{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.storage.ListDispatches(ctx, tx, storage.ListDispatchesRequest{
		Limit:       1,
		IDs:         []string{id},
		ClientID:    clientID,
		WithBOLOnly: true,
	})
	if err != nil {
		return storage.ListDispatchesRecord{}, err
	}
	if len(result.Records) == 0 {
		return storage.ListDispatchesRecord{}, model.ErrDispatchNotFound
	}

	return result.Records[0], nil
}

func (c *_DispatchController) GetClientBOL(ctx context.Context, clientID, id string) (*model.File, error) {
	record, err := c.GetForClient(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	return record.Dispatch.BillOfLading, nil
}

func (c *_DispatchController) _GetDispatch(ctx context.Context, tx storage.Tx, id string) (storage.ListDispatchesRecord, error) {
	result, err := c.storage.ListDispatches(ctx, tx, storage.ListDispatchesRequest{
		Limit: 1,
		IDs:   []string{id},
	})
	if err != nil {
		return storage.ListDispatchesRecord{}, err
	}
	if len(result.Records) == 0 {
		return storage.ListDispatchesRecord{}, model.ErrDispatchNotFound
	}
	return result.Records[0], nil
}

func (c *_DispatchController) _GetClient(ctx context.Context, clientID string) (auth.User, error) {
	users, err := c.userMgr.ListUsers(ctx, auth.ListUserRequest{
		Limit: 1,
		IDs:   []string{clientID},
	})
	if err != nil {
		return auth.User{}, err
	}
	if len(users.Users) == 0 {
		return auth.User{}, model.ErrUserNotFound
	}
	return users.Users[0], nil
}
