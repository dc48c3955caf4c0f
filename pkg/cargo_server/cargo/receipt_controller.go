package cargo

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

type ReceiptController interface {
	Create(ctx context.Context, ts int64, req CreateReceiptRequest) (model.WarehouseReceipt, error)
	Update(ctx context.Context, ts int64, req UpdateReceiptRequest) (model.WarehouseReceipt, error)
	Get(ctx context.Context, wrNumber string) (model.StaffReceiptView, error)
	GetForClient(ctx context.Context, clientID, wrNumber string) (model.ClientReceiptView, error)
	List(ctx context.Context, req storage.ListReceiptsRequest) (storage.ListReceiptsResult, error)
	Delete(ctx context.Context, wrNumber string) error
}

type CreateReceiptRequest struct {
	Requester string `json:"requester"`

	WRNumber        string              `json:"wr_number"`
	ClientID        string              `json:"client_id"`
	Shipper         string              `json:"shipper"`
	Carrier         string              `json:"carrier"`
	ContainerNumber string              `json:"container_number"`
	WeightLbs       *decimal.Decimal    `json:"weight_lbs"`
	WeightKgs       *decimal.Decimal    `json:"weight_kgs"`
	Foots           string              `json:"foots"`
	Tracking        string              `json:"tracking"`
	InvoiceNumber   string              `json:"invoice_number"`
	PurchaseOrder   string              `json:"purchase_order"`
	Status          model.ReceiptStatus `json:"status"`
	Document        *model.File         `json:"document"`
}

type UpdateReceiptRequest struct {
	CreateReceiptRequest
}

type _ReceiptController struct {
	storage storage.ReceiptStorage
	userMgr auth.UserManager
}

func NewReceiptController(s storage.ReceiptStorage, userMgr auth.UserManager) ReceiptController {
	return &_ReceiptController{
		storage: s,
		userMgr: userMgr,
	}
}

func (c *_ReceiptController) Create(ctx context.Context, ts int64, req CreateReceiptRequest) (model.WarehouseReceipt, error) {
	if err := ValidateCreateReceiptRequest(req); err != nil {
		return model.WarehouseReceipt{}, err
	}

	client, err := c._GetClient(ctx, req.ClientID)
	if err != nil {
		return model.WarehouseReceipt{}, err
	}

	lbs, kgs, err := DeriveReceiptWeight(req.WeightLbs, req.WeightKgs)
	if err != nil {
		return model.WarehouseReceipt{}, err
	}

	status := req.Status
	if status == "" {
		status = model.ReceiptStatusPending
	}

	receipt := model.WarehouseReceipt{
		WRNumber:        req.WRNumber,
		Version:         1,
		ClientID:        req.ClientID,
		Shipper:         req.Shipper,
		Carrier:         req.Carrier,
		ContainerNumber: req.ContainerNumber,
		WeightLbs:       lbs,
		WeightKgs:       kgs,
		Foots:           req.Foots,
		Tracking:        req.Tracking,
		InvoiceNumber:   req.InvoiceNumber,
		PurchaseOrder:   req.PurchaseOrder,
		Status:          status,
		Document:        req.Document,
		CreatedAt:       ts,
		CreatedBy:       req.Requester,
		UpdatedAt:       ts,
		UpdatedBy:       req.Requester,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WarehouseReceipt{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	oldReceipts, err := c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		Limit:     1,
		WRNumbers: []string{receipt.WRNumber},
	})
	if err != nil {
		return model.WarehouseReceipt{}, err
	}
	if len(oldReceipts.Records) > 0 {
		return model.WarehouseReceipt{}, model.ErrDuplicateReceiptNumber
	}

	if err := c.storage.StoreReceipt(ctx, tx, receipt); err != nil {
		return model.WarehouseReceipt{}, err
	}

	if client.Email != "" {
		notification := &model.Notification{
			Template:  model.TemplateReceiptCreated,
			Recipient: client.Email,
			Fields: map[string]string{
				"name":      client.Name,
				"wr_number": receipt.WRNumber,
			},
			CreatedAt: ts,
		}
		if err := c.storage.AddNotification(ctx, tx, ts, notification); err != nil {
			logrus.Warnf("CreateReceipt failed to enqueue arrival notification: %v", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.WarehouseReceipt{}, err
	}

	return receipt, nil
}

func (c *_ReceiptController) Update(ctx context.Context, ts int64, req UpdateReceiptRequest) (model.WarehouseReceipt, error) {
	if err := ValidateCreateReceiptRequest(req.CreateReceiptRequest); err != nil {
		return model.WarehouseReceipt{}, err
	}

	if _, err := c._GetClient(ctx, req.ClientID); err != nil {
		return model.WarehouseReceipt{}, err
	}

	lbs, kgs, err := DeriveReceiptWeight(req.WeightLbs, req.WeightKgs)
	if err != nil {
		return model.WarehouseReceipt{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WarehouseReceipt{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	receipt, err := c._GetReceipt(ctx, tx, req.WRNumber)
	if err != nil {
		return model.WarehouseReceipt{}, err
	}

	receipt.ClientID = req.ClientID
	receipt.Shipper = req.Shipper
	receipt.Carrier = req.Carrier
	receipt.ContainerNumber = req.ContainerNumber
	receipt.WeightLbs = lbs
	receipt.WeightKgs = kgs
	receipt.Foots = req.Foots
	receipt.Tracking = req.Tracking
	receipt.InvoiceNumber = req.InvoiceNumber
	receipt.PurchaseOrder = req.PurchaseOrder
	if req.Status != "" {
		receipt.Status = req.Status
	}
	if req.Document != nil {
		receipt.Document = req.Document
	}
	receipt.Version += 1
	receipt.UpdatedAt = ts
	receipt.UpdatedBy = req.Requester

	if err := c.storage.StoreReceipt(ctx, tx, receipt); err != nil {
		return model.WarehouseReceipt{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.WarehouseReceipt{}, err
	}

	return receipt, nil
}

func (c *_ReceiptController) Get(ctx context.Context, wrNumber string) (model.StaffReceiptView, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.StaffReceiptView{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	receipt, err := c._GetReceipt(ctx, tx, wrNumber)
	if err != nil {
		return model.StaffReceiptView{}, err
	}

	groups, err := c.storage.ListPieceGroups(ctx, tx, storage.ListPieceGroupsRequest{WRNumber: wrNumber})
	if err != nil {
		return model.StaffReceiptView{}, err
	}

	items := make([]model.PieceItem, 0)
	for _, group := range groups.Records {
		groupItems, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{GroupID: group.ID})
		if err != nil {
			return model.StaffReceiptView{}, err
		}
		items = append(items, groupItems.Records...)
	}

	return model.NewStaffReceiptView(receipt, groups.Records, items), nil
}

func (c *_ReceiptController) GetForClient(ctx context.Context, clientID, wrNumber string) (model.ClientReceiptView, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.ClientReceiptView{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	receipts, err := c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		Limit:     1,
		ClientID:  clientID,
		WRNumbers: []string{wrNumber},
	})
	if err != nil {
		return model.ClientReceiptView{}, err
	}
	if len(receipts.Records) == 0 {
		return model.ClientReceiptView{}, model.ErrReceiptNotFound
	}

	groups, err := c.storage.ListPieceGroups(ctx, tx, storage.ListPieceGroupsRequest{WRNumber: wrNumber})
	if err != nil {
		return model.ClientReceiptView{}, err
	}

	return model.NewClientReceiptView(receipts.Records[0], groups.Records), nil
}

func (c *_ReceiptController) List(ctx context.Context, req storage.ListReceiptsRequest) (storage.ListReceiptsResult, error) {
	if err := ValidateListReceiptsRequest(req); err != nil {
		return storage.ListReceiptsResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListReceiptsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListReceipts(ctx, tx, req)
}

func (c *_ReceiptController) Delete(ctx context.Context, wrNumber string) error {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := c._GetReceipt(ctx, tx, wrNumber); err != nil {
		return err
	}

	groups, err := c.storage.ListPieceGroups(ctx, tx, storage.ListPieceGroupsRequest{WRNumber: wrNumber})
	if err != nil {
		return err
	}
	for _, group := range groups.Records {
		items, err := c.storage.ListPieceItems(ctx, tx, storage.ListPieceItemsRequest{GroupID: group.ID})
		if err != nil {
			return err
		}
		for _, item := range items.Records {
			if err := c.storage.DeletePieceItem(ctx, tx, item.ID); err != nil {
				return err
			}
		}
		if err := c.storage.DeletePieceGroup(ctx, tx, group.ID); err != nil {
			return err
		}
	}

	// DeleteReceipt reports ErrReceiptInDispatch when a dispatch item still
	// references the receipt.
	if err := c.storage.DeleteReceipt(ctx, tx, wrNumber); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *_ReceiptController) _GetReceipt(ctx context.Context, tx storage.Tx, wrNumber string) (model.WarehouseReceipt, error) {
	receipts, err := c.storage.ListReceipts(ctx, tx, storage.ListReceiptsRequest{
		Limit:     1,
		WRNumbers: []string{wrNumber},
	})
	if err != nil {
		return model.WarehouseReceipt{}, err
	}
	if len(receipts.Records) == 0 {
		return model.WarehouseReceipt{}, model.ErrReceiptNotFound
	}
	return receipts.Records[0], nil
}

func (c *_ReceiptController) _GetClient(ctx context.Context, clientID string) (auth.User, error) {
	users, err := c.userMgr.ListUsers(ctx, auth.ListUserRequest{
		Limit: 1,
		IDs:   []string{clientID},
		Roles: []auth.Role{auth.RoleClient},
	})
	if err != nil {
		return auth.User{}, err
	}
	if len(users.Users) == 0 {
		return auth.User{}, model.ErrUserNotFound
	}
	return users.Users[0], nil
}
